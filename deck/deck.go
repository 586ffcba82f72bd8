package deck

import (
	"math/rand"
)

// Deck is an ordered sequence of cards. Order matters: games deal from
// the front, so any shuffling happens before the deck is handed over.
type Deck []Card

// Feature describes one card feature and the values it ranges over.
type Feature struct {
	Name   string
	Values []string
}

var standardFeatures = []Feature{
	{Name: "letter", Values: []string{"A", "B", "C"}},
	{Name: "number", Values: []string{"1", "2", "3"}},
	{Name: "color", Values: []string{"red", "green", "blue"}},
	{Name: "font", Values: []string{"serif", "sans-serif", "monospace"}},
}

// New creates the standard deck of 81 Letters cards in unshuffled order.
func New() Deck {
	return Build(standardFeatures)
}

// Build creates a deck holding every combination of the given feature
// values, with the first feature varying slowest.
func Build(features []Feature) Deck {
	cards := Deck{Card{}}
	for _, f := range features {
		next := make(Deck, 0, len(cards)*len(f.Values))
		for _, c := range cards {
			for _, v := range f.Values {
				combined := c.Clone()
				combined[f.Name] = v
				next = append(next, combined)
			}
		}
		cards = next
	}
	return cards
}

// Clone returns a deck of independent card copies.
func (d Deck) Clone() Deck {
	clone := make(Deck, len(d))
	for i, c := range d {
		clone[i] = c.Clone()
	}
	return clone
}

// Shuffle reorders the deck in place, drawing randomness from r.
func (d Deck) Shuffle(r *rand.Rand) {
	r.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

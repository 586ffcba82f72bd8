// Package rules holds the matching predicates a game can be played
// under. The game engine checks a claim's structure; whether the
// claimed cards genuinely belong together is decided by a Rule.
package rules

import (
	"github.com/minaorangina/letters/deck"
)

// Rule decides whether a group of cards makes a fit.
type Rule interface {
	IsFit(cards []deck.Card) bool
}

// RuleFunc adapts a plain function to the Rule interface.
type RuleFunc func(cards []deck.Card) bool

// IsFit calls f(cards).
func (f RuleFunc) IsFit(cards []deck.Card) bool {
	return f(cards)
}

// Standard returns the real Letters rule: for every feature, the
// cards' values must be all the same or all different.
func Standard() Rule {
	return RuleFunc(func(cards []deck.Card) bool {
		if len(cards) == 0 {
			return true
		}
		for _, feature := range cards[0].Features() {
			distinct := map[string]bool{}
			for _, c := range cards {
				distinct[c[feature]] = true
			}
			if len(distinct) != 1 && len(distinct) != len(cards) {
				return false
			}
		}
		return true
	})
}

// CommonFeature returns a looser practice rule: the cards make a fit
// if at least one feature holds the same value on every card.
func CommonFeature() Rule {
	return RuleFunc(func(cards []deck.Card) bool {
		if len(cards) == 0 {
			return true
		}
		for _, feature := range cards[0].Features() {
			same := true
			for _, c := range cards[1:] {
				if c[feature] != cards[0][feature] {
					same = false
					break
				}
			}
			if same {
				return true
			}
		}
		return false
	})
}

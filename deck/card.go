package deck

import (
	"sort"
	"strings"
)

// Card is a single game card, mapping each feature name to this card's
// value for that feature.
type Card map[string]string

// Clone returns an independent copy of the card.
func (c Card) Clone() Card {
	if c == nil {
		return nil
	}
	clone := make(Card, len(c))
	for feature, value := range c {
		clone[feature] = value
	}
	return clone
}

// Features returns the card's feature names in lexical order.
func (c Card) Features() []string {
	features := make([]string, 0, len(c))
	for feature := range c {
		features = append(features, feature)
	}
	sort.Strings(features)
	return features
}

// Equal reports whether both cards hold the same value for every feature.
func (c Card) Equal(other Card) bool {
	if len(c) != len(other) {
		return false
	}
	for feature, value := range c {
		otherValue, ok := other[feature]
		if !ok || otherValue != value {
			return false
		}
	}
	return true
}

func (c Card) String() string {
	pairs := make([]string, 0, len(c))
	for _, feature := range c.Features() {
		pairs = append(pairs, feature+"="+c[feature])
	}
	return strings.Join(pairs, " ")
}

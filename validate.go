package letters

import (
	"fmt"

	"github.com/minaorangina/letters/deck"
)

// validateDeck applies the construction checks: the tableau must have
// positive dimensions, the cards must fill it at least once, it must
// be able to hold a whole fit, every card must carry the same feature
// names with exactly fitSize values per feature across the deck, and
// no card may appear twice.
func validateDeck(cards deck.Deck, fitSize, rows, cols int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: tableau must be at least 1x1, got %dx%d", ErrConfiguration, rows, cols)
	}
	if fitSize < 1 {
		return fmt.Errorf("%w: fit size must be at least 1, got %d", ErrConfiguration, fitSize)
	}
	if len(cards) < rows*cols {
		return fmt.Errorf("%w: %d cards cannot fill a %dx%d tableau", ErrConfiguration, len(cards), rows, cols)
	}
	if rows*cols < fitSize {
		return fmt.Errorf("%w: a %dx%d tableau cannot hold a fit of %d cards", ErrConfiguration, rows, cols, fitSize)
	}

	schema := cards[0].Features()
	for _, c := range cards {
		if !sharesSchema(schema, c) {
			return fmt.Errorf("%w: cards do not share one set of features", ErrConfiguration)
		}
	}

	for _, feature := range schema {
		distinct := map[string]bool{}
		for _, c := range cards {
			distinct[c[feature]] = true
		}
		if len(distinct) != fitSize {
			return fmt.Errorf("%w: feature %q has %d values across the deck, want %d",
				ErrConfiguration, feature, len(distinct), fitSize)
		}
	}

	// Compared feature by feature; rendered forms are not unique when
	// values contain separators.
	for i, c := range cards {
		for _, other := range cards[i+1:] {
			if c.Equal(other) {
				return fmt.Errorf("%w: duplicate card %v", ErrConfiguration, c)
			}
		}
	}

	return nil
}

func sharesSchema(schema []string, c deck.Card) bool {
	if len(c) != len(schema) {
		return false
	}
	for _, feature := range schema {
		if _, ok := c[feature]; !ok {
			return false
		}
	}
	return true
}

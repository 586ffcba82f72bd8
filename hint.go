package letters

import (
	"sort"

	"github.com/minaorangina/letters/deck"
	"github.com/minaorangina/letters/rules"
)

// FindFit scans g's tableau for a group of cards that rule accepts,
// returning their positions in row-major order, or nil when no fit is
// on the table. A nil rule means rules.Standard. Useful for bots and
// for deciding that a round has gone stale.
func FindFit(g Game, rule rules.Rule) []Position {
	if rule == nil {
		rule = rules.Standard()
	}

	occupied := g.NonEmptyPositions()
	positions := make([]Position, 0, len(occupied))
	for pos := range occupied {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Row != positions[j].Row {
			return positions[i].Row < positions[j].Row
		}
		return positions[i].Col < positions[j].Col
	})

	tableau := g.Tableau()
	fitSize := g.FitSize()

	var search func(start int, chosen []Position) []Position
	search = func(start int, chosen []Position) []Position {
		if len(chosen) == fitSize {
			cards := make([]deck.Card, len(chosen))
			for i, pos := range chosen {
				cards[i] = tableau[pos.Row][pos.Col]
			}
			if rule.IsFit(cards) {
				found := make([]Position, len(chosen))
				copy(found, chosen)
				return found
			}
			return nil
		}
		for i := start; i <= len(positions)-(fitSize-len(chosen)); i++ {
			if found := search(i+1, append(chosen, positions[i])); found != nil {
				return found
			}
		}
		return nil
	}

	return search(0, make([]Position, 0, fitSize))
}

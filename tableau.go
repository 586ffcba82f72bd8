package letters

import (
	"sort"

	"github.com/minaorangina/letters/deck"
)

// tableau owns the grid of card slots and the cards not yet dealt.
// Slots are stored row-major; an empty slot holds nil. Every card from
// the original deck is always in exactly one place: a slot, the
// undealt queue, or the removed count.
type tableau struct {
	rows, cols int
	slots      []deck.Card
	undealt    deck.Deck
	removed    int
}

// newTableau deals the first rows*cols cards into the grid and queues
// the rest. The caller has already validated the deck length.
func newTableau(cards deck.Deck, rows, cols int) *tableau {
	dealt := rows * cols
	t := &tableau{
		rows:    rows,
		cols:    cols,
		slots:   make([]deck.Card, dealt),
		undealt: cards[dealt:],
	}
	copy(t.slots, cards[:dealt])
	return t
}

func (t *tableau) inBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < t.rows && pos.Col >= 0 && pos.Col < t.cols
}

// cardAt returns the slot contents, nil for an empty slot. Bounds are
// the caller's problem.
func (t *tableau) cardAt(pos Position) deck.Card {
	return t.slots[pos.Row*t.cols+pos.Col]
}

// replace removes the cards at the given positions, counting every
// removal, and deals the next undealt card into each vacated slot
// while any remain. Once the deck runs dry the remaining slots stay
// empty for good. Slots are refilled in row-major order, so deck
// order maps onto the grid predictably.
func (t *tableau) replace(positions []Position) {
	claimed := make([]int, 0, len(positions))
	for _, pos := range positions {
		claimed = append(claimed, pos.Row*t.cols+pos.Col)
	}
	sort.Ints(claimed)

	for _, i := range claimed {
		t.removed++
		if len(t.undealt) > 0 {
			t.slots[i] = t.undealt[0]
			t.undealt = t.undealt[1:]
		} else {
			t.slots[i] = nil
		}
	}
}

func (t *tableau) nonEmptyPositions() map[Position]bool {
	positions := map[Position]bool{}
	for i, c := range t.slots {
		if c != nil {
			positions[Position{Row: i / t.cols, Col: i % t.cols}] = true
		}
	}
	return positions
}

func (t *tableau) full() bool {
	for _, c := range t.slots {
		if c == nil {
			return false
		}
	}
	return true
}

// grid snapshots the tableau as independent card copies.
func (t *tableau) grid() [][]deck.Card {
	g := make([][]deck.Card, t.rows)
	for r := 0; r < t.rows; r++ {
		row := make([]deck.Card, t.cols)
		for c := 0; c < t.cols; c++ {
			row[c] = t.slots[r*t.cols+c].Clone()
		}
		g[r] = row
	}
	return g
}

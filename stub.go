package letters

import (
	"fmt"

	"github.com/minaorangina/letters/deck"
)

// Stub is a canned Game for wiring up stores and harnesses before a
// real engine is in play. Claims touching an odd-numbered row always
// succeed and the claimed slots are never refilled; scores are fixed
// at 100 times the player number; the winners are read off the two
// corner slots; moonshot and elimination calls are accepted and
// ignored.
type Stub struct {
	rows       int
	cols       int
	fitSize    int
	numPlayers int
	lightning  bool
	slots      []deck.Card
	done       bool
}

// NewStub constructs a Stub over exactly one tableau's worth of cards.
// Nothing else about the deck is validated.
func NewStub(cards deck.Deck, fitSize, rows, cols, numPlayers int, lightning bool) (*Stub, error) {
	if len(cards) != rows*cols {
		return nil, fmt.Errorf("%w: stub wants exactly %d cards, got %d", ErrConfiguration, rows*cols, len(cards))
	}

	s := &Stub{
		rows:       rows,
		cols:       cols,
		fitSize:    fitSize,
		numPlayers: numPlayers,
		lightning:  lightning,
		slots:      make([]deck.Card, len(cards)),
	}
	for i, c := range cards {
		s.slots[i] = c.Clone()
	}
	return s, nil
}

func (s *Stub) NumRows() int {
	return s.rows
}

func (s *Stub) NumCols() int {
	return s.cols
}

func (s *Stub) FitSize() int {
	return s.fitSize
}

func (s *Stub) NumPlayers() int {
	return s.numPlayers
}

func (s *Stub) Lightning() bool {
	return s.lightning
}

func (s *Stub) Moonshot() bool {
	return false
}

func (s *Stub) ActivePlayers() map[int]bool {
	active := make(map[int]bool, s.numPlayers)
	for p := 1; p <= s.numPlayers; p++ {
		active[p] = true
	}
	return active
}

func (s *Stub) Tableau() [][]deck.Card {
	g := make([][]deck.Card, s.rows)
	for r := 0; r < s.rows; r++ {
		row := make([]deck.Card, s.cols)
		for c := 0; c < s.cols; c++ {
			row[c] = s.slots[r*s.cols+c].Clone()
		}
		g[r] = row
	}
	return g
}

func (s *Stub) NonEmptyPositions() map[Position]bool {
	positions := map[Position]bool{}
	for i, c := range s.slots {
		if c != nil {
			positions[Position{Row: i / s.cols, Col: i % s.cols}] = true
		}
	}
	return positions
}

// Scores always reports 100 times the player number.
func (s *Stub) Scores() map[int]int {
	scores := make(map[int]int, s.numPlayers)
	for p := 1; p <= s.numPlayers; p++ {
		scores[p] = 100 * p
	}
	return scores
}

func (s *Stub) Done() bool {
	return s.done
}

// Outcome reads the winners off the corner slots: an empty top-left
// corner favours player 1, an empty bottom-right corner favours
// player 2, and matching corners mean a tie between the two.
func (s *Stub) Outcome() map[int]bool {
	if !s.done {
		return map[int]bool{}
	}

	topLeft := s.slots[0]
	bottomRight := s.slots[len(s.slots)-1]
	switch {
	case topLeft == nil && bottomRight != nil:
		return map[int]bool{1: true}
	case topLeft != nil && bottomRight == nil:
		return map[int]bool{2: true}
	default:
		return map[int]bool{1: true, 2: true}
	}
}

func (s *Stub) CardAt(pos Position) (deck.Card, error) {
	if !s.inBounds(pos) {
		return nil, fmt.Errorf("%w: position %v is off the tableau", ErrIllegalOperation, pos)
	}
	return s.slots[pos.Row*s.cols+pos.Col].Clone(), nil
}

// CallFit succeeds whenever the claim touches an odd-numbered row,
// removing the claimed cards without refilling. Beyond bounds, no
// legality checks apply.
func (s *Stub) CallFit(player int, positions []Position) (bool, error) {
	for _, pos := range positions {
		if !s.inBounds(pos) {
			return false, fmt.Errorf("%w: position %v is off the tableau", ErrIllegalOperation, pos)
		}
	}

	oddRow := false
	for _, pos := range positions {
		if pos.Row%2 == 1 {
			oddRow = true
			break
		}
	}
	if !oddRow {
		return false, nil
	}

	for _, pos := range positions {
		s.slots[pos.Row*s.cols+pos.Col] = nil
	}
	return true, nil
}

func (s *Stub) MoonshotStart(player int) error {
	return nil
}

func (s *Stub) MoonshotEnd() error {
	return nil
}

func (s *Stub) EndGame() error {
	s.done = true
	return nil
}

func (s *Stub) Eliminate(player int) error {
	return nil
}

func (s *Stub) inBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < s.rows && pos.Col >= 0 && pos.Col < s.cols
}

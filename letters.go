// Package letters implements the state engine for a round of Letters,
// a matching game played over a tableau of feature cards. Players call
// fits on groups of tableau positions; good calls score and the slots
// refill from the deck, bad calls cost points. A round runs until the
// players agree to stop, or ends itself in lightning mode, and either
// side of that a player can shoot the moon and stake the round on one
// final claim.
//
// The engine owns card validation, claim legality, replenishment,
// scoring and mode transitions. It does not shuffle (pass cards in
// final order), decide what counts as a matching group (pass a
// rules.Rule), or talk to players.
package letters

import (
	"errors"
	"fmt"

	"github.com/minaorangina/letters/deck"
)

var (
	// ErrConfiguration covers every way a game can be misconstructed.
	ErrConfiguration = errors.New("invalid game configuration")

	// ErrIllegalOperation covers every rejected in-play operation. A
	// rejected call leaves the game exactly as it was.
	ErrIllegalOperation = errors.New("illegal operation")

	errRoundOver = fmt.Errorf("%w: the round is over", ErrIllegalOperation)
)

// Position is a tableau coordinate, numbered from zero, row-major.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Game is a single round of Letters. Players are numbered from 1.
type Game interface {
	NumRows() int
	NumCols() int
	FitSize() int
	NumPlayers() int
	Lightning() bool
	Moonshot() bool
	ActivePlayers() map[int]bool
	Tableau() [][]deck.Card
	NonEmptyPositions() map[Position]bool
	Scores() map[int]int
	Done() bool
	Outcome() map[int]bool
	CardAt(pos Position) (deck.Card, error)
	CallFit(player int, positions []Position) (bool, error)
	MoonshotStart(player int) error
	MoonshotEnd() error
	EndGame() error
	Eliminate(player int) error
}

// Scoring holds the point deltas applied to the ledger. Penalties and
// forfeits are negative deltas.
type Scoring struct {
	FitAward        int
	FitPenalty      int
	MoonshotBonus   int
	MoonshotForfeit int
}

// DefaultScoring returns the usual deltas for a game with the given
// fit size: fit awards and penalties scale with the fit size, and a
// moonshot swings a hundred points either way.
func DefaultScoring(fitSize int) Scoring {
	return Scoring{
		FitAward:        fitSize,
		FitPenalty:      -fitSize,
		MoonshotBonus:   100,
		MoonshotForfeit: -100,
	}
}

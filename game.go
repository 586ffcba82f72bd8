package letters

import (
	"fmt"

	"github.com/minaorangina/letters/deck"
	"github.com/minaorangina/letters/rules"
)

// GameOpts configures a round of Letters. Cards are dealt in the order
// given, row-major into the tableau first; shuffle before constructing
// if the game calls for it. A nil Rule means rules.Standard, a nil
// Scoring means DefaultScoring for the fit size.
type GameOpts struct {
	Cards      deck.Deck
	FitSize    int
	Rows       int
	Cols       int
	NumPlayers int
	Lightning  bool
	Rule       rules.Rule
	Scoring    *Scoring
}

type game struct {
	tableau    *tableau
	fitSize    int
	numPlayers int
	lightning  bool
	rule       rules.Rule
	scoring    Scoring

	active   map[int]bool
	scores   map[int]int
	moonshot bool
	shooter  int
	done     bool
	winner   int // only set when a lightning round ends on a success
}

// NewGame constructs a round of Letters. The deck is validated and
// copied, so later changes to opts.Cards never reach the game.
func NewGame(opts GameOpts) (*game, error) {
	if err := validateDeck(opts.Cards, opts.FitSize, opts.Rows, opts.Cols); err != nil {
		return nil, err
	}

	g := &game{
		fitSize:    opts.FitSize,
		numPlayers: opts.NumPlayers,
		lightning:  opts.Lightning,
		rule:       opts.Rule,
		active:     map[int]bool{},
		scores:     map[int]int{},
	}

	if g.rule == nil {
		g.rule = rules.Standard()
	}
	if opts.Scoring != nil {
		g.scoring = *opts.Scoring
	} else {
		g.scoring = DefaultScoring(opts.FitSize)
	}

	for p := 1; p <= opts.NumPlayers; p++ {
		g.active[p] = true
		g.scores[p] = 0
	}

	g.tableau = newTableau(opts.Cards.Clone(), opts.Rows, opts.Cols)

	return g, nil
}

func (g *game) NumRows() int {
	return g.tableau.rows
}

func (g *game) NumCols() int {
	return g.tableau.cols
}

func (g *game) FitSize() int {
	return g.fitSize
}

func (g *game) NumPlayers() int {
	return g.numPlayers
}

func (g *game) Lightning() bool {
	return g.lightning
}

func (g *game) Moonshot() bool {
	return g.moonshot
}

func (g *game) Done() bool {
	return g.done
}

// ActivePlayers returns the players still in the round. Outside
// lightning mode this is every player.
func (g *game) ActivePlayers() map[int]bool {
	active := make(map[int]bool, len(g.active))
	for p := range g.active {
		active[p] = true
	}
	return active
}

// Tableau returns a snapshot of the grid; empty slots are nil.
func (g *game) Tableau() [][]deck.Card {
	return g.tableau.grid()
}

func (g *game) NonEmptyPositions() map[Position]bool {
	return g.tableau.nonEmptyPositions()
}

// Scores returns a copy of the running ledger.
func (g *game) Scores() map[int]int {
	scores := make(map[int]int, len(g.scores))
	for p, s := range g.scores {
		scores[p] = s
	}
	return scores
}

// Outcome returns the winners once the round is done, and an empty set
// before that. A lightning round won by a successful fit names that
// player alone; otherwise the players sharing the top score win.
func (g *game) Outcome() map[int]bool {
	winners := map[int]bool{}
	if !g.done {
		return winners
	}
	if g.winner != 0 {
		winners[g.winner] = true
		return winners
	}

	best, haveBest := 0, false
	for p := range g.active {
		if !haveBest || g.scores[p] > best {
			best = g.scores[p]
			haveBest = true
		}
	}
	for p := range g.active {
		if g.scores[p] == best {
			winners[p] = true
		}
	}
	return winners
}

// CardAt returns a copy of the card at pos, or nil for an empty slot.
func (g *game) CardAt(pos Position) (deck.Card, error) {
	if !g.tableau.inBounds(pos) {
		return nil, fmt.Errorf("%w: position %v is off the tableau", ErrIllegalOperation, pos)
	}
	return g.tableau.cardAt(pos).Clone(), nil
}

// CallFit resolves a claim that the cards at positions make a fit.
// A good claim scores for player and the slots refill from the deck;
// a bad claim costs player points and leaves the tableau alone. While
// a moonshot is underway, any claim settles the moonshot and ends the
// round instead. In lightning mode the first good claim ends the round.
func (g *game) CallFit(player int, positions []Position) (bool, error) {
	if g.done {
		return false, errRoundOver
	}
	for _, pos := range positions {
		if !g.tableau.inBounds(pos) {
			return false, fmt.Errorf("%w: position %v is off the tableau", ErrIllegalOperation, pos)
		}
	}
	for _, pos := range positions {
		if g.tableau.cardAt(pos) == nil {
			return false, fmt.Errorf("%w: no card at %v", ErrIllegalOperation, pos)
		}
	}
	claimed := map[Position]bool{}
	for _, pos := range positions {
		if claimed[pos] {
			return false, fmt.Errorf("%w: position %v claimed twice", ErrIllegalOperation, pos)
		}
		claimed[pos] = true
	}
	if len(positions) != g.fitSize {
		return false, fmt.Errorf("%w: claimed %d positions, the fit size is %d", ErrIllegalOperation, len(positions), g.fitSize)
	}
	if err := g.checkPlayer(player); err != nil {
		return false, err
	}

	cards := make([]deck.Card, 0, len(positions))
	for _, pos := range positions {
		cards = append(cards, g.tableau.cardAt(pos))
	}
	fit := g.rule.IsFit(cards)

	if g.moonshot {
		g.resolveMoonshot(fit)
		return fit, nil
	}

	if !fit {
		g.scores[player] += g.scoring.FitPenalty
		return false, nil
	}

	g.tableau.replace(positions)
	g.scores[player] += g.scoring.FitAward
	if g.lightning {
		g.done = true
		g.winner = player
	}
	return true, nil
}

// MoonshotStart commits player to clearing the remaining tableau. The
// next claim by anyone, good or bad, settles the moonshot and ends the
// round. A moonshot can only be started while every slot holds a card.
func (g *game) MoonshotStart(player int) error {
	if g.done {
		return errRoundOver
	}
	if g.moonshot {
		return fmt.Errorf("%w: a moonshot is already underway", ErrIllegalOperation)
	}
	if !g.tableau.full() {
		return fmt.Errorf("%w: cannot shoot the moon over empty slots", ErrIllegalOperation)
	}
	if err := g.checkPlayer(player); err != nil {
		return err
	}

	g.moonshot = true
	g.shooter = player
	return nil
}

// MoonshotEnd settles a moonshot in the shooter's favour without a
// closing claim, for a shooter who cleared the board by other means.
// Outside lightning mode play then continues as normal.
func (g *game) MoonshotEnd() error {
	if g.done {
		return errRoundOver
	}
	if !g.moonshot {
		return fmt.Errorf("%w: no moonshot underway", ErrIllegalOperation)
	}
	if g.lightning && !g.active[g.shooter] {
		return fmt.Errorf("%w: player %d has been eliminated", ErrIllegalOperation, g.shooter)
	}

	shooter := g.shooter
	g.scores[shooter] += g.scoring.MoonshotBonus
	g.moonshot = false
	g.shooter = 0
	if g.lightning {
		g.done = true
		g.winner = shooter
	}
	return nil
}

// EndGame ends the round by consensus of the players. How the players
// reach consensus is the application's business; lightning rounds end
// themselves and refuse this call.
func (g *game) EndGame() error {
	if g.done {
		return errRoundOver
	}
	if g.lightning {
		return fmt.Errorf("%w: a lightning round cannot be ended by consensus", ErrIllegalOperation)
	}

	g.done = true
	return nil
}

// Eliminate knocks player out of a lightning round. When to eliminate
// is the application's call; the game only enforces that eliminated
// players stay out.
func (g *game) Eliminate(player int) error {
	if g.done {
		return errRoundOver
	}
	if !g.lightning {
		return fmt.Errorf("%w: elimination only applies to lightning rounds", ErrIllegalOperation)
	}
	if err := g.checkPlayer(player); err != nil {
		return err
	}

	delete(g.active, player)
	return nil
}

func (g *game) checkPlayer(player int) error {
	if player < 1 || player > g.numPlayers {
		return fmt.Errorf("%w: no player %d in a %d-player game", ErrIllegalOperation, player, g.numPlayers)
	}
	if g.lightning && !g.active[player] {
		return fmt.Errorf("%w: player %d has been eliminated", ErrIllegalOperation, player)
	}
	return nil
}

// resolveMoonshot settles a moonshot on the claim that ends it. The
// shooter takes the bonus or the forfeit in place of any normal fit
// delta, the tableau stays as it was, and the round is over.
func (g *game) resolveMoonshot(fit bool) {
	shooter := g.shooter
	if fit {
		g.scores[shooter] += g.scoring.MoonshotBonus
		if g.lightning {
			g.winner = shooter
		}
	} else {
		g.scores[shooter] += g.scoring.MoonshotForfeit
	}
	g.moonshot = false
	g.shooter = 0
	g.done = true
}

package letters

import (
	"testing"

	"github.com/minaorangina/letters/deck"
	utils "github.com/minaorangina/letters/internal"
	"github.com/minaorangina/letters/rules"
)

// mixedRefillDeck rebuilds the standard deck so that the refill after
// one claim on row 0 leaves the first three slots with no feature in
// common.
func mixedRefillDeck() deck.Deck {
	cards := deck.New()
	cards[13] = cards[36].Clone()
	cards[14] = cards[80].Clone()

	tweaked := make(deck.Deck, 0, len(cards)-2)
	tweaked = append(tweaked, cards[:36]...)
	tweaked = append(tweaked, cards[37:80]...)
	return tweaked
}

func TestMoonshot(t *testing.T) {
	t.Run("a winning claim banks the bonus and ends the round", func(t *testing.T) {
		cards := deck.New()
		game := newCommonFeatureGame(t, cards)

		game.CallFit(1, []Position{{0, 0}, {0, 1}, {0, 2}})
		game.CallFit(2, []Position{{1, 0}, {1, 1}, {1, 2}})
		game.CallFit(1, []Position{{2, 0}, {2, 1}, {2, 2}})
		utils.AssertDeepEqual(t, game.Scores(), map[int]int{1: 6, 2: 3})

		utils.AssertNoError(t, game.MoonshotStart(2))
		utils.AssertTrue(t, game.Moonshot())

		fit, err := game.CallFit(2, []Position{{0, 3}, {1, 3}, {2, 3}})
		utils.AssertNoError(t, err)
		utils.AssertTrue(t, fit)

		utils.AssertTrue(t, game.Done())
		utils.AssertEqual(t, game.Moonshot(), false)
		utils.AssertDeepEqual(t, game.Scores(), map[int]int{1: 6, 2: 103})
		utils.AssertDeepEqual(t, game.Outcome(), map[int]bool{2: true})

		// The settling claim does not touch the tableau.
		utils.AssertEqual(t, len(game.NonEmptyPositions()), 12)
		got, err := game.CardAt(Position{0, 3})
		utils.AssertNoError(t, err)
		utils.AssertTrue(t, got.Equal(cards[3]))
	})

	t.Run("a failed moonshot costs the shooter dearly", func(t *testing.T) {
		game, err := NewGame(GameOpts{
			Cards:      deck.New(),
			FitSize:    3,
			Rows:       3,
			Cols:       4,
			NumPlayers: 2,
		})
		utils.AssertNoError(t, err)

		fit, err := game.CallFit(1, []Position{{0, 0}, {0, 1}, {0, 2}})
		utils.AssertNoError(t, err)
		utils.AssertTrue(t, fit)

		utils.AssertNoError(t, game.MoonshotStart(1))

		fit, err = game.CallFit(1, []Position{{1, 0}, {1, 1}, {1, 2}})
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, fit, false)

		utils.AssertTrue(t, game.Done())
		utils.AssertDeepEqual(t, game.Scores(), map[int]int{1: -97, 2: 0})
		utils.AssertDeepEqual(t, game.Outcome(), map[int]bool{2: true})
	})

	t.Run("the forfeit is configurable", func(t *testing.T) {
		game, err := NewGame(GameOpts{
			Cards:      mixedRefillDeck(),
			FitSize:    3,
			Rows:       3,
			Cols:       4,
			NumPlayers: 2,
			Rule:       rules.CommonFeature(),
			Scoring:    &Scoring{FitAward: 3, FitPenalty: -3, MoonshotBonus: 100, MoonshotForfeit: 100},
		})
		utils.AssertNoError(t, err)

		fit, err := game.CallFit(1, []Position{{0, 0}, {0, 1}, {0, 2}})
		utils.AssertNoError(t, err)
		utils.AssertTrue(t, fit)

		fit, err = game.CallFit(2, []Position{{1, 1}, {1, 2}, {1, 3}})
		utils.AssertNoError(t, err)
		utils.AssertTrue(t, fit)

		utils.AssertNoError(t, game.MoonshotStart(1))

		// The refilled row no longer shares a feature.
		fit, err = game.CallFit(1, []Position{{0, 0}, {0, 1}, {0, 2}})
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, fit, false)

		utils.AssertTrue(t, game.Done())
		utils.AssertDeepEqual(t, game.Scores(), map[int]int{1: 103, 2: 3})
		utils.AssertDeepEqual(t, game.Outcome(), map[int]bool{1: true})
	})

	t.Run("any player's claim settles the moonshot", func(t *testing.T) {
		game, err := NewGame(GameOpts{
			Cards:      deck.New(),
			FitSize:    3,
			Rows:       3,
			Cols:       4,
			NumPlayers: 2,
		})
		utils.AssertNoError(t, err)

		utils.AssertNoError(t, game.MoonshotStart(1))

		fit, err := game.CallFit(2, []Position{{0, 0}, {0, 1}, {0, 2}})
		utils.AssertNoError(t, err)
		utils.AssertTrue(t, fit)

		// The bonus goes to the shooter, not the claimant.
		utils.AssertTrue(t, game.Done())
		utils.AssertDeepEqual(t, game.Scores(), map[int]int{1: 100, 2: 0})
		utils.AssertDeepEqual(t, game.Outcome(), map[int]bool{1: true})
	})
}

func TestMoonshotStart(t *testing.T) {
	t.Run("needs a full tableau", func(t *testing.T) {
		game := newCommonFeatureGame(t, twelveCards())

		fit, err := game.CallFit(1, []Position{{1, 0}, {1, 1}, {1, 2}})
		utils.AssertNoError(t, err)
		utils.AssertTrue(t, fit)

		utils.AssertIsError(t, game.MoonshotStart(2), ErrIllegalOperation)
	})

	t.Run("needs a real player", func(t *testing.T) {
		game := newCommonFeatureGame(t, deck.New())

		for _, player := range []int{3, -1, 0} {
			utils.AssertIsError(t, game.MoonshotStart(player), ErrIllegalOperation)
		}
	})

	t.Run("one moonshot at a time", func(t *testing.T) {
		game := newCommonFeatureGame(t, deck.New())

		utils.AssertNoError(t, game.MoonshotStart(1))
		utils.AssertIsError(t, game.MoonshotStart(2), ErrIllegalOperation)
		utils.AssertIsError(t, game.MoonshotStart(1), ErrIllegalOperation)
	})
}

func TestMoonshotEnd(t *testing.T) {
	t.Run("banks the bonus and play carries on", func(t *testing.T) {
		game := newCommonFeatureGame(t, deck.New())

		utils.AssertNoError(t, game.MoonshotStart(1))
		utils.AssertNoError(t, game.MoonshotEnd())

		utils.AssertEqual(t, game.Moonshot(), false)
		utils.AssertEqual(t, game.Done(), false)
		utils.AssertDeepEqual(t, game.Scores(), map[int]int{1: 100, 2: 0})

		fit, err := game.CallFit(1, []Position{{0, 0}, {0, 1}, {0, 2}})
		utils.AssertNoError(t, err)
		utils.AssertTrue(t, fit)
		utils.AssertEqual(t, game.Scores()[1], 103)
	})

	t.Run("needs a moonshot underway", func(t *testing.T) {
		game := newCommonFeatureGame(t, deck.New())
		utils.AssertIsError(t, game.MoonshotEnd(), ErrIllegalOperation)
	})

	t.Run("a moonshot does not outlive the round", func(t *testing.T) {
		game := newCommonFeatureGame(t, deck.New())

		utils.AssertNoError(t, game.MoonshotStart(1))
		utils.AssertNoError(t, game.EndGame())

		utils.AssertIsError(t, game.MoonshotEnd(), ErrIllegalOperation)
		utils.AssertDeepEqual(t, game.Scores(), map[int]int{1: 0, 2: 0})
	})
}

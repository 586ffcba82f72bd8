package store

import (
	"testing"

	"github.com/minaorangina/letters"
	"github.com/minaorangina/letters/deck"
	utils "github.com/minaorangina/letters/internal"
)

func stubGame(t *testing.T) letters.Game {
	t.Helper()

	game, err := letters.NewStub(deck.New()[:12], 3, 3, 4, 2, false)
	utils.AssertNoError(t, err)
	return game
}

func TestInMemoryRoundStore(t *testing.T) {
	t.Run("a new store is empty but usable", func(t *testing.T) {
		s := NewInMemoryRoundStore()

		if s.Rounds() == nil {
			t.Error("Rounds() was nil")
		}
		utils.AssertEqual(t, len(s.Rounds()), 0)
	})

	t.Run("finds a registered round", func(t *testing.T) {
		s := NewInMemoryRoundStore()
		id := NewRoundID()

		err := s.AddRound(id, stubGame(t))
		utils.AssertNoError(t, err)

		game, err := s.FindRound(id)
		utils.AssertNoError(t, err)
		if game == nil {
			t.Error("round was nil")
		}
		utils.AssertEqual(t, len(s.Rounds()), 1)
	})

	t.Run("prevents duplicate round ids", func(t *testing.T) {
		s := NewInMemoryRoundStore()
		id := NewRoundID()

		err := s.AddRound(id, stubGame(t))
		utils.AssertNoError(t, err)

		err = s.AddRound(id, stubGame(t))
		utils.AssertErrored(t, err)
	})

	t.Run("handles a non-existent round", func(t *testing.T) {
		s := NewInMemoryRoundStore()

		_, err := s.FindRound("fake-id")
		utils.AssertIsError(t, err, ErrUnknownRoundID)
	})

	t.Run("snapshots do not alias the store", func(t *testing.T) {
		s := NewInMemoryRoundStore()
		id := NewRoundID()

		err := s.AddRound(id, stubGame(t))
		utils.AssertNoError(t, err)

		rounds := s.Rounds()
		delete(rounds, id)

		_, err = s.FindRound(id)
		utils.AssertNoError(t, err)
	})
}

func TestNewRoundID(t *testing.T) {
	a, b := NewRoundID(), NewRoundID()

	utils.AssertTrue(t, a != "")
	utils.AssertTrue(t, a != b)
}

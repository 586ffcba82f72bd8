package main

import (
	"log"
	"math/rand"
	"sort"

	"github.com/joeshaw/envdecode"
	"github.com/minaorangina/letters"
	"github.com/minaorangina/letters/deck"
	"github.com/minaorangina/letters/rules"
	"github.com/minaorangina/letters/store"
)

// config is read from the environment. Every knob has a default, so
// the sim runs out of the box.
type config struct {
	Players   int   `env:"LETTERS_PLAYERS,default=3"`
	Rounds    int   `env:"LETTERS_ROUNDS,default=5"`
	Seed      int64 `env:"LETTERS_SEED,default=1"`
	Lightning bool  `env:"LETTERS_LIGHTNING,default=false"`
	Practice  bool  `env:"LETTERS_PRACTICE,default=false"`
	MaxMisses int   `env:"LETTERS_MAX_MISSES,default=3"`
}

const maxTurns = 500

func main() {
	var cfg config
	if err := envdecode.Decode(&cfg); err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	rounds := store.NewInMemoryRoundStore()

	for i := 0; i < cfg.Rounds; i++ {
		id := store.NewRoundID()
		game, err := newRound(rng, cfg)
		if err != nil {
			log.Fatal(err)
		}
		if err := rounds.AddRound(id, game); err != nil {
			log.Fatal(err)
		}

		log.Printf("round %s: %d players, lightning=%v practice=%v", id, cfg.Players, cfg.Lightning, cfg.Practice)
		playRound(rng, game, cfg)
		log.Printf("round %s: done=%v scores=%v winners=%v", id, game.Done(), game.Scores(), winners(game))
	}
}

func newRound(rng *rand.Rand, cfg config) (letters.Game, error) {
	cards := deck.New()
	cards.Shuffle(rng)

	opts := letters.GameOpts{
		Cards:      cards,
		FitSize:    3,
		Rows:       3,
		Cols:       4,
		NumPlayers: cfg.Players,
		Lightning:  cfg.Lightning,
	}
	if cfg.Practice {
		opts.Rule = rules.CommonFeature()
	}
	return letters.NewGame(opts)
}

// playRound drives bot players until the round resolves. Bots mostly
// claim a real fit, sometimes guess wildly, and once in a while shoot
// the moon.
func playRound(rng *rand.Rand, game letters.Game, cfg config) {
	var rule rules.Rule
	if cfg.Practice {
		rule = rules.CommonFeature()
	}

	misses := map[int]int{}

	for turn := 0; turn < maxTurns && !game.Done(); turn++ {
		player := pickPlayer(rng, game)
		if player == 0 {
			log.Print("no players left standing")
			return
		}

		hint := letters.FindFit(game, rule)
		if hint == nil {
			if game.Lightning() {
				log.Print("no fit on the table, abandoning the round")
				return
			}
			if err := game.EndGame(); err != nil {
				log.Printf("could not end the round: %v", err)
			}
			return
		}

		if !game.Moonshot() && rng.Float64() < 0.02 {
			if err := game.MoonshotStart(player); err == nil {
				log.Printf("player %d shoots the moon", player)
				continue
			}
		}

		positions := hint
		if rng.Float64() < 0.2 {
			positions = wildGuess(rng, game)
		}

		fit, err := game.CallFit(player, positions)
		if err != nil {
			log.Printf("player %d: rejected claim: %v", player, err)
			continue
		}
		if fit {
			continue
		}

		misses[player]++
		if game.Lightning() && misses[player] >= cfg.MaxMisses {
			if err := game.Eliminate(player); err != nil {
				log.Printf("could not eliminate player %d: %v", player, err)
			} else {
				log.Printf("player %d is out after %d misses", player, misses[player])
			}
		}
	}

	if !game.Done() {
		if err := game.EndGame(); err != nil {
			log.Printf("round still going after %d turns: %v", maxTurns, err)
		}
	}
}

func pickPlayer(rng *rand.Rand, game letters.Game) int {
	var players []int
	for p := range game.ActivePlayers() {
		players = append(players, p)
	}
	if len(players) == 0 {
		return 0
	}
	sort.Ints(players)
	return players[rng.Intn(len(players))]
}

// wildGuess claims the right number of occupied positions with no
// regard for the cards on them.
func wildGuess(rng *rand.Rand, game letters.Game) []letters.Position {
	var occupied []letters.Position
	for pos := range game.NonEmptyPositions() {
		occupied = append(occupied, pos)
	}
	sort.Slice(occupied, func(i, j int) bool {
		if occupied[i].Row != occupied[j].Row {
			return occupied[i].Row < occupied[j].Row
		}
		return occupied[i].Col < occupied[j].Col
	})

	if len(occupied) < game.FitSize() {
		return occupied
	}

	picks := rng.Perm(len(occupied))[:game.FitSize()]
	sort.Ints(picks)
	claim := make([]letters.Position, 0, game.FitSize())
	for _, i := range picks {
		claim = append(claim, occupied[i])
	}
	return claim
}

func winners(game letters.Game) []int {
	var ws []int
	for p := range game.Outcome() {
		ws = append(ws, p)
	}
	sort.Ints(ws)
	return ws
}

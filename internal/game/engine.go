// internal/game/engine.go
//
// Turn controller for a single memory game session.
// Responsibilities:
//   - Create sessions from a preset and a word selection.
//   - Collect two guesses per turn and resolve them against the grid.
//   - Track health and the playing → won/lost transitions.
//
// State machine:
//
//	AwaitingFirstGuess → AwaitingSecondGuess → (resolve) →
//	AwaitingFirstGuess | Won | Lost
//
// Notes:
//   - A turn naming the same cell twice compares a word with itself and
//     therefore always matches.
//   - Loss is checked before win; with one word resolved per turn the two
//     cannot coincide.
package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Game holds the state of one session.
type Game struct {
	ID string

	cfg     Config
	grid    *Grid
	health  int
	phase   Phase
	pending []Coord

	turns     int
	matches   int
	misses    int
	startedAt time.Time
	endedAt   time.Time
}

// New builds a session: words are laid out on a freshly shuffled grid.
func New(cfg Config, words []string, rng *rand.Rand) (*Game, error) {
	grid, err := BuildGrid(words, rng)
	if err != nil {
		return nil, err
	}
	return NewWithGrid(cfg, grid), nil
}

// NewWithGrid starts a session on an existing grid. The grid's column
// count overrides cfg.Columns.
func NewWithGrid(cfg Config, grid *Grid) *Game {
	cfg.Columns = grid.Columns()
	if cfg.RowLabels == "" {
		cfg.RowLabels = "AB"
	}
	return &Game{
		ID:        uuid.NewString(),
		cfg:       cfg,
		grid:      grid,
		health:    cfg.Health,
		phase:     AwaitingFirstGuess,
		startedAt: time.Now().UTC(),
	}
}

// Guess records one coordinate for the current turn. The first guess of a
// turn returns a nil result; the second resolves the turn.
func (g *Game) Guess(c Coord) (*TurnResult, error) {
	if g.Finished() {
		return nil, ErrFinished
	}
	if _, err := g.grid.CellAt(c); err != nil {
		return nil, err
	}

	g.pending = append(g.pending, c)
	if g.phase == AwaitingFirstGuess {
		g.phase = AwaitingSecondGuess
		return nil, nil
	}
	return g.resolve(), nil
}

// resolve evaluates the two pending guesses and advances the phase.
func (g *Game) resolve() *TurnResult {
	a, b := g.pending[0], g.pending[1]
	g.pending = g.pending[:0]
	g.turns++

	wa, _ := g.grid.CellAt(a)
	wb, _ := g.grid.CellAt(b)
	res := &TurnResult{Guesses: [2]Coord{a, b}, Words: [2]string{wa, wb}}

	if wa == wb {
		res.Outcome = OutcomeMatch
		g.matches++
		g.grid.RevealWord(wa)
	} else {
		res.Outcome = OutcomeMiss
		g.misses++
		g.health--
	}

	switch {
	case g.health <= 0:
		g.finish(Lost)
	case g.grid.AllUncovered():
		g.finish(Won)
	default:
		g.phase = AwaitingFirstGuess
	}

	res.Health = g.health
	res.Phase = g.phase
	log.Debug().
		Str("session", g.ID).
		Str("outcome", string(res.Outcome)).
		Int("health", g.health).
		Str("phase", g.phase.String()).
		Msg("turn resolved")
	return res
}

func (g *Game) finish(p Phase) {
	g.phase = p
	g.endedAt = time.Now().UTC()
}

// Pending returns the cells guessed so far in the in-progress turn.
func (g *Game) Pending() []Coord { return append([]Coord(nil), g.pending...) }

// Health reports the remaining allowed mistakes.
func (g *Game) Health() int { return g.health }

// Phase reports the controller state.
func (g *Game) Phase() Phase { return g.phase }

// Finished reports whether the session reached a terminal state.
func (g *Game) Finished() bool { return g.phase == Won || g.phase == Lost }

// Won reports whether the session ended with every pair found.
func (g *Game) Won() bool { return g.phase == Won }

// Config returns the session configuration.
func (g *Game) Config() Config { return g.cfg }

// Grid exposes the grid for rendering.
func (g *Game) Grid() *Grid { return g.grid }

// Result summarises the session. Meaningful once Finished is true.
func (g *Game) Result() Result {
	return Result{
		ID:         g.ID,
		Difficulty: g.cfg.Difficulty,
		Won:        g.Won(),
		Turns:      g.turns,
		Matches:    g.matches,
		Misses:     g.misses,
		HealthLeft: g.health,
		StartedAt:  g.startedAt,
		FinishedAt: g.endedAt,
	}
}

// internal/console/console.go
//
// Console front end for the memory game.
// Responsibilities:
//   - Session loop: difficulty prompt, play, outcome, replay prompt.
//   - Guess input: read "<RowLetter><Column>" lines, re-prompt on bad input.
//   - Quit: "q" at a guess prompt (or end of input) stops everything at once.
//
// Notes:
//   - Word selection and grid construction happen per session; a pool that
//     cannot supply enough words is a StartupError and no session begins.
//   - Results of finished sessions go to the in-memory store and are
//     summarised when the player stops.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/robalobadob/memory/internal/game"
	"github.com/robalobadob/memory/internal/render"
	"github.com/robalobadob/memory/internal/store"
	"github.com/robalobadob/memory/internal/words"
)

const (
	promptLevel  = "Choose the level (e)asy, (h)ard? [e]"
	promptGuess  = "Your guess : "
	promptReplay = "Do you like play again y/n ? [n]"
	invalidGuess = "Invalid guess. Please provide valid guess eg. A1"
)

// ErrQuit is returned when the player asks to leave (or input ends).
var ErrQuit = errors.New("quit")

// StartupError means a session could not be built: the word pool is
// missing, unreadable or too small.
type StartupError struct {
	Op  string
	Err error
}

func (e *StartupError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *StartupError) Unwrap() error { return e.Err }

// Options wires the console to its collaborators.
type Options struct {
	In    io.Reader
	Out   io.Writer
	Pool  *words.Pool
	Rand  *rand.Rand
	Store store.Store
}

// Console runs sessions against one input and output stream.
type Console struct {
	in    *bufio.Scanner
	out   io.Writer
	pool  *words.Pool
	rng   *rand.Rand
	store store.Store
}

// New constructs a Console. Store defaults to an in-memory one and Rand
// to a clock-seeded source.
func New(opts Options) *Console {
	st := opts.Store
	if st == nil {
		st = store.NewMemoryStore()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &Console{
		in:    bufio.NewScanner(opts.In),
		out:   opts.Out,
		pool:  opts.Pool,
		rng:   rng,
		store: st,
	}
}

// Run plays sessions until the player declines a replay. It returns nil on
// a natural end, ErrQuit when the player quits, or a *StartupError.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintln(c.out, promptLevel)
		answer, err := c.readLine()
		if err != nil {
			return err
		}

		g, err := c.NewSession(game.ParseDifficulty(answer))
		if err != nil {
			return err
		}
		if err := c.Play(ctx, g); err != nil {
			return err
		}

		if err := c.store.Save(ctx, g.Result()); err != nil {
			log.Warn().Err(err).Str("session", g.ID).Msg("save result")
		}

		fmt.Fprintln(c.out, promptReplay)
		answer, err = c.readLine()
		if err != nil {
			return err
		}
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			break
		}
	}

	sum, err := c.store.Summary(ctx)
	if err != nil {
		return err
	}
	return render.Tally(c.out, sum)
}

// NewSession picks words for d and lays out a fresh grid.
func (c *Console) NewSession(d game.Difficulty) (*game.Game, error) {
	cfg := game.Preset(d)
	if c.pool == nil {
		return nil, &StartupError{Op: "select words", Err: words.ErrEmptyPool}
	}
	picked, err := c.pool.Pick(c.rng, cfg.Columns)
	if err != nil {
		return nil, &StartupError{Op: "select words", Err: err}
	}
	g, err := game.New(cfg, picked, c.rng)
	if err != nil {
		return nil, &StartupError{Op: "build grid", Err: err}
	}
	log.Info().
		Str("session", g.ID).
		Str("difficulty", string(cfg.Difficulty)).
		Int("health", cfg.Health).
		Msg("session started")
	return g, nil
}

// Play drives g until it is won or lost.
func (c *Console) Play(ctx context.Context, g *game.Game) error {
	if err := render.Board(c.out, g, nil); err != nil {
		return err
	}
	for !g.Finished() {
		if err := ctx.Err(); err != nil {
			return err
		}
		pos, err := c.askGuess(g.Config())
		if err != nil {
			return err
		}
		res, err := g.Guess(pos)
		if err != nil {
			// Guesses are parsed against the same config, so only a
			// finished game can land here.
			return err
		}
		if res == nil {
			if err := render.Board(c.out, g, g.Pending()); err != nil {
				return err
			}
			continue
		}
		if err := render.Board(c.out, g, res.Guesses[:]); err != nil {
			return err
		}
		if err := render.Board(c.out, g, nil); err != nil {
			return err
		}
		fmt.Fprintln(c.out)
	}

	r := g.Result()
	log.Info().
		Str("session", r.ID).
		Bool("won", r.Won).
		Int("turns", r.Turns).
		Int("health", r.HealthLeft).
		Msg("session finished")
	return render.Outcome(c.out, r.Won)
}

// askGuess prompts until a valid coordinate or the quit command arrives.
func (c *Console) askGuess(cfg game.Config) (game.Coord, error) {
	for {
		fmt.Fprint(c.out, promptGuess)
		line, err := c.readLine()
		if err != nil {
			return game.Coord{}, err
		}
		if game.IsQuit(line) {
			return game.Coord{}, ErrQuit
		}
		fmt.Fprintln(c.out)
		pos, err := game.ParseCoord(line, cfg)
		if err == nil {
			return pos, nil
		}
		log.Debug().Err(err).Str("input", line).Msg("rejected guess")
		fmt.Fprintln(c.out, invalidGuess)
	}
}

// readLine returns the next input line. End of input counts as quitting.
func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", ErrQuit
	}
	return c.in.Text(), nil
}

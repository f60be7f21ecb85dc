package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/robalobadob/memory/internal/console"
	"github.com/robalobadob/memory/internal/daily"
	"github.com/robalobadob/memory/internal/store"
	"github.com/robalobadob/memory/internal/words"
)

func main() {
	_ = godotenv.Load()
	setupLogging()

	pool, err := words.Load(getEnv("MEMORY_WORDS_FILE", ""))
	if err != nil {
		fail(&console.StartupError{Op: "load word pool", Err: err})
	}
	log.Info().Int("words", pool.Len()).Msg("word pool loaded")

	c := console.New(console.Options{
		In:    os.Stdin,
		Out:   os.Stdout,
		Pool:  pool,
		Rand:  rand.New(rand.NewSource(seed())),
		Store: store.NewMemoryStore(),
	})

	err = c.Run(context.Background())
	switch {
	case err == nil, errors.Is(err, console.ErrQuit):
		os.Exit(0)
	default:
		fail(err)
	}
}

// setupLogging sends human-readable logs to stderr so they never mix with
// the board on stdout.
func setupLogging() {
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        colorable.NewColorableStderr(),
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()),
		TimeFormat: time.Kitchen,
	})
}

// seed picks the RNG seed: MEMORY_SEED, then the daily seed, then the clock.
func seed() uint64 {
	if s := getEnv("MEMORY_SEED", ""); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			return v
		}
		log.Warn().Str("MEMORY_SEED", s).Msg("ignoring invalid seed")
	}
	if on, _ := strconv.ParseBool(getEnv("MEMORY_DAILY", "false")); on {
		now := time.Now()
		log.Info().Str("date", daily.DateKey(now)).Msg("daily board")
		return daily.Seed(now, getEnv("MEMORY_DAILY_SALT", "memory"))
	}
	return uint64(time.Now().UnixNano())
}

func fail(err error) {
	log.Error().Err(err).Msg("cannot start game")
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

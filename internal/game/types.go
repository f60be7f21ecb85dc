// internal/game/types.go
//
// Core type definitions for the memory game engine.
// Defines:
//   - Coord: one grid cell.
//   - Difficulty and Config: per-session presets (health, columns, row labels).
//   - Phase and Outcome: turn state machine values.
//   - TurnResult and Result: what a resolved turn / finished session looks like.

package game

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidGuess covers any guess that cannot be turned into a coordinate.
	ErrInvalidGuess = errors.New("invalid guess")
	// ErrOutOfRange is an invalid guess whose row or column is outside the grid.
	ErrOutOfRange = fmt.Errorf("%w: coordinate out of range", ErrInvalidGuess)
	// ErrFinished is returned when guessing on a game that already ended.
	ErrFinished = errors.New("game finished")
)

// Coord identifies one grid cell. Row and Col are zero-based.
type Coord struct {
	Row int
	Col int
}

// Difficulty selects one of the fixed presets.
type Difficulty string

const (
	Easy Difficulty = "easy"
	Hard Difficulty = "hard"
)

// Rows is fixed: every word appears once per row.
const Rows = 2

// Config is built once per session and threaded through every component.
type Config struct {
	Difficulty Difficulty
	Label      string // shown in the board header
	Columns    int    // words per row, i.e. distinct words in play
	RowLabels  string // one letter per row, e.g. "AB"
	Health     int    // allowed mistakes
}

// Preset returns the configuration for d. Unknown values fall back to easy.
func Preset(d Difficulty) Config {
	if d == Hard {
		return Config{Difficulty: Hard, Label: "Hard", Columns: 8, RowLabels: "AB", Health: 15}
	}
	return Config{Difficulty: Easy, Label: "Easy", Columns: 4, RowLabels: "AB", Health: 10}
}

// ParseDifficulty maps the level prompt answer to a Difficulty.
// "h" or "hard" (any case) selects hard; anything else is easy.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "hard":
		return Hard
	default:
		return Easy
	}
}

// Phase is the turn controller state.
type Phase int

const (
	AwaitingFirstGuess Phase = iota
	AwaitingSecondGuess
	Won
	Lost
)

func (p Phase) String() string {
	switch p {
	case AwaitingFirstGuess:
		return "awaiting_first_guess"
	case AwaitingSecondGuess:
		return "awaiting_second_guess"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Outcome is the evaluation of one resolved turn.
type Outcome string

const (
	OutcomeMatch Outcome = "match"
	OutcomeMiss  Outcome = "miss"
)

// TurnResult describes a resolved turn.
type TurnResult struct {
	Guesses [2]Coord
	Words   [2]string
	Outcome Outcome
	Health  int   // health after resolution
	Phase   Phase // phase after resolution
}

// Result summarises a session once it has finished.
type Result struct {
	ID         string
	Difficulty Difficulty
	Won        bool
	Turns      int
	Matches    int
	Misses     int
	HealthLeft int
	StartedAt  time.Time
	FinishedAt time.Time
}

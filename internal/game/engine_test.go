package game

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"
)

func catDog(t *testing.T, health int) *Game {
	t.Helper()
	grid, err := GridFromRows([]string{"CAT", "DOG"}, []string{"DOG", "CAT"})
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	cfg := Preset(Easy)
	cfg.Health = health
	return NewWithGrid(cfg, grid)
}

func playTurn(t *testing.T, g *Game, a, b Coord) *TurnResult {
	t.Helper()
	res, err := g.Guess(a)
	if err != nil || res != nil {
		t.Fatalf("first guess: res=%v err=%v", res, err)
	}
	if g.Phase() != AwaitingSecondGuess {
		t.Fatalf("expected awaiting second guess, got %v", g.Phase())
	}
	res, err = g.Guess(b)
	if err != nil {
		t.Fatalf("second guess: %v", err)
	}
	return res
}

func TestTurn_CatDogLayout(t *testing.T) {
	g := catDog(t, 10)

	res := playTurn(t, g, Coord{0, 0}, Coord{1, 1})
	if res.Outcome != OutcomeMatch || res.Words != [2]string{"CAT", "CAT"} {
		t.Fatalf("expected CAT match, got %+v", res)
	}
	if g.Health() != 10 {
		t.Fatalf("match must not cost health, got %d", g.Health())
	}
	if !g.Grid().IsUncovered("CAT") || len(g.Grid().Uncovered()) != 1 {
		t.Fatalf("expected only CAT uncovered, got %v", g.Grid().Uncovered())
	}

	res = playTurn(t, g, Coord{0, 1}, Coord{1, 0})
	if res.Outcome != OutcomeMatch {
		// (0,1) and (1,0) are both DOG on this layout.
		t.Fatalf("expected DOG match, got %+v", res)
	}
	if !g.Won() || !g.Finished() {
		t.Fatalf("expected win once every word is uncovered, phase %v", g.Phase())
	}
}

func TestTurn_MissCostsOneHealth(t *testing.T) {
	g := catDog(t, 10)
	playTurn(t, g, Coord{0, 0}, Coord{1, 1})

	res := playTurn(t, g, Coord{0, 0}, Coord{0, 1})
	if res.Outcome != OutcomeMiss || res.Words != [2]string{"CAT", "DOG"} {
		t.Fatalf("expected miss, got %+v", res)
	}
	if g.Health() != 9 || res.Health != 9 {
		t.Fatalf("expected health 9, got %d", g.Health())
	}
	if len(g.Grid().Uncovered()) != 1 {
		t.Fatalf("miss must not uncover words, got %v", g.Grid().Uncovered())
	}
	if g.Phase() != AwaitingFirstGuess {
		t.Fatalf("expected next turn, got %v", g.Phase())
	}
}

func TestTurn_SameCellTwiceMatches(t *testing.T) {
	g := catDog(t, 10)
	res := playTurn(t, g, Coord{1, 0}, Coord{1, 0})
	if res.Outcome != OutcomeMatch {
		t.Fatalf("expected identical coordinates to match, got %+v", res)
	}
	if !g.Grid().IsUncovered("DOG") || g.Health() != 10 {
		t.Fatalf("expected DOG uncovered at full health")
	}
}

func TestTurn_SingleMissAtHealthOneLoses(t *testing.T) {
	g := catDog(t, 1)
	res := playTurn(t, g, Coord{0, 0}, Coord{1, 0})
	if res.Outcome != OutcomeMiss || res.Phase != Lost {
		t.Fatalf("expected loss, got %+v", res)
	}
	if !g.Finished() || g.Won() {
		t.Fatalf("expected finished loss")
	}
	if _, err := g.Guess(Coord{0, 0}); !errors.Is(err, ErrFinished) {
		t.Fatalf("expected ErrFinished, got %v", err)
	}
}

func TestTurn_LossCheckedBeforeWin(t *testing.T) {
	g := catDog(t, 1)
	playTurn(t, g, Coord{0, 0}, Coord{1, 1})
	res := playTurn(t, g, Coord{0, 1}, Coord{1, 1})
	if res.Phase != Lost {
		t.Fatalf("expected loss, got %v", res.Phase)
	}
	r := g.Result()
	if r.Won || r.Turns != 2 || r.Matches != 1 || r.Misses != 1 || r.HealthLeft != 0 {
		t.Fatalf("unexpected result %+v", r)
	}
}

func TestGuess_OutOfRangeLeavesStateAlone(t *testing.T) {
	g := catDog(t, 10)
	if _, err := g.Guess(Coord{0, 5}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if g.Phase() != AwaitingFirstGuess || len(g.Pending()) != 0 {
		t.Fatalf("state changed on invalid guess")
	}
	if _, err := g.Guess(Coord{0, 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p := g.Pending(); len(p) != 1 || p[0] != (Coord{0, 0}) {
		t.Fatalf("expected pending A1, got %v", p)
	}
}

func TestNew_FromPreset(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	g, err := New(Preset(Hard), words, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Health() != 15 || g.Grid().Columns() != 8 || g.Config().Label != "Hard" {
		t.Fatalf("unexpected hard session: health=%d cols=%d", g.Health(), g.Grid().Columns())
	}
	if g.ID == "" {
		t.Fatalf("expected session id")
	}
}

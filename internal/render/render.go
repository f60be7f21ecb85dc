// internal/render/render.go
//
// Text rendering of a memory game session.
//
// Layout:
//   Level: Easy
//   Chance: 10
//
//      1      2      3      4
//   A  x     CAT     x      x
//   B  x      x      x     CAT
//
// Every cell is centred in a column two wider than the widest word on the
// grid. Widths are measured in terminal cells, not bytes.

package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/robalobadob/memory/internal/game"
	"github.com/robalobadob/memory/internal/store"
)

// Hidden is printed in place of a concealed word.
const Hidden = "x"

// Board writes the grid. A cell shows its word when the word is uncovered
// or the cell is listed in revealed (the guesses of the current turn).
func Board(w io.Writer, g *game.Game, revealed []game.Coord) error {
	cfg := g.Config()
	grid := g.Grid()
	width := grid.MaxWordWidth() + 2

	var b strings.Builder
	fmt.Fprintf(&b, "Level: %s\n", cfg.Label)
	fmt.Fprintf(&b, "Chance: %d\n\n", g.Health())

	b.WriteString(" ")
	for c := 0; c < grid.Columns(); c++ {
		b.WriteString(center(strconv.Itoa(c+1), width))
	}
	b.WriteString("\n")

	labels := []rune(cfg.RowLabels)
	for r := 0; r < grid.Rows(); r++ {
		if r < len(labels) {
			b.WriteRune(labels[r])
		} else {
			b.WriteString(" ")
		}
		for c := 0; c < grid.Columns(); c++ {
			pos := game.Coord{Row: r, Col: c}
			word, _ := grid.CellAt(pos)
			if grid.IsUncovered(word) || contains(revealed, pos) {
				b.WriteString(center(word, width))
			} else {
				b.WriteString(center(Hidden, width))
			}
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Outcome writes the end-of-session line.
func Outcome(w io.Writer, won bool) error {
	msg := "You lose!\n"
	if won {
		msg = "Congratulation! You win\n"
	}
	_, err := io.WriteString(w, msg)
	return err
}

// Tally writes the per-process session summary.
func Tally(w io.Writer, s store.Summary) error {
	if s.Played == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "Games: %d  Wins: %d  Losses: %d  Best streak: %d\n",
		s.Played, s.Wins, s.Losses, s.BestStreak)
	return err
}

// center pads text to width, putting the odd space on the left.
func center(text string, width int) string {
	diff := width - runewidth.StringWidth(text)
	if diff <= 0 {
		return text
	}
	left := diff/2 + diff%2
	right := diff / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

func contains(list []game.Coord, c game.Coord) bool {
	for _, x := range list {
		if x == c {
			return true
		}
	}
	return false
}

// internal/game/grid.go
//
// Grid engine: the hidden two-row word layout plus the set of words that
// have been permanently uncovered.
//
// Words, not coordinates, are the unit of reveal: once a pair is matched
// both cells holding that word stay visible for the rest of the session.

package game

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mattn/go-runewidth"
	"golang.org/x/exp/rand"
)

// Grid owns the layout and the uncovered set of one session.
type Grid struct {
	cells     [Rows][]string
	words     []string
	inPlay    map[string]struct{}
	uncovered map[string]struct{}
}

// BuildGrid lays out words as two independent random permutations, one per row.
func BuildGrid(words []string, rng *rand.Rand) (*Grid, error) {
	if err := checkWords(words); err != nil {
		return nil, err
	}
	g := newGrid(words)
	for r := 0; r < Rows; r++ {
		row := append([]string(nil), words...)
		rng.Shuffle(len(row), func(i, j int) { row[i], row[j] = row[j], row[i] })
		g.cells[r] = row
	}
	return g, nil
}

// GridFromRows builds a grid with a fixed layout. Both rows must be
// permutations of the same duplicate-free word set.
func GridFromRows(top, bottom []string) (*Grid, error) {
	if err := checkWords(top); err != nil {
		return nil, err
	}
	if len(top) != len(bottom) {
		return nil, fmt.Errorf("grid: rows differ in length (%d vs %d)", len(top), len(bottom))
	}
	want := toSet(top)
	seen := make(map[string]struct{}, len(bottom))
	for _, w := range bottom {
		if _, ok := want[w]; !ok {
			return nil, fmt.Errorf("grid: word %q missing from first row", w)
		}
		if _, dup := seen[w]; dup {
			return nil, fmt.Errorf("grid: word %q repeated in second row", w)
		}
		seen[w] = struct{}{}
	}
	g := newGrid(top)
	g.cells[0] = append([]string(nil), top...)
	g.cells[1] = append([]string(nil), bottom...)
	return g, nil
}

func newGrid(words []string) *Grid {
	return &Grid{
		words:     append([]string(nil), words...),
		inPlay:    toSet(words),
		uncovered: make(map[string]struct{}, len(words)),
	}
}

func checkWords(words []string) error {
	if len(words) == 0 {
		return errors.New("grid: no words")
	}
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup {
			return fmt.Errorf("grid: duplicate word %q", w)
		}
		seen[w] = struct{}{}
	}
	return nil
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// Rows reports the number of rows (always 2).
func (g *Grid) Rows() int { return Rows }

// Columns reports the number of cells per row.
func (g *Grid) Columns() int { return len(g.words) }

// Words returns the distinct words in play, in selection order.
func (g *Grid) Words() []string { return append([]string(nil), g.words...) }

// InBounds reports whether c addresses a cell of the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < len(g.words)
}

// CellAt returns the word stored at c.
func (g *Grid) CellAt(c Coord) (string, error) {
	if !g.InBounds(c) {
		return "", fmt.Errorf("%w: row %d col %d", ErrOutOfRange, c.Row, c.Col)
	}
	return g.cells[c.Row][c.Col], nil
}

// IsUncovered reports whether word has been matched.
func (g *Grid) IsUncovered(word string) bool {
	_, ok := g.uncovered[word]
	return ok
}

// RevealWord marks word as uncovered. Calling it again, or with a word
// that is not on the grid, is a no-op.
func (g *Grid) RevealWord(word string) {
	if _, ok := g.inPlay[word]; !ok {
		return
	}
	g.uncovered[word] = struct{}{}
}

// Uncovered returns the uncovered words, sorted.
func (g *Grid) Uncovered() []string {
	out := make([]string, 0, len(g.uncovered))
	for w := range g.uncovered {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// AllUncovered reports whether every distinct word has been matched.
func (g *Grid) AllUncovered() bool {
	return len(g.uncovered) == len(g.words)
}

// MaxWordWidth is the widest word in terminal columns.
func (g *Grid) MaxWordWidth() int {
	max := 0
	for _, w := range g.words {
		if n := runewidth.StringWidth(w); n > max {
			max = n
		}
	}
	return max
}

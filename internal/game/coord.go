package game

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCoord turns player input such as "A1" or "b4" into a Coord.
// The row letter must be one of cfg.RowLabels and the column 1..cfg.Columns.
func ParseCoord(input string, cfg Config) (Coord, error) {
	s := strings.ToUpper(strings.TrimSpace(input))
	if len(s) < 2 {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidGuess, input)
	}
	row := strings.IndexByte(strings.ToUpper(cfg.RowLabels), s[0])
	if row < 0 {
		return Coord{}, fmt.Errorf("%w: unknown row in %q", ErrInvalidGuess, input)
	}
	if row >= Rows {
		return Coord{}, fmt.Errorf("%w: row %c", ErrOutOfRange, s[0])
	}
	col, err := strconv.Atoi(s[1:])
	if err != nil || strings.HasPrefix(s[1:], "+") || strings.HasPrefix(s[1:], "-") {
		return Coord{}, fmt.Errorf("%w: bad column in %q", ErrInvalidGuess, input)
	}
	if col < 1 || col > cfg.Columns {
		return Coord{}, fmt.Errorf("%w: column %d", ErrOutOfRange, col)
	}
	return Coord{Row: row, Col: col - 1}, nil
}

// String renders c in the same form ParseCoord accepts.
func (c Coord) String() string {
	return fmt.Sprintf("%c%d", 'A'+rune(c.Row), c.Col+1)
}

// IsQuit reports whether input is the quit command.
func IsQuit(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "q")
}

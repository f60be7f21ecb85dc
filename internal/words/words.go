// internal/words/words.go
//
// Word pool management for the memory game.
//
// Responsibilities:
//   - Load the candidate pool from a file or fall back to the embedded list.
//   - Normalize entries (trim, skip blanks and '#' comments) and drop
//     duplicates case-insensitively, keeping the first spelling seen.
//   - Pick a random subset of distinct words for one session.
//
// Environment:
//   MEMORY_WORDS_FILE=/path/to/words.txt is resolved by main and passed to Load.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/robalobadob/memory/assets"
)

var (
	// ErrEmptyPool is returned when a source yields no usable words.
	ErrEmptyPool = errors.New("words: pool is empty")
	// ErrInsufficientWords is returned when more words are requested than the pool holds.
	ErrInsufficientWords = errors.New("words: not enough words in pool")
)

// Pool is a deduplicated, read-only collection of candidate words.
type Pool struct {
	words []string
}

// NewPool normalizes list into a Pool. Order of first occurrence is kept.
func NewPool(list []string) *Pool {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, line := range list {
		w := strings.TrimSpace(line)
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		key := strings.ToLower(w)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, w)
	}
	return &Pool{words: out}
}

// Load reads the pool from path, or from the embedded default list when
// path is empty.
func Load(path string) (*Pool, error) {
	var (
		list []string
		err  error
	)
	if path == "" {
		list, err = assets.WordList()
		if err != nil {
			return nil, fmt.Errorf("words: embedded list: %w", err)
		}
	} else {
		list, err = readWordFile(path)
		if err != nil {
			return nil, fmt.Errorf("words: read %s: %w", path, err)
		}
	}

	p := NewPool(list)
	if p.Len() == 0 {
		return nil, ErrEmptyPool
	}
	return p, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// Len reports the number of distinct words in the pool.
func (p *Pool) Len() int { return len(p.words) }

// Words returns a copy of the pool contents.
func (p *Pool) Words() []string {
	return append([]string(nil), p.words...)
}

// Pick returns n distinct words chosen uniformly at random without
// replacement. The pool itself is left untouched.
func (p *Pool) Pick(rng *rand.Rand, n int) ([]string, error) {
	if n <= 0 {
		return nil, fmt.Errorf("words: invalid count %d", n)
	}
	if n > len(p.words) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficientWords, n, len(p.words))
	}
	idx := rng.Perm(len(p.words))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = p.words[idx[i]]
	}
	return out, nil
}

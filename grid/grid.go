// Package grid holds the letter matrix that words are searched for in, and
// the eight compass directions a word can be read in.
package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/unicode/norm"
)

// maximum length of a single input line.
const maxLineLength = 1 << 20

// A Coord is a 0-indexed (row, column) location in a Grid.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// A Grid is an immutable row-major matrix of letters. Rows are expected to
// be the same length, but every lookup respects the length of the row it
// touches.
type Grid struct {
	cells [][]rune
}

// New builds a grid from a copy of rows.
func New(rows [][]rune) *Grid {
	cells := make([][]rune, len(rows))
	for i, r := range rows {
		cells[i] = make([]rune, len(r))
		copy(cells[i], r)
	}
	return &Grid{cells: cells}
}

// FromLines builds a grid with one row per line and one cell per code point.
func FromLines(lines []string) *Grid {
	cells := make([][]rune, len(lines))
	for i, l := range lines {
		cells[i] = []rune(l)
	}
	return &Grid{cells: cells}
}

type readOptions struct {
	normalize bool
}

// A ReadOption changes how FromReader turns lines into rows.
type ReadOption func(*readOptions)

// WithNormalization controls whether each line is put into Unicode NFC
// before being split into cells, so that a letter and its combining accent
// occupy a single cell. It is on by default.
func WithNormalization(on bool) ReadOption {
	return func(o *readOptions) {
		o.normalize = on
	}
}

// NormalizeWord puts word into Unicode NFC when on is set, so that it
// matches a grid read with normalization.
func NormalizeWord(word string, on bool) string {
	if !on {
		return word
	}
	return norm.NFC.String(word)
}

// FromReader reads a grid, one row per line. A trailing carriage return is
// dropped from each line.
func FromReader(r io.Reader, opts ...ReadOption) (*Grid, error) {
	o := &readOptions{normalize: true}
	for _, opt := range opts {
		opt(o)
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		line = NormalizeWord(line, o.normalize)
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading grid: %w", err)
	}
	return FromLines(lines), nil
}

// NumRows returns the number of rows.
func (g *Grid) NumRows() int {
	return len(g.cells)
}

// NumCols returns the length of the given row, or 0 if there is no such row.
func (g *Grid) NumCols(row int) int {
	if row < 0 || row >= len(g.cells) {
		return 0
	}
	return len(g.cells[row])
}

func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < len(g.cells) && c.Col >= 0 && c.Col < len(g.cells[c.Row])
}

// At returns the letter at c. c must be in bounds.
func (g *Grid) At(c Coord) rune {
	return g.cells[c.Row][c.Col]
}

// Row returns a copy of a row.
func (g *Grid) Row(row int) []rune {
	r := make([]rune, len(g.cells[row]))
	copy(r, g.cells[row])
	return r
}

// Fingerprint is a hash of the grid contents, suitable for cache keys.
func (g *Grid) Fingerprint() uint64 {
	d := xxhash.New()
	for _, r := range g.cells {
		d.WriteString(string(r))
		d.WriteString("\n")
	}
	return d.Sum64()
}

func (g *Grid) String() string {
	var sb strings.Builder
	for i, r := range g.cells {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(string(r))
	}
	return sb.String()
}

// DisplayString renders the grid with row and column indices, the way the
// shell shows it.
func (g *Grid) DisplayString() string {
	var sb strings.Builder
	maxCols := 0
	for _, r := range g.cells {
		maxCols = max(maxCols, len(r))
	}
	sb.WriteString("    ")
	for c := 0; c < maxCols; c++ {
		fmt.Fprintf(&sb, "%d", c%10)
	}
	sb.WriteString("\n")
	for i, r := range g.cells {
		fmt.Fprintf(&sb, "%3d %s\n", i, string(r))
	}
	return sb.String()
}

// Package puzzles generates random word-search puzzles and loads saved ones.
package puzzles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/wordsearch/config"
	"github.com/domino14/wordsearch/grid"
	"github.com/domino14/wordsearch/search"
)

const (
	// DefaultAlphabet fills cells that no planted word covers.
	DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	maxPlacementAttempts = 1000
)

var errBadDimensions = errors.New("puzzle dimensions must be positive")

// Generate builds a rows x cols puzzle with each of words planted once in
// a random direction, and every other cell filled with a random letter of
// alphabet. Planted words may share letters where they cross. It returns
// the grid and where each word was planted, in the order given.
func Generate(rows, cols int, words []string, alphabet string) (*grid.Grid, []search.Hit, error) {
	if rows <= 0 || cols <= 0 {
		return nil, nil, errBadDimensions
	}
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = make([]rune, cols)
	}
	// Only the shape matters for walking; letters are filled in below.
	shape := grid.New(cells)

	placed := make([]search.Hit, 0, len(words))
	for _, word := range words {
		h, err := place(shape, cells, []rune(word))
		if err != nil {
			return nil, nil, err
		}
		placed = append(placed, h)
	}

	fill := []rune(alphabet)
	for r := range cells {
		for c := range cells[r] {
			if cells[r][c] == 0 {
				cells[r][c] = fill[frand.Intn(len(fill))]
			}
		}
	}
	log.Debug().Int("rows", rows).Int("cols", cols).Int("words", len(words)).
		Msg("generated-puzzle")
	return grid.New(cells), placed, nil
}

func place(shape *grid.Grid, cells [][]rune, word []rune) (search.Hit, error) {
	if len(word) == 0 {
		return search.Hit{}, errors.New("cannot plant an empty word")
	}
	dirs := grid.AllDirections()
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		start := grid.Coord{Row: frand.Intn(len(cells)), Col: frand.Intn(len(cells[0]))}
		d := dirs[frand.Intn(len(dirs))]
		path, ok := d.Walk(shape, start, len(word))
		if !ok || !fits(cells, path, word) {
			continue
		}
		for i, c := range path {
			cells[c.Row][c.Col] = word[i]
		}
		return search.Hit{Start: start, Direction: d, Len: len(word)}, nil
	}
	return search.Hit{}, fmt.Errorf("could not place %q after %d attempts",
		string(word), maxPlacementAttempts)
}

func fits(cells [][]rune, path []grid.Coord, word []rune) bool {
	for i, c := range path {
		if l := cells[c.Row][c.Col]; l != 0 && l != word[i] {
			return false
		}
	}
	return true
}

// Load reads a saved puzzle. A relative name is looked up in the
// configured puzzle directory.
func Load(cfg *config.Config, name string) (*grid.Grid, error) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.GetString(config.ConfigPuzzlePath), name)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := grid.FromReader(f, grid.WithNormalization(cfg.GetBool(config.ConfigNormalize)))
	if err != nil {
		return nil, fmt.Errorf("loading puzzle %v: %w", path, err)
	}
	log.Debug().Str("path", path).Int("rows", g.NumRows()).Msg("loaded-puzzle")
	return g, nil
}

// Save writes g to path, one row per line.
func Save(g *grid.Grid, path string) error {
	return os.WriteFile(path, []byte(g.String()+"\n"), 0o644)
}

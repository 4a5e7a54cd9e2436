package puzzles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordsearch/config"
	"github.com/domino14/wordsearch/grid"
	"github.com/domino14/wordsearch/search"
)

func TestGeneratePlantsWords(t *testing.T) {
	is := is.New(t)
	words := []string{"XMAS", "MAS", "WORD", "SEARCH"}
	for i := 0; i < 20; i++ {
		g, placed, err := Generate(8, 8, words, "")
		is.NoErr(err)
		is.Equal(g.NumRows(), 8)
		is.Equal(g.NumCols(7), 8)
		is.Equal(len(placed), len(words))
		for j, w := range words {
			is.True(search.Search(g, w).Contains(placed[j]))
		}
	}
}

func TestGenerateFillAlphabet(t *testing.T) {
	is := is.New(t)
	g, _, err := Generate(4, 4, nil, "Q")
	is.NoErr(err)
	is.Equal(search.Search(g, "Q").Len(), 16*grid.NumDirections)
}

func TestGenerateErrors(t *testing.T) {
	is := is.New(t)
	_, _, err := Generate(0, 5, nil, "")
	is.Equal(err, errBadDimensions)

	_, _, err = Generate(3, 3, []string{"TOOLONG"}, "")
	is.True(err != nil)

	_, _, err = Generate(3, 3, []string{""}, "")
	is.True(err != nil)
}

func TestSaveAndLoad(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigPuzzlePath, dir)

	g := grid.FromLines([]string{"XMAS", "MXAM"})
	is.NoErr(Save(g, filepath.Join(dir, "small.txt")))

	loaded, err := Load(cfg, "small.txt")
	is.NoErr(err)
	is.Equal(loaded.String(), g.String())

	loaded, err = Load(cfg, filepath.Join(dir, "small.txt"))
	is.NoErr(err)
	is.Equal(loaded.Fingerprint(), g.Fingerprint())

	_, err = Load(cfg, "missing.txt")
	is.True(os.IsNotExist(err))
}

package grid

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordsearch/testhelpers"
)

func TestNeighborCorners(t *testing.T) {
	is := is.New(t)
	g := FromLines(testhelpers.SmallGrid)

	type tc struct {
		dir  Direction
		from Coord
		to   Coord
		ok   bool
	}
	cases := []tc{
		{North, Coord{0, 0}, Coord{}, false},
		{West, Coord{0, 0}, Coord{}, false},
		{Northwest, Coord{0, 0}, Coord{}, false},
		{Northeast, Coord{0, 0}, Coord{}, false},
		{Southwest, Coord{0, 0}, Coord{}, false},
		{South, Coord{0, 0}, Coord{1, 0}, true},
		{East, Coord{0, 0}, Coord{0, 1}, true},
		{Southeast, Coord{0, 0}, Coord{1, 1}, true},
		{South, Coord{3, 3}, Coord{}, false},
		{East, Coord{3, 3}, Coord{}, false},
		{Southeast, Coord{3, 3}, Coord{}, false},
		{Northwest, Coord{3, 3}, Coord{2, 2}, true},
		{Northeast, Coord{3, 0}, Coord{2, 1}, true},
		{Southwest, Coord{0, 3}, Coord{1, 2}, true},
		{Northeast, Coord{0, 3}, Coord{}, false},
		{Southwest, Coord{3, 0}, Coord{}, false},
	}
	for _, c := range cases {
		n, ok := c.dir.Neighbor(g, c.from)
		is.Equal(ok, c.ok)
		if ok {
			is.Equal(n, c.to)
		}
	}
}

func TestNeighborNeverLeavesGrid(t *testing.T) {
	is := is.New(t)
	g := FromLines(testhelpers.SmallGrid)
	for r := 0; r < g.NumRows(); r++ {
		for c := 0; c < g.NumCols(r); c++ {
			for _, d := range AllDirections() {
				n, ok := d.Neighbor(g, Coord{r, c})
				if ok {
					is.True(g.InBounds(n))
				}
			}
		}
	}
}

func TestNeighborRaggedRows(t *testing.T) {
	is := is.New(t)
	g := FromLines([]string{"ABCD", "EF", "GHIJ"})

	_, ok := Southeast.Neighbor(g, Coord{0, 2})
	is.True(!ok) // row 1 has no column 3
	_, ok = East.Neighbor(g, Coord{1, 1})
	is.True(!ok)
	n, ok := South.Neighbor(g, Coord{0, 1})
	is.True(ok)
	is.Equal(n, Coord{1, 1})
	_, ok = North.Neighbor(g, Coord{5, 0})
	is.True(!ok) // out-of-grid start
}

func TestWalk(t *testing.T) {
	is := is.New(t)
	g := FromLines(testhelpers.SmallGrid)

	cells, ok := Southeast.Walk(g, Coord{0, 0}, 4)
	is.True(ok)
	is.Equal(cells, []Coord{{0, 0}, {1, 1}, {2, 2}, {3, 3}})

	_, ok = Southeast.Walk(g, Coord{1, 1}, 4)
	is.True(!ok)

	cells, ok = West.Walk(g, Coord{2, 2}, 1)
	is.True(ok)
	is.Equal(cells, []Coord{{2, 2}})
}

func TestDirections(t *testing.T) {
	is := is.New(t)
	is.Equal(len(AllDirections()), NumDirections)
	diag := 0
	for _, d := range AllDirections() {
		dr, dc := d.Delta()
		is.True(dr != 0 || dc != 0)
		if d.IsDiagonal() {
			diag++
			is.True(dr != 0 && dc != 0)
		}
		p, err := ParseDirection(d.String())
		is.NoErr(err)
		is.Equal(p, d)
	}
	is.Equal(diag, 4)

	d, err := ParseDirection("NE")
	is.NoErr(err)
	is.Equal(d, Northeast)
	d, err = ParseDirection("w")
	is.NoErr(err)
	is.Equal(d, West)
	_, err = ParseDirection("up")
	is.True(err != nil)
}

func TestFromReader(t *testing.T) {
	is := is.New(t)
	g, err := FromReader(strings.NewReader("XMAS\r\nMXAM\n"))
	is.NoErr(err)
	is.Equal(g.NumRows(), 2)
	is.Equal(g.NumCols(0), 4)
	is.Equal(g.At(Coord{1, 3}), 'M')
	is.Equal(g.String(), "XMAS\nMXAM")
}

func TestFromReaderNormalizes(t *testing.T) {
	is := is.New(t)
	// "E" followed by a combining acute accent.
	decomposed := "CAFE\u0301"

	g, err := FromReader(strings.NewReader(decomposed))
	is.NoErr(err)
	is.Equal(g.NumCols(0), 4)
	is.Equal(g.At(Coord{0, 3}), '\u00c9')

	g, err = FromReader(strings.NewReader(decomposed), WithNormalization(false))
	is.NoErr(err)
	is.Equal(g.NumCols(0), 5)
}

func TestNewCopiesInput(t *testing.T) {
	is := is.New(t)
	rows := [][]rune{[]rune("AB"), []rune("CD")}
	g := New(rows)
	rows[0][0] = 'Z'
	is.Equal(g.At(Coord{0, 0}), 'A')

	r := g.Row(1)
	r[0] = 'Z'
	is.Equal(g.At(Coord{1, 0}), 'C')
}

func TestFingerprint(t *testing.T) {
	is := is.New(t)
	a := FromLines(testhelpers.SmallGrid)
	b := FromLines(testhelpers.SmallGrid)
	c := FromLines([]string{"XMA", "SMXAM"})
	is.Equal(a.Fingerprint(), b.Fingerprint())
	is.True(a.Fingerprint() != c.Fingerprint())
}

package grid

import (
	"fmt"
	"strings"
)

// Direction is the compass direction a word is read in, from its first
// letter to its last.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	Northeast
	Northwest
	Southeast
	Southwest
)

// NumDirections is the number of compass directions a word can run in.
const NumDirections = 8

var directionNames = [NumDirections]string{
	"north", "south", "east", "west",
	"northeast", "northwest", "southeast", "southwest",
}

// row and column deltas, indexed by Direction.
var deltas = [NumDirections][2]int{
	{-1, 0}, {1, 0}, {0, 1}, {0, -1},
	{-1, 1}, {-1, -1}, {1, 1}, {1, -1},
}

// AllDirections returns every direction in declaration order.
func AllDirections() []Direction {
	return []Direction{North, South, East, West,
		Northeast, Northwest, Southeast, Southwest}
}

func (d Direction) String() string {
	if int(d) < NumDirections {
		return directionNames[d]
	}
	return "none"
}

// ParseDirection accepts a full direction name ("northeast") or its
// abbreviation ("ne"), case-insensitively.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range directionNames {
		if s == n || s == abbreviate(n) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func abbreviate(name string) string {
	if strings.HasPrefix(name, "north") && len(name) > 5 {
		return "n" + name[5:6]
	}
	if strings.HasPrefix(name, "south") && len(name) > 5 {
		return "s" + name[5:6]
	}
	return name[:1]
}

// Delta returns the row and column offset of a single step.
func (d Direction) Delta() (int, int) {
	return deltas[d][0], deltas[d][1]
}

// IsDiagonal is true for the four directions that change both row and column.
func (d Direction) IsDiagonal() bool {
	return d == Northeast || d == Northwest || d == Southeast || d == Southwest
}

// Neighbor returns the cell one step away from c in this direction. The
// second return value is false if that step would leave the grid. Each
// boundary is checked before the offset is applied, so a coordinate never
// goes below zero.
func (d Direction) Neighbor(g *Grid, c Coord) (Coord, bool) {
	if !g.InBounds(c) {
		return Coord{}, false
	}
	dr, dc := d.Delta()
	switch dr {
	case -1:
		if c.Row == 0 {
			return Coord{}, false
		}
	case 1:
		if c.Row >= g.NumRows()-1 {
			return Coord{}, false
		}
	}
	switch dc {
	case -1:
		if c.Col == 0 {
			return Coord{}, false
		}
	case 1:
		if c.Col >= g.NumCols(c.Row)-1 {
			return Coord{}, false
		}
	}
	next := Coord{Row: c.Row + dr, Col: c.Col + dc}
	// Rows are assumed uniform, but a short destination row must not be
	// indexed past its end.
	if next.Col >= g.NumCols(next.Row) {
		return Coord{}, false
	}
	return next, true
}

// Walk returns the n cells visited by starting at start and stepping in
// this direction, start included. It returns false if any of those cells
// is outside the grid.
func (d Direction) Walk(g *Grid, start Coord, n int) ([]Coord, bool) {
	if n <= 0 || !g.InBounds(start) {
		return nil, false
	}
	cells := make([]Coord, 0, n)
	cur := start
	cells = append(cells, cur)
	for len(cells) < n {
		next, ok := d.Neighbor(g, cur)
		if !ok {
			return nil, false
		}
		cells = append(cells, next)
		cur = next
	}
	return cells, true
}

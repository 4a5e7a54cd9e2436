// Package cross detects "X" formations: two diagonal occurrences of the
// same word that cross at a shared centre cell.
package cross

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/domino14/wordsearch/grid"
	"github.com/domino14/wordsearch/search"
)

// XNeighbors returns the two hits that would form an X with h: one
// anchored at the far corner along h's starting row, one at the far corner
// along h's starting column, each read along the other diagonal. Only
// diagonal hits have X neighbours; any other direction gives nil.
//
// The table assumes an odd word length, where both arms share exactly one
// centre cell. Coordinates are not clipped to any grid; a partner that
// falls outside the grid simply never matches a search result.
//
// XNeighbors panics if h.Len < 2.
func XNeighbors(h search.Hit) []search.Hit {
	if h.Len < 2 {
		panic(fmt.Sprintf("hits of length %d cannot form an X", h.Len))
	}
	k := h.Len - 1
	r, c := h.Start.Row, h.Start.Col

	partner := func(row, col int, d grid.Direction) search.Hit {
		return search.Hit{Start: grid.Coord{Row: row, Col: col}, Direction: d, Len: h.Len}
	}

	switch h.Direction {
	case grid.Northeast:
		return []search.Hit{
			partner(r, c+k, grid.Northwest),
			partner(r-k, c, grid.Southeast),
		}
	case grid.Northwest:
		return []search.Hit{
			partner(r, c-k, grid.Northeast),
			partner(r-k, c, grid.Southwest),
		}
	case grid.Southeast:
		return []search.Hit{
			partner(r+k, c, grid.Northeast),
			partner(r, c+k, grid.Southwest),
		}
	case grid.Southwest:
		return []search.Hit{
			partner(r+k, c, grid.Northwest),
			partner(r, c-k, grid.Southeast),
		}
	}
	return nil
}

func hasPartner(s search.HitSet, h search.Hit) bool {
	if !h.Direction.IsDiagonal() {
		return false
	}
	return lo.SomeBy(XNeighbors(h), s.Contains)
}

// Count returns the number of X formations in s. Every formation is found
// once from each of its two arms, so the raw count is halved.
func Count(s search.HitSet) int {
	return lo.CountBy(lo.Keys(s), func(h search.Hit) bool {
		return hasPartner(s, h)
	}) / 2
}

// A Formation is one X: two diagonal hits and the cell they cross at.
type Formation struct {
	A      search.Hit
	B      search.Hit
	Center grid.Coord
}

func (f Formation) String() string {
	return fmt.Sprintf("X at %v: [%v] x [%v]", f.Center, f.A, f.B)
}

// Formations lists every distinct crossing pair in s, ordered by the first
// arm. For a word that is not a palindrome its length equals Count(s).
func Formations(s search.HitSet) []Formation {
	seen := map[[2]search.Hit]bool{}
	var out []Formation
	for h := range s {
		if !h.Direction.IsDiagonal() {
			continue
		}
		for _, p := range XNeighbors(h) {
			if !s.Contains(p) {
				continue
			}
			a, b := h, p
			if b.Less(a) {
				a, b = b, a
			}
			key := [2]search.Hit{a, b}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, Formation{A: a, B: b, Center: a.Center()})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A.Less(out[j].A)
		}
		return out[i].B.Less(out[j].B)
	})
	return out
}

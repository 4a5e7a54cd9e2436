package search

import (
	"fmt"
	"sort"

	"github.com/domino14/wordsearch/grid"
)

// A Hit is one occurrence of a word: it starts at Start and is Len letters
// long when read in Direction. Hits are plain values and compare equal when
// all three fields match, so they can key a map directly.
type Hit struct {
	Start     grid.Coord
	Direction grid.Direction
	Len       int
}

func (h Hit) String() string {
	return fmt.Sprintf("%v %v len %d", h.Start, h.Direction, h.Len)
}

// Cells returns the cells covered by the hit, in reading order. The second
// return value is false if the hit does not fit in g.
func (h Hit) Cells(g *grid.Grid) ([]grid.Coord, bool) {
	return h.Direction.Walk(g, h.Start, h.Len)
}

// Center returns the middle cell of the hit, at index (Len-1)/2. It is only
// a true centre for odd lengths.
func (h Hit) Center() grid.Coord {
	dr, dc := h.Direction.Delta()
	k := (h.Len - 1) / 2
	return grid.Coord{Row: h.Start.Row + dr*k, Col: h.Start.Col + dc*k}
}

// Less orders hits by start row, start column, direction, then length.
func (h Hit) Less(o Hit) bool {
	if h.Start.Row != o.Start.Row {
		return h.Start.Row < o.Start.Row
	}
	if h.Start.Col != o.Start.Col {
		return h.Start.Col < o.Start.Col
	}
	if h.Direction != o.Direction {
		return h.Direction < o.Direction
	}
	return h.Len < o.Len
}

// A HitSet is an unordered set of distinct hits.
type HitSet map[Hit]struct{}

func NewHitSet(hits ...Hit) HitSet {
	s := make(HitSet, len(hits))
	for _, h := range hits {
		s.Add(h)
	}
	return s
}

func (s HitSet) Add(h Hit) {
	s[h] = struct{}{}
}

func (s HitSet) Contains(h Hit) bool {
	_, ok := s[h]
	return ok
}

func (s HitSet) Len() int {
	return len(s)
}

// Union adds every hit of o to s.
func (s HitSet) Union(o HitSet) {
	for h := range o {
		s[h] = struct{}{}
	}
}

// Sorted returns the hits in Less order.
func (s HitSet) Sorted() []Hit {
	hits := make([]Hit, 0, len(s))
	for h := range s {
		hits = append(hits, h)
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Less(hits[j]) })
	return hits
}

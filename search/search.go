// Package search finds every straight-line occurrence of a word in a grid.
package search

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/wordsearch/cache"
	"github.com/domino14/wordsearch/grid"
)

// probe walks from start in direction d, checking that each visited letter
// matches the next letter of word. The terminal check happens on the
// current cell before any neighbour is requested, so a one-letter word
// matches in every direction without stepping.
func probe(g *grid.Grid, word []rune, d grid.Direction, start grid.Coord) (Hit, bool) {
	cur := start
	for idx := 0; ; idx++ {
		if g.At(cur) != word[idx] {
			return Hit{}, false
		}
		if idx == len(word)-1 {
			return Hit{Start: start, Direction: d, Len: len(word)}, true
		}
		next, ok := d.Neighbor(g, cur)
		if !ok {
			return Hit{}, false
		}
		cur = next
	}
}

func searchRow(g *grid.Grid, word []rune, row int, hits HitSet) {
	for col := 0; col < g.NumCols(row); col++ {
		c := grid.Coord{Row: row, Col: col}
		if g.At(c) != word[0] {
			continue
		}
		for _, d := range grid.AllDirections() {
			if h, ok := probe(g, word, d, c); ok {
				hits.Add(h)
			}
		}
	}
}

// Search returns every occurrence of word in g, in any of the eight
// directions. An empty word matches nothing.
func Search(g *grid.Grid, word string) HitSet {
	w := []rune(word)
	hits := HitSet{}
	if len(w) == 0 {
		return hits
	}
	for row := 0; row < g.NumRows(); row++ {
		searchRow(g, w, row, hits)
	}
	return hits
}

// SearchParallel is Search with rows fanned out across up to threads
// goroutines. Each row is scanned into its own set and merged at the end.
func SearchParallel(ctx context.Context, g *grid.Grid, word string, threads int) (HitSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	w := []rune(word)
	if threads <= 1 || len(w) == 0 {
		return Search(g, word), nil
	}
	ts := time.Now()
	var mu sync.Mutex
	hits := HitSet{}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(threads)
	for row := 0; row < g.NumRows(); row++ {
		row := row
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rowHits := HitSet{}
			searchRow(g, w, row, rowHits)
			mu.Lock()
			hits.Union(rowHits)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	log.Debug().Str("word", word).Int("threads", threads).Int("hits", len(hits)).
		Dur("elapsed", time.Since(ts)).Msg("parallel-search-done")
	return hits, nil
}

// Cached is Search, memoized on the grid contents and the word. The
// returned set is shared with every other caller and must not be modified.
func Cached(g *grid.Grid, word string) (HitSet, error) {
	obj, err := cache.Load(cache.Key(g.Fingerprint(), word), func(string) (any, error) {
		return Search(g, word), nil
	})
	if err != nil {
		return nil, err
	}
	return obj.(HitSet), nil
}

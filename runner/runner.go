// Package runner solves a grid: it counts occurrences of one word and X
// formations of another, and renders the result.
package runner

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsearch/cross"
	"github.com/domino14/wordsearch/grid"
	"github.com/domino14/wordsearch/search"
)

// Result is the outcome of one solve.
type Result struct {
	Word       string        `json:"word" yaml:"word"`
	WordCount  int           `json:"word_count" yaml:"word_count"`
	CrossWord  string        `json:"cross_word" yaml:"cross_word"`
	CrossCount int           `json:"cross_count" yaml:"cross_count"`
	Rows       int           `json:"rows" yaml:"rows"`
	Cols       int           `json:"cols" yaml:"cols"`
	Elapsed    time.Duration `json:"elapsed_ns" yaml:"elapsed"`
}

type Runner struct {
	opts *Options
}

func NewRunner(opts *Options) *Runner {
	return &Runner{opts: opts}
}

func (r *Runner) Options() *Options {
	return r.opts
}

func (r *Runner) search(ctx context.Context, g *grid.Grid, word string) (search.HitSet, error) {
	if r.opts.Threads > 1 {
		return search.SearchParallel(ctx, g, word, r.opts.Threads)
	}
	return search.Search(g, word), nil
}

// Solve counts the configured word and its X formations in g.
func (r *Runner) Solve(ctx context.Context, g *grid.Grid) (*Result, error) {
	if err := r.opts.Validate(); err != nil {
		return nil, err
	}
	ts := time.Now()
	wordHits, err := r.search(ctx, g, r.opts.Word)
	if err != nil {
		return nil, err
	}
	crossHits, err := r.search(ctx, g, r.opts.CrossWord)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Word:       r.opts.Word,
		WordCount:  wordHits.Len(),
		CrossWord:  r.opts.CrossWord,
		CrossCount: cross.Count(crossHits),
		Rows:       g.NumRows(),
		Cols:       g.NumCols(0),
		Elapsed:    time.Since(ts),
	}
	log.Debug().Interface("result", res).Msg("solved")
	return res, nil
}

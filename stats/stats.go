// Package stats accumulates timing samples for repeated searches.
package stats

import (
	"fmt"
	"math"
	"time"
)

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// A Timing is a running mean and variance of durations, kept with
// Welford's algorithm so samples need not be stored.
type Timing struct {
	n    int
	last time.Duration
	min  time.Duration
	max  time.Duration

	mean float64
	m2   float64
}

// Push adds a sample.
func (t *Timing) Push(d time.Duration) {
	t.n++
	t.last = d
	if t.n == 1 || d < t.min {
		t.min = d
	}
	if t.n == 1 || d > t.max {
		t.max = d
	}
	x := float64(d)
	delta := x - t.mean
	t.mean += delta / float64(t.n)
	t.m2 += delta * (x - t.mean)
}

// Time runs f and records how long it took.
func (t *Timing) Time(f func()) {
	ts := time.Now()
	f()
	t.Push(time.Since(ts))
}

func (t *Timing) Samples() int       { return t.n }
func (t *Timing) Last() time.Duration { return t.last }
func (t *Timing) Min() time.Duration  { return t.min }
func (t *Timing) Max() time.Duration  { return t.max }

func (t *Timing) Mean() time.Duration {
	return time.Duration(t.mean)
}

// Variance is the sample variance, in nanoseconds squared.
func (t *Timing) Variance() float64 {
	if t.n <= 1 {
		return 0
	}
	return t.m2 / float64(t.n-1)
}

func (t *Timing) Stdev() time.Duration {
	return time.Duration(math.Sqrt(t.Variance()))
}

// StandardError returns the standard error of the mean.
func (t *Timing) StandardError() time.Duration {
	if t.n == 0 {
		return 0
	}
	return time.Duration(math.Sqrt(t.Variance() / float64(t.n)))
}

// ConfidenceInterval returns the half-width of the given two-tailed
// confidence interval (0-100) around the mean.
func (t *Timing) ConfidenceInterval(pct float64) time.Duration {
	return time.Duration(ZVal(pct) * float64(t.StandardError()))
}

func (t *Timing) String() string {
	return fmt.Sprintf("%d runs: mean %v ± %v (95%%), min %v, max %v",
		t.n, t.Mean(), t.ConfidenceInterval(95), t.Min(), t.Max())
}

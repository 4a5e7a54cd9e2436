package stats

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestTiming(t *testing.T) {
	is := is.New(t)
	type tc struct {
		samples []int
		mean    time.Duration
		stdev   float64
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47, 36.937785531891},
		{[]int{1}, 1, 0},
		{[]int{}, 0, 0},
		{[]int{1, 1}, 1, 0},
	}
	for _, c := range cases {
		s := &Timing{}
		for _, v := range c.samples {
			s.Push(time.Duration(v))
		}
		is.Equal(s.Samples(), len(c.samples))
		is.Equal(s.Mean(), c.mean)
		is.True(FuzzyEqual(s.Variance(), c.stdev*c.stdev))
	}
}

func TestTimingMinMax(t *testing.T) {
	is := is.New(t)
	s := &Timing{}
	for _, v := range []time.Duration{5, 2, 9, 4} {
		s.Push(v)
	}
	is.Equal(s.Min(), time.Duration(2))
	is.Equal(s.Max(), time.Duration(9))
	is.Equal(s.Last(), time.Duration(4))
}

func TestTimingTime(t *testing.T) {
	is := is.New(t)
	s := &Timing{}
	s.Time(func() {})
	s.Time(func() {})
	is.Equal(s.Samples(), 2)
	is.True(s.Max() >= s.Min())
}

func TestZVal(t *testing.T) {
	is := is.New(t)
	is.True(FuzzyEqual(ZVal(95), 1.959963984540054))
	is.True(FuzzyEqual(ZVal(0), 0))
}

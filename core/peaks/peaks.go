// core/peaks/peaks.go
package peaks

import "math"

// Kind labels an extremum.
type Kind uint8

const (
	None Kind = iota
	Peak
	Valley
)

func (k Kind) String() string {
	switch k {
	case Peak:
		return "peak"
	case Valley:
		return "valley"
	}
	return "none"
}

// Extremum is one classified index of the series.
type Extremum struct {
	Index int
	Kind  Kind
	Value int
}

// Detector is the minimal capability the valley finder needs.
// Any detector (including fakes in tests) can satisfy this.
type Detector interface {
	Detect(series []int) []Extremum
}

// Caerus is a windowed extremum detector. An index is reported when it is
// the first extreme value of its [i-Window, i+Window] neighbourhood and
// differs from the opposite extreme of that neighbourhood by at least
// MinPerc percent.
type Caerus struct {
	MinPerc float64
	Window  int
}

// Default detector settings.
const (
	DefaultMinPerc = 10
	DefaultWindow  = 50
)

// Detect returns the extrema of series in ascending index order.
func (c Caerus) Detect(series []int) []Extremum {
	w := c.Window
	if w < 1 {
		w = 1
	}
	n := len(series)
	var out []Extremum
	for i, v := range series {
		lo, hi := max(0, i-w), min(n-1, i+w)
		wmin, wmax := v, v
		peak, valley := true, true
		for j := lo; j <= hi; j++ {
			x := series[j]
			if x < wmin {
				wmin = x
			}
			if x > wmax {
				wmax = x
			}
			switch {
			case j < i:
				// plateaus report their leftmost index only
				if x >= v {
					peak = false
				}
				if x <= v {
					valley = false
				}
			case j > i:
				if x > v {
					peak = false
				}
				if x < v {
					valley = false
				}
			}
		}
		switch {
		case peak && percentChange(wmin, v) >= c.MinPerc:
			out = append(out, Extremum{Index: i, Kind: Peak, Value: v})
		case valley && percentChange(wmax, v) >= c.MinPerc:
			out = append(out, Extremum{Index: i, Kind: Valley, Value: v})
		}
	}
	return out
}

// percentChange is |v-ref| relative to ref, in percent. A zero reference
// with a different value is an unbounded change.
func percentChange(ref, v int) float64 {
	if ref == v {
		return 0
	}
	if ref == 0 {
		return math.Inf(1)
	}
	return math.Abs(float64(v-ref)) / math.Abs(float64(ref)) * 100
}

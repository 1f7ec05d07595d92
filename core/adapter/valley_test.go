package adapter

import (
	"testing"

	"github.com/dolittle007/ont-chopper/core/peaks"
)

func TestExtendValleyStopsAtHighQuality(t *testing.T) {
	phred := concat(repeat(30, 10), repeat(5, 10), repeat(30, 10))
	s, e, ok := ExtendValley(12, phred, []int{5, 25}, 20)
	if !ok || s != 10 || e != 19 {
		t.Fatalf("got [%d,%d] ok=%v, want [10,19]", s, e, ok)
	}
}

func TestExtendValleyBoundedByPeaks(t *testing.T) {
	phred := repeat(5, 20)
	s, e, ok := ExtendValley(8, phred, []int{15, 3, 1, 18}, 20)
	if !ok || s != 3 || e != 15 {
		t.Fatalf("got [%d,%d] ok=%v, want [3,15]", s, e, ok)
	}
}

func TestExtendValleyWithoutPeaksUsesReadEdges(t *testing.T) {
	phred := repeat(5, 20)
	s, e, ok := ExtendValley(8, phred, nil, 20)
	if !ok || s != 0 || e != 19 {
		t.Fatalf("got [%d,%d] ok=%v, want [0,19]", s, e, ok)
	}
}

func TestExtendValleyAboveCutoff(t *testing.T) {
	if _, _, ok := ExtendValley(2, repeat(30, 10), nil, 20); ok {
		t.Fatal("valley above cutoff should not extend")
	}
}

func TestExtendValleyNeverCrossesPeak(t *testing.T) {
	phred := repeat(5, 60)
	peakIdx := []int{10, 30, 50}
	for v := 11; v < 30; v++ {
		s, e, _ := ExtendValley(v, phred, peakIdx, 20)
		if s < 10 || e > 30 {
			t.Fatalf("valley %d: zone [%d,%d] crosses a peak", v, s, e)
		}
	}
}

type fakeDetector []peaks.Extremum

func (f fakeDetector) Detect([]int) []peaks.Extremum { return f }

func TestFindValleysDeduplicatesZones(t *testing.T) {
	phred := concat(repeat(30, 20), repeat(5, 40), repeat(30, 20))
	det := fakeDetector{
		{Index: 10, Kind: peaks.Peak, Value: 30},
		{Index: 30, Kind: peaks.Valley, Value: 5},
		{Index: 45, Kind: peaks.Valley, Value: 5},
		{Index: 70, Kind: peaks.Peak, Value: 30},
	}
	got := FindValleys(phred, 20, 30, det, 10)
	if !equalIntervals(got, []Interval{{20, 60}}) {
		t.Fatalf("got %v, want [[20,60)]", got)
	}
}

func TestFindValleysIgnoresHighValleysAndLowPeaks(t *testing.T) {
	phred := concat(repeat(30, 20), repeat(5, 40), repeat(30, 20))
	det := fakeDetector{
		{Index: 5, Kind: peaks.Valley, Value: 30},
		{Index: 40, Kind: peaks.Peak, Value: 5},
		{Index: 41, Kind: peaks.Valley, Value: 5},
	}
	got := FindValleys(phred, 20, 30, det, 10)
	if !equalIntervals(got, []Interval{{20, 60}}) {
		t.Fatalf("got %v, want [[20,60)]", got)
	}
}

func TestFindValleysMinLength(t *testing.T) {
	phred := concat(repeat(30, 20), repeat(5, 20), repeat(30, 20))
	det := fakeDetector{{Index: 25, Kind: peaks.Valley, Value: 5}}
	if got := FindValleys(phred, 20, 30, det, 10); len(got) != 0 {
		t.Fatalf("20-base zone should be filtered, got %v", got)
	}
}

func TestFindValleysSkipsShortReads(t *testing.T) {
	phred := concat(repeat(30, 20), repeat(5, 40), repeat(30, 20))
	det := fakeDetector{{Index: 30, Kind: peaks.Valley, Value: 5}}
	if got := FindValleys(phred, 20, 30, det, 50); got != nil {
		t.Fatalf("read shorter than two windows should be skipped, got %v", got)
	}
}

func TestFindValleysWithCaerus(t *testing.T) {
	phred := concat(repeat(30, 20), repeat(5, 40), repeat(30, 20))
	got := FindValleys(phred, 20, 30, peaks.Caerus{MinPerc: 10, Window: 10}, 10)
	if !equalIntervals(got, []Interval{{20, 60}}) {
		t.Fatalf("got %v, want [[20,60)]", got)
	}
}

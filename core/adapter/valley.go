package adapter

import (
	"slices"

	"github.com/dolittle007/ont-chopper/core/peaks"
)

// ExtendValley grows a low-quality zone around valley, one base at a time in
// each direction, while quality stays at or below cutoff. Growth never passes
// the nearest peak on either side (read edges when there is none). The zone
// is inclusive; ok is false when the valley itself is above cutoff.
func ExtendValley(valley int, phred []int, peakIdx []int, cutoff int) (start, end int, ok bool) {
	if valley < 0 || valley >= len(phred) || phred[valley] > cutoff {
		return valley, valley, false
	}
	lower, upper := 0, len(phred)-1
	hasLower, hasUpper := false, false
	for _, p := range peakIdx {
		switch {
		case p < valley && (!hasLower || p > lower):
			lower, hasLower = p, true
		case p > valley && (!hasUpper || p < upper):
			upper, hasUpper = p, true
		}
	}

	end = valley
	for end < upper && phred[end+1] <= cutoff {
		end++
	}
	start = valley
	for start > lower && phred[start-1] <= cutoff {
		start--
	}
	return start, end, true
}

// FindValleys runs det over the quality series and turns each low valley
// into an adapter zone bounded by the surrounding high peaks. Reads shorter
// than two windows are skipped: extrema there are not reliable. Zones are
// half-open, de-duplicated, at least minLen long and ascending.
func FindValleys(phred []int, cutoff, minLen int, det peaks.Detector, window int) []Interval {
	if len(phred) < 2*window {
		return nil
	}

	var valleys, peakIdx []int
	for _, e := range det.Detect(phred) {
		switch {
		case e.Kind == peaks.Valley && e.Value <= cutoff:
			valleys = append(valleys, e.Index)
		case e.Kind == peaks.Peak && e.Value > cutoff:
			peakIdx = append(peakIdx, e.Index)
		}
	}

	seen := make(map[Interval]struct{}, len(valleys))
	var out []Interval
	for _, v := range valleys {
		s, e, ok := ExtendValley(v, phred, peakIdx, cutoff)
		if !ok {
			continue
		}
		zone := Interval{Start: s, End: e + 1}
		if _, dup := seen[zone]; dup {
			continue
		}
		seen[zone] = struct{}{}
		if zone.Len() >= minLen {
			out = append(out, zone)
		}
	}
	slices.SortFunc(out, func(a, b Interval) int { return a.Start - b.Start })
	return out
}

package adapter

import (
	"cmp"
	"slices"
)

// PolyABase is the base whose runs mark a 3' tail.
const PolyABase = 'A'

type polyARun struct {
	start, length int
}

// FindTerminal looks for a poly-A anchored adapter near the 3' end.
//
// A run of at least polyALen A's qualifies when it starts within
// maxAdapterLen bases of the read end and either reaches the end or is
// followed by bases whose mean quality is at most threshold. The longest
// qualifying run wins, the leftmost one on ties. The adapter spans from the
// run start to the end of the read.
func FindTerminal(seq string, phred []int, polyALen, threshold, maxAdapterLen int) (Interval, bool) {
	polyALen = max(polyALen, 1)
	n := len(seq)

	var cands []polyARun
	for i := 0; i < n; {
		if seq[i] != PolyABase {
			i++
			continue
		}
		j := i
		for j < n && seq[j] == PolyABase {
			j++
		}
		if j-i >= polyALen && n-i <= maxAdapterLen {
			if j == n || mean(phred[j:]) <= float64(threshold) {
				cands = append(cands, polyARun{start: i, length: j - i})
			}
		}
		i = j
	}
	if len(cands) == 0 {
		return Interval{}, false
	}

	slices.SortStableFunc(cands, func(a, b polyARun) int {
		if c := cmp.Compare(b.length, a.length); c != 0 {
			return c
		}
		return cmp.Compare(a.start, b.start)
	})
	return Interval{Start: cands[0].start, End: n}, true
}

func mean(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}

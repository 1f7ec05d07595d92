package adapter

// DefaultMergeDistance is the gap (in bases above threshold) bridged when
// fusing neighbouring low-quality runs.
const DefaultMergeDistance = 1

// FindInternal reports every stretch of the read where quality stays at or
// below threshold for at least minLen bases, after bridging gaps of up to
// distance bases. Results are half-open and ascending.
func FindInternal(phred []int, threshold, minLen, distance int) []Interval {
	// runs carry inclusive ends until they are reported
	var runs []Interval
	n := len(phred)
	for i := 0; i < n; {
		if phred[i] > threshold {
			i++
			continue
		}
		j := i
		for j+1 < n && phred[j+1] <= threshold {
			j++
		}
		runs = append(runs, Interval{Start: i, End: j})
		i = j + 1
	}

	var out []Interval
	for _, r := range MergeAdjacent(runs, distance) {
		if r.End-r.Start+1 >= minLen {
			out = append(out, Interval{Start: r.Start, End: r.End + 1})
		}
	}
	return out
}

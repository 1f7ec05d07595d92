package adapter

// Segments returns the parts of a read of length readLen left over once the
// adapters are cut out, in ascending order. It returns nil when there are no
// adapters.
//
// A terminal adapter starting at 0 yields the single empty segment [0,0);
// it is kept so callers can tell "all adapter" apart from "no adapter", and
// is discarded by any minimum-length filter.
func Segments(readLen int, adapters []Adapter) []Interval {
	if len(adapters) == 0 {
		return nil
	}
	pos := make([]int, 1, 2*len(adapters)+2)
	for _, a := range adapters {
		if a.End != readLen {
			pos = append(pos, a.Start, a.End)
		} else {
			pos = append(pos, a.Start)
		}
	}
	if adapters[len(adapters)-1].End != readLen {
		pos = append(pos, readLen)
	}

	segs := make([]Interval, 0, len(pos)/2)
	for i := 0; i+1 < len(pos); i += 2 {
		segs = append(segs, Interval{Start: pos[i], End: pos[i+1]})
	}
	return segs
}

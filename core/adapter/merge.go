package adapter

// MergeAdjacent fuses intervals that lie within distance+1 of each other.
// Input must be sorted by Start; the input slice is not modified.
func MergeAdjacent(regions []Interval, distance int) []Interval {
	if len(regions) == 0 {
		return nil
	}
	out := make([]Interval, 0, len(regions))
	cur := regions[0]
	for _, r := range regions[1:] {
		if r.Start-cur.End <= distance+1 {
			cur.End = max(cur.End, r.End)
			continue
		}
		out = append(out, cur)
		cur = r
	}
	return append(out, cur)
}

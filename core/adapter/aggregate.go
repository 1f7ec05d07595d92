package adapter

// Aggregate combines internal and terminal findings into the ordered,
// non-overlapping adapter list of one read.
//
// With a terminal adapter, internal regions starting past it are dropped and
// one that overlaps it is folded into the terminal region. The terminal
// adapter is always last.
func Aggregate(internal []Interval, terminal Interval, hasTerminal bool) []Adapter {
	out := make([]Adapter, 0, len(internal)+1)
	if !hasTerminal {
		for _, iv := range internal {
			out = append(out, Adapter{Interval: iv, Kind: Internal})
		}
		return out
	}

	term := terminal
	for _, iv := range internal {
		if iv.Start > terminal.Start {
			continue
		}
		if iv.End > term.Start {
			term.Start = min(term.Start, iv.Start)
			continue
		}
		out = append(out, Adapter{Interval: iv, Kind: Internal})
	}
	return append(out, Adapter{Interval: term, Kind: Terminal})
}

package adapter

import "fmt"

// Interval is a half-open [Start, End) range of read coordinates.
type Interval struct {
	Start int
	End   int
}

func (iv Interval) Len() int { return iv.End - iv.Start }

func (iv Interval) String() string { return fmt.Sprintf("[%d,%d)", iv.Start, iv.End) }

// Kind tells where an adapter was anchored.
type Kind uint8

const (
	Internal Kind = iota
	Terminal
)

func (k Kind) String() string {
	if k == Terminal {
		return "terminal"
	}
	return "internal"
}

// Adapter is an artifact region of a read. Terminal adapters always end at
// the read length.
type Adapter struct {
	Interval
	Kind Kind
}

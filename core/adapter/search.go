package adapter

import (
	"errors"
	"fmt"

	"github.com/dolittle007/ont-chopper/core/peaks"
)

// Method selects how interior artifacts are located.
type Method string

const (
	// MethodQuality scans for runs at or below the phred threshold.
	MethodQuality Method = "quality"
	// MethodValley extends valleys of the quality signal between peaks.
	MethodValley Method = "valley"
)

// ErrMalformedRead marks reads whose quality data cannot be analysed.
var ErrMalformedRead = errors.New("malformed read")

// Params are the per-read detection settings.
type Params struct {
	PhredThreshold int
	MinAdapterLen  int
	MaxAdapterLen  int
	PolyALen       int
	MergeDistance  int

	Method  Method
	MinPerc float64 // valley method only
	Window  int     // valley method only
}

// DefaultParams mirrors the command-line defaults.
func DefaultParams() Params {
	return Params{
		PhredThreshold: 20,
		MinAdapterLen:  30,
		MaxAdapterLen:  100,
		PolyALen:       2,
		MergeDistance:  DefaultMergeDistance,
		Method:         MethodQuality,
		MinPerc:        peaks.DefaultMinPerc,
		Window:         peaks.DefaultWindow,
	}
}

// Result is the outcome of analysing one read.
type Result struct {
	Adapters []Adapter
	Segments []Interval
}

// Find runs the full per-read detection: interior search by p.Method,
// terminal poly-A search, aggregation and segment extraction.
func Find(seq string, phred []int, p Params) (Result, error) {
	if len(seq) != len(phred) {
		return Result{}, fmt.Errorf("%w: %d bases but %d quality scores", ErrMalformedRead, len(seq), len(phred))
	}
	for i, q := range phred {
		if q < 0 {
			return Result{}, fmt.Errorf("%w: negative quality %d at %d", ErrMalformedRead, q, i)
		}
	}

	var interior []Interval
	switch p.Method {
	case MethodQuality, "":
		interior = FindInternal(phred, p.PhredThreshold, p.MinAdapterLen, p.MergeDistance)
	case MethodValley:
		det := peaks.Caerus{MinPerc: p.MinPerc, Window: p.Window}
		interior = FindValleys(phred, p.PhredThreshold, p.MinAdapterLen, det, p.Window)
	default:
		return Result{}, fmt.Errorf("unknown detection method %q", p.Method)
	}

	term, ok := FindTerminal(seq, phred, p.PolyALen, p.PhredThreshold, p.MaxAdapterLen)
	adapters := Aggregate(interior, term, ok)
	return Result{Adapters: adapters, Segments: Segments(len(seq), adapters)}, nil
}

// internal/writers/sinks.go
package writers

import (
	"errors"
	"fmt"

	"github.com/dolittle007/ont-chopper/core/fastq"
)

// Sink receives finished reads.
type Sink interface {
	Write(fastq.Read) error
}

// Sinks are the two FASTQ outputs of a run.
type Sinks struct {
	Unclassified *fastq.Writer
	Rescued      *fastq.Writer
}

// Open creates both output files. If the second one fails the first is
// closed again.
func Open(unclassified, rescued string) (*Sinks, error) {
	if unclassified == rescued {
		return nil, fmt.Errorf("unclassified and rescued outputs must differ (both %q)", unclassified)
	}
	u, err := fastq.Create(unclassified)
	if err != nil {
		return nil, err
	}
	r, err := fastq.Create(rescued)
	if err != nil {
		_ = u.Close()
		return nil, err
	}
	return &Sinks{Unclassified: u, Rescued: r}, nil
}

// Close flushes and closes both outputs, reporting every failure.
func (s *Sinks) Close() error {
	return errors.Join(s.Unclassified.Close(), s.Rescued.Close())
}

// internal/pipeline/detector.go
package pipeline

import (
	"fmt"

	"github.com/dolittle007/ont-chopper/core/adapter"
	"github.com/dolittle007/ont-chopper/core/fastq"
)

// Detector is the minimal capability the pipeline needs.
// Any detector (including fakes in tests) can satisfy this.
type Detector interface {
	Detect(fastq.Read) (adapter.Result, error)
}

// AdapterDetector runs the quality/poly-A adapter search on each read.
type AdapterDetector struct {
	Params adapter.Params
}

func (d AdapterDetector) Detect(r fastq.Read) (adapter.Result, error) {
	res, err := adapter.Find(r.Seq, r.Phred, d.Params)
	if err != nil {
		return adapter.Result{}, fmt.Errorf("read %s: %w", r.ID, err)
	}
	return res, nil
}

// internal/pipeline/pool.go
package pipeline

import (
	"context"
	"sync"

	"github.com/dolittle007/ont-chopper/core/adapter"
	"github.com/dolittle007/ont-chopper/core/fastq"
)

// job is one micro-batch. Workers only see values and never touch the sinks.
type job struct {
	idx   int
	reads []fastq.Read
	out   chan<- result
}

type result struct {
	idx int
	res []adapter.Result
	err error
}

// pool is a fixed set of detection workers that lives for one run.
type pool struct {
	det  Detector
	jobs chan job
	wg   sync.WaitGroup
}

func newPool(workers int, det Detector) *pool {
	if workers < 1 {
		workers = 1
	}
	p := &pool{det: det, jobs: make(chan job, workers)}
	p.wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer p.wg.Done()
			for j := range p.jobs {
				j.out <- p.detectAll(j)
			}
		}()
	}
	return p
}

func (p *pool) detectAll(j job) result {
	out := make([]adapter.Result, len(j.reads))
	for i, r := range j.reads {
		res, err := p.det.Detect(r)
		if err != nil {
			return result{idx: j.idx, err: err}
		}
		out[i] = res
	}
	return result{idx: j.idx, res: out}
}

// mapBatches is a parallel map over micro-batches. Results come back in
// submission order and only after every submitted micro-batch is done; the
// error of the earliest failing micro-batch wins over cancellation.
func (p *pool) mapBatches(ctx context.Context, batches [][]fastq.Read) ([][]adapter.Result, error) {
	// buffered to len(batches): workers never block on delivery
	out := make(chan result, len(batches))

	var cerr error
	submitted := 0
submit:
	for i, b := range batches {
		select {
		case <-ctx.Done():
			cerr = ctx.Err()
			break submit
		case p.jobs <- job{idx: i, reads: b, out: out}:
			submitted++
		}
	}

	results := make([][]adapter.Result, len(batches))
	failed := len(batches)
	var ferr error
	for k := 0; k < submitted; k++ {
		r := <-out
		if r.err != nil {
			if r.idx < failed {
				failed, ferr = r.idx, r.err
			}
			continue
		}
		results[r.idx] = r.res
	}
	if ferr != nil {
		return nil, ferr
	}
	if cerr != nil {
		return nil, cerr
	}
	return results, nil
}

func (p *pool) close() {
	close(p.jobs)
	p.wg.Wait()
}

// split cuts reads into consecutive chunks of at most size reads.
func split(reads []fastq.Read, size int) [][]fastq.Read {
	if size < 1 {
		size = 1
	}
	chunks := make([][]fastq.Read, 0, (len(reads)+size-1)/size)
	for len(reads) > 0 {
		n := min(size, len(reads))
		chunks = append(chunks, reads[:n:n])
		reads = reads[n:]
	}
	return chunks
}

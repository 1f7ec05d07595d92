// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dolittle007/ont-chopper/core/adapter"
	"github.com/dolittle007/ont-chopper/core/fastq"
	"github.com/dolittle007/ont-chopper/internal/cmdutil"
	"github.com/dolittle007/ont-chopper/internal/progress"
	"github.com/dolittle007/ont-chopper/internal/runutil"
	"github.com/dolittle007/ont-chopper/internal/writers"
)

// Config controls one run.
type Config struct {
	Threads   int // <=0 means one worker per CPU
	BatchSize int
	MinSeqLen int // segments must be strictly longer to be rescued
	Params    adapter.Params

	Progress io.Writer    // nil disables the bar
	Logger   *slog.Logger // nil discards
	Detector Detector     // nil means AdapterDetector{Params}
}

// Stats summarizes a run.
type Stats struct {
	Reads        int
	Unclassified int
	Rescued      int // reads with at least one kept segment
	Segments     int // sub-reads written to the rescued sink
	Dropped      int // reads whose segments were all too short
}

// Run streams input through the detector and writes every read to one of
// the sinks (or neither, when all its segments are too short).
func Run(ctx context.Context, cfg Config, input string, unclassified, rescued writers.Sink) (Stats, error) {
	var st Stats
	log := cfg.Logger
	if log == nil {
		log = cmdutil.Discard()
	}
	det := cfg.Detector
	if det == nil {
		det = AdapterDetector{Params: cfg.Params}
	}
	threads := runutil.EffectiveThreads(cfg.Threads)

	records := -1
	if input != "-" {
		n, err := fastq.CountRecords(input)
		if err != nil {
			return st, err
		}
		records = n
	}
	batchSize := runutil.ClampBatchSize(cfg.BatchSize, records)
	micro := runutil.MicroBatchSize(batchSize, threads)
	log.Info("batching", "records", records, "batch_size", batchSize, "micro_batch_size", micro, "threads", threads)

	rd, err := fastq.Open(input)
	if err != nil {
		return st, err
	}
	defer rd.Close()

	p := newPool(threads, det)
	defer p.close()

	bar := progress.New(cfg.Progress, records)
	ok := false
	defer func() { bar.Finish(ok) }()

	for {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		batch, err := rd.ReadBatch(batchSize)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return st, err
		}
		chunks := split(batch, micro)
		results, err := p.mapBatches(ctx, chunks)
		if err != nil {
			return st, err
		}
		for i, chunk := range chunks {
			for j, r := range chunk {
				if err := route(ctx, cfg, log, r, results[i][j], unclassified, rescued, &st); err != nil {
					return st, err
				}
				bar.Increment()
			}
		}
	}
	ok = true
	return st, nil
}

func route(ctx context.Context, cfg Config, log *slog.Logger, r fastq.Read, res adapter.Result, unclassified, rescued writers.Sink, st *Stats) error {
	st.Reads++
	cmdutil.Tracef(ctx, log, "read %s: adapters=%v segments=%v", r.ID, res.Adapters, res.Segments)
	if len(res.Segments) == 0 {
		st.Unclassified++
		if err := unclassified.Write(r); err != nil {
			return fmt.Errorf("write unclassified: %w", err)
		}
		return nil
	}
	kept := 0
	for _, s := range res.Segments {
		if s.Len() <= cfg.MinSeqLen {
			continue
		}
		if err := rescued.Write(r.Slice(s.Start, s.End)); err != nil {
			return fmt.Errorf("write rescued: %w", err)
		}
		kept++
	}
	if kept == 0 {
		st.Dropped++
		return nil
	}
	st.Rescued++
	st.Segments += kept
	return nil
}

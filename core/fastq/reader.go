package fastq

import (
	"errors"
	"fmt"
	"io"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

// Reader streams Reads from a FASTQ file (plain or gzip, "-" for stdin).
// Sequence letters are not validated, so direct-RNA reads with U pass.
type Reader struct {
	path string
	fx   *fastx.Reader
}

// Open prepares path for streaming.
func Open(path string) (*Reader, error) {
	fx, err := fastx.NewReader(seq.Unlimit, path, fastx.DefaultIDRegexp)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Reader{path: path, fx: fx}, nil
}

// Next returns the next read, or io.EOF once the input is exhausted.
func (r *Reader) Next() (Read, error) {
	rec, err := r.fx.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Read{}, io.EOF
		}
		return Read{}, fmt.Errorf("%s: %w", r.path, err)
	}
	// fastx reuses the record buffer; the string conversions copy it
	return NewRead(string(rec.ID), string(rec.Name), string(rec.Seq.Seq), string(rec.Seq.Qual)), nil
}

// ReadBatch materializes up to n reads. A short final batch is returned with
// a nil error; io.EOF is only returned when no reads are left.
func (r *Reader) ReadBatch(n int) ([]Read, error) {
	n = max(n, 1)
	batch := make([]Read, 0, n)
	for len(batch) < n {
		rd, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		batch = append(batch, rd)
	}
	if len(batch) == 0 {
		return nil, io.EOF
	}
	return batch, nil
}

func (r *Reader) Close() error {
	r.fx.Close()
	return nil
}

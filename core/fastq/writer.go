package fastq

import (
	"fmt"

	"github.com/shenwei356/xopen"
)

// Writer emits 4-line FASTQ records. Paths ending in .gz are compressed;
// "-" writes to stdout.
type Writer struct {
	path string
	w    *xopen.Writer
}

func Create(path string) (*Writer, error) {
	w, err := xopen.Wopen(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return &Writer{path: path, w: w}, nil
}

// Write appends one record.
func (w *Writer) Write(r Read) error {
	for _, s := range [...]string{"@", r.Name, "\n", r.Seq, "\n+\n", r.Qual, "\n"} {
		if _, err := w.w.WriteString(s); err != nil {
			return fmt.Errorf("write %s: %w", w.path, err)
		}
	}
	return nil
}

// Close flushes buffered output and closes the file.
func (w *Writer) Close() error {
	if err := w.w.Close(); err != nil {
		return fmt.Errorf("close %s: %w", w.path, err)
	}
	return nil
}

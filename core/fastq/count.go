package fastq

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/shenwei356/xopen"
)

const countChunk = 1 << 20

var separator = []byte("\n+\n")

// CountRecords counts FASTQ records in path without parsing them, by
// counting separator lines in fixed-size chunks. Memory use is bounded by
// the chunk size regardless of read length.
func CountRecords(path string) (int, error) {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = fh.Close() }()

	buf := make([]byte, len(separator)-1+countChunk)
	carry := 0
	count := 0
	for {
		n, err := io.ReadFull(fh, buf[carry:])
		data := buf[:carry+n]
		count += bytes.Count(data, separator)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return count, nil
		}
		if err != nil {
			return 0, fmt.Errorf("count %s: %w", path, err)
		}
		// keep a separator that straddles the chunk edge, but never bytes of
		// one already counted
		keep := max(len(data)-(len(separator)-1), 0)
		if last := bytes.LastIndex(data, separator); last >= 0 {
			keep = max(keep, last+len(separator))
		}
		carry = len(data) - keep
		copy(buf, data[keep:])
	}
}

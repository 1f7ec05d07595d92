// core/fastq/read.go
package fastq

import (
	"fmt"
	"strings"
)

// PhredOffset is the ASCII offset of Sanger/Illumina 1.8+ quality strings.
const PhredOffset = 33

// Read is one FASTQ record. Name is the full header line without the leading
// '@' (identifier plus description). Phred holds the decoded scores.
type Read struct {
	ID    string
	Name  string
	Seq   string
	Qual  string
	Phred []int
}

// NewRead builds a Read and decodes its quality string.
func NewRead(id, name, seq, qual string) Read {
	if name == "" {
		name = id
	}
	return Read{ID: id, Name: name, Seq: seq, Qual: qual, Phred: DecodePhred(qual)}
}

// DecodePhred converts an ASCII quality string to integer scores. Characters
// below the offset decode to negative scores, which detection rejects.
func DecodePhred(qual string) []int {
	out := make([]int, len(qual))
	for i := 0; i < len(qual); i++ {
		out[i] = int(qual[i]) - PhredOffset
	}
	return out
}

func (r Read) Len() int { return len(r.Seq) }

// Description is the header text after the identifier, if any.
func (r Read) Description() string {
	rest, ok := strings.CutPrefix(r.Name, r.ID)
	if !ok || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return ""
	}
	return strings.TrimLeft(rest, " \t")
}

// SegmentID is the identifier given to the sub-read [start, end) of id.
func SegmentID(start, end int, id string) string {
	return fmt.Sprintf("%d:%d|%s", start, end, id)
}

// Slice returns the sub-read covering [start, end), renamed with SegmentID.
// The description of the parent header is carried over.
func (r Read) Slice(start, end int) Read {
	id := SegmentID(start, end, r.ID)
	name := id
	if d := r.Description(); d != "" {
		name = id + " " + d
	}
	phred := make([]int, end-start)
	copy(phred, r.Phred[start:end])
	return Read{ID: id, Name: name, Seq: r.Seq[start:end], Qual: r.Qual[start:end], Phred: phred}
}

var complement [256]byte

func init() {
	for _, p := range [...][2]byte{{'A', 'T'}, {'C', 'G'}, {'G', 'C'}, {'T', 'A'}, {'U', 'A'}, {'N', 'N'}} {
		complement[p[0]] = p[1]
		complement[p[0]+'a'-'A'] = p[1] + 'a' - 'A'
	}
}

// ReverseComplement returns the read on the opposite strand. The result
// shares no mutable state with r.
func (r Read) ReverseComplement() Read {
	n := len(r.Seq)
	seq := make([]byte, n)
	qual := make([]byte, len(r.Qual))
	phred := make([]int, len(r.Phred))
	for i := 0; i < n; i++ {
		c := complement[r.Seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		seq[i] = c
	}
	for i := range qual {
		qual[i] = r.Qual[len(r.Qual)-1-i]
	}
	for i := range phred {
		phred[i] = r.Phred[len(r.Phred)-1-i]
	}
	return Read{ID: r.ID, Name: r.Name, Seq: string(seq), Qual: string(qual), Phred: phred}
}

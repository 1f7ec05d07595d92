package fastq

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `@r1 runid=abc
ACGTACGT
+
IIIIIIII
@r2
AAAA
+
!!!!
@r3 ch=3
CCCCCC
+
555555
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return fn
}

func TestReaderNext(t *testing.T) {
	rd, err := Open(writeFile(t, "in.fq", sample))
	if err != nil {
		t.Fatal(err)
	}
	defer rd.Close()

	r, err := rd.Next()
	if err != nil {
		t.Fatal(err)
	}
	if r.ID != "r1" || r.Name != "r1 runid=abc" || r.Seq != "ACGTACGT" || r.Qual != "IIIIIIII" || r.Phred[0] != 40 {
		t.Fatalf("bad first read: %+v", r)
	}
	var ids []string
	for {
		r, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, r.ID)
	}
	if strings.Join(ids, ",") != "r2,r3" {
		t.Fatalf("ids = %v", ids)
	}
}

func TestReadBatch(t *testing.T) {
	rd, err := Open(writeFile(t, "in.fq", sample))
	if err != nil {
		t.Fatal(err)
	}
	defer rd.Close()

	b1, err := rd.ReadBatch(2)
	if err != nil || len(b1) != 2 {
		t.Fatalf("first batch: %d reads, err %v", len(b1), err)
	}
	b2, err := rd.ReadBatch(2)
	if err != nil || len(b2) != 1 || b2[0].ID != "r3" {
		t.Fatalf("second batch: %+v, err %v", b2, err)
	}
	if _, err := rd.ReadBatch(2); !errors.Is(err, io.EOF) {
		t.Fatalf("want io.EOF, got %v", err)
	}
}

func TestWriterRoundTripGzip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.fq.gz")
	w, err := Create(fn)
	if err != nil {
		t.Fatal(err)
	}
	in := []Read{
		NewRead("a", "a desc", "ACGT", "IIII"),
		NewRead("b", "b", "GG", "##"),
	}
	for _, r := range in {
		if err := w.Write(r); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	rd, err := Open(fn)
	if err != nil {
		t.Fatal(err)
	}
	defer rd.Close()
	got, err := rd.ReadBatch(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name != "a desc" || got[1].Seq != "GG" || got[1].Qual != "##" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestWriterFormat(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.fq")
	w, err := Create(fn)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Write(NewRead("r1", "r1 x=1", "ACG", "III")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if want := "@r1 x=1\nACG\n+\nIII\n"; string(b) != want {
		t.Fatalf("got %q, want %q", b, want)
	}
}

func TestCountRecords(t *testing.T) {
	n, err := CountRecords(writeFile(t, "in.fq", sample))
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("count = %d, want 3", n)
	}
}

func TestCountRecordsAcrossChunks(t *testing.T) {
	var sb strings.Builder
	seq := strings.Repeat("ACGT", 100)
	qual := strings.Repeat("I", len(seq))
	want := 0
	for sb.Len() < 3*countChunk {
		fmt.Fprintf(&sb, "@r%d\n%s\n+\n%s\n", want, seq, qual)
		want++
	}
	n, err := CountRecords(writeFile(t, "big.fq", sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	if n != want {
		t.Fatalf("count = %d, want %d", n, want)
	}
}

func TestCountRecordsMissingFile(t *testing.T) {
	if _, err := CountRecords(filepath.Join(t.TempDir(), "nope.fq")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCountRecordsSeparatorAtChunkEdge(t *testing.T) {
	// the first chunk ends right after r2's separator and r2's one-base
	// quality line is "+", so the carried bytes plus the next chunk spell
	// another separator
	l := (countChunk + len(separator) - 1 - 16) / 2
	data := "@r1\n" + strings.Repeat("C", l) + "\n+\n" + strings.Repeat("I", l) + "\n" +
		"@r2\nA\n+\n" + "+\n"
	if head := data[:countChunk+len(separator)-1]; !strings.HasSuffix(head, "@r2\nA\n+\n") {
		t.Fatalf("fixture does not end the first chunk on a separator")
	}
	n, err := CountRecords(writeFile(t, "edge.fq", data))
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
}

func TestReaderAcceptsRNA(t *testing.T) {
	rd, err := Open(writeFile(t, "rna.fq", "@r1 desc\nACGUUUAGGA\n+\nIIIIIIIIII\n@r2\nacguu\n+\nIIIII\n"))
	if err != nil {
		t.Fatal(err)
	}
	defer rd.Close()
	batch, err := rd.ReadBatch(10)
	if err != nil {
		t.Fatalf("ReadBatch: %v", err)
	}
	if len(batch) != 2 || batch[0].Seq != "ACGUUUAGGA" || batch[1].Seq != "acguu" {
		t.Fatalf("unexpected batch %+v", batch)
	}
	if rc := batch[0].ReverseComplement(); rc.Seq != "TCCTAAACGT" {
		t.Fatalf("reverse complement %q", rc.Seq)
	}
}

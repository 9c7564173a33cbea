package parse

import (
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
)

// readFasta parses a (multi-)FASTA input to records.
func readFasta(r io.Reader) ([]Record, error) {
	template := linear.NewSeq("", nil, alphabet.DNAredundant)
	return scan(fasta.NewReader(r, template))
}

// readFastq parses a FASTQ input to records. Qualities are dropped.
func readFastq(r io.Reader) ([]Record, error) {
	template := linear.NewQSeq("", nil, alphabet.DNAredundant, alphabet.Sanger)
	return scan(fastq.NewReader(r, template))
}

// scan reads every sequence from a biogo reader.
func scan(r seqio.Reader) (records []Record, err error) {
	sc := seqio.NewScanner(r)
	for sc.Next() {
		s := sc.Seq()
		records = append(records, Record{
			Seq:         letters(s),
			Name:        s.Name(),
			Description: s.Description(),
		})
	}
	return records, sc.Error()
}

// letters returns the letters of a biogo sequence, case preserved.
func letters(s seq.Sequence) string {
	var b strings.Builder
	b.Grow(s.Len())
	for i := s.Start(); i < s.End(); i++ {
		b.WriteByte(byte(s.At(i).L))
	}
	return b.String()
}

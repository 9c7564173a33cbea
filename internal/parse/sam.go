package parse

import (
	"bytes"
	"io"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

// readSAM parses the reads of a SAM input to records, one per read.
func readSAM(raw []byte) ([]Record, error) {
	reader, err := sam.NewReader(bytes.NewReader(samLines(raw)))
	if err != nil {
		return nil, err
	}
	return readAlignments(reader)
}

// readBAM parses the reads of a BAM input to records, one per read.
func readBAM(r io.Reader) ([]Record, error) {
	reader, err := bam.NewReader(r, 0)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return readAlignments(reader)
}

// alignmentReader is the part of sam.Reader and bam.Reader that's used here.
type alignmentReader interface {
	Read() (*sam.Record, error)
}

func readAlignments(reader alignmentReader) ([]Record, error) {
	var records []Record
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, err
		}

		records = append(records, Record{
			Seq:  string(rec.Seq.Expand()),
			Name: rec.Name,
		})
	}
}

// samLines drops carriage returns and blank lines from a SAM input and ends
// every line with a newline. sam.Reader skips an unterminated last line.
func samLines(raw []byte) []byte {
	var b bytes.Buffer
	b.Grow(len(raw) + 1)
	for _, line := range bytes.Split(raw, []byte("\n")) {
		line = bytes.TrimRight(line, "\r")
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// Package parse is for turning raw text, pasted or read from a file, into
// records of unnormalized sequences. Structural parsing is left to biogo for
// FASTA, FASTQ, SAM and BAM. GenBank and plain sequence text are read here.
package parse

import (
	"bytes"
	"fmt"

	"github.com/rfranks/geneboard/internal/nucleotide"
)

// Record is a single, unnormalized, entry parsed from raw text.
type Record struct {
	// Seq is the sequence as it was in the input (case preserved)
	Seq string

	// Name of the entry, ex: the ID of a FASTA header or the LOCUS name of a GenBank file
	Name string

	// Description of the entry, ex: the rest of a FASTA header after its ID
	Description string

	// Type is the molecule type hinted at by the input. Unknown if there was none
	Type nucleotide.MoleculeType

	// Format of the input the record was parsed from
	Format Format
}

// Format is a bio-sequence text format.
type Format int

const (
	// Empty is input without anything but whitespace
	Empty Format = iota

	// Plain is sequence text without any header
	Plain

	// FASTA is (multi-)FASTA
	FASTA

	// FASTQ is FASTQ
	FASTQ

	// GenBank is a GenBank flat file with one or more LOCUS entries
	GenBank

	// SAM is a text alignment file
	SAM

	// BAM is a BGZF compressed alignment file
	BAM
)

var formatNames = map[Format]string{
	Empty:   "empty",
	Plain:   "plain",
	FASTA:   "fasta",
	FASTQ:   "fastq",
	GenBank: "genbank",
	SAM:     "sam",
	BAM:     "bam",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// samHeaderTags are the record types of a SAM header line.
var samHeaderTags = [][]byte{[]byte("@HD\t"), []byte("@SQ\t"), []byte("@RG\t"), []byte("@PG\t"), []byte("@CO\t")}

// Detect guesses the format of raw input from its content. The filename an input
// came from isn't used.
func Detect(raw []byte) Format {
	// BAM is BGZF, so starts with the gzip magic number
	if len(raw) > 1 && raw[0] == 0x1f && raw[1] == 0x8b {
		return BAM
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Empty
	}

	firstLine := trimmed
	if i := bytes.IndexByte(trimmed, '\n'); i >= 0 {
		firstLine = trimmed[:i]
	}

	switch {
	case trimmed[0] == '>':
		return FASTA
	case bytes.HasPrefix(trimmed, []byte("LOCUS")):
		return GenBank
	case trimmed[0] == '@':
		for _, tag := range samHeaderTags {
			if bytes.HasPrefix(trimmed, tag) {
				return SAM
			}
		}
		return FASTQ
	case bytes.Count(firstLine, []byte("\t")) >= 10:
		return SAM // headerless alignments, 11 mandatory columns
	default:
		return Plain
	}
}

// Ingest parses raw input to records. Every record the format's parser returns is
// passed through: zero for empty input, more than one for multi-entry input.
// A parser error is returned with the records read before it.
func Ingest(raw []byte) ([]Record, error) {
	format := Detect(raw)

	var (
		records []Record
		err     error
	)
	switch format {
	case Empty:
		return nil, nil
	case BAM:
		records, err = readBAM(bytes.NewReader(raw))
	case FASTA:
		records, err = readFasta(bytes.NewReader(bytes.TrimSpace(raw)))
	case FASTQ:
		records, err = readFastq(bytes.NewReader(bytes.TrimSpace(raw)))
	case GenBank:
		records, err = readGenbank(string(raw))
	case SAM:
		records, err = readSAM(raw)
	default:
		records = readPlain(string(raw))
	}

	for i := range records {
		records[i].Format = format
	}
	if err != nil {
		return records, fmt.Errorf("failed to parse %s input: %w", format, err)
	}
	return records, nil
}

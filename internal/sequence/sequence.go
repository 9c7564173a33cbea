// Package sequence is for the canonical Sequence entity: normalizing parsed
// records into Sequences and keeping the working set of them in a Store.
package sequence

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rfranks/geneboard/internal/nucleotide"
	"github.com/rfranks/geneboard/internal/parse"
)

var (
	// ErrUnparseableInput is for input that no records could be parsed from
	ErrUnparseableInput = errors.New("unparseable input")

	// ErrMalformedRecord is for a parsed record without a usable sequence
	ErrMalformedRecord = errors.New("malformed record")
)

// Sequence is a single, normalized, nucleotide sequence.
type Sequence struct {
	// Description is the unique key of the sequence in a Store.
	// In a ">seq1 first sequence" FASTA header it's "seq1 first sequence"
	Description string `json:"description"`

	// Seq is the upper-cased sequence, invalid symbols included
	Seq string `json:"sequence"`

	// Type of the molecule, DNA unless the input said otherwise
	Type nucleotide.MoleculeType `json:"type"`

	// Filename the sequence was read from
	Filename string `json:"filename"`

	// HasAmbiguous is whether the input sequence had any symbols outside of A, T, G, C and U
	HasAmbiguous bool `json:"hasAmbiguous"`

	// Visualization is for data derived for charts
	Visualization map[string]any `json:"visualization"`

	// Overview is for data derived for summaries
	Overview map[string]any `json:"overview"`
}

// Len is the number of base-pairs in the sequence.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Seq)
}

// Window returns the sub-sequence in a base-pair Range. A nil Sequence has an
// empty window.
func (s *Sequence) Window(r nucleotide.Range) string {
	if s == nil {
		return ""
	}
	start, end := s.Bounds(r)
	return s.Seq[start:end]
}

// Bounds returns the 0-based half-open bounds of a Range in the sequence.
func (s *Sequence) Bounds(r nucleotide.Range) (start, end int) {
	return nucleotide.ResolveWindow(s.Len(), r)
}

// Annotate adds a key to the Visualization map. Existing keys are kept,
// and false is returned if key was already set or s is nil.
func (s *Sequence) Annotate(key string, value any) bool {
	if s == nil {
		return false
	}
	if s.Visualization == nil {
		s.Visualization = map[string]any{}
	}
	if _, exists := s.Visualization[key]; exists {
		return false
	}
	s.Visualization[key] = value
	return true
}

// Normalize turns a parsed record into a Sequence from filename.
//
// The description is the record's name, followed by its description if it has
// one. The sequence is upper-cased and the molecule type defaults to DNA.
// Records whose sequence isn't text (invalid UTF-8 or control characters)
// return ErrMalformedRecord.
func Normalize(rec parse.Record, filename string) (*Sequence, error) {
	if !utf8.ValidString(rec.Seq) {
		return nil, fmt.Errorf("failed to normalize %q, sequence is not UTF-8: %w", rec.Name, ErrMalformedRecord)
	}
	if i := strings.IndexFunc(rec.Seq, unicode.IsControl); i >= 0 {
		return nil, fmt.Errorf("failed to normalize %q, control character at %d: %w", rec.Name, i+1, ErrMalformedRecord)
	}

	description := rec.Name
	if rec.Description != "" {
		description = rec.Name + " " + rec.Description
	}

	molecule := rec.Type
	if molecule == nucleotide.Unknown {
		molecule = nucleotide.DNA
	}

	return &Sequence{
		Description:   description,
		Seq:           strings.ToUpper(rec.Seq),
		Type:          molecule,
		Filename:      filename,
		HasAmbiguous:  nucleotide.HasAmbiguous(rec.Seq),
		Visualization: map[string]any{},
		Overview:      map[string]any{},
	}, nil
}

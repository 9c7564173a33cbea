package sequence

import (
	"fmt"

	"github.com/rfranks/geneboard/internal/parse"
)

// RecordError is the failure to normalize one record of an input.
type RecordError struct {
	// Index of the record in the input, 0-based
	Index int

	// Name of the record
	Name string

	// Err is why it failed
	Err error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d (%s): %v", e.Index+1, e.Name, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Result is the outcome of parsing an input. It can have both Sequences and
// Failures: a bad record doesn't drop its siblings.
type Result struct {
	// Filename the input came from
	Filename string

	// Format detected for the input
	Format parse.Format

	// Sequences normalized from the input, in input order
	Sequences []*Sequence

	// Failures are the records that couldn't be normalized
	Failures []*RecordError

	// Err is set, and matches ErrUnparseableInput, if the input couldn't be parsed
	// or had no records. Sequences read before a parse error are kept.
	Err error
}

// OK is whether every record of the input was parsed and normalized.
func (r *Result) OK() bool {
	return r.Err == nil && len(r.Failures) == 0
}

// Parse ingests raw input and normalizes each of its records.
func Parse(raw []byte, filename string) *Result {
	result := &Result{Filename: filename, Format: parse.Detect(raw)}

	records, err := parse.Ingest(raw)
	if err != nil {
		result.Err = fmt.Errorf("failed to parse %s: %w: %v", filename, ErrUnparseableInput, err)
	} else if len(records) == 0 {
		result.Err = fmt.Errorf("failed to parse %s: %w: no sequences found", filename, ErrUnparseableInput)
	}

	for i, rec := range records {
		s, err := Normalize(rec, filename)
		if err != nil {
			result.Failures = append(result.Failures, &RecordError{Index: i, Name: rec.Name, Err: err})
			continue
		}
		result.Sequences = append(result.Sequences, s)
	}

	return result
}

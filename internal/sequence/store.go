package sequence

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/rfranks/geneboard/internal/nucleotide"
)

// Store is the working set of Sequences, keyed by their Description.
// It isn't safe for concurrent use.
type Store struct {
	sequences map[string]*Sequence
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{sequences: make(map[string]*Sequence)}
}

// Add puts sequences in the store. A sequence with the same Description as one
// already there replaces it.
func (s *Store) Add(seqs ...*Sequence) {
	for _, seq := range seqs {
		if seq == nil {
			continue
		}
		s.sequences[seq.Description] = seq
	}
}

// Get returns the sequence with a description.
func (s *Store) Get(description string) (*Sequence, bool) {
	seq, ok := s.sequences[description]
	return seq, ok
}

// Len is the number of sequences in the store.
func (s *Store) Len() int {
	return len(s.sequences)
}

// Keys are the descriptions of the sequences, sorted.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.sequences))
	for k := range s.sequences {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns every sequence, sorted by description.
func (s *Store) All() []*Sequence {
	all := make([]*Sequence, 0, len(s.sequences))
	for _, k := range s.Keys() {
		all = append(all, s.sequences[k])
	}
	return all
}

// RemoveAll empties the store.
func (s *Store) RemoveAll() {
	s.sequences = make(map[string]*Sequence)
}

// RemoveWhere removes every sequence that matches and returns how many were removed.
// A nil match removes nothing.
func (s *Store) RemoveWhere(match func(*Sequence) bool) int {
	if match == nil {
		return 0
	}
	removed := 0
	for k, seq := range s.sequences {
		if match(seq) {
			delete(s.sequences, k)
			removed++
		}
	}
	return removed
}

// RemoveAmbiguous removes the sequences with ambiguous symbols.
func (s *Store) RemoveAmbiguous() int {
	return s.RemoveWhere(func(seq *Sequence) bool { return seq.HasAmbiguous })
}

// TotalBasepairs is the sum of the lengths of the sequences.
func (s *Store) TotalBasepairs() int {
	total := 0
	for _, seq := range s.sequences {
		total += seq.Len()
	}
	return total
}

// Summary is an overview of the sequences in a Store.
type Summary struct {
	// Count is the number of sequences
	Count int `json:"count"`

	// Basepairs is the total number of base-pairs
	Basepairs int `json:"basepairs"`

	// Ambiguous is the number of sequences with ambiguous symbols
	Ambiguous int `json:"ambiguous"`

	// MeanLength of the sequences
	MeanLength float64 `json:"meanLength"`

	// StdDevLength is the standard deviation of the sequence lengths
	StdDevLength float64 `json:"stdDevLength"`

	// MeanGC is the mean GC% of the sequences
	MeanGC float64 `json:"meanGC"`
}

// Summary computes a Summary of the sequences in the store. It's recomputed on every call.
func (s *Store) Summary() Summary {
	summary := Summary{Count: len(s.sequences)}
	if summary.Count == 0 {
		return summary
	}

	lengths := make([]float64, 0, summary.Count)
	gcs := make([]float64, 0, summary.Count)
	for _, seq := range s.sequences {
		summary.Basepairs += seq.Len()
		if seq.HasAmbiguous {
			summary.Ambiguous++
		}
		lengths = append(lengths, float64(seq.Len()))
		gcs = append(gcs, nucleotide.GC(seq.Seq))
	}

	summary.MeanLength, summary.StdDevLength = stat.MeanStdDev(lengths, nil)
	if summary.Count == 1 {
		summary.StdDevLength = 0 // undefined for a single sample
	}
	summary.MeanGC = stat.Mean(gcs, nil)

	return summary
}

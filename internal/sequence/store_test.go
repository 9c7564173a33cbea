package sequence

import (
	"math"
	"reflect"
	"testing"
)

func newSeq(description, seq string, ambiguous bool) *Sequence {
	return &Sequence{Description: description, Seq: seq, HasAmbiguous: ambiguous}
}

func TestStore_Add(t *testing.T) {
	s := NewStore()
	first := newSeq("dup", "AAAA", false)
	second := newSeq("dup", "GGGG", false)

	s.Add(first, newSeq("other", "CC", false))
	s.Add(second, nil)

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	// last write wins on a duplicate description
	got, ok := s.Get("dup")
	if !ok || got != second {
		t.Errorf("Get(dup) = %v, want the second sequence", got)
	}
}

func TestStore_Keys(t *testing.T) {
	s := NewStore()
	s.Add(newSeq("b", "A", false), newSeq("c", "A", false), newSeq("a", "A", false))

	if got := s.Keys(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Keys() = %v", got)
	}

	var descriptions []string
	for _, seq := range s.All() {
		descriptions = append(descriptions, seq.Description)
	}
	if !reflect.DeepEqual(descriptions, []string{"a", "b", "c"}) {
		t.Errorf("All() = %v", descriptions)
	}
}

func TestStore_Remove(t *testing.T) {
	s := NewStore()
	s.Add(
		newSeq("clean", "ATGC", false),
		newSeq("n", "ATGN", true),
		newSeq("gap", "AT-C", true),
	)

	if removed := s.RemoveAmbiguous(); removed != 2 {
		t.Errorf("RemoveAmbiguous() = %d, want 2", removed)
	}
	if got := s.Keys(); !reflect.DeepEqual(got, []string{"clean"}) {
		t.Errorf("Keys() after RemoveAmbiguous() = %v", got)
	}

	if removed := s.RemoveWhere(func(seq *Sequence) bool { return seq.Len() > 10 }); removed != 0 {
		t.Errorf("RemoveWhere() = %d, want 0", removed)
	}
	if removed := s.RemoveWhere(nil); removed != 0 || s.Len() != 1 {
		t.Errorf("RemoveWhere(nil) = %d, left %d sequences", removed, s.Len())
	}

	s.RemoveAll()
	if s.Len() != 0 || s.TotalBasepairs() != 0 {
		t.Errorf("RemoveAll() left %d sequences", s.Len())
	}
}

func TestStore_Summary(t *testing.T) {
	s := NewStore()
	if got := s.Summary(); got != (Summary{}) {
		t.Errorf("Summary() of empty store = %+v", got)
	}

	s.Add(newSeq("one", "GGCC", false))
	got := s.Summary()
	if got.Count != 1 || got.Basepairs != 4 || got.MeanLength != 4 || got.StdDevLength != 0 || got.MeanGC != 100 {
		t.Errorf("Summary() of one sequence = %+v", got)
	}

	s.Add(newSeq("two", "ATATNNNN", true))
	got = s.Summary()
	if got.Count != 2 || got.Basepairs != 12 || got.Ambiguous != 1 || got.MeanLength != 6 || got.MeanGC != 50 {
		t.Errorf("Summary() = %+v", got)
	}
	if want := math.Sqrt(8); math.Abs(got.StdDevLength-want) > 1e-9 {
		t.Errorf("Summary() StdDevLength = %v, want %v", got.StdDevLength, want)
	}
	if s.TotalBasepairs() != 12 {
		t.Errorf("TotalBasepairs() = %d, want 12", s.TotalBasepairs())
	}
}

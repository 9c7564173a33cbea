package nucleotide

import "testing"

func TestIsValidBase(t *testing.T) {
	tests := []struct {
		name string
		b    byte
		want bool
	}{
		{"upper A", 'A', true},
		{"lower a", 'a', true},
		{"upper T", 'T', true},
		{"lower t", 't', true},
		{"upper G", 'G', true},
		{"lower g", 'g', true},
		{"upper C", 'C', true},
		{"lower c", 'c', true},
		{"upper U", 'U', true},
		{"lower u", 'u', true},
		{"ambiguity code N", 'N', false},
		{"ambiguity code r", 'r', false},
		{"gap", '-', false},
		{"space", ' ', false},
		{"newline", '\n', false},
		{"digit", '1', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidBase(tt.b); got != tt.want {
				t.Errorf("IsValidBase(%q) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestIsValidBase_total(t *testing.T) {
	for b := 0; b < 256; b++ {
		want := false
		switch byte(b) {
		case 'A', 'T', 'G', 'C', 'U', 'a', 't', 'g', 'c', 'u':
			want = true
		}
		if got := IsValidBase(byte(b)); got != want {
			t.Errorf("IsValidBase(%d) = %v, want %v", b, got, want)
		}
	}
}

func TestColorOf(t *testing.T) {
	tests := []struct {
		name string
		b    byte
		want ColorClass
	}{
		{"A", 'A', Blue},
		{"a", 'a', Blue},
		{"T", 'T', Yellow},
		{"t", 't', Yellow},
		{"G", 'G', Green},
		{"g", 'g', Green},
		{"C", 'C', Pink},
		{"c", 'c', Pink},
		{"U", 'U', Purple},
		{"u", 'u', Purple},
		{"N", 'N', Neutral},
		{"gap", '-', Neutral},
		{"NUL", 0, Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorOf(tt.b); got != tt.want {
				t.Errorf("ColorOf(%q) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestHasAmbiguous(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want bool
	}{
		{"empty", "", false},
		{"mixed case dna", "atgcATGC", false},
		{"rna", "AUGC", false},
		{"N", "atgcn", true},
		{"whitespace", "AT GC", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasAmbiguous(tt.seq); got != tt.want {
				t.Errorf("HasAmbiguous(%q) = %v, want %v", tt.seq, got, tt.want)
			}
		})
	}
}

func TestParseMoleculeType(t *testing.T) {
	tests := []struct {
		label string
		want  MoleculeType
	}{
		{"", Unknown},
		{"DNA", DNA},
		{"ds-DNA", DNA},
		{"rna", RNA},
		{"mRNA", RNA},
		{"ss-RNA", RNA},
		{"linear", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := ParseMoleculeType(tt.label); got != tt.want {
				t.Errorf("ParseMoleculeType(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

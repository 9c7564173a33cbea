package nucleotide

import (
	"reflect"
	"testing"
)

func TestResolveWindow(t *testing.T) {
	tests := []struct {
		name      string
		length    int
		r         Range
		wantStart int
		wantEnd   int
	}{
		{"full closed range", 100, Range{1, 100}, 0, 100},
		{"absent bounds", 100, Range{}, 0, 100},
		{"absent max", 100, Range{Min: 11}, 10, 100},
		{"absent min", 100, Range{Max: 10}, 0, 10},
		{"single base", 100, Range{5, 5}, 4, 5},
		{"max past the end", 100, Range{1, 500}, 0, 100},
		{"min past the end", 100, Range{200, 300}, 100, 100},
		{"negative min", 100, Range{-5, 10}, 0, 10},
		{"inverted", 100, Range{50, 10}, 10, 10},
		{"empty sequence", 0, Range{1, 50}, 0, 0},
		{"negative length", -1, Range{1, 50}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ResolveWindow(tt.length, tt.r)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("ResolveWindow(%d, %v) = [%d, %d), want [%d, %d)", tt.length, tt.r, start, end, tt.wantStart, tt.wantEnd)
			}
			if start < 0 || start > end || (tt.length > 0 && end > tt.length) {
				t.Errorf("ResolveWindow(%d, %v) = [%d, %d) is out of bounds", tt.length, tt.r, start, end)
			}
		})
	}
}

func TestRows(t *testing.T) {
	got := Rows("ATGCATGCAT", 20, 4)
	want := []Row{{21, "ATGC"}, {25, "ATGC"}, {29, "AT"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rows() = %v, want %v", got, want)
	}

	if got := Rows("", 0, 4); len(got) != 0 {
		t.Errorf("Rows() of empty window = %v", got)
	}

	if got := Rows("ATGC", 0, 0); !reflect.DeepEqual(got, []Row{{1, "ATGC"}}) {
		t.Errorf("Rows() with no width = %v", got)
	}
}

func TestPage(t *testing.T) {
	rows := Rows("AAAABBBBCCCCDDDDE", 0, 4) // 5 rows

	tests := []struct {
		name      string
		perPage   int
		page      int
		wantRows  []Row
		wantPages int
	}{
		{"first page", 2, 1, rows[0:2], 3},
		{"last page", 2, 3, rows[4:5], 3},
		{"past the last page", 2, 4, nil, 3},
		{"page zero is the first", 2, 0, rows[0:2], 3},
		{"everything", 0, 1, rows, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, pages := Page(rows, tt.perPage, tt.page)
			if !reflect.DeepEqual(got, tt.wantRows) || pages != tt.wantPages {
				t.Errorf("Page() = %v, %d, want %v, %d", got, pages, tt.wantRows, tt.wantPages)
			}
		})
	}
}

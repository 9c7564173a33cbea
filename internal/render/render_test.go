package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rfranks/geneboard/internal/nucleotide"
	"github.com/rfranks/geneboard/internal/sequence"
)

func TestViewer_Render(t *testing.T) {
	s := &sequence.Sequence{Description: "x", Seq: "ATGCNATGCAUG"}

	tests := []struct {
		name      string
		viewer    Viewer
		r         nucleotide.Range
		page      int
		want      string
		wantPages int
	}{
		{
			"rows of 5",
			Viewer{Width: 5},
			nucleotide.Range{},
			1,
			" 1 ATGCN\n 6 ATGCA\n11 UG\n",
			1,
		},
		{
			"second page of a window",
			Viewer{Width: 2, Rows: 2},
			nucleotide.Range{Min: 3, Max: 10},
			2,
			"7 TG\n9 CA\n",
			2,
		},
		{
			"two bit codes",
			Viewer{Width: 6, TwoBit: true},
			nucleotide.Range{Min: 1, Max: 6},
			1,
			"1 10 00 11 01 -- 10\n",
			1,
		},
		{
			"past the last page",
			Viewer{Width: 5, Rows: 1},
			nucleotide.Range{},
			9,
			"",
			3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			pages, err := tt.viewer.Render(&buf, s, tt.r, tt.page)
			if err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
			if pages != tt.wantPages {
				t.Errorf("Render() pages = %d, want %d", pages, tt.wantPages)
			}
		})
	}
}

func TestTallyTable(t *testing.T) {
	var buf bytes.Buffer
	if err := TallyTable(&buf, nucleotide.Tally("ATUGC")); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"U", "40.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("TallyTable() = %q, missing %q", out, want)
		}
	}
	if strings.Contains(out, "T ") {
		t.Errorf("TallyTable() = %q, has T with U present", out)
	}
}

func TestSeriesTSV(t *testing.T) {
	var buf bytes.Buffer
	if err := SeriesTSV(&buf, []float64{0, 0.5}, []float64{0, -1}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "x\ty\n0\t0\n0.5\t-1\n"; got != want {
		t.Errorf("SeriesTSV() = %q, want %q", got, want)
	}
}

func TestSequenceTable(t *testing.T) {
	store := sequence.NewStore()
	store.Add(&sequence.Sequence{Description: "seq1", Seq: "GGCC", Type: nucleotide.DNA, Filename: "a.fa"})

	var buf bytes.Buffer
	if err := SequenceTable(&buf, store.All(), store.Summary()); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"seq1", "DNA", "a.fa", "1 sequences, 4 bps", "mean GC 100.00%"} {
		if !strings.Contains(out, want) {
			t.Errorf("SequenceTable() = %q, missing %q", out, want)
		}
	}
}

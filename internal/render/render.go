// Package render is for printing sequences, tallies and chart series to a terminal.
package render

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/rfranks/geneboard/internal/nucleotide"
	"github.com/rfranks/geneboard/internal/sequence"
)

// newTable returns a tabwriter with the spacing used for every table here
func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
}

// SequenceTable writes a row per sequence and a summary of all of them.
func SequenceTable(w io.Writer, seqs []*sequence.Sequence, summary sequence.Summary) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "description\tbp\ttype\tambiguous\tfilename\t\n")
	for _, s := range seqs {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%t\t%s\t\n", s.Description, s.Len(), s.Type, s.HasAmbiguous, s.Filename)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(
		w,
		"\n%d sequences, %d bps (%d ambiguous), mean length %.2f bps (sd %.2f), mean GC %.2f%%\n",
		summary.Count, summary.Basepairs, summary.Ambiguous, summary.MeanLength, summary.StdDevLength, summary.MeanGC,
	)
	return err
}

// TallyTable writes the counts of a tally and its GC%.
func TallyTable(w io.Writer, counts []nucleotide.Count) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "base\tcount\t\n")
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%d\t\n", c.Base, c.Count)
	}
	if len(counts) > 0 {
		fmt.Fprintf(tw, "GC %%\t%s\t\n", counts[0].GCText())
	}
	return tw.Flush()
}

// SeriesTSV writes the points of a chart series, one per line.
func SeriesTSV(w io.Writer, xs, ys []float64) error {
	if _, err := fmt.Fprintf(w, "x\ty\n"); err != nil {
		return err
	}
	for i := range xs {
		x := strconv.FormatFloat(xs[i], 'f', -1, 64)
		y := strconv.FormatFloat(ys[i], 'f', -1, 64)
		if _, err := fmt.Fprintf(w, "%s\t%s\n", x, y); err != nil {
			return err
		}
	}
	return nil
}

package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rfranks/geneboard/internal/nucleotide"
	"github.com/rfranks/geneboard/internal/sequence"
)

// colors are the background colors of each ColorClass
var colors = map[nucleotide.ColorClass]lipgloss.Color{
	nucleotide.Blue:    lipgloss.Color("#ADD8E6"),
	nucleotide.Yellow:  lipgloss.Color("#FFFFE0"),
	nucleotide.Green:   lipgloss.Color("#90EE90"),
	nucleotide.Pink:    lipgloss.Color("#FFB6C1"),
	nucleotide.Purple:  lipgloss.Color("#CBC3E3"),
	nucleotide.Neutral: lipgloss.Color("#FFFFFF"),
}

// Viewer prints a window of a sequence as numbered rows of colored bases.
type Viewer struct {
	// Width is the number of bases per row
	Width int

	// Rows is the number of rows per page, all of them if < 1
	Rows int

	// TwoBit prints each base's 2-bit code rather than the base
	TwoBit bool
}

// Render writes one page of the window r of s and returns the number of pages.
// Colors are only used if w is a terminal that supports them.
func (v Viewer) Render(w io.Writer, s *sequence.Sequence, r nucleotide.Range, page int) (pages int, err error) {
	start, _ := s.Bounds(r)
	rows, pages := nucleotide.Page(nucleotide.Rows(s.Window(r), start, v.Width), v.Rows, page)
	if len(rows) == 0 {
		return pages, nil
	}

	renderer := lipgloss.NewRenderer(w)
	styles := make(map[nucleotide.ColorClass]lipgloss.Style, len(colors))
	for class, color := range colors {
		styles[class] = renderer.NewStyle().Foreground(lipgloss.Color("#000000")).Background(color)
	}

	pad := len(strconv.Itoa(rows[len(rows)-1].Start))
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%*d %s\n", pad, row.Start, v.row(row.Bases, styles)); err != nil {
			return pages, err
		}
	}
	return pages, nil
}

// row styles the bases of a row, a run of bases with the same ColorClass at a time.
func (v Viewer) row(bases string, styles map[nucleotide.ColorClass]lipgloss.Style) string {
	var runs []string
	for i := 0; i < len(bases); {
		class := nucleotide.ColorOf(bases[i])
		j := i + 1
		for j < len(bases) && nucleotide.ColorOf(bases[j]) == class {
			j++
		}

		run := bases[i:j]
		if v.TwoBit {
			run = twoBitRun(run)
		}
		runs = append(runs, styles[class].Render(run))
		i = j
	}

	if v.TwoBit {
		return strings.Join(runs, " ")
	}
	return strings.Join(runs, "")
}

// twoBitRun is a run of bases as their space separated codes, "--" for bases without one.
func twoBitRun(run string) string {
	codes := make([]string, len(run))
	for i := range codes {
		if codes[i] = nucleotide.ToTwoBit(run[i]); codes[i] == "" {
			codes[i] = "--"
		}
	}
	return strings.Join(codes, " ")
}

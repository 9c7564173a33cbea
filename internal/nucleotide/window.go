package nucleotide

// Range is a 1-based, closed range of base-pairs, ex: [1, 100] is the first 100 bp.
// A zero bound is absent: Min defaults to the first base and Max to the last.
type Range struct {
	Min int
	Max int
}

// ResolveWindow turns a Range, against a sequence's length, into a 0-based
// half-open window [start, end) that's safe to slice with.
//
// The window is clamped so that 0 <= start <= end <= length. A length of
// 0 (or less) resolves to [0, 0).
func ResolveWindow(length int, r Range) (start, end int) {
	if length <= 0 {
		return 0, 0
	}

	start = r.Min - 1
	if start < 0 {
		start = 0
	}

	end = r.Max
	if end <= 0 || end > length {
		end = length
	}

	if start > end {
		start = end
	}
	return start, end
}

// Row is one line of a windowed sequence in the viewer.
type Row struct {
	// Start is the 1-based position of the first base in the row
	Start int

	// Bases in the row
	Bases string
}

// Rows splits a window into rows of width bases. offset is the 0-based start of the
// window in its sequence, so row starts are positions in the full sequence.
func Rows(window string, offset, width int) []Row {
	if width < 1 {
		width = len(window)
	}

	var rows []Row
	for i := 0; i < len(window); i += width {
		j := i + width
		if j > len(window) {
			j = len(window)
		}
		rows = append(rows, Row{Start: offset + i + 1, Bases: window[i:j]})
	}
	return rows
}

// Page returns the 1-based page of rows, perPage rows at a time, and the number of
// pages. Pages past the last are empty.
func Page(rows []Row, perPage, page int) (paged []Row, pages int) {
	if perPage < 1 {
		perPage = len(rows)
	}
	if perPage == 0 {
		return nil, 0
	}

	pages = (len(rows) + perPage - 1) / perPage
	if page < 1 {
		page = 1
	}

	start := (page - 1) * perPage
	if start >= len(rows) {
		return nil, pages
	}
	end := start + perPage
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], pages
}

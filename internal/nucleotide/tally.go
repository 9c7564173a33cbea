package nucleotide

import (
	"fmt"
	"strconv"
)

// Count is the number of times one base is in a window, along with the
// window's GC content. GC is shared by every Count of a tally.
type Count struct {
	// Base is the name of the base: "A", "C", "G", "T" or "U"
	Base string `json:"name"`

	// Count is the number of times Base is in the window
	Count int `json:"count"`

	// GC is the percentage of the window that's G or C, to 2 decimal places
	GC float64 `json:"gc"`
}

// GCText returns GC as it is displayed, ex: "40.00".
func (c Count) GCText() string {
	return fmt.Sprintf("%.2f", c.GC)
}

// Tally counts the bases in a window. It returns four counts, in order:
// A, C, G and then U if there is any U in the window, otherwise T.
//
// Only uppercase A, C, G, T and U are counted. GC is computed over the raw
// length of the window, so uncounted symbols (N, gaps, lowercase) still count
// toward the denominator. An empty window has a GC of 0.
//
// When a window has both T and U, only U is returned and the T count is dropped.
func Tally(window string) []Count {
	var a, c, g, t, u int
	for i := 0; i < len(window); i++ {
		switch window[i] {
		case 'A':
			a++
		case 'C':
			c++
		case 'G':
			g++
		case 'T':
			t++
		case 'U':
			u++
		}
	}

	gc := 0.0
	if len(window) > 0 {
		gc = roundPercent(float64(g+c) / float64(len(window)) * 100)
	}

	counts := []Count{
		{Base: "A", Count: a, GC: gc},
		{Base: "C", Count: c, GC: gc},
		{Base: "G", Count: g, GC: gc},
	}
	if u > 0 {
		counts = append(counts, Count{Base: "U", Count: u, GC: gc})
	} else {
		counts = append(counts, Count{Base: "T", Count: t, GC: gc})
	}
	return counts
}

// GC returns the GC percentage of a window, as reported by Tally.
func GC(window string) float64 {
	return Tally(window)[0].GC
}

// roundPercent returns a float to 2 decimal places
func roundPercent(p float64) float64 {
	rounded, _ := strconv.ParseFloat(fmt.Sprintf("%.2f", p), 64)
	return rounded
}

package chart

import "math"

// squiggle is the method of Lee et al. (2018): every base is two half-steps
// along x. A and C peak up or down and return, G and T climb or fall by one.
type squiggle struct{}

func (squiggle) Name() string { return "squiggle" }

func (squiggle) Compute(window string) (xs, ys []float64) {
	window = bases(window)

	xs = append(make([]float64, 0, 2*len(window)+1), 0)
	ys = append(make([]float64, 0, 2*len(window)+1), 0)
	y := 0.0
	for i := 0; i < len(window); i++ {
		x := float64(i)
		switch window[i] {
		case 'A':
			ys = append(ys, y+0.5, y)
		case 'C':
			ys = append(ys, y-0.5, y)
		case 'T':
			ys = append(ys, y-0.5, y-1)
			y--
		case 'G':
			ys = append(ys, y+0.5, y+1)
			y++
		default:
			ys = append(ys, y, y)
		}
		xs = append(xs, x+0.5, x+1)
	}
	return xs, ys
}

// gates is the walk of Gates (1986): A down, T up, G right and C left.
type gates struct{}

func (gates) Name() string { return "gates" }

func (gates) Compute(window string) (xs, ys []float64) {
	window = bases(window)

	x, y := 0.0, 0.0
	xs, ys = []float64{x}, []float64{y}
	for i := 0; i < len(window); i++ {
		switch window[i] {
		case 'A':
			y--
		case 'T':
			y++
		case 'G':
			x++
		case 'C':
			x--
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}

// yau is the walk of Yau et al. (2003): every base is a unit vector to the right,
// purines (A, G) below the x axis and pyrimidines (T, C) above it.
type yau struct{}

func (yau) Name() string { return "yau" }

var yauSteps = map[byte][2]float64{
	'A': {0.5, -math.Sqrt(3) / 2},
	'T': {0.5, math.Sqrt(3) / 2},
	'G': {math.Sqrt(3) / 2, -0.5},
	'C': {math.Sqrt(3) / 2, 0.5},
}

func (yau) Compute(window string) (xs, ys []float64) {
	window = bases(window)

	x, y := 0.0, 0.0
	xs, ys = []float64{x}, []float64{y}
	for i := 0; i < len(window); i++ {
		if step, ok := yauSteps[window[i]]; ok {
			x += step[0]
			y += step[1]
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}

// qi is the method of Qi and Qi (2007): each dinucleotide is one of 16 values,
// plotted by the position of its first base.
type qi struct{}

func (qi) Name() string { return "qi" }

var qiValues = map[string]float64{
	"AA": 12, "AC": 4, "GT": 6, "AG": 0,
	"CC": 13, "CA": 5, "CG": 10, "TT": 15,
	"GG": 14, "GC": 11, "AT": 8, "GA": 1,
	"TG": 7, "TA": 9, "TC": 3, "CT": 2,
}

func (qi) Compute(window string) (xs, ys []float64) {
	window = bases(window)

	xs, ys = []float64{}, []float64{}
	for i := 0; i+1 < len(window); i++ {
		if v, ok := qiValues[window[i:i+2]]; ok {
			xs = append(xs, float64(i))
			ys = append(ys, v)
		}
	}
	return xs, ys
}

// randic is the method of Randić et al. (2003): each base has a row, ex:
// A is 3, and is plotted by its position.
type randic struct{}

func (randic) Name() string { return "randic" }

var randicValues = map[byte]float64{'A': 3, 'T': 2, 'G': 1, 'C': 0}

func (randic) Compute(window string) (xs, ys []float64) {
	window = bases(window)

	xs, ys = []float64{}, []float64{}
	for i := 0; i < len(window); i++ {
		if v, ok := randicValues[window[i]]; ok {
			xs = append(xs, float64(i))
			ys = append(ys, v)
		}
	}
	return xs, ys
}

package nucleotide

// ColorClass is the display bucket a symbol is drawn with.
type ColorClass string

const (
	Blue    ColorClass = "blue-class"
	Yellow  ColorClass = "yellow-class"
	Green   ColorClass = "green-class"
	Pink    ColorClass = "pink-class"
	Purple  ColorClass = "purple-class"
	Neutral ColorClass = "neutral-class"
)

// upper folds an ASCII lowercase letter to uppercase.
func upper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// IsValidBase returns whether b is one of A, T, G, C or U, ignoring case.
// Ambiguity codes (N, R, Y...), gaps and whitespace are not valid.
func IsValidBase(b byte) bool {
	switch upper(b) {
	case 'A', 'T', 'G', 'C', 'U':
		return true
	default:
		return false
	}
}

// ColorOf returns the ColorClass of a symbol, ignoring case. Anything that isn't
// a valid base is Neutral.
func ColorOf(b byte) ColorClass {
	switch upper(b) {
	case 'A':
		return Blue
	case 'T':
		return Yellow
	case 'G':
		return Green
	case 'C':
		return Pink
	case 'U':
		return Purple
	default:
		return Neutral
	}
}

// HasAmbiguous returns whether seq has any symbol that isn't a valid base.
func HasAmbiguous(seq string) bool {
	for i := 0; i < len(seq); i++ {
		if !IsValidBase(seq[i]) {
			return true
		}
	}
	return false
}

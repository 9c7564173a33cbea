package nucleotide

import (
	"errors"
	"fmt"
)

// ErrUnencodable is returned when a symbol has no 2-bit code.
var ErrUnencodable = errors.New("no 2-bit code for symbol")

// 2-bit codes, in the order of the UCSC .2bit format:
// T to 00, C to 01, A to 10 and G to 11.
// see https://genome.ucsc.edu/FAQ/FAQformat.html#format7
var codeToBase = [4]byte{'T', 'C', 'A', 'G'}

// code returns the 2-bit value of an upper-case base. U shares T's code.
func code(b byte) (byte, bool) {
	switch b {
	case 'T', 'U':
		return 0, true
	case 'C':
		return 1, true
	case 'A':
		return 2, true
	case 'G':
		return 3, true
	default:
		return 0, false
	}
}

// ToTwoBit returns the 2-bit code of a base as a string of two binary digits.
//
// It is case-sensitive, unlike IsValidBase and ColorOf: lowercase bases (and
// everything else without a code) return "". Uppercase before encoding.
func ToTwoBit(b byte) string {
	c, ok := code(b)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%02b", c)
}

// Pack packs seq into bytes of four bases each, first base in the most
// significant bits. The last byte is padded with zeros (T).
func Pack(seq string) ([]byte, error) {
	packed := make([]byte, (len(seq)+3)/4)
	for i := 0; i < len(seq); i++ {
		c, ok := code(seq[i])
		if !ok {
			return nil, fmt.Errorf("failed to pack %q at %d: %w", seq[i], i+1, ErrUnencodable)
		}
		packed[i/4] |= c << uint(6-2*(i%4))
	}
	return packed, nil
}

// Unpack is the inverse of Pack for the first n bases of packed. 00 unpacks to T.
func Unpack(packed []byte, n int) string {
	if n < 0 {
		n = 0
	}
	if limit := len(packed) * 4; n > limit {
		n = limit
	}

	bases := make([]byte, n)
	for i := range bases {
		c := (packed[i/4] >> uint(6-2*(i%4))) & 3
		bases[i] = codeToBase[c]
	}
	return string(bases)
}

// Package nucleotide is for the per-symbol logic shared by every view of a
// sequence: which symbols are valid bases, how they're colored, their 2-bit
// codes, composition tallies and base-pair windows.
package nucleotide

import "strings"

// MoleculeType is the kind of nucleic acid a sequence is made of.
type MoleculeType int

const (
	// Unknown means no type could be determined (or none was hinted)
	Unknown MoleculeType = iota

	// DNA is deoxyribonucleic acid, with T
	DNA

	// RNA is ribonucleic acid, with U
	RNA
)

// String returns "DNA", "RNA" or "" for Unknown.
func (m MoleculeType) String() string {
	switch m {
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	default:
		return ""
	}
}

// MarshalText is for serializing a MoleculeType by its name.
func (m MoleculeType) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseMoleculeType maps a molecule label, like those in the molecule column of a
// GenBank LOCUS line ("DNA", "mRNA", "ss-RNA", "cRNA"), to a MoleculeType.
func ParseMoleculeType(label string) MoleculeType {
	label = strings.ToUpper(strings.TrimSpace(label))
	switch {
	case label == "":
		return Unknown
	case strings.HasSuffix(label, "RNA"):
		return RNA
	case strings.HasSuffix(label, "DNA"):
		return DNA
	default:
		return Unknown
	}
}

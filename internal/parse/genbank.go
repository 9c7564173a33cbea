package parse

import (
	"regexp"
	"strings"

	"github.com/rfranks/geneboard/internal/nucleotide"
)

var (
	// locusRegex matches the name and the rest of a LOCUS line
	locusRegex = regexp.MustCompile(`(?m)^LOCUS[ \t]+(\S+)(.*)$`)

	// moleculeRegex matches a molecule type in the LOCUS line, ex: "ds-DNA", "mRNA"
	moleculeRegex = regexp.MustCompile(`(?i)\b((?:ss-|ds-|ms-)?[a-z]*(?:DNA|RNA))\b`)

	// definitionRegex matches the DEFINITION and its continuation lines
	definitionRegex = regexp.MustCompile(`(?m)^DEFINITION[ \t]+(.*(?:\n[ \t]{2,}.*)*)`)

	// entryEndRegex matches the "//" line that ends each entry
	entryEndRegex = regexp.MustCompile(`(?m)^//[ \t\r]*$`)

	// nonSeqRegex matches the position numbers and whitespace of ORIGIN lines
	nonSeqRegex = regexp.MustCompile(`[\s\d]`)
)

// readGenbank parses a GenBank file, with one or more LOCUS entries, to records.
// An entry without an ORIGIN has an empty sequence.
func readGenbank(contents string) ([]Record, error) {
	var records []Record
	for _, entry := range entryEndRegex.Split(contents, -1) {
		locus := locusRegex.FindStringSubmatch(entry)
		if locus == nil {
			continue // trailing whitespace after the last "//"
		}

		rec := Record{Name: locus[1]}
		if molecule := moleculeRegex.FindStringSubmatch(locus[2]); molecule != nil {
			rec.Type = nucleotide.ParseMoleculeType(molecule[1])
		}

		header := entry
		if i := strings.Index(entry, "\nORIGIN"); i >= 0 {
			header = entry[:i]
			origin := entry[i+len("\nORIGIN"):]
			if j := strings.IndexByte(origin, '\n'); j >= 0 {
				rec.Seq = nonSeqRegex.ReplaceAllString(origin[j+1:], "")
			}
		}

		if def := definitionRegex.FindStringSubmatch(header); def != nil {
			rec.Description = strings.TrimSuffix(strings.Join(strings.Fields(def[1]), " "), ".")
		}

		records = append(records, rec)
	}

	return records, nil
}

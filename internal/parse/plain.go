package parse

// untitled is the name of a sequence pasted without a header
const untitled = "Untitled Sequence"

// readPlain reads headerless sequence text as a single record. Whitespace and
// position numbers are dropped.
func readPlain(contents string) []Record {
	seq := nonSeqRegex.ReplaceAllString(contents, "")
	if seq == "" {
		return nil
	}

	return []Record{{Seq: seq, Name: untitled}}
}

package corpus

import "strings"

// Tokenize lower-cases a record and splits it on whitespace. Punctuation is
// kept attached to its word; stemming and stopword removal are deferred.
func Tokenize(record string) Line {
	fields := strings.Fields(strings.ToLower(record))
	if len(fields) == 0 {
		return nil
	}
	return Line(fields)
}

// TokenizeAll tokenizes a batch of records in order.
func TokenizeAll(records []string) []Line {
	lines := make([]Line, len(records))
	for i, rec := range records {
		lines[i] = Tokenize(rec)
	}
	return lines
}

// splitRecords breaks file content into records on newlines. Windows line
// endings are tolerated; the final newline does not produce a trailing
// empty record.
func splitRecords(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

package service

import "strings"

const (
	DefaultRowDelimiter    = "\n"
	DefaultColumnDelimiter = "\t"
)

// ImportedPair is one parsed row of an import.
type ImportedPair struct {
	Word        string
	Translation string
}

// ParseImport splits text into rows and each row at the first column
// delimiter. Blank rows, rows without the delimiter and rows with an empty
// side are skipped. Empty delimiters fall back to newline and tab.
func ParseImport(text, rowDelim, colDelim string) []ImportedPair {
	if rowDelim == "" {
		rowDelim = DefaultRowDelimiter
	}
	if colDelim == "" {
		colDelim = DefaultColumnDelimiter
	}

	var out []ImportedPair
	for _, row := range strings.Split(text, rowDelim) {
		row = strings.TrimSpace(row)
		if row == "" {
			continue
		}

		word, translation, ok := strings.Cut(row, colDelim)
		if !ok {
			continue
		}
		word, translation = strings.TrimSpace(word), strings.TrimSpace(translation)
		if word == "" || translation == "" {
			continue
		}
		out = append(out, ImportedPair{Word: word, Translation: translation})
	}
	return out
}

package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lines splits contents on '\n', dropping a '\r' that directly precedes it.
// A trailing terminator does not produce an empty last line.
// The returned strings share memory with contents.
func Lines(contents string) []string {
	var lines []string
	for contents != "" {
		line, rest, found := strings.Cut(contents, "\n")
		if found {
			line = strings.TrimSuffix(line, "\r")
		}
		lines = append(lines, line)
		contents = rest
	}
	return lines
}

func CaseSensitive(query, contents string) []string {
	var result []string
	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			result = append(result, line)
		}
	}
	return result
}

// CaseInsensitive lowercases the query and every line with the Unicode
// (language-neutral) mapping before comparing. Returned lines are the originals.
func CaseInsensitive(query, contents string) []string {
	lower := cases.Lower(language.Und)
	query = lower.String(query)

	var result []string
	for _, line := range Lines(contents) {
		if strings.Contains(lower.String(line), query) {
			result = append(result, line)
		}
	}
	return result
}

func Find(query, contents string, caseSensitive bool) []string {
	if caseSensitive {
		return CaseSensitive(query, contents)
	}
	return CaseInsensitive(query, contents)
}

// Package blockstring emits GraphQL block strings ("""...""").
package blockstring

import "strings"

// Print returns value in block string form. Single line values without a
// trailing quote or backslash stay on one line; everything else is spread
// over multiple lines with every line prefixed by indentation. Embedded
// triple quotes are escaped.
func Print(value, indentation string, preferMultipleLines bool) string {
	isSingleLine := !strings.Contains(value, "\n")
	hasLeadingSpace := strings.HasPrefix(value, " ") || strings.HasPrefix(value, "\t")
	hasTrailingQuote := strings.HasSuffix(value, `"`)
	hasTrailingSlash := strings.HasSuffix(value, `\`)

	printAsMultipleLines := !isSingleLine || hasTrailingQuote || hasTrailingSlash || preferMultipleLines

	var out strings.Builder
	if printAsMultipleLines && !(isSingleLine && hasLeadingSpace) {
		out.WriteString("\n")
		out.WriteString(indentation)
	}
	if indentation != "" {
		out.WriteString(strings.ReplaceAll(value, "\n", "\n"+indentation))
	} else {
		out.WriteString(value)
	}
	if printAsMultipleLines {
		out.WriteString("\n")
	}

	return `"""` + strings.ReplaceAll(out.String(), `"""`, `\"""`) + `"""`
}

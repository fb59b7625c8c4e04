package astprinter

import "strings"

// join concatenates the non empty parts with sep.
func join(sep string, parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, sep)
}

// wrap returns prefix+txt+suffix, or "" if txt is empty.
func wrap(prefix, txt, suffix string) string {
	if txt == "" {
		return ""
	}
	return prefix + txt + suffix
}

// block renders items one per line inside an indented brace block, or "" if
// items is empty.
func block(items []string) string {
	body := join("\n", items...)
	if body == "" {
		return ""
	}
	return "{\n" + indent(body) + "\n}"
}

// indent prefixes every line of txt with two spaces.
func indent(txt string) string {
	if txt == "" {
		return txt
	}
	return "  " + strings.ReplaceAll(txt, "\n", "\n  ")
}

func isMultiline(txt string) bool {
	return strings.Contains(txt, "\n")
}

func hasMultilineItems(items []string) bool {
	for _, item := range items {
		if isMultiline(item) {
			return true
		}
	}
	return false
}

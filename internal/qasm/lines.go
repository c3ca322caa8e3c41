package qasm

import "strings"

// FilterLines normalizes raw circuit source into the ordered list of
// semantically meaningful lines. Everything from the first "//" to the end
// of a line is dropped, surrounding whitespace is trimmed, and lines that
// end up empty disappear. Original line order is preserved.
func FilterLines(source string) []string {
	var lines []string
	for _, raw := range strings.Split(source, "\n") {
		line, _, _ := strings.Cut(raw, "//")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

package assembler

import (
	"strings"
)

// Reformat lines a document up: label definitions start at column 0, every instruction starts
// one column past the longest label, and whitespace between words collapses to a single space.
// Comments are kept as written. Reformatting formatted text changes nothing.
func Reformat(text string) string {
	newline := "\n"
	if strings.Contains(text, "\r\n") {
		newline = "\r\n"
	}
	lines := SplitLines(text)

	maxLabelLength := 0
	for label := range CollectLabels(lines) {
		if len(label) > maxLabelLength {
			maxLabelLength = len(label)
		}
	}
	indent := maxLabelLength + 2

	for i, line := range lines {
		code := stripComment(line)
		comment := strings.TrimRight(line[len(code):], " \t")

		label, _, end, hasLabel := labelDefinition(code)
		if !hasLabel {
			end = 0
		}
		body := strings.Join(strings.Fields(code[end:]), " ")

		var b strings.Builder
		switch {
		case hasLabel && body != "":
			b.WriteString(label + ":")
			b.WriteString(strings.Repeat(" ", indent-len(label)-1))
			b.WriteString(body)
		case hasLabel:
			b.WriteString(label + ":")
		case body != "":
			b.WriteString(strings.Repeat(" ", indent))
			b.WriteString(body)
		default:
			// blank or comment-only lines keep their indentation
			lines[i] = strings.TrimRight(line, " \t")
			continue
		}

		if comment != "" {
			b.WriteString(" " + comment)
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, newline)
}

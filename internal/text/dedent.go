// Package text provides text manipulation functions.
package text

import "strings"

// Dedent removes a common indent from all lines in a string,
// allowing multi-line strings to be written with the surrounding
// code's indentation. For example:
//
//	const s = text.Dedent(`
//		foo
//		  bar
//	`)
//
// The result is:
//
//	foo
//	  bar
//
// The common indent is the leading whitespace of the first non-blank
// line. Lines that don't carry the indent are reproduced as-is,
// except a trailing blank line, which is dropped.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")

	var indent string
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent = line[:len(line)-len(trimmed)]
		break
	}

	// Drop a leading blank line left by the opening quote,
	// and a trailing blank line left by the closing quote.
	if len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		if rest, ok := strings.CutPrefix(line, indent); ok {
			lines[i] = rest
		}
	}

	return strings.Join(lines, "\n")
}

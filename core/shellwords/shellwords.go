// Package shellwords splits command strings into argument vectors using
// shell-like quoting and escaping rules.
package shellwords

import "strings"

// Split breaks a command string into whitespace-separated tokens.
//
// Double and single quotes group spaces into a single token and are
// stripped from the output. A backslash escapes the following character,
// so `a\ b` stays one token. Runs of spaces collapse; an all-whitespace
// input yields no tokens. Unterminated quotes and a trailing backslash
// are not errors: the scan just ends and any buffered text is emitted.
func Split(s string) []string {
	var tokens []string
	var buf strings.Builder

	inDouble := false
	inSingle := false
	escaped := false

	for _, r := range s {
		switch {
		case escaped:
			buf.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"' && !inSingle:
			inDouble = !inDouble
		case r == '\'' && !inDouble:
			inSingle = !inSingle
		case r == ' ' && !inDouble && !inSingle:
			if buf.Len() > 0 {
				tokens = append(tokens, buf.String())
				buf.Reset()
			}
		default:
			buf.WriteRune(r)
		}
	}

	if buf.Len() > 0 {
		tokens = append(tokens, buf.String())
	}

	return tokens
}

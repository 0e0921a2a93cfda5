package script

import (
	"strings"
	"unicode"
)

// splitWords splits a shell-like string into words, handling single quotes,
// double quotes and backslash escapes (outside single quotes). An empty quoted
// word ("" or '') is kept as an empty string.
func splitWords(s string) []string {
	var out []string
	var cur []rune
	inSingle := false
	inDouble := false
	escaped := false
	quoted := false

	flush := func() {
		if len(cur) == 0 && !quoted {
			return
		}
		out = append(out, string(cur))
		cur = cur[:0]
		quoted = false
	}

	for _, r := range s {
		switch {
		case escaped:
			cur = append(cur, r)
			escaped = false
		case r == '\\' && !inSingle:
			escaped = true
		case r == '\'' && !inDouble:
			inSingle = !inSingle
			quoted = true
		case r == '"' && !inSingle:
			inDouble = !inDouble
			quoted = true
		case !inSingle && !inDouble && unicode.IsSpace(r):
			flush()
		default:
			cur = append(cur, r)
		}
	}

	flush()
	return out
}

// cutWords splits the first n words off s and returns the rest of s
// untouched, apart from the whitespace separating it from those words.
func cutWords(s string, n int) ([]string, string) {
	var words []string
	var cur []rune
	inSingle := false
	inDouble := false
	escaped := false
	inWord := false

	for i, r := range s {
		if len(words) == n {
			return words, strings.TrimLeftFunc(s[i:], unicode.IsSpace)
		}
		switch {
		case escaped:
			cur = append(cur, r)
			escaped = false
		case r == '\\' && !inSingle:
			escaped = true
			inWord = true
		case r == '\'' && !inDouble:
			inSingle = !inSingle
			inWord = true
		case r == '"' && !inSingle:
			inDouble = !inDouble
			inWord = true
		case !inSingle && !inDouble && unicode.IsSpace(r):
			if inWord {
				words = append(words, string(cur))
				cur = cur[:0]
				inWord = false
			}
		default:
			cur = append(cur, r)
			inWord = true
		}
	}
	if inWord {
		words = append(words, string(cur))
	}
	return words, ""
}

package workspace

import (
	"strings"
	"unicode"
)

// isNameRune mirrors the identifier class of the expression syntax: Unicode
// letters, digits and underscore, with λ always acting as a boundary.
func isNameRune(r rune) bool {
	if r == 'λ' || r == '\\' {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Expand replaces every standalone occurrence of a library name with its
// body in one left-to-right pass over text. Replacement text is never
// re-scanned: a body that mentions another library name is left as-is, and
// no fixed point is sought. Whole tokens only, so a name that is a substring
// of a longer identifier does not match. Pure: neither text nor lib is
// mutated.
func Expand(text string, lib *Library) string {
	if lib.Len() == 0 {
		return text
	}
	var b strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); {
		if !isNameRune(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		start := i
		for i < len(runes) && isNameRune(runes[i]) {
			i++
		}
		tok := string(runes[start:i])
		if body, ok := lib.Get(tok); ok {
			b.WriteString(body)
		} else {
			b.WriteString(tok)
		}
	}
	return b.String()
}

package lambda

import "unicode"

type tokenKind int

const (
	tokLambda tokenKind = iota
	tokDot
	tokLParen
	tokRParen
	tokIdent
)

type token struct {
	kind tokenKind
	text string
}

// isIdentRune admits Unicode letters, digits and underscore. λ is a letter
// but always means abstraction, so it terminates an identifier.
func isIdentRune(r rune) bool {
	if r == 'λ' || r == '\\' {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// tokenize splits input into tokens. Both '\' and 'λ' introduce an
// abstraction; whitespace and unrecognized runes are skipped.
func tokenize(input string) []token {
	var tokens []token
	runes := []rune(input)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			tokens = append(tokens, token{kind: tokLParen})
			i++
		case r == ')':
			tokens = append(tokens, token{kind: tokRParen})
			i++
		case r == '.':
			tokens = append(tokens, token{kind: tokDot})
			i++
		case r == '\\' || r == 'λ':
			tokens = append(tokens, token{kind: tokLambda})
			i++
		case isIdentRune(r):
			start := i
			for i < len(runes) && isIdentRune(runes[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokIdent, text: string(runes[start:i])})
		default:
			i++
		}
	}
	return tokens
}

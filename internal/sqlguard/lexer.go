package sqlguard

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenNumber
	tokenString
	tokenQuotedIdent
	tokenSymbol
)

type token struct {
	kind tokenKind
	text string
	// byte offsets into the original statement, used to splice the
	// approved SQL (LIMIT clamping) without re-rendering the whole query.
	start int
	end   int
}

func (t token) upper() string {
	return strings.ToUpper(t.text)
}

func (t token) isWord(upper string) bool {
	return t.kind == tokenWord && t.upper() == upper
}

// lex splits a candidate statement into tokens. Comments are dropped so a
// keyword hidden in "-- ..." or "/* ... */" can neither trip nor evade the
// guard; string literals are kept as single opaque tokens for the same
// reason. Dollar quoting and bind placeholders are rejected outright.
func lex(input string) ([]token, error) {
	tokens := make([]token, 0, 64)
	i := 0
	n := len(input)

	for i < n {
		c := input[i]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case c == '-' && i+1 < n && input[i+1] == '-':
			for i < n && input[i] != '\n' {
				i++
			}

		case c == '/' && i+1 < n && input[i+1] == '*':
			depth := 1
			i += 2
			for i < n && depth > 0 {
				if i+1 < n && input[i] == '/' && input[i+1] == '*' {
					depth++
					i += 2
					continue
				}
				if i+1 < n && input[i] == '*' && input[i+1] == '/' {
					depth--
					i += 2
					continue
				}
				i++
			}
			if depth > 0 {
				return nil, fmt.Errorf("unterminated block comment")
			}

		case c == '\'':
			start := i
			i++
			for {
				if i >= n {
					return nil, fmt.Errorf("unterminated string literal")
				}
				if input[i] == '\'' {
					if i+1 < n && input[i+1] == '\'' {
						i += 2
						continue
					}
					i++
					break
				}
				i++
			}
			tokens = append(tokens, token{kind: tokenString, text: input[start:i], start: start, end: i})

		case c == '"':
			start := i
			i++
			for {
				if i >= n {
					return nil, fmt.Errorf("unterminated quoted identifier")
				}
				if input[i] == '"' {
					if i+1 < n && input[i+1] == '"' {
						i += 2
						continue
					}
					i++
					break
				}
				i++
			}
			text := strings.ReplaceAll(input[start+1:i-1], `""`, `"`)
			tokens = append(tokens, token{kind: tokenQuotedIdent, text: text, start: start, end: i})

		case c == '$':
			return nil, fmt.Errorf("dollar quoting and bind placeholders are not allowed")

		case isIdentStart(c):
			start := i
			for i < n && isIdentPart(input[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokenWord, text: input[start:i], start: start, end: i})

		case c >= '0' && c <= '9' || (c == '.' && i+1 < n && input[i+1] >= '0' && input[i+1] <= '9'):
			start := i
			for i < n && (input[i] >= '0' && input[i] <= '9' || input[i] == '.' || input[i] == 'e' || input[i] == 'E') {
				i++
			}
			tokens = append(tokens, token{kind: tokenNumber, text: input[start:i], start: start, end: i})

		default:
			start := i
			for _, multi := range []string{"::", "<=", ">=", "<>", "!=", "||"} {
				if strings.HasPrefix(input[i:], multi) {
					i += 2
					tokens = append(tokens, token{kind: tokenSymbol, text: multi, start: start, end: i})
					break
				}
			}
			if i != start {
				continue
			}
			if c > unicode.MaxASCII || strings.ContainsRune("(),.;*=<>+-/%[]:^", rune(c)) {
				i++
				tokens = append(tokens, token{kind: tokenSymbol, text: input[start:i], start: start, end: i})
				continue
			}
			return nil, fmt.Errorf("unexpected character %q", c)
		}
	}

	return tokens, nil
}

func isIdentStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}

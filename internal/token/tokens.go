package token

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes
const (
	whitespaceCode = iota + 1
	quotedCode
	argumentCode
)

// Token definitions
var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	quotedToken     = parsly.NewToken(quotedCode, "QuotedArgument", newQuotedMatcher())
	argumentToken   = parsly.NewToken(argumentCode, "Argument", newArgumentMatcher())
)

func newQuotedMatcher() parsly.Matcher {
	return &quotedMatcher{}
}

func newArgumentMatcher() parsly.Matcher {
	return &argumentMatcher{}
}

// quotedMatcher matches a double-quoted span, closing quote included. The
// span is taken verbatim; there is no backslash escaping inside it.
type quotedMatcher struct{}

func (m *quotedMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	if pos >= size || input[pos] != '"' {
		return 0
	}

	for i := pos + 1; i < size; i++ {
		if input[i] == '"' {
			return i - pos + 1
		}
	}

	// Unterminated quote
	return 0
}

// argumentMatcher matches a bare token up to the next whitespace. It never
// matches a leading double quote, so an unterminated quoted span surfaces as
// a parse error instead of being swallowed as a bare argument.
type argumentMatcher struct{}

func (m *argumentMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	if pos >= size || input[pos] == '"' {
		return 0
	}

	matched := 0
	for i := pos; i < size; i++ {
		if isWhitespace(input[i]) {
			break
		}
		matched++
	}

	return matched
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

package token

import (
	"strings"

	"github.com/viant/parsly"
)

// Command is a single parsed input line: the command name followed by its
// ordered arguments. It is created per line and never retained.
type Command struct {
	Name string
	Args []string
}

// Parse splits a raw input line into a command name and arguments. Splitting
// happens on whitespace outside double quotes; a double-quoted span becomes
// one argument with the surrounding quotes stripped. A blank line yields a
// nil command; an unterminated quote yields a parse error.
func Parse(line string) (*Command, error) {
	input := []byte(strings.TrimSpace(line))
	if len(input) == 0 {
		return nil, nil
	}

	cursor := parsly.NewCursor("", input, 0)

	var tokens []string
	for cursor.Pos < cursor.InputSize {
		matched := cursor.MatchAny(whitespaceToken, quotedToken, argumentToken)
		switch matched.Code {
		case whitespaceToken.Code:
		case quotedToken.Code:
			text := matched.Text(cursor)
			tokens = append(tokens, text[1:len(text)-1])
		case argumentToken.Code:
			tokens = append(tokens, matched.Text(cursor))
		default:
			return nil, cursor.NewError(quotedToken, argumentToken)
		}
	}

	if len(tokens) == 0 {
		return nil, nil
	}

	return &Command{Name: tokens[0], Args: tokens[1:]}, nil
}

package ndb

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

var (
	// ErrSyntax matches every *SyntaxError via errors.Is.
	ErrSyntax = errors.New("ndb: syntax error")

	// ErrTrailingInput is returned by a strict Parser when a statement is
	// followed by unconsumed input.
	ErrTrailingInput = errors.New("ndb: trailing input after statement")
)

// SyntaxError reports input that does not have the shape identifier '=' value.
type SyntaxError struct {
	Pos lexer.Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("ndb: syntax error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// Is makes errors.Is(err, ErrSyntax) true for any *SyntaxError.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// syntaxErrorAt builds a SyntaxError for a byte offset into a single line.
func syntaxErrorAt(input string, offset int, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Pos: lexer.Position{
			Offset: offset,
			Line:   1,
			Column: len([]rune(input[:offset])) + 1,
		},
		Msg: fmt.Sprintf(format, args...),
	}
}

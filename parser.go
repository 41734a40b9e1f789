// Package ndb parses plain text ndb statements of the form key=value.
package ndb

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// statementLexer splits a line into alphanumeric words, the separator and
// runs of anything else. Every byte of input lexes, so trailing garbage
// never turns into a lexer error.
var statementLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `[A-Za-z0-9]+`},
	{Name: "Separator", Pattern: `=`},
	{Name: "Other", Pattern: `[^A-Za-z0-9=]+`},
})

// statementGrammar is identifier '=' value_token. The identifier is
// captured as a whole word and narrowed to letters after the match.
type statementGrammar struct {
	Key    string `parser:"@Word '='"`
	Value  string `parser:"@Word"`
	Tokens []lexer.Token
}

var statementParser = participle.MustBuild[statementGrammar](
	participle.Lexer(statementLexer),
)

// Parser provides configurable statement parsing.
type Parser struct {
	classify func(string) Value
	strict   bool
}

// NewParser creates a new Parser with default configuration.
func NewParser() *Parser {
	return &Parser{
		classify: Classify,
	}
}

// WithClassifyFunc configures the function that turns a value token into a Value.
// A nil fn restores Classify.
func (p *Parser) WithClassifyFunc(fn func(string) Value) *Parser {
	if fn == nil {
		fn = Classify
	}
	p.classify = fn
	return p
}

// WithStrict configures whether input after the value token is an error.
func (p *Parser) WithStrict(strict bool) *Parser {
	p.strict = strict
	return p
}

var defaultParser = NewParser()

// ParseStatement parses one statement with the default parser.
//
// The whole input need not be consumed: whatever follows the value token is
// returned as the remainder.
func ParseStatement(input string) (Statement, string, error) {
	return defaultParser.ParseStatement(input)
}

// ParseStatement parses a single identifier=value statement from the start of
// input and returns it with the unconsumed remainder.
//
// Failures are *SyntaxError values; a strict parser additionally returns
// ErrTrailingInput when the remainder is not empty.
func (p *Parser) ParseStatement(input string) (Statement, string, error) {
	if input == "" {
		return Statement{}, input, syntaxErrorAt(input, 0, "empty input")
	}

	g, err := statementParser.ParseString("", input, participle.AllowTrailing(true))
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return Statement{}, input, &SyntaxError{Pos: perr.Position(), Msg: perr.Message()}
		}
		return Statement{}, input, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	if i := invalidKeyIndex(g.Key); i >= 0 {
		if i == 0 {
			return Statement{}, input, syntaxErrorAt(input, 0, "expected identifier, found %q", g.Key[:1])
		}
		return Statement{}, input, syntaxErrorAt(input, i, "unexpected %q in identifier %q", g.Key[i:i+1], g.Key)
	}

	last := g.Tokens[len(g.Tokens)-1]
	rest := input[last.Pos.Offset+len(last.Value):]

	stmt := Statement{
		Key:   g.Key,
		Value: p.classify(g.Value),
	}

	if p.strict && rest != "" {
		return Statement{}, rest, fmt.Errorf("%w: %q", ErrTrailingInput, rest)
	}

	return stmt, rest, nil
}

// MustParseStatement is like ParseStatement but panics on error.
func MustParseStatement(input string) Statement {
	stmt, _, err := ParseStatement(input)
	if err != nil {
		panic(err)
	}
	return stmt
}

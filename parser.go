package cypherlite

import (
	"github.com/alecthomas/participle/v2"
)

// queryParser is the shared parser instance. Parsers are immutable and safe
// for concurrent use.
var queryParser = participle.MustBuild[Query](
	participle.Lexer(cypherLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(4),
	participle.CaseInsensitive("Ident"), // keywords only; captured values keep their case
)

// Parse parses query text into a validated Query. Failures, including a
// missing MATCH or RETURN clause, are reported as a *ParseError.
func Parse(query string) (*Query, error) {
	q, err := queryParser.ParseString("", query)
	if err != nil {
		return nil, &ParseError{Query: query, Err: err}
	}
	if err := q.validate(); err != nil {
		return nil, &ParseError{Query: query, Err: err}
	}
	return q, nil
}

package cypherlite

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// ----------------------------------------------------------------------------
// Query AST
//
// The grammar covers the read-only slice of Cypher this package executes:
// MATCH with linear patterns, a single WHERE comparison, and a RETURN
// projection with optional aggregation.
// ----------------------------------------------------------------------------

// Query is the root of a parse tree. Clauses are optional at the grammar
// level so that a missing MATCH or RETURN can be reported as a distinct
// error after parsing.
type Query struct {
	Pos    lexer.Position
	Match  *MatchClause  `@@?`
	Where  *WhereClause  `@@?`
	Return *ReturnClause `@@?`
}

func (q *Query) validate() error {
	if q.Match == nil {
		return ErrMissingMatch
	}
	if q.Return == nil {
		return ErrMissingReturn
	}
	for _, item := range q.Return.Items {
		if item.Aggregate == nil {
			continue
		}
		switch strings.ToUpper(item.Aggregate.Func) {
		case "COUNT", "SUM":
		default:
			return fmt.Errorf("%w: %s", ErrUnknownAggregate, item.Aggregate.Func)
		}
	}
	return nil
}

// MatchClause holds the comma-separated patterns of a MATCH.
type MatchClause struct {
	Pos      lexer.Position
	Patterns []*PatternPart `"MATCH" @@ ( Comma @@ )*`
}

// PatternPart is a node pattern followed by zero or more relationship chains.
type PatternPart struct {
	Pos   lexer.Position
	Node  *NodePattern    `@@`
	Chain []*PatternChain `@@*`
}

// PatternChain is a relationship pattern followed by a node pattern.
type PatternChain struct {
	Pos  lexer.Position
	Rel  *RelationshipPattern `@@`
	Node *NodePattern         `@@`
}

// NodePattern is (variable? labels?). Multiple labels form an any-of match.
type NodePattern struct {
	Pos      lexer.Position
	Variable string   `LParen @Ident?`
	Labels   []string `( Colon @Ident ( Pipe @Ident )* )? RParen`
}

// RelationshipPattern is -[...]-> or <-[...]- or -[...]-.
type RelationshipPattern struct {
	Pos        lexer.Position
	LeftArrow  bool                `@Less? Minus`
	Detail     *RelationshipDetail `( LBracket @@ RBracket )?`
	RightArrow bool                `Minus @Greater?`
}

// Direction is the traversal direction of a relationship pattern.
type Direction int

const (
	DirectionBoth Direction = iota
	DirectionLeft
	DirectionRight
)

// Direction resolves the arrows to a traversal direction. A left arrow wins
// when both are present.
func (r *RelationshipPattern) Direction() Direction {
	switch {
	case r.LeftArrow:
		return DirectionLeft
	case r.RightArrow:
		return DirectionRight
	default:
		return DirectionBoth
	}
}

// Variable returns the relationship binding variable, if any.
func (r *RelationshipPattern) Variable() string {
	if r.Detail == nil {
		return ""
	}
	return r.Detail.Variable
}

// FirstType returns the first alternative of the type list. Matching uses
// only the first alternative even when several are written with |.
func (r *RelationshipPattern) FirstType() string {
	if r.Detail == nil || len(r.Detail.Types) == 0 {
		return ""
	}
	return r.Detail.Types[0]
}

// RelationshipDetail is the content inside relationship brackets.
type RelationshipDetail struct {
	Pos      lexer.Position
	Variable string        `@Ident?`
	Types    []string      `( Colon @Ident ( Pipe Colon? @Ident )* )?`
	Range    *RangeLiteral `@@?`
}

// RangeLiteral is *min..max. Hop ranges are accepted by the grammar but do
// not affect matching, which always traverses a single hop.
type RangeLiteral struct {
	Pos   lexer.Position
	Star  string `@Star`
	Min   *int   `@Int?`
	Range bool   `@Range?`
	Max   *int   `@Int?`
}

// WhereClause filters bindings with a boolean expression.
type WhereClause struct {
	Pos       lexer.Position
	Condition *OrExpr `"WHERE" @@`
}

// OrExpr is the top expression tier. OR binds loosest.
type OrExpr struct {
	Pos   lexer.Position
	Left  *AndExpr  `@@`
	Right []*OrTerm `@@*`
}

// OrTerm is an OR operand.
type OrTerm struct {
	Pos  lexer.Position
	Expr *AndExpr `"OR" @@`
}

// AndExpr handles AND.
type AndExpr struct {
	Pos   lexer.Position
	Left  *Condition `@@`
	Right []*AndTerm `@@*`
}

// AndTerm is an AND operand.
type AndTerm struct {
	Pos  lexer.Position
	Expr *Condition `"AND" @@`
}

// Condition is an operand, optionally compared against another. Without an
// operator the left operand is tested for truthiness.
type Condition struct {
	Pos   lexer.Position
	Left  *Operand `@@`
	Op    string   `( @( Eq | NotEqual | LessEqual | GreaterEqual | Less | Greater | "CONTAINS" )`
	Right *Operand `  @@ )?`
}

// Operand is a literal or a property reference. Integer literals keep their
// token text since all comparisons are lexicographic on strings.
type Operand struct {
	Pos    lexer.Position
	String *string      `  @String`
	Int    *string      `| @Int`
	Ref    *PropertyRef `| @@`
}

// PropertyRef is a variable with an optional property access, like n or
// n.name.
type PropertyRef struct {
	Pos      lexer.Position
	Variable string `@Ident`
	Property string `( Dot @Ident )?`
}

func (p *PropertyRef) String() string {
	if p.Property == "" {
		return p.Variable
	}
	return p.Variable + "." + p.Property
}

// ReturnClause is the projection of a query.
type ReturnClause struct {
	Pos   lexer.Position
	Items []*ReturnItem `"RETURN" @@ ( Comma @@ )*`
}

// ReturnItem is a projected expression with an optional alias.
type ReturnItem struct {
	Pos       lexer.Position
	Aggregate *AggregateCall `( @@`
	Ref       *PropertyRef   `| @@ )`
	Alias     string         `( "AS" @Ident )?`
}

// ColumnName derives the result column name for an item: the alias when one
// is given, otherwise the expression text.
func (i *ReturnItem) ColumnName() string {
	switch {
	case i.Alias != "":
		return i.Alias
	case i.Ref != nil:
		return i.Ref.String()
	case i.Aggregate != nil:
		return i.Aggregate.String()
	default:
		return "expression"
	}
}

// AggregateCall is an aggregate function applied to * or a property
// reference. The lookahead keeps a bare identifier from being consumed as a
// function name.
type AggregateCall struct {
	Pos  lexer.Position
	Func string       `@Ident (?= LParen )`
	Star bool         `LParen ( @Star`
	Arg  *PropertyRef `       | @@ ) RParen`
}

func (a *AggregateCall) String() string {
	arg := "*"
	if a.Arg != nil {
		arg = a.Arg.String()
	}
	return strings.ToUpper(a.Func) + "(" + arg + ")"
}

package dsl

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var filterLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?i)\b(AND|OR|NOT|LIKE|IN|BETWEEN|IS|REGEXP|TRUE|FALSE)\b`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "String", Pattern: `'(?:''|[^'])*'`},
	{Name: "Number", Pattern: `-?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?`},
	{Name: "Symbol", Pattern: `<>|!=|<=|>=|=|<|>`},
	{Name: "Punct", Pattern: `[()\[\],.]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// expression is a disjunction; OR binds loosest.
type expression struct {
	Pos lexer.Position
	Or  []*conjunction `@@ ( "OR" @@ )*`
}

type conjunction struct {
	And []*term `@@ ( "AND" @@ )*`
}

type term struct {
	Group      *expression `  "(" @@ ")"`
	Comparison *comparison `| @@`
}

type comparison struct {
	Pos   lexer.Position
	Left  *operand  `@@`
	Op    *operator `@@`
	Right *operand  `@@`
}

type operator struct {
	Symbol string `  @Symbol`
	Is     string `| @"IS"`
	IsNot  bool   `  @"NOT"?`
	Not    bool   `| @"NOT"?`
	Word   string `  @( "LIKE" | "IN" | "BETWEEN" | "REGEXP" )`
}

type operand struct {
	Pos     lexer.Position
	Array   *arrayLiteral `  @@`
	Call    *funcCall     `| @@`
	Column  *columnPath   `| @@`
	Literal *literal      `| @@`
}

type arrayLiteral struct {
	Elems []*literal `"[" ( @@ ( "," @@ )* )? "]"`
}

type literal struct {
	String *string `  @String`
	Number *string `| @Number`
	Bool   *string `| @( "TRUE" | "FALSE" )`
}

type funcCall struct {
	Name string     `@Ident "("`
	Args []*operand `( @@ ( "," @@ )* )? ")"`
}

type columnPath struct {
	Table  string `@Ident "."`
	Column string `@Ident`
}

var parser = participle.MustBuild[expression](
	participle.Lexer(filterLexer),
	participle.Elide("Whitespace"),
	participle.CaseInsensitive("Keyword"),
	participle.UseLookahead(4),
)

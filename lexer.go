package protoparser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// protoLexer tokenizes .proto source. Lower-case rules are elided, so
// comments and whitespace may appear between any two structural tokens.
var protoLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "blockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
	{Name: "comment", Pattern: `//[^\n]*`},
	{Name: "String", Pattern: `"[^"\n]*"`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[{}()=;.]`},
	{Name: "whitespace", Pattern: `[ \t\r\n]+`},
})

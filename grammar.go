package protoparser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The parse tree. One struct per grammar rule; the populated tree is handed
// to the AST constructor in build.go and discarded afterwards. Numbers are
// captured as raw digit strings so that magnitude overflow is handled during
// AST construction rather than rejected by the grammar.

type protoFile struct {
	Pos lexer.Position

	Syntax  *syntaxStmt    `parser:"@@?"`
	Package *packageStmt   `parser:"@@?"`
	Imports []*importStmt  `parser:"@@*"`
	Defs    []*topLevelDef `parser:"@@*"`
}

type syntaxStmt struct {
	Pos lexer.Position

	Value string `parser:"\"syntax\" \"=\" @String \";\""`
}

type packageStmt struct {
	Pos lexer.Position

	Name string `parser:"\"package\" @(Ident (\".\" Ident)*) \";\""`
}

type importStmt struct {
	Pos lexer.Position

	Path string `parser:"\"import\" @String \";\""`
}

type topLevelDef struct {
	Message *messageDef `parser:"  @@"`
	Enum    *enumDef    `parser:"| @@"`
	Service *serviceDef `parser:"| @@"`
}

type messageDef struct {
	Pos lexer.Position

	Name string            `parser:"\"message\" @Ident"`
	Body []*messageElement `parser:"\"{\" @@* \"}\""`
}

// An empty ";" inside a message body is a valid no-op statement.
type messageElement struct {
	Message *messageDef `parser:"  @@"`
	Enum    *enumDef    `parser:"| @@"`
	Field   *fieldDef   `parser:"| @@"`
	Empty   bool        `parser:"| @\";\""`
}

type fieldDef struct {
	Pos lexer.Position

	Rule string `parser:"( @\"repeated\" | @\"optional\" | @\"required\" )?"`
	Type string `parser:"@(Ident (\".\" Ident)*)"`
	Name string `parser:"@Ident"`
	Tag  string `parser:"\"=\" @Number \";\""`
}

type enumDef struct {
	Pos lexer.Position

	Name   string       `parser:"\"enum\" @Ident"`
	Values []*enumValue `parser:"\"{\" @@* \"}\""`
}

type enumValue struct {
	Pos lexer.Position

	Name   string `parser:"@Ident"`
	Number string `parser:"\"=\" @Number \";\""`
}

type serviceDef struct {
	Pos lexer.Position

	Name string    `parser:"\"service\" @Ident"`
	RPCs []*rpcDef `parser:"\"{\" @@* \"}\""`
}

type rpcDef struct {
	Pos lexer.Position

	Name   string       `parser:"\"rpc\" @Ident"`
	Input  *messageType `parser:"\"(\" @@ \")\""`
	Output *messageType `parser:"\"returns\" \"(\" @@ \")\" ( \";\" | \"{\" \"}\" )"`
}

// messageType is an rpc parameter: an optional "stream" marker followed by
// the message type reference.
type messageType struct {
	Pos lexer.Position

	Stream bool   `parser:"( @\"stream\" )?"`
	Name   string `parser:"@(Ident (\".\" Ident)*)"`
}

var parser = participle.MustBuild[protoFile](
	participle.Lexer(protoLexer),
	participle.UseLookahead(2),
)

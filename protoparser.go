// Package protoparser converts Protocol Buffer interface definitions into a
// typed AST and a canonical JSON representation, without depending on the
// reference protobuf compiler.
//
// Parsing is a pure function of the source text: no state is shared between
// calls and concurrent use requires no synchronization.
package protoparser

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// SyntaxError reports the first point at which the source failed to match
// the grammar. A Parse call never returns a partial document alongside one.
type SyntaxError struct {
	Pos lexer.Position
	Msg string
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s: syntax error: %s", s.Pos, s.Msg)
}

// Parse parses proto source text into a Proto document. On failure the
// returned error is a *SyntaxError.
func Parse(source string) (*Proto, error) {
	return parse("", source)
}

// ParseFile reads path and parses its contents. Read failures are returned
// wrapped; parse failures are returned as *SyntaxError with positions
// carrying the file name.
func ParseFile(path string) (*Proto, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return parse(path, string(data))
}

func parse(filename, source string) (*Proto, error) {
	tree, err := parser.ParseString(filename, source)
	if err != nil {
		return nil, syntaxError(err)
	}
	return buildProto(tree), nil
}

// syntaxError maps lex and parse failures, both of which implement
// participle.Error, onto *SyntaxError.
func syntaxError(err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &SyntaxError{Pos: perr.Position(), Msg: perr.Message()}
	}
	return &SyntaxError{Msg: err.Error()}
}

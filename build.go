package protoparser

import (
	"strconv"
	"strings"
)

// AST construction: a depth-first walk of the parse tree. Sequence fields
// are always non-nil so that empty sequences serialize as [] rather than
// null.

func buildProto(tree *protoFile) *Proto {
	proto := &Proto{
		Syntax:   "proto3",
		Imports:  []string{},
		Messages: []*Message{},
		Enums:    []*EnumDef{},
		Services: []*Service{},
	}
	if tree.Syntax != nil {
		proto.Syntax = trimQuotes(tree.Syntax.Value)
	}
	if tree.Package != nil {
		name := tree.Package.Name
		proto.Package = &name
	}
	for _, imp := range tree.Imports {
		proto.Imports = append(proto.Imports, trimQuotes(imp.Path))
	}
	for _, def := range tree.Defs {
		switch {
		case def.Message != nil:
			proto.Messages = append(proto.Messages, buildMessage(def.Message))
		case def.Enum != nil:
			proto.Enums = append(proto.Enums, buildEnum(def.Enum))
		case def.Service != nil:
			proto.Services = append(proto.Services, buildService(def.Service))
		}
	}
	return proto
}

// buildMessage recurses into nested message and enum definitions with the
// same procedure as top-level ones; nesting depth is unbounded.
func buildMessage(def *messageDef) *Message {
	message := &Message{
		Name:           def.Name,
		Fields:         []*Field{},
		NestedMessages: []*Message{},
		NestedEnums:    []*EnumDef{},
	}
	for _, element := range def.Body {
		switch {
		case element.Field != nil:
			message.Fields = append(message.Fields, buildField(element.Field))
		case element.Message != nil:
			message.NestedMessages = append(message.NestedMessages, buildMessage(element.Message))
		case element.Enum != nil:
			message.NestedEnums = append(message.NestedEnums, buildEnum(element.Enum))
		}
	}
	return message
}

func buildField(def *fieldDef) *Field {
	return &Field{
		Name:     def.Name,
		TypeName: def.Type,
		Tag:      toInt32(def.Tag),
		Repeated: def.Rule == "repeated",
	}
}

func buildEnum(def *enumDef) *EnumDef {
	enum := &EnumDef{
		Name:   def.Name,
		Values: []*EnumValue{},
	}
	for _, value := range def.Values {
		enum.Values = append(enum.Values, &EnumValue{
			Name:   value.Name,
			Number: toInt32(value.Number),
		})
	}
	return enum
}

func buildService(def *serviceDef) *Service {
	service := &Service{
		Name:    def.Name,
		Methods: []*Method{},
	}
	for _, rpc := range def.RPCs {
		service.Methods = append(service.Methods, &Method{
			Name:       rpc.Name,
			InputType:  rpc.Input.Name,
			OutputType: rpc.Output.Name,
		})
	}
	return service
}

func trimQuotes(s string) string {
	return strings.Trim(s, `"`)
}

// toInt32 converts a digit-only lexeme. The grammar guarantees the input is
// numeric, so conversion can only fail on magnitude overflow, which falls
// back to 0 rather than failing the parse.
func toInt32(s string) int32 {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0
	}
	return int32(n)
}

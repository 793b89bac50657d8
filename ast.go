package protoparser

// The typed AST. Every entity is constructed once during a parse and never
// mutated; struct declaration order fixes the JSON field order.

// Proto is the root of a parsed .proto document.
type Proto struct {
	Syntax   string     `json:"syntax"`
	Package  *string    `json:"package"`
	Imports  []string   `json:"imports"`
	Messages []*Message `json:"messages"`
	Enums    []*EnumDef `json:"enums"`
	Services []*Service `json:"services"`
}

// Message is a message definition, possibly containing nested messages and
// enums to arbitrary depth.
type Message struct {
	Name           string     `json:"name"`
	Fields         []*Field   `json:"fields"`
	NestedMessages []*Message `json:"nested_messages"`
	NestedEnums    []*EnumDef `json:"nested_enums"`
}

// Field is a single message field. TypeName is either a primitive type
// keyword or an unresolved reference to a message or enum name.
type Field struct {
	Name     string `json:"name"`
	TypeName string `json:"type_name"`
	Tag      int32  `json:"tag"`
	Repeated bool   `json:"repeated"`
}

// EnumDef is an enum definition.
type EnumDef struct {
	Name   string       `json:"name"`
	Values []*EnumValue `json:"values"`
}

// EnumValue is a single enum entry.
type EnumValue struct {
	Name   string `json:"name"`
	Number int32  `json:"number"`
}

// Service is a service definition.
type Service struct {
	Name    string    `json:"name"`
	Methods []*Method `json:"methods"`
}

// Method is an rpc within a service. Input and output types are the bare
// message identifiers; any "stream" marker is stripped.
type Method struct {
	Name       string `json:"name"`
	InputType  string `json:"input_type"`
	OutputType string `json:"output_type"`
}

package protoparser

import (
	"encoding/json"
)

// JSON serialization is a structural mapping from the AST: top-level field
// order is syntax, package, imports, messages, enums, services, with the
// same declaration-order contract applied recursively. An absent package
// serializes as null, empty sequences as [].

// JSON renders the document as compact JSON.
func (p *Proto) JSON() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// PrettyJSON renders the document indented with two spaces.
func (p *Proto) PrettyJSON() (string, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

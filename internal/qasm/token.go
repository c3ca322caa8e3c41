package qasm

import (
	"encoding/json"
	"fmt"
)

// TokenType classifies one lexical unit of circuit source.
type TokenType int

const (
	TokenKeyword TokenType = iota
	TokenIdentifier
	TokenNumber
	TokenString
	TokenArrow
	TokenOperator
	TokenSymbol
)

// String returns the wire name the type is serialized as.
func (t TokenType) String() string {
	switch t {
	case TokenKeyword:
		return "keyword"
	case TokenIdentifier:
		return "identifier"
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenArrow:
		return "arrow"
	case TokenOperator:
		return "operator"
	case TokenSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the type as its wire name.
func (t TokenType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a wire name back into a TokenType.
func (t *TokenType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for _, tt := range tokenTypes {
		if tt.String() == name {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unknown token type %q", name)
}

var tokenTypes = []TokenType{
	TokenKeyword, TokenIdentifier, TokenNumber, TokenString,
	TokenArrow, TokenOperator, TokenSymbol,
}

// TokenTypeNames returns the wire names of all token types, in a stable
// order. CLI filters validate against this list.
func TokenTypeNames() []string {
	names := make([]string, len(tokenTypes))
	for i, tt := range tokenTypes {
		names[i] = tt.String()
	}
	return names
}

// Token is one lexical unit of circuit source. The JSON field names are the
// wire shape tooling consumes.
type Token struct {
	Type  TokenType `json:"typ"`
	Value string    `json:"val"`
}

// keywords are identifiers with reserved meaning in the dialect: the
// OpenQASM 2.0 statements the graph engine understands plus the newer
// declaration forms the identifier collector recognizes.
var keywords = map[string]bool{
	"OPENQASM": true,
	"qreg":     true,
	"creg":     true,
	"gate":     true,
	"opaque":   true,
	"barrier":  true,
	"measure":  true,
	"reset":    true,
	"if":       true,
	"include":  true,
	"U":        true,
	"CX":       true,
	"qubit":    true,
	"bit":      true,
	"uint":     true,
	"int":      true,
	"let":      true,
	"const":    true,
	"def":      true,
}

package qasmgraph

import (
	"fmt"

	"github.com/coopern1208/qasmgraph/internal/registry"
)

// UnknownBitError is a Go type alias (=) for the registry's error type, so
// callers can errors.As against it without importing internal packages.
type UnknownBitError = registry.UnknownBitError

// MalformedBitReferenceError reports a required operand of a recognized
// instruction that does not parse as name[index]. It aborts the whole
// build.
type MalformedBitReferenceError struct {
	Token string // the offending operand, separators already stripped
	Line  string // the full source line the operand came from
}

func (e *MalformedBitReferenceError) Error() string {
	return fmt.Sprintf("malformed bit reference %q in line %q", e.Token, e.Line)
}

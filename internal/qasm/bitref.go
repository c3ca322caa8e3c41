package qasm

import "regexp"

// bitRefRegex matches a bit reference at the start of a token. It is
// anchored at the start only: anything after the closing bracket is
// ignored, so "q[0],q[1]" resolves to register q, index 0.
var bitRefRegex = regexp.MustCompile(`^([a-zA-Z]+)\[(\d+)\]`)

// BitRef is a parsed reference to one bit of a declared register.
type BitRef struct {
	Register string
	Index    string
}

// ID returns the bit identifier the registry tracks: register name and
// index concatenated, e.g. "q0".
func (r BitRef) ID() string {
	return r.Register + r.Index
}

// ParseBitRef parses an operand token of the form name[index]. The index is
// kept as its literal digits, so "q[007]" yields the id "q007".
func ParseBitRef(token string) (BitRef, bool) {
	m := bitRefRegex.FindStringSubmatch(token)
	if m == nil {
		return BitRef{}, false
	}
	return BitRef{Register: m[1], Index: m[2]}, true
}

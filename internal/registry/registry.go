// Package registry tracks the bits a circuit declares and, per bit, the
// most recent graph node that wrote to it. The graph engine consults it
// exactly once per instruction operand to turn value provenance into edges.
package registry

import "fmt"

// Kind distinguishes quantum from classical bits. The values are the wire
// strings snapshot nodes carry.
type Kind string

const (
	Qubit        Kind = "qubit"
	ClassicalBit Kind = "classical_bit"
)

// Bit is one declared register bit. LastWriter is empty until the first
// instruction writes to the bit; afterwards it holds the writing gate's id.
type Bit struct {
	ID         string
	Kind       Kind
	Name       string
	LastWriter string
}

// UnknownBitError reports an instruction operand that names a bit no
// declaration created.
type UnknownBitError struct {
	Bit string
}

func (e *UnknownBitError) Error() string {
	return fmt.Sprintf("unknown bit %q: no declaration created it", e.Bit)
}

// Registry holds the declared bits keyed by id, plus the declaration order.
// The order fixes node order in emitted snapshots; Go maps would shuffle it.
//
// A registry belongs to a single build and is not safe for concurrent use.
type Registry struct {
	bits  map[string]*Bit
	order []string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{bits: make(map[string]*Bit)}
}

// Declare creates count bits named {register}{0..count-1}. Re-declaring an
// existing id resets it in place (last declaration wins) without
// duplicating its position in the declaration order.
func (r *Registry) Declare(kind Kind, register string, count int) {
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("%s%d", register, i)
		if _, exists := r.bits[id]; !exists {
			r.order = append(r.order, id)
		}
		r.bits[id] = &Bit{ID: id, Kind: kind, Name: id}
	}
}

// ResolveAndAdvance returns the edge source for a read of bitID and records
// writerID as the bit's new last writer. The source is the previous last
// writer, or the bit itself if nothing has written to it yet.
func (r *Registry) ResolveAndAdvance(bitID, writerID string) (string, error) {
	bit, ok := r.bits[bitID]
	if !ok {
		return "", &UnknownBitError{Bit: bitID}
	}
	source := bit.LastWriter
	if source == "" {
		source = bit.ID
	}
	bit.LastWriter = writerID
	return source, nil
}

// Bits returns the declared bits in declaration order.
func (r *Registry) Bits() []*Bit {
	out := make([]*Bit, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.bits[id])
	}
	return out
}

// Len returns the number of declared bits.
func (r *Registry) Len() int {
	return len(r.bits)
}

package qasmgraph

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/coopern1208/qasmgraph/internal/qasm"
	"github.com/coopern1208/qasmgraph/internal/registry"
)

// declRegex matches a register declaration at the start of a line: the
// declaring keyword, the register name, then the bit count in brackets.
var declRegex = regexp.MustCompile(`^(qreg|creg)\s+([A-Za-z_]\w*)\[(\d+)\]`)

// skipPrefixes are the statement prefixes the instruction pass ignores:
// header metadata plus declarations the first pass already consumed.
// Skipped lines do not advance the line counter.
var skipPrefixes = []string{"OPENQASM", "include", "qreg", "creg"}

// Engine builds dependency-graph sequences from circuit source text. A
// single Engine is safe for concurrent Build calls: every build keeps its
// own registry, gate counter, and arena, and the Engine itself stays
// read-only during a parse.
type Engine struct {
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes the engine's debug output to l. The default logger
// discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// build is the state of one Build invocation. Keeping it off the Engine is
// what makes concurrent builds independent: the gate counter, registry, and
// arena all live here.
type build struct {
	logger  *slog.Logger
	reg     *registry.Registry
	seq     *Sequence
	gateSeq int
}

// Build parses source and returns its time-keyed snapshot sequence.
//
// The build runs two passes over the filtered lines. The declaration pass
// registers every qreg/creg statement and fixes the content of snapshot 0,
// which is always present. The instruction pass then classifies each
// remaining non-header line; every recognized line allocates one gate node,
// wires one edge per operand from that operand's last writer, and records a
// snapshot under the current line counter. The counter ticks for every
// considered line, recognized or not, so time-keys line up with what a
// reader counts in the source.
//
// A malformed bit reference or an operand naming an undeclared bit fails
// the whole build: no partial sequence is ever returned.
func (e *Engine) Build(source string) (*Sequence, error) {
	lines := qasm.FilterLines(source)

	b := &build{
		logger: e.logger,
		reg:    registry.New(),
		seq:    &Sequence{nodes: []Node{}, edges: []Edge{}},
	}

	b.declare(lines)

	// Seed the arena from the registry after the whole declaration pass, so
	// re-declared registers contribute each bit once, in declaration order.
	for _, bit := range b.reg.Bits() {
		b.seq.nodes = append(b.seq.nodes, Node{ID: bit.ID, Type: NodeType(bit.Kind), Name: bit.Name})
	}
	b.record(0)

	if err := b.instruct(lines); err != nil {
		return nil, err
	}
	return b.seq, nil
}

// declare runs the declaration pass: every line matching the declaration
// shape registers its bits. Anything else is ignored here, whatever it is;
// this pass only decides the bit universe and snapshot 0.
func (b *build) declare(lines []string) {
	for _, line := range lines {
		m := declRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		kind := registry.Qubit
		if m[1] == "creg" {
			kind = registry.ClassicalBit
		}
		count, err := strconv.Atoi(m[3])
		if err != nil {
			continue
		}
		b.reg.Declare(kind, m[2], count)
		b.logger.Debug("declared register", "kind", string(kind), "register", m[2], "count", count)
	}
}

// instruct runs the instruction pass over the filtered lines.
func (b *build) instruct(lines []string) error {
	counter := 0
	for _, line := range lines {
		if hasSkipPrefix(line) {
			continue
		}
		counter++

		inst, ok := classifyLine(line)
		if !ok {
			b.logger.Debug("ignored line", "counter", counter, "line", line)
			continue
		}
		if err := b.apply(inst, line); err != nil {
			return err
		}
		b.record(counter)
	}
	return nil
}

// apply allocates the gate node for a recognized instruction and wires one
// edge per operand, in operand order, from that operand's last writer.
func (b *build) apply(inst instruction, line string) error {
	gateID := fmt.Sprintf("g_%d", b.gateSeq)
	b.gateSeq++

	for _, operand := range inst.operands {
		ref, ok := qasm.ParseBitRef(operand)
		if !ok {
			return &MalformedBitReferenceError{Token: operand, Line: line}
		}
		source, err := b.reg.ResolveAndAdvance(ref.ID(), gateID)
		if err != nil {
			return fmt.Errorf("line %q: %w", line, err)
		}
		b.seq.edges = append(b.seq.edges, Edge{Source: source, Target: gateID})
	}

	node := Node{ID: gateID, Type: inst.shape.nodeType(), Name: inst.name, GateInfo: inst.info}
	b.seq.nodes = append(b.seq.nodes, node)
	b.logger.Debug("recognized gate", "id", gateID, "type", string(node.Type), "name", node.Name)
	return nil
}

// record marks the current arena extent as the snapshot at key.
func (b *build) record(key int) {
	b.seq.marks = append(b.seq.marks, mark{
		key:     key,
		nodeLen: len(b.seq.nodes),
		edgeLen: len(b.seq.edges),
	})
	b.logger.Debug("snapshot recorded", "key", key, "nodes", len(b.seq.nodes), "edges", len(b.seq.edges))
}

func hasSkipPrefix(line string) bool {
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

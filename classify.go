package qasmgraph

import (
	"regexp"
	"strings"
)

// gateShape is the recognized instruction form of a classified line.
type gateShape int

const (
	shapeSingle      gateShape = iota // plain one-operand
	shapeTwo                          // plain two-operand
	shapeParamSingle                  // parameterized one-operand
	shapeParamTwo                     // parameterized two-operand
	shapeMeasure                      // four-token measure
)

// nodeType maps an instruction shape to the node type its gate carries.
// Plain and parameterized two-operand gates share a wire type; the
// parameterized one is told apart by its GateInfo.
func (s gateShape) nodeType() NodeType {
	switch s {
	case shapeSingle:
		return NodeSingleQubitGate
	case shapeParamSingle:
		return NodeParamGate
	case shapeTwo, shapeParamTwo:
		return NodeTwoQubitGate
	case shapeMeasure:
		return NodeMeasurement
	default:
		return ""
	}
}

// instruction is the classified form of one source line: the shape, the
// mnemonic, the raw parameter text for parameterized shapes, and the
// operand tokens in source order with separators already stripped.
type instruction struct {
	shape    gateShape
	name     string
	info     string
	operands []string
}

var (
	parenSplitRegex = regexp.MustCompile(`[()]`)
	tokenSplitRegex = regexp.MustCompile(`[,\s]+`)
)

// classifyLine decides whether a considered line is one of the five
// recognized instruction shapes. The second return is false for lines that
// match no shape; those create no node and are not errors, though the
// engine's line counter still ticks for them.
//
// Lines containing a parenthesis pair are split on the parentheses: three
// segments are a parameterized one-operand gate, four a parameterized
// two-operand gate. Everything else is split on commas and whitespace: two
// parts are a plain one-operand gate, three a plain two-operand gate, and
// exactly four parts starting with the literal "measure" are a measurement
// (the third part is the arrow separator, discarded).
func classifyLine(line string) (instruction, bool) {
	if strings.Contains(line, "(") && strings.Contains(line, ")") {
		segs := parenSplitRegex.Split(line, -1)
		switch len(segs) {
		case 3:
			return instruction{
				shape:    shapeParamSingle,
				name:     strings.TrimSpace(segs[0]),
				info:     segs[1],
				operands: []string{trimOperand(segs[2])},
			}, true
		case 4:
			return instruction{
				shape:    shapeParamTwo,
				name:     strings.TrimSpace(segs[0]),
				info:     segs[1],
				operands: []string{trimOperand(segs[2]), trimOperand(segs[3])},
			}, true
		}
		return instruction{}, false
	}

	parts := tokenSplitRegex.Split(line, -1)
	switch {
	case len(parts) == 2:
		return instruction{
			shape:    shapeSingle,
			name:     parts[0],
			operands: []string{trimOperand(parts[1])},
		}, true
	case len(parts) == 3:
		return instruction{
			shape:    shapeTwo,
			name:     parts[0],
			operands: []string{trimOperand(parts[1]), trimOperand(parts[2])},
		}, true
	case len(parts) == 4 && parts[0] == "measure":
		return instruction{
			shape:    shapeMeasure,
			name:     parts[0],
			operands: []string{trimOperand(parts[1]), trimOperand(parts[3])},
		}, true
	}
	return instruction{}, false
}

// trimOperand strips surrounding whitespace and trailing statement
// separators from an operand token.
func trimOperand(token string) string {
	return strings.TrimRight(strings.TrimSpace(token), ";,")
}

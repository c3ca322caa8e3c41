package qasmgraph

// NodeType labels a snapshot node. Bits keep their register kind; gates are
// labeled by the instruction shape that produced them.
type NodeType string

const (
	NodeQubit        NodeType = "qubit"
	NodeClassicalBit NodeType = "classical_bit"

	// NodeSingleQubitGate is the plain one-operand shape, e.g. "h q[0];".
	NodeSingleQubitGate NodeType = "single_qubit_gate"

	// NodeParamGate is the parameterized one-operand shape, e.g.
	// "rx(0.5) q[0];". The wire value is misspelled; it is kept verbatim
	// because downstream consumers key off the historical string.
	NodeParamGate NodeType = "one_quit_gate"

	// NodeTwoQubitGate covers both the plain and the parameterized
	// two-operand shapes; the parameterized form also carries GateInfo.
	NodeTwoQubitGate NodeType = "two_qubit_gate"

	// NodeMeasurement is the four-token arrow form "measure q[1] -> c[0];".
	NodeMeasurement NodeType = "measurement"
)

// Node is one vertex of a snapshot: a declared bit or an allocated gate.
// GateInfo carries the raw parameter text of parameterized gates and is
// absent otherwise.
type Node struct {
	ID       string   `json:"id"`
	Type     NodeType `json:"type"`
	Name     string   `json:"name"`
	GateInfo string   `json:"gate_info,omitempty"`
}

// Edge is one directed value flow: the signal at Source feeds the gate at
// Target. Sources are bit ids on first use and gate ids afterwards; targets
// are always gate ids.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

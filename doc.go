// Package qasmgraph turns restricted OpenQASM 2.0 programs into temporal
// dependency graphs. Each instruction becomes a gate node wired by directed
// edges to the bits it touches, and the graph's growth is recorded
// step by step so callers can replay how a circuit's structure accumulated.
//
// # Pipeline
//
// A build runs in two passes over the comment-stripped, blank-free lines of
// the source:
//
//  1. Declare: scan qreg and creg statements and register one bit per index,
//     so "qreg q[2]" yields qubits q0 and q1.
//
//  2. Instruct: walk the remaining lines, classify each as a gate application
//     or measurement by its shape, append a gate node, and connect it to the
//     most recent writer of every operand bit.
//
// # Usage
//
// Create an Engine and build a sequence:
//
//	e := qasmgraph.New()
//	seq, err := e.Build(source)
//	if err != nil { ... }
//
//	final := seq.Final()
//	for _, n := range final.Nodes { ... }
//
// [Engine.BuildAll] builds many named sources concurrently, one independent
// sequence per input. [BuildCache] adds a digest-keyed LRU in front of an
// Engine for workloads that re-build identical text.
//
// # Snapshots
//
// A [Sequence] holds one snapshot per graph-changing instruction, keyed by
// the instruction counter at which the change landed. Key 0 is always present
// and holds the declaration-only graph. Lines the instruction pass considers
// but does not recognize still advance the counter, so keys may be sparse.
// Snapshots are prefix views of a shared arena: later snapshots extend
// earlier ones, and none of them is ever mutated after Build returns.
//
// # Failure
//
// Build is all or nothing. An operand that names an undeclared bit stops the
// build with an [UnknownBitError]; an operand that does not look like a bit
// reference at all stops it with a [MalformedBitReferenceError]. No partial
// sequence is returned.
package qasmgraph

package qasmgraph

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// mark records the arena extent of one snapshot: the first nodeLen nodes
// and edgeLen edges of the arena belong to the snapshot at key.
type mark struct {
	key     int
	nodeLen int
	edgeLen int
}

// Sequence is the result of one build: an append-only arena of nodes and
// edges plus one mark per time-key. Snapshots are prefix views over the
// arena, so holding a full sequence costs O(total nodes + edges) no matter
// how many snapshots were recorded, and an earlier snapshot can never be
// altered by later lines.
//
// A sequence is immutable once Build returns and safe for concurrent
// readers.
type Sequence struct {
	nodes []Node
	edges []Edge
	marks []mark
}

// Snapshot is the graph state at one time-key.
type Snapshot struct {
	Key   int    `json:"key"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Keys returns every time-key in ascending order. Key 0 is always present.
func (s *Sequence) Keys() []int {
	keys := make([]int, len(s.marks))
	for i, m := range s.marks {
		keys[i] = m.key
	}
	return keys
}

// Len returns the number of snapshots, the one at key 0 included.
func (s *Sequence) Len() int {
	return len(s.marks)
}

// Snapshot returns the graph state at key, or false if no instruction line
// recorded that key. The node and edge slices share the sequence's backing
// arrays; treat them as read-only.
func (s *Sequence) Snapshot(key int) (*Snapshot, bool) {
	for _, m := range s.marks {
		if m.key == key {
			return s.view(m), true
		}
	}
	return nil, false
}

// Final returns the snapshot with the highest key: the fully built graph.
func (s *Sequence) Final() *Snapshot {
	return s.view(s.marks[len(s.marks)-1])
}

// view builds the prefix view for a mark. The three-index slices keep an
// append through the view from reaching the arena.
func (s *Sequence) view(m mark) *Snapshot {
	return &Snapshot{
		Key:   m.key,
		Nodes: s.nodes[:m.nodeLen:m.nodeLen],
		Edges: s.edges[:m.edgeLen:m.edgeLen],
	}
}

// snapshotBody is the per-key value in the sequence's JSON form.
type snapshotBody struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// MarshalJSON encodes the sequence as one object keyed by time-key, keys in
// ascending numeric order. encoding/json sorts map keys as strings, which
// would put "10" before "2", so the object is assembled by hand. The output
// is deterministic, which Digest relies on.
func (s *Sequence) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range s.marks {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.Itoa(m.key)))
		buf.WriteByte(':')
		body, err := json.Marshal(snapshotBody{
			Nodes: s.nodes[:m.nodeLen:m.nodeLen],
			Edges: s.edges[:m.edgeLen:m.edgeLen],
		})
		if err != nil {
			return nil, err
		}
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

package qasmgraph

import (
	"encoding/hex"
	"fmt"

	"lukechampine.com/blake3"
)

// SourceDigest returns the blake3-256 hex digest of raw source text. The
// build cache keys on it, and callers can use it to correlate an input with
// the sequence it produced.
func SourceDigest(source string) string {
	sum := blake3.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Digest returns the blake3-256 hex digest of the sequence's JSON encoding.
// The encoding is deterministic (ascending keys, fixed field order), so two
// builds of the same text, and two texts that differ only in comments or
// whitespace, always digest to the same value.
func (s *Sequence) Digest() (string, error) {
	data, err := s.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("qasmgraph: encode sequence: %w", err)
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

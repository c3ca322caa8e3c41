package qasmgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceDigest(t *testing.T) {
	t.Parallel()

	d := SourceDigest(bellSource)
	assert.Len(t, d, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", d)

	// Stable across calls, sensitive to any byte.
	assert.Equal(t, d, SourceDigest(bellSource))
	assert.NotEqual(t, d, SourceDigest(bellSource+" "))
	assert.NotEqual(t, SourceDigest(""), SourceDigest("\n"))
}

func TestSequenceDigest(t *testing.T) {
	t.Parallel()

	first, err := buildSource(t, bellSource).Digest()
	require.NoError(t, err)
	second, err := buildSource(t, bellSource).Digest()
	require.NoError(t, err)

	assert.Len(t, first, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", first)
	assert.Equal(t, first, second)
}

func TestSequenceDigest_CommentsInvisible(t *testing.T) {
	t.Parallel()

	commented := "qreg q[1]; // one qubit\n\nh q[0]; // hadamard\n"
	bare := "qreg q[1];\nh q[0];"

	// The raw text differs, the graph it builds does not.
	assert.NotEqual(t, SourceDigest(commented), SourceDigest(bare))

	a, err := buildSource(t, commented).Digest()
	require.NoError(t, err)
	b, err := buildSource(t, bare).Digest()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSequenceDigest_GraphChangesDigest(t *testing.T) {
	t.Parallel()

	a, err := buildSource(t, "qreg q[1];\nh q[0];").Digest()
	require.NoError(t, err)
	b, err := buildSource(t, "qreg q[1];\nx q[0];").Digest()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

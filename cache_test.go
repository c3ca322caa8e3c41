package qasmgraph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCache_Hit(t *testing.T) {
	t.Parallel()

	cache, err := NewBuildCache(New(), 4)
	require.NoError(t, err)

	first, err := cache.Build(bellSource)
	require.NoError(t, err)
	second, err := cache.Build(bellSource)
	require.NoError(t, err)

	// A hit returns the cached sequence, not a rebuild.
	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.Len())
}

func TestBuildCache_DistinctSources(t *testing.T) {
	t.Parallel()

	cache, err := NewBuildCache(New(), 4)
	require.NoError(t, err)

	a, err := cache.Build("qreg q[1];\nh q[0];")
	require.NoError(t, err)
	b, err := cache.Build("qreg q[1];\nx q[0];")
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, 2, cache.Len())
}

func TestBuildCache_FailedBuildNotCached(t *testing.T) {
	t.Parallel()

	cache, err := NewBuildCache(New(), 4)
	require.NoError(t, err)

	_, err = cache.Build("qreg q[1];\nh x[0];")
	require.Error(t, err)
	assert.Zero(t, cache.Len())

	var unknownErr *UnknownBitError
	assert.ErrorAs(t, err, &unknownErr)

	// Still fails, still uncached.
	_, err = cache.Build("qreg q[1];\nh x[0];")
	require.Error(t, err)
	assert.Zero(t, cache.Len())
}

func TestBuildCache_Purge(t *testing.T) {
	t.Parallel()

	cache, err := NewBuildCache(New(), 4)
	require.NoError(t, err)

	first, err := cache.Build(bellSource)
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())

	cache.Purge()
	assert.Zero(t, cache.Len())

	second, err := cache.Build(bellSource)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestBuildCache_Eviction(t *testing.T) {
	t.Parallel()

	cache, err := NewBuildCache(New(), 1)
	require.NoError(t, err)

	_, err = cache.Build("qreg q[1];\nh q[0];")
	require.NoError(t, err)
	_, err = cache.Build("qreg q[1];\nx q[0];")
	require.NoError(t, err)

	assert.Equal(t, 1, cache.Len())
}

func TestBuildCache_BuildAllSharesIdenticalText(t *testing.T) {
	t.Parallel()

	cache, err := NewBuildCache(New(), 4)
	require.NoError(t, err)

	seqs, err := cache.BuildAll(context.Background(), map[string]string{
		"a.qasm":    bellSource,
		"copy.qasm": bellSource,
		"other":     "qreg q[1];\nh q[0];",
	})
	require.NoError(t, err)
	require.Len(t, seqs, 3)

	// Identical text builds once; the two names share one sequence.
	assert.Same(t, seqs["a.qasm"], seqs["copy.qasm"])
	assert.NotSame(t, seqs["a.qasm"], seqs["other"])
	assert.Equal(t, 2, cache.Len())
}

func TestBuildCache_BuildAllUsesCache(t *testing.T) {
	t.Parallel()

	cache, err := NewBuildCache(New(), 4)
	require.NoError(t, err)

	warm, err := cache.Build(bellSource)
	require.NoError(t, err)

	seqs, err := cache.BuildAll(context.Background(), map[string]string{"bell": bellSource})
	require.NoError(t, err)
	assert.Same(t, warm, seqs["bell"])
}

func TestBuildCache_BuildAllFailureNamesInput(t *testing.T) {
	t.Parallel()

	cache, err := NewBuildCache(New(), 4)
	require.NoError(t, err)

	_, err = cache.BuildAll(context.Background(), map[string]string{
		"good": bellSource,
		"bad":  "qreg q[1];\nh x[0];",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "build bad")
	assert.Zero(t, cache.Len())
}

func TestBuildCache_BuildAllEmpty(t *testing.T) {
	t.Parallel()

	cache, err := NewBuildCache(New(), 4)
	require.NoError(t, err)

	seqs, err := cache.BuildAll(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, seqs)
	assert.Empty(t, seqs)
}

func TestBuildCache_InvalidSize(t *testing.T) {
	t.Parallel()

	_, err := NewBuildCache(New(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create build cache")

	_, err = NewBuildCache(New(), -3)
	require.Error(t, err)
}

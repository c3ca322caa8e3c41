package qasmgraph

import (
	"context"
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
)

// BuildCache wraps an Engine with an LRU cache keyed by source digest.
// Repeat builds of identical text return the cached *Sequence instead of
// re-running the pipeline. Sequences are immutable after Build, so handing
// the same pointer to every caller is safe.
type BuildCache struct {
	engine *Engine
	seqs   *lru.Cache[string, *Sequence]
}

// NewBuildCache returns a cache holding at most size sequences.
func NewBuildCache(engine *Engine, size int) (*BuildCache, error) {
	seqs, err := lru.New[string, *Sequence](size)
	if err != nil {
		return nil, fmt.Errorf("qasmgraph: create build cache: %w", err)
	}
	return &BuildCache{engine: engine, seqs: seqs}, nil
}

// Build returns the sequence for source, building it on a cache miss.
// Failed builds are not cached: a later call with the same text runs the
// pipeline again.
func (c *BuildCache) Build(source string) (*Sequence, error) {
	key := SourceDigest(source)
	if seq, ok := c.seqs.Get(key); ok {
		return seq, nil
	}
	seq, err := c.engine.Build(source)
	if err != nil {
		return nil, err
	}
	c.seqs.Add(key, seq)
	return seq, nil
}

// BuildAll returns sequences for every named source, building only the
// texts not already cached. Distinct names carrying identical text are
// built once and share one *Sequence. Misses build concurrently through
// [Engine.BuildAll]; like it, any failure returns an error naming the
// input and no result map at all.
func (c *BuildCache) BuildAll(ctx context.Context, sources map[string]string) (map[string]*Sequence, error) {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]*Sequence, len(sources))
	repFor := make(map[string]string)    // digest -> first name with that text
	members := make(map[string][]string) // digest -> every missing name
	misses := make(map[string]string)    // representative name -> source
	for _, name := range names {
		source := sources[name]
		key := SourceDigest(source)
		if seq, ok := c.seqs.Get(key); ok {
			out[name] = seq
			continue
		}
		if _, seen := repFor[key]; !seen {
			repFor[key] = name
			misses[name] = source
		}
		members[key] = append(members[key], name)
	}
	if len(misses) == 0 {
		return out, nil
	}

	built, err := c.engine.BuildAll(ctx, misses)
	if err != nil {
		return nil, err
	}
	for key, rep := range repFor {
		seq := built[rep]
		c.seqs.Add(key, seq)
		for _, name := range members[key] {
			out[name] = seq
		}
	}
	return out, nil
}

// Len reports how many sequences are currently cached.
func (c *BuildCache) Len() int {
	return c.seqs.Len()
}

// Purge drops every cached sequence.
func (c *BuildCache) Purge() {
	c.seqs.Purge()
}

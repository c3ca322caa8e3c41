package qasmgraph

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
)

// buildItem is one unit of parallel work: a named source text.
type buildItem struct {
	name   string
	source string
}

// BuildAll builds every source concurrently and returns the sequences keyed
// by the same names. Builds share nothing (each gets its own registry and
// gate counter), so the results are identical to building serially; gate
// ids restart at g_0 in every sequence.
//
// Work is distributed over min(NumCPU, len(sources)) workers. The context
// is consulted between items only; a build in flight runs to completion.
// If any source fails, BuildAll returns an error naming it and no result
// map at all.
func (e *Engine) BuildAll(ctx context.Context, sources map[string]string) (map[string]*Sequence, error) {
	if len(sources) == 0 {
		return map[string]*Sequence{}, nil
	}

	items := make([]buildItem, 0, len(sources))
	for name, source := range sources {
		items = append(items, buildItem{name: name, source: source})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].name < items[j].name })

	numWorkers := min(runtime.NumCPU(), len(items))
	if numWorkers < 1 {
		numWorkers = 1
	}

	workCh := make(chan buildItem, len(items))
	for _, item := range items {
		workCh <- item
	}
	close(workCh)

	type result struct {
		name string
		seq  *Sequence
		err  error
	}
	resultCh := make(chan result, len(items))

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range workCh {
				if err := ctx.Err(); err != nil {
					resultCh <- result{name: item.name, err: err}
					continue
				}
				seq, err := e.Build(item.source)
				resultCh <- result{name: item.name, seq: seq, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	out := make(map[string]*Sequence, len(items))
	var errs []error
	for res := range resultCh {
		if res.err != nil {
			errs = append(errs, fmt.Errorf("build %s: %w", res.name, res.err))
			continue
		}
		out[res.name] = res.seq
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("parallel build had %d error(s): %w", len(errs), errs[0])
	}
	return out, nil
}

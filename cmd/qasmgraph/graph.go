package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/coopern1208/qasmgraph"
	"github.com/spf13/cobra"
)

var (
	flagAt     int
	flagKeys   bool
	flagDigest bool
)

// stdinName labels stdin input in results.
const stdinName = "-"

var graphCmd = &cobra.Command{
	Use:   "graph [input ...]",
	Short: "Build dependency-graph snapshots from circuit files",
	Long: "Reads OpenQASM 2.0 files (or stdin with \"-\") and emits each circuit's " +
		"snapshot sequence. Inputs may be doublestar glob patterns like circuits/**/*.qasm.",
	Args: cobra.MinimumNArgs(1),
	RunE: runGraph,
}

func init() {
	graphCmd.Flags().IntVar(&flagAt, "at", -1, "emit only the snapshot at this time-key")
	graphCmd.Flags().BoolVar(&flagKeys, "keys", false, "emit time-keys and counts only, no snapshots")
	graphCmd.Flags().BoolVar(&flagDigest, "digest", false, "include each sequence's digest")
	graphCmd.MarkFlagsMutuallyExclusive("at", "keys")
}

func runGraph(cmd *cobra.Command, args []string) error {
	sources, order, err := readInputs(args)
	if err != nil {
		return outputError("graph", err)
	}

	engine := qasmgraph.New(qasmgraph.WithLogger(logger))

	builds := make([]CLIBuild, 0, len(order))
	if len(order) == 1 {
		seq, err := engine.Build(sources[order[0]])
		if err != nil {
			return outputError("graph", err)
		}
		row, err := buildRow(order[0], seq)
		if err != nil {
			return outputError("graph", err)
		}
		builds = append(builds, row)
	} else {
		// Globs over generated corpora often repeat the same circuit text
		// under different paths; the cache builds each text once.
		cache, err := qasmgraph.NewBuildCache(engine, len(order))
		if err != nil {
			return outputError("graph", err)
		}
		seqs, err := cache.BuildAll(cmd.Context(), sources)
		if err != nil {
			return outputError("graph", err)
		}
		for _, name := range order {
			row, err := buildRow(name, seqs[name])
			if err != nil {
				return outputError("graph", err)
			}
			builds = append(builds, row)
		}
	}

	if len(builds) == 1 {
		return outputResult(CLIResult{Command: "graph", Results: builds[0]})
	}
	total := len(builds)
	return outputResult(CLIResult{Command: "graph", Results: builds, TotalCount: &total})
}

// buildRow shapes one built sequence according to the output flags.
func buildRow(input string, seq *qasmgraph.Sequence) (CLIBuild, error) {
	final := seq.Final()
	row := CLIBuild{
		Input: input,
		Keys:  seq.Keys(),
		Nodes: len(final.Nodes),
		Edges: len(final.Edges),
	}

	if flagDigest {
		digest, err := seq.Digest()
		if err != nil {
			return CLIBuild{}, err
		}
		row.Digest = digest
	}

	switch {
	case flagKeys:
		// Keys and counts only.
	case flagAt >= 0:
		snap, ok := seq.Snapshot(flagAt)
		if !ok {
			return CLIBuild{}, fmt.Errorf("%s: no snapshot at key %d (keys: %s)", input, flagAt, joinKeys(seq.Keys()))
		}
		row.Snapshot = snap
	default:
		data, err := json.Marshal(seq)
		if err != nil {
			return CLIBuild{}, fmt.Errorf("encoding %s: %w", input, err)
		}
		row.Sequence = data
	}
	return row, nil
}

func joinKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, ",")
}

// readInputs reads every input argument into a name-keyed source map plus
// the order the inputs were given. "-" reads stdin; arguments with glob
// metacharacters expand via doublestar and must match something.
func readInputs(args []string) (map[string]string, []string, error) {
	sources := make(map[string]string, len(args))
	var order []string

	add := func(name string, data []byte) {
		if _, dup := sources[name]; !dup {
			order = append(order, name)
		}
		sources[name] = string(data)
	}

	for _, arg := range args {
		if arg == stdinName {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return nil, nil, fmt.Errorf("reading stdin: %w", err)
			}
			add(stdinName, data)
			continue
		}

		paths := []string{arg}
		if strings.ContainsAny(arg, "*?[{") {
			matches, err := doublestar.FilepathGlob(arg)
			if err != nil {
				return nil, nil, fmt.Errorf("bad pattern %q: %w", arg, err)
			}
			if len(matches) == 0 {
				return nil, nil, fmt.Errorf("pattern %q matched no files", arg)
			}
			sort.Strings(matches)
			paths = matches
		}

		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, nil, fmt.Errorf("reading %s: %w", path, err)
			}
			add(path, data)
		}
	}
	return sources, order, nil
}

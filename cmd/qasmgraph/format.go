package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/coopern1208/qasmgraph"
	"github.com/coopern1208/qasmgraph/internal/qasm"
)

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}

// outputResult marshals a CLIResult to stdout in the selected format.
func outputResult(result CLIResult) error {
	if flagFormat == "text" {
		return outputResultText(result)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// outputError writes an error in the selected format and returns it so RunE
// propagates the failure exit code.
func outputError(command string, err error) error {
	errorHandled = true
	if flagFormat == "text" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}
	result := CLIResult{
		Command: command,
		Error:   err.Error(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
	return err
}

// formatBuildsText formats CLIBuild results as aligned columns.
func formatBuildsText(w io.Writer, builds []CLIBuild) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tSNAPSHOTS\tNODES\tEDGES\tDIGEST")
	for _, b := range builds {
		digest := b.Digest
		if digest == "" {
			digest = "-"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", b.Input, len(b.Keys), b.Nodes, b.Edges, digest)
	}
	tw.Flush()
}

// formatSnapshotText formats one snapshot: a summary line, the nodes, then
// the edges.
func formatSnapshotText(w io.Writer, snap *qasmgraph.Snapshot) {
	fmt.Fprintf(w, "key %d: %d nodes, %d edges\n\n", snap.Key, len(snap.Nodes), len(snap.Edges))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tNAME\tGATE_INFO")
	for _, n := range snap.Nodes {
		info := n.GateInfo
		if info == "" {
			info = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", n.ID, n.Type, n.Name, info)
	}
	tw.Flush()

	if len(snap.Edges) > 0 {
		fmt.Fprintln(w)
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SOURCE\tTARGET")
		for _, e := range snap.Edges {
			fmt.Fprintf(tw, "%s\t%s\n", e.Source, e.Target)
		}
		tw.Flush()
	}
}

// formatTokensText formats tokens as aligned columns.
func formatTokensText(w io.Writer, tokens []qasm.Token) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tVALUE")
	for _, tok := range tokens {
		fmt.Fprintf(tw, "%s\t%s\n", tok.Type, tok.Value)
	}
	tw.Flush()
}

// formatIdentsText formats declared identifiers as aligned columns.
func formatIdentsText(w io.Writer, idents []CLIIdent) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tNAME")
	for _, ident := range idents {
		fmt.Fprintf(tw, "%s\t%s\n", ident.Kind, ident.Name)
	}
	tw.Flush()
}

// outputResultText dispatches to the appropriate text formatter based on the
// result type. It writes to os.Stdout.
func outputResultText(result CLIResult) error {
	w := io.Writer(os.Stdout)

	switch v := result.Results.(type) {
	case CLIBuild:
		if v.Snapshot != nil {
			formatSnapshotText(w, v.Snapshot)
		} else {
			formatBuildsText(w, []CLIBuild{v})
		}
	case []CLIBuild:
		formatBuildsText(w, v)
	case []qasm.Token:
		formatTokensText(w, v)
	case []CLIIdent:
		formatIdentsText(w, v)
	case nil:
		// No output for nil results.
	default:
		return fmt.Errorf("unsupported result type for text format: %T", v)
	}

	// Pagination footer.
	if result.TotalCount != nil {
		count := *result.TotalCount
		shown := resultLen(result.Results)
		if shown < count {
			fmt.Fprintf(w, "\nShowing %d of %d results\n", shown, count)
		}
	}

	return nil
}

// resultLen returns the length of a result slice, or 1 for a single value.
func resultLen(v any) int {
	switch r := v.(type) {
	case []CLIBuild:
		return len(r)
	case []qasm.Token:
		return len(r)
	case []CLIIdent:
		return len(r)
	case nil:
		return 0
	default:
		return 1
	}
}

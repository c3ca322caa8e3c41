package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coopern1208/qasmgraph/internal/qasm"
	"github.com/spf13/cobra"
)

var (
	flagNDJSON   bool
	flagInclude  string
	flagIdentsOf string
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [input]",
	Short: "Tokenize circuit source",
	Long:  "Strips comments and lexes one OpenQASM 2.0 file (or stdin with \"-\") into its token stream.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().BoolVar(&flagNDJSON, "ndjson", false, "write one JSON object per line instead of the result envelope")
	tokensCmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated token types to keep (e.g. keyword,identifier)")
	tokensCmd.Flags().StringVar(&flagIdentsOf, "idents-of", "", "report declared identifiers of these comma-separated kinds instead of tokens")
	tokensCmd.MarkFlagsMutuallyExclusive("include", "idents-of")
}

func runTokens(cmd *cobra.Command, args []string) error {
	source, err := readInput(args[0])
	if err != nil {
		return outputError("tokens", err)
	}

	tokens, err := qasm.Tokenize(qasm.StripComments(source))
	if err != nil {
		return outputError("tokens", err)
	}

	if flagIdentsOf != "" {
		kinds, err := splitValidated(flagIdentsOf, qasm.DeclKinds(), "kind")
		if err != nil {
			return outputError("tokens", err)
		}
		idents := qasm.DeclaredIdentifiers(tokens)
		rows := []CLIIdent{}
		for _, kind := range kinds {
			for _, name := range idents[kind] {
				rows = append(rows, CLIIdent{Kind: kind, Name: name})
			}
		}
		if flagNDJSON {
			return writeNDJSON(rows)
		}
		total := len(rows)
		return outputResult(CLIResult{Command: "tokens", Results: rows, TotalCount: &total})
	}

	if flagInclude != "" {
		keep, err := splitValidated(flagInclude, qasm.TokenTypeNames(), "token type")
		if err != nil {
			return outputError("tokens", err)
		}
		tokens = filterTokens(tokens, keep)
	}
	if tokens == nil {
		tokens = []qasm.Token{}
	}

	if flagNDJSON {
		return writeNDJSON(tokens)
	}
	total := len(tokens)
	return outputResult(CLIResult{Command: "tokens", Results: tokens, TotalCount: &total})
}

// readInput reads one file argument, or stdin for "-".
func readInput(arg string) (string, error) {
	if arg == stdinName {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", arg, err)
	}
	return string(data), nil
}

// writeNDJSON writes one compact JSON object per element to stdout.
func writeNDJSON[T any](rows []T) error {
	enc := json.NewEncoder(os.Stdout)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}

// splitValidated splits a comma-separated flag value and checks every item
// against the allowed names, preserving the order given.
func splitValidated(value string, allowed []string, what string) ([]string, error) {
	items := strings.Split(value, ",")
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		found := false
		for _, name := range allowed {
			if item == name {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("invalid %s %q: must be one of %s", what, item, strings.Join(allowed, ", "))
		}
		out = append(out, item)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty %s list", what)
	}
	return out, nil
}

// filterTokens keeps only tokens whose type name is in keep.
func filterTokens(tokens []qasm.Token, keep []string) []qasm.Token {
	keepSet := make(map[string]bool, len(keep))
	for _, name := range keep {
		keepSet[name] = true
	}
	out := make([]qasm.Token, 0, len(tokens))
	for _, tok := range tokens {
		if keepSet[tok.Type.String()] {
			out = append(out, tok)
		}
	}
	return out
}

package main

import (
	"encoding/json"

	"github.com/coopern1208/qasmgraph"
)

// CLIResult is the top-level JSON envelope for all commands.
type CLIResult struct {
	Command    string `json:"command"`
	Results    any    `json:"results"`
	TotalCount *int   `json:"total_count,omitempty"`
	Error      string `json:"error,omitempty"`
}

// CLIBuild is one build result. Exactly one of Sequence and Snapshot is
// populated unless --keys suppressed both; Nodes and Edges always count the
// final graph.
type CLIBuild struct {
	Input    string              `json:"input"`
	Digest   string              `json:"digest,omitempty"`
	Keys     []int               `json:"keys"`
	Nodes    int                 `json:"nodes"`
	Edges    int                 `json:"edges"`
	Sequence json.RawMessage     `json:"sequence,omitempty"`
	Snapshot *qasmgraph.Snapshot `json:"snapshot,omitempty"`
}

// CLIIdent is one declared identifier. The field names match the token
// wire shape so downstream filters treat both streams alike.
type CLIIdent struct {
	Kind string `json:"typ"`
	Name string `json:"val"`
}

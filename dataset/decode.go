// SPDX-License-Identifier: MIT
//
// File: decode.go
// Role: JSON / YAML network documents → core.Graph.
// Policy:
//   - Document layout: {"Nodes": {"<id>": {attrs}}, "Edges": {"(a, b)": {attrs}}}.
//   - Edge order follows document order; an optional "EdgeList" sequence is
//     appended after "Edges" and may repeat pairs (parallel lines).
//   - Decoding problems wrap ErrMalformed; graph invariants wrap core.ErrInvalidGraph.

package dataset

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridtopo/core"
)

// Sentinel errors for dataset loading.
var (
	// ErrMalformed indicates a document that cannot be read as a network.
	ErrMalformed = errors.New("dataset: malformed document")

	// ErrUnsupportedFormat indicates a file extension no loader handles.
	ErrUnsupportedFormat = errors.New("dataset: unsupported format")
)

// document is the on-disk network layout. Nodes and Edges stay as raw nodes
// so their key order survives decoding.
type document struct {
	Nodes    yaml.Node   `yaml:"Nodes"`
	Edges    yaml.Node   `yaml:"Edges"`
	EdgeList []edgeEntry `yaml:"EdgeList"`
}

type edgeEntry struct {
	From  int            `yaml:"from"`
	To    int            `yaml:"to"`
	Attrs map[string]any `yaml:"attrs"`
}

// Decode reads one network document. JSON input is accepted as YAML.
func Decode(r io.Reader) (*core.Graph, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}

		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	var vertices []core.Vertex
	err := eachEntry(&doc.Nodes, "Nodes", func(key string, attrs map[string]any) error {
		id, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return fmt.Errorf("%w: node id %q", ErrMalformed, key)
		}
		vertices = append(vertices, core.Vertex{ID: id, Attrs: attrs})

		return nil
	})
	if err != nil {
		return nil, err
	}

	var edges []core.Edge
	err = eachEntry(&doc.Edges, "Edges", func(key string, attrs map[string]any) error {
		p, err := core.ParsePair(key)
		if err != nil {
			return fmt.Errorf("%w: edge key: %w", ErrMalformed, err)
		}
		edges = append(edges, core.Edge{From: p.U, To: p.V, Attrs: attrs})

		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, e := range doc.EdgeList {
		edges = append(edges, core.Edge{From: e.From, To: e.To, Attrs: compact(e.Attrs)})
	}

	return core.NewGraph(vertices, edges)
}

// eachEntry walks a mapping node in document order, decoding every value as
// an attribute map. An absent section is empty.
func eachEntry(n *yaml.Node, section string, fn func(key string, attrs map[string]any) error) error {
	if n.Kind == 0 {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: %s must be a mapping (line %d)", ErrMalformed, section, n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]

		var attrs map[string]any
		if err := val.Decode(&attrs); err != nil {
			return fmt.Errorf("%w: %s[%s] attributes (line %d): %w", ErrMalformed, section, key.Value, val.Line, err)
		}
		if err := fn(key.Value, compact(attrs)); err != nil {
			return err
		}
	}

	return nil
}

// compact maps an empty attribute set to nil.
func compact(attrs map[string]any) map[string]any {
	if len(attrs) == 0 {
		return nil
	}

	return attrs
}

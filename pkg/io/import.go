package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arcgram/arcgram/pkg/errors"
	"github.com/arcgram/arcgram/pkg/graph"
	"github.com/arcgram/arcgram/pkg/layout"
)

// Document is the decoded edge-list input.
type Document struct {
	Edges  graph.EdgeList
	Nodes  []graph.NodeID // nil when absent
	Labels []string       // nil when absent
	Above  *layout.SideSpec
}

type rawDocument struct {
	Nodes  []json.RawMessage `json:"nodes"`
	Labels []string          `json:"labels"`
	Edges  []rawEdge         `json:"edges"`
	Above  []json.RawMessage `json:"above"`
}

type rawEdge struct {
	From *json.RawMessage `json:"from"`
	To   *json.RawMessage `json:"to"`
}

// ReadDocument decodes an edge-list document from r.
//
// Node ids may be JSON numbers or strings; numbers must be nonnegative
// integers. An edge missing either endpoint is a SHAPE_ERROR: the input is
// not a rectangular two-column structure.
func ReadDocument(r io.Reader) (*Document, error) {
	var raw rawDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode edge list")
	}

	doc := &Document{Labels: raw.Labels}

	doc.Edges = make(graph.EdgeList, len(raw.Edges))
	for i, e := range raw.Edges {
		if e.From == nil || e.To == nil {
			return nil, errors.New(errors.ErrCodeShape,
				"edge %d is not a (from, to) pair", i)
		}
		from, err := decodeID(*e.From)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "edge %d from", i)
		}
		to, err := decodeID(*e.To)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "edge %d to", i)
		}
		doc.Edges[i] = graph.Edge{From: from, To: to}
	}

	if raw.Nodes != nil {
		doc.Nodes = make([]graph.NodeID, len(raw.Nodes))
		for i, n := range raw.Nodes {
			id, err := decodeID(n)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "node %d", i)
			}
			doc.Nodes[i] = id
		}
	}

	if raw.Above != nil {
		spec, err := decodeSideSpec(raw.Above)
		if err != nil {
			return nil, err
		}
		doc.Above = spec
	}

	return doc, nil
}

// ReadDocumentFile reads an edge-list document from a file.
func ReadDocumentFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadDocument(f)
}

// decodeID normalizes a JSON node id (number or string) to the canonical
// string key.
func decodeID(raw json.RawMessage) (graph.NodeID, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return graph.NodeID(s), nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		i, err := n.Int64()
		if err != nil || i < 0 {
			return "", fmt.Errorf("node id %s must be a nonnegative integer or string", n)
		}
		return graph.NumericID(int(i)), nil
	}
	return "", fmt.Errorf("node id %s must be a number or string", string(raw))
}

// decodeSideSpec interprets the "above" array as either all booleans or all
// integers. Anything else is a SHAPE_ERROR; mixed-sign integer lists are
// rejected later by layout.Sides.
func decodeSideSpec(raw []json.RawMessage) (*layout.SideSpec, error) {
	bools := make([]bool, 0, len(raw))
	ints := make([]int, 0, len(raw))
	allBool, allInt := true, true

	for _, r := range raw {
		var b bool
		if err := json.Unmarshal(r, &b); err == nil {
			bools = append(bools, b)
		} else {
			allBool = false
		}
		var i int
		if err := json.Unmarshal(r, &i); err == nil {
			ints = append(ints, i)
		} else {
			allInt = false
		}
	}

	switch {
	case len(raw) == 0:
		return nil, nil
	case allBool:
		return &layout.SideSpec{Bools: bools}, nil
	case allInt:
		return &layout.SideSpec{Indices: ints}, nil
	default:
		return nil, errors.New(errors.ErrCodeShape,
			"side spec must be all booleans or all integers")
	}
}

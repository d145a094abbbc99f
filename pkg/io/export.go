package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/arcgram/arcgram/pkg/errors"
	"github.com/arcgram/arcgram/pkg/graph"
)

type outDocument struct {
	Nodes  []string  `json:"nodes,omitempty"`
	Labels []string  `json:"labels,omitempty"`
	Edges  []outEdge `json:"edges"`
	Above  []any     `json:"above,omitempty"`
}

type outEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WriteDocument encodes doc as JSON. Node ids are written in their canonical
// string form, so a write-then-read round trip yields an identical document.
func WriteDocument(doc *Document, w io.Writer) error {
	out := outDocument{
		Labels: doc.Labels,
		Edges:  make([]outEdge, len(doc.Edges)),
	}
	for i, e := range doc.Edges {
		out.Edges[i] = outEdge{From: string(e.From), To: string(e.To)}
	}
	if doc.Nodes != nil {
		out.Nodes = make([]string, len(doc.Nodes))
		for i, id := range doc.Nodes {
			out.Nodes[i] = string(id)
		}
	}
	if doc.Above != nil {
		for _, b := range doc.Above.Bools {
			out.Above = append(out.Above, b)
		}
		for _, i := range doc.Above.Indices {
			out.Above = append(out.Above, i)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode edge list")
	}
	return nil
}

// WriteDocumentFile writes doc to a JSON file with 0644 permissions.
func WriteDocumentFile(doc *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", path)
	}
	defer f.Close()
	return WriteDocument(doc, f)
}

// NodeIDsFromStrings converts plain strings to canonical node ids.
func NodeIDsFromStrings(ss []string) []graph.NodeID {
	if ss == nil {
		return nil
	}
	ids := make([]graph.NodeID, len(ss))
	for i, s := range ss {
		ids[i] = graph.NodeID(s)
	}
	return ids
}

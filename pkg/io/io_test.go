package io

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/arcgram/arcgram/pkg/errors"
	"github.com/arcgram/arcgram/pkg/graph"
)

func TestReadDocument(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     *Document
		wantCode errors.Code
	}{
		{
			name:  "StringIDs",
			input: `{"edges": [{"from": "a", "to": "b"}]}`,
			want: &Document{
				Edges: graph.EdgeList{{From: "a", To: "b"}},
			},
		},
		{
			name:  "NumericIDsNormalized",
			input: `{"edges": [{"from": 1, "to": 2}]}`,
			want: &Document{
				Edges: graph.EdgeList{{From: "1", To: "2"}},
			},
		},
		{
			name:  "ExplicitNodesAndLabels",
			input: `{"nodes": ["a", "b", "c"], "labels": ["A", "B", "C"], "edges": [{"from": "a", "to": "b"}]}`,
			want: &Document{
				Edges:  graph.EdgeList{{From: "a", To: "b"}},
				Nodes:  []graph.NodeID{"a", "b", "c"},
				Labels: []string{"A", "B", "C"},
			},
		},
		{
			name:     "MissingEndpoint",
			input:    `{"edges": [{"from": "a"}]}`,
			wantCode: errors.ErrCodeShape,
		},
		{
			name:     "NegativeNumericID",
			input:    `{"edges": [{"from": -1, "to": 2}]}`,
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "FractionalNumericID",
			input:    `{"edges": [{"from": 1.5, "to": 2}]}`,
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "MalformedJSON",
			input:    `{"edges": [`,
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "SideSpecMixedTypes",
			input:    `{"edges": [{"from": "a", "to": "b"}], "above": [1, true]}`,
			wantCode: errors.ErrCodeShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadDocument(strings.NewReader(tt.input))
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("error = %v, want code %v", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadDocument() error = %v", err)
			}
			if !reflect.DeepEqual(got.Edges, tt.want.Edges) {
				t.Errorf("Edges = %v, want %v", got.Edges, tt.want.Edges)
			}
			if !reflect.DeepEqual(got.Nodes, tt.want.Nodes) {
				t.Errorf("Nodes = %v, want %v", got.Nodes, tt.want.Nodes)
			}
			if !reflect.DeepEqual(got.Labels, tt.want.Labels) {
				t.Errorf("Labels = %v, want %v", got.Labels, tt.want.Labels)
			}
		})
	}
}

func TestReadDocumentSideSpecs(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantBools   []bool
		wantIndices []int
	}{
		{
			name:      "Booleans",
			input:     `{"edges": [], "above": [true, false, true]}`,
			wantBools: []bool{true, false, true},
		},
		{
			name:        "Indices",
			input:       `{"edges": [], "above": [1, 3]}`,
			wantIndices: []int{1, 3},
		},
		{
			name:        "NegativeIndices",
			input:       `{"edges": [], "above": [-2]}`,
			wantIndices: []int{-2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ReadDocument(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadDocument() error = %v", err)
			}
			if doc.Above == nil {
				t.Fatal("Above = nil, want side spec")
			}
			if !reflect.DeepEqual(doc.Above.Bools, tt.wantBools) {
				t.Errorf("Bools = %v, want %v", doc.Above.Bools, tt.wantBools)
			}
			if !reflect.DeepEqual(doc.Above.Indices, tt.wantIndices) {
				t.Errorf("Indices = %v, want %v", doc.Above.Indices, tt.wantIndices)
			}
		})
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	input := `{"nodes": ["a", "b", "c"], "labels": ["A", "B", "C"], "edges": [{"from": "a", "to": "b"}, {"from": "c", "to": "c"}]}`
	doc, err := ReadDocument(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadDocument() error = %v", err)
	}

	var buf bytes.Buffer
	if err := WriteDocument(doc, &buf); err != nil {
		t.Fatalf("WriteDocument() error = %v", err)
	}

	again, err := ReadDocument(&buf)
	if err != nil {
		t.Fatalf("re-read error = %v", err)
	}
	if !reflect.DeepEqual(doc, again) {
		t.Errorf("round trip changed document:\n  first  = %+v\n  second = %+v", doc, again)
	}
}

package nodelink

import (
	"strings"
	"testing"

	"github.com/arcgram/arcgram/pkg/graph"
)

func TestToDOT(t *testing.T) {
	edges := graph.EdgeList{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
	}
	info, err := graph.Build(edges, graph.Options{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	tests := []struct {
		name     string
		opts     Options
		contains []string
		excludes []string
	}{
		{
			name: "Undirected",
			opts: Options{},
			contains: []string{
				"graph G {",
				`"a" [label="a"];`,
				`"a" -- "b";`,
				`"b" -- "c";`,
			},
			excludes: []string{"digraph", "->"},
		},
		{
			name: "Directed",
			opts: Options{Directed: true},
			contains: []string{
				"digraph G {",
				`"a" -> "b";`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dot := ToDOT(edges, info, tt.opts)
			for _, want := range tt.contains {
				if !strings.Contains(dot, want) {
					t.Errorf("DOT output missing %q:\n%s", want, dot)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(dot, bad) {
					t.Errorf("DOT output unexpectedly contains %q:\n%s", bad, dot)
				}
			}
		})
	}
}

func TestToDOTUsesResolvedLabels(t *testing.T) {
	edges := graph.EdgeList{{From: "1", To: "2"}}
	info, err := graph.Build(edges, graph.Options{Labels: []string{"alpha", "beta"}})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	dot := ToDOT(edges, info, Options{})
	for _, want := range []string{`"1" [label="alpha"];`, `"2" [label="beta"];`} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
}

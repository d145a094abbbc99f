package pipeline

import (
	"encoding/json"

	"github.com/arcgram/arcgram/pkg/errors"
	"github.com/arcgram/arcgram/pkg/layout"
)

// resultDoc is the JSON artifact layout. It exposes exactly the values a
// downstream tool needs to place annotations at the rendered positions.
type resultDoc struct {
	Nodes       []string   `json:"nodes"`
	Labels      []string   `json:"labels"`
	Coordinates []float64  `json:"coordinates"`
	Edges       []edgeDoc  `json:"edges"`
	Bounds      [2]float64 `json:"bounds"`
	XRange      [2]float64 `json:"x_range"`
	MaxRadius   float64    `json:"max_radius"`
}

type edgeDoc struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Center   float64 `json:"center"`
	Radius   float64 `json:"radius"`
	Positive bool    `json:"positive"`
}

func marshalResult(result *Result) ([]byte, error) {
	xmin, xmax := layout.XRange()
	doc := resultDoc{
		Nodes:       make([]string, len(result.Info.Nodes)),
		Labels:      result.Info.Labels,
		Coordinates: result.Coordinates,
		Edges:       make([]edgeDoc, len(result.Arcs)),
		Bounds:      [2]float64{result.Bounds.Min, result.Bounds.Max},
		XRange:      [2]float64{xmin, xmax},
		MaxRadius:   result.MaxRadius,
	}
	for i, id := range result.Info.Nodes {
		doc.Nodes[i] = string(id)
	}
	for i, arc := range result.Arcs {
		doc.Edges[i] = edgeDoc{
			From:     string(result.Edges[i].From),
			To:       string(result.Edges[i].To),
			Center:   arc.Center,
			Radius:   arc.Radius,
			Positive: result.Sides[i],
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode result")
	}
	return data, nil
}

// Package config loads optional TOML style files for the render command.
//
// A style file replaces the built-in defaults for arc, node marker, and
// label appearance. Every array is broadcast by the style resolver: a single
// value applies to all items, shorter arrays repeat cyclically.
//
// Example:
//
//	width = 1000
//	height = 400
//	background = "white"
//
//	[arcs]
//	colors = ["#4269d0", "#efb118"]
//	widths = [2.0]
//
//	[nodes]
//	shape = "circle"
//	sizes = [5.0]
//	fills = ["#dddddd"]
//
//	[labels]
//	size = 14.0
//	font = "Georgia, serif"
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/arcgram/arcgram/pkg/errors"
	"github.com/arcgram/arcgram/pkg/render"
)

// Config is the decoded style file.
type Config struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Background string  `toml:"background"`
	Padding    float64 `toml:"padding"`

	Arcs   ArcConfig   `toml:"arcs"`
	Nodes  NodeConfig  `toml:"nodes"`
	Labels LabelConfig `toml:"labels"`
}

// ArcConfig styles the edge arcs.
type ArcConfig struct {
	Colors []string  `toml:"colors"`
	Widths []float64 `toml:"widths"`
	Dashes []string  `toml:"dashes"`
}

// NodeConfig styles the node markers.
type NodeConfig struct {
	Shape        string    `toml:"shape"`
	Sizes        []float64 `toml:"sizes"`
	Colors       []string  `toml:"colors"`
	Fills        []string  `toml:"fills"`
	StrokeWidths []float64 `toml:"stroke_widths"`
}

// LabelConfig styles the node labels.
type LabelConfig struct {
	Colors    []string  `toml:"colors"`
	Size      float64   `toml:"size"`
	Font      string    `toml:"font"`
	Rotations []float64 `toml:"rotations"`
}

// Load reads and decodes a TOML style file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", path)
	}
	return &cfg, nil
}

// StyleSet converts the config into the resolver's input form. Scalar
// fields become single-element slices so the broadcast rule applies.
func (c *Config) StyleSet() render.StyleSet {
	s := render.StyleSet{
		ArcColors:        c.Arcs.Colors,
		ArcWidths:        c.Arcs.Widths,
		ArcDashes:        c.Arcs.Dashes,
		NodeSizes:        c.Nodes.Sizes,
		NodeColors:       c.Nodes.Colors,
		NodeFills:        c.Nodes.Fills,
		NodeStrokeWidths: c.Nodes.StrokeWidths,
		LabelColors:      c.Labels.Colors,
		LabelRotations:   c.Labels.Rotations,
	}
	if c.Nodes.Shape != "" {
		s.NodeShapes = []string{c.Nodes.Shape}
	}
	if c.Labels.Size > 0 {
		s.LabelSizes = []float64{c.Labels.Size}
	}
	if c.Labels.Font != "" {
		s.LabelFonts = []string{c.Labels.Font}
	}
	return s
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scene reads the YAML scene files rendered by artdemo.
package scene

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggart/node"
	"github.com/gogpu/ggart/primitive"
)

// ErrUnknownNode is returned for a node whose type is not group, shape or text.
var ErrUnknownNode = errors.New("scene: unknown node type")

// File is a scene document.
type File struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background,omitempty"`
	Frames     int    `yaml:"frames,omitempty"`
	Nodes      []Node `yaml:"nodes"`
}

// Node describes one primitive. Only the fields meaningful for Type are read.
type Node struct {
	Type string `yaml:"type"`

	Opacity   *float64  `yaml:"opacity,omitempty"`
	Translate []float64 `yaml:"translate,omitempty"`
	Rotate    float64   `yaml:"rotate,omitempty"` // degrees
	Scale     []float64 `yaml:"scale,omitempty"`

	// group
	Children []Node `yaml:"children,omitempty"`

	// shape
	Path        []float64 `yaml:"path,omitempty"`
	Fill        string    `yaml:"fill,omitempty"`
	Stroke      string    `yaml:"stroke,omitempty"`
	StrokeWidth float64   `yaml:"strokeWidth,omitempty"`

	// text
	Text  string  `yaml:"text,omitempty"`
	Size  float64 `yaml:"size,omitempty"`
	Align string  `yaml:"align,omitempty"`
}

// Load reads and parses the scene at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scene document and fills in defaults.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if f.Width <= 0 {
		f.Width = 400
	}
	if f.Height <= 0 {
		f.Height = 300
	}
	if f.Frames <= 0 {
		f.Frames = 1
	}
	return &f, nil
}

// BackgroundColor returns the parsed background, transparent when unset.
func (f *File) BackgroundColor() gg.RGBA {
	if f.Background == "" {
		return gg.Transparent
	}
	return gg.Hex(f.Background)
}

// Build creates the primitives of f and appends them to parent.
func (f *File) Build(parent node.Node) error {
	return buildAll(parent, f.Nodes, "nodes")
}

type childAdder interface {
	AddChild(node.Node)
}

func buildAll(parent node.Node, nodes []Node, path string) error {
	adder, ok := parent.(childAdder)
	if !ok {
		return fmt.Errorf("scene: %s: parent %T cannot hold children", path, parent)
	}
	for i := range nodes {
		p := fmt.Sprintf("%s[%d]", path, i)
		n, err := build(&nodes[i], p)
		if err != nil {
			return err
		}
		adder.AddChild(n)
	}
	return nil
}

func build(n *Node, path string) (node.Node, error) {
	switch strings.ToLower(n.Type) {
	case "group":
		g := primitive.NewGroup()
		n.applyStyle(&g.Style)
		if err := buildAll(g, n.Children, path+".children"); err != nil {
			return nil, err
		}
		return g, nil

	case "shape":
		s := primitive.NewShape()
		n.applyStyle(&s.Style)
		if err := s.SetPath(n.Path); err != nil {
			return nil, fmt.Errorf("scene: %s: %w", path, err)
		}
		if n.Fill != "" {
			s.SetFill(gg.Hex(n.Fill))
		}
		if n.Stroke != "" {
			s.SetStroke(gg.Hex(n.Stroke))
		}
		if n.StrokeWidth > 0 {
			s.StrokeWidth = n.StrokeWidth
		}
		return s, nil

	case "text":
		size := n.Size
		if size <= 0 {
			size = 16
		}
		face, err := primitive.DefaultFace(size)
		if err != nil {
			return nil, fmt.Errorf("scene: %s: %w", path, err)
		}
		t := primitive.NewText(face)
		n.applyStyle(&t.Style)
		if n.Fill != "" {
			t.Fill = gg.Hex(n.Fill)
		}
		switch strings.ToLower(n.Align) {
		case "center":
			t.Align = primitive.AlignCenter
		case "right":
			t.Align = primitive.AlignRight
		}
		t.SetText(n.Text)
		return t, nil
	}
	return nil, fmt.Errorf("%w %q at %s", ErrUnknownNode, n.Type, path)
}

// applyStyle composes translate, then rotate, then scale.
func (n *Node) applyStyle(s *primitive.Style) {
	if n.Opacity != nil {
		s.Opacity = *n.Opacity
	}
	m := gg.Identity()
	if len(n.Translate) == 2 {
		m = m.Multiply(gg.Translate(n.Translate[0], n.Translate[1]))
	}
	if n.Rotate != 0 {
		m = m.Multiply(gg.Rotate(n.Rotate * math.Pi / 180))
	}
	switch len(n.Scale) {
	case 1:
		m = m.Multiply(gg.Scale(n.Scale[0], n.Scale[0]))
	case 2:
		m = m.Multiply(gg.Scale(n.Scale[0], n.Scale[1]))
	}
	s.Transform = m
}

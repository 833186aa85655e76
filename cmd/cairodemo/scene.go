package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/cairo"
)

// Scene is a drawing described in YAML.
type Scene struct {
	Width      int     `yaml:"width,omitempty"`
	Height     int     `yaml:"height,omitempty"`
	Background string  `yaml:"background,omitempty"`
	FontSize   float64 `yaml:"font_size,omitempty"`
	Items      []Item  `yaml:"items"`
}

// Item is one shape of a scene. Type selects which geometry fields apply.
type Item struct {
	Type string `yaml:"type"`

	// rect
	X, Y float64 `yaml:",omitempty"`
	W    float64 `yaml:"w,omitempty"`
	H    float64 `yaml:"h,omitempty"`

	// circle
	CX float64 `yaml:"cx,omitempty"`
	CY float64 `yaml:"cy,omitempty"`
	R  float64 `yaml:"r,omitempty"`

	// path
	Points [][2]float64 `yaml:"points,omitempty"`
	Closed bool         `yaml:"closed,omitempty"`

	// text
	Text string  `yaml:"text,omitempty"`
	Size float64 `yaml:"size,omitempty"`

	Fill      string    `yaml:"fill,omitempty"`
	Gradient  *Gradient `yaml:"gradient,omitempty"`
	Stroke    string    `yaml:"stroke,omitempty"`
	LineWidth float64   `yaml:"line_width,omitempty"`
	Dash      []float64 `yaml:"dash,omitempty"`
}

// Gradient is a linear gradient fill.
type Gradient struct {
	X0    float64 `yaml:"x0"`
	Y0    float64 `yaml:"y0"`
	X1    float64 `yaml:"x1"`
	Y1    float64 `yaml:"y1"`
	Stops []Stop  `yaml:"stops"`
}

// Stop is one gradient color stop.
type Stop struct {
	Offset float64 `yaml:"offset"`
	Color  string  `yaml:"color"`
}

const (
	itemRect   = "rect"
	itemCircle = "circle"
	itemPath   = "path"
	itemText   = "text"
)

var errNoItems = errors.New("scene has no items")

// LoadScene reads and validates a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	return ParseScene(data)
}

// ParseScene decodes and validates a YAML scene.
func ParseScene(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scene) validate() error {
	if len(s.Items) == 0 {
		return errNoItems
	}
	for i, it := range s.Items {
		switch it.Type {
		case itemRect, itemCircle, itemText:
		case itemPath:
			if len(it.Points) < 2 {
				return fmt.Errorf("item %d: path needs at least 2 points", i)
			}
		default:
			return fmt.Errorf("item %d: unknown type %q", i, it.Type)
		}
		if it.Gradient != nil && len(it.Gradient.Stops) == 0 {
			return fmt.Errorf("item %d: gradient without stops", i)
		}
	}
	return nil
}

// path returns the outline of a geometric item.
func (it Item) path() *cairo.Path {
	b := cairo.BuildPath()
	switch it.Type {
	case itemRect:
		b.Rect(it.X, it.Y, it.W, it.H)
	case itemCircle:
		b.Circle(it.CX, it.CY, it.R)
	case itemPath:
		b.MoveTo(it.Points[0][0], it.Points[0][1])
		for _, p := range it.Points[1:] {
			b.LineTo(p[0], p[1])
		}
		if it.Closed {
			b.Close()
		}
	}
	return b.Build()
}

// defaultScene is drawn when no scene file is given.
func defaultScene(width, height int) *Scene {
	w, h := float64(width), float64(height)
	return &Scene{
		Width:      width,
		Height:     height,
		Background: "#1a2540",
		FontSize:   28,
		Items: []Item{
			{
				Type: itemRect, X: 0, Y: 0, W: w, H: h,
				Gradient: &Gradient{X0: 0, Y0: 0, X1: 0, Y1: h, Stops: []Stop{
					{Offset: 0, Color: "#1a3366"},
					{Offset: 1, Color: "#664d80"},
				}},
			},
			{Type: itemCircle, CX: 150, CY: 150, R: 60, Fill: "#ff4d4dcc"},
			{Type: itemCircle, CX: 200, CY: 150, R: 60, Fill: "#4dff4dcc"},
			{Type: itemCircle, CX: 175, CY: 200, R: 60, Fill: "#4d4dffcc"},
			{Type: itemRect, X: 350, Y: 100, W: 120, H: 80, Fill: "#ffcc00", Stroke: "#ffffff", LineWidth: 4},
			{
				Type: itemPath, Stroke: "#ff8000", LineWidth: 6, Dash: []float64{12, 6},
				Points: [][2]float64{{150, 400}, {250, 350}, {350, 420}, {450, 380}},
			},
			{
				Type: itemPath, Fill: "#ffff00", Closed: true,
				Points: star(600, 400, 60, 30, 5),
			},
			{Type: itemText, X: 40, Y: h - 40, Text: "cairo: Hello, wörld", Fill: "#ffffff"},
		},
	}
}

// star returns the vertices of a star polygon.
func star(cx, cy, outer, inner float64, points int) [][2]float64 {
	b := cairo.BuildPath().Polygon(cx, cy, outer, points*2).Build()
	var out [][2]float64
	for i, e := range b.All() {
		m, ok := e.(cairo.MoveTo)
		l, lok := e.(cairo.LineTo)
		var p cairo.Point
		switch {
		case ok:
			p = m.Point
		case lok:
			p = l.Point
		default:
			continue
		}
		if i%2 == 1 {
			p = cairo.Pt(cx+(p.X-cx)*inner/outer, cy+(p.Y-cy)*inner/outer)
		}
		out = append(out, [2]float64{p.X, p.Y})
	}
	return out
}

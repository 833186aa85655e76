package main

import (
	"fmt"

	"github.com/gogpu/cairo"
	"github.com/gogpu/cairo/shape"
)

// renderer draws scenes onto cairo targets.
type renderer struct {
	shaper *shape.Shaper
	font   *shape.Font
	face   *cairo.FontFace
}

func newRenderer(fontData []byte) (*renderer, error) {
	sh := shape.New()
	font, err := sh.Font(fontData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := cairo.NewFontFaceFromData(fontData, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load font face: %w", err)
	}
	return &renderer{shaper: sh, font: font, face: face}, nil
}

func (r *renderer) Close() error {
	return r.face.Close()
}

// Render draws s onto target. The first drawing error stops rendering.
func (r *renderer) Render(target cairo.Target, s *Scene) error {
	cr, err := cairo.NewContext(target)
	if err != nil {
		return err
	}
	defer cr.Close()

	if s.Background != "" {
		cr.SetSourceColor(cairo.Hex(s.Background))
		if err := cr.Paint(); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}

	cr.SetFontFace(r.face)
	for i, it := range s.Items {
		if err := r.item(cr, s, it); err != nil {
			return fmt.Errorf("item %d (%s): %w", i, it.Type, err)
		}
	}
	return cr.ShowPage()
}

func (r *renderer) item(cr *cairo.Context, s *Scene, it Item) error {
	cr.Save()
	defer cr.Restore()

	if it.Type == itemText {
		return r.text(cr, s, it)
	}

	cr.NewPath()
	if err := cr.AppendPath(it.path()); err != nil {
		return err
	}

	if it.Fill != "" || it.Gradient != nil {
		if it.Gradient != nil {
			g := gradient(it.Gradient)
			defer g.Close()
			cr.SetSource(g)
		} else {
			cr.SetSourceColor(cairo.Hex(it.Fill))
		}
		if err := cr.FillPreserve(); err != nil {
			return err
		}
	}

	if it.Stroke != "" {
		cr.SetSourceColor(cairo.Hex(it.Stroke))
		if it.LineWidth > 0 {
			cr.SetLineWidth(it.LineWidth)
		}
		if len(it.Dash) > 0 {
			if err := cr.SetDash(cairo.NewDash(it.Dash...)); err != nil {
				return err
			}
		}
		if err := cr.StrokePreserve(); err != nil {
			return err
		}
	}
	cr.NewPath()
	return nil
}

func (r *renderer) text(cr *cairo.Context, s *Scene, it Item) error {
	size := it.Size
	if size <= 0 {
		size = s.FontSize
	}
	if size <= 0 {
		size = 16
	}
	runs, err := r.shaper.Shape(r.font, size, it.X, it.Y, it.Text)
	if err != nil {
		return err
	}

	fill := it.Fill
	if fill == "" {
		fill = "#000"
	}
	cr.SetSourceColor(cairo.Hex(fill))
	cr.SetFontSize(size)
	for _, run := range runs {
		if err := cr.ShowTextGlyphs(run.Text, run.TextRun); err != nil {
			return err
		}
	}
	return nil
}

func gradient(g *Gradient) *cairo.Pattern {
	p := cairo.NewLinearGradient(g.X0, g.Y0, g.X1, g.Y1)
	for _, st := range g.Stops {
		p.AddColorStop(st.Offset, cairo.Hex(st.Color))
	}
	return p
}

package cairo

/*
#include "gocairo.h"
*/
import "C"

// SelectFontFace selects a toy font face by family, slant and weight.
func (c *Context) SelectFontFace(family string, slant FontSlant, weight FontWeight) {
	cs, free := cString(family)
	defer free()
	c.do(func(p *C.cairo_t) {
		C.cairo_select_font_face(p, cs, C.cairo_font_slant_t(slant), C.cairo_font_weight_t(weight))
	})
}

// SetFontSize sets the font matrix to a uniform scale of size user units.
func (c *Context) SetFontSize(size float64) {
	c.do(func(p *C.cairo_t) { C.cairo_set_font_size(p, C.double(size)) })
}

// SetFontMatrix sets the font-space to user-space matrix.
func (c *Context) SetFontMatrix(m Matrix) {
	cm := m.c()
	c.do(func(p *C.cairo_t) { C.cairo_set_font_matrix(p, &cm) })
}

// FontMatrix returns the font matrix.
func (c *Context) FontMatrix() Matrix {
	var cm C.cairo_matrix_t
	if !c.do(func(p *C.cairo_t) { C.cairo_get_font_matrix(p, &cm) }) {
		return Matrix{}
	}
	return matrixFromC(&cm)
}

// SetFontOptions merges opts into the context's font options.
func (c *Context) SetFontOptions(opts *FontOptions) {
	opts.do(func(o *C.cairo_font_options_t) {
		c.do(func(p *C.cairo_t) { C.cairo_set_font_options(p, o) })
	})
}

// FontOptions returns a copy of the context's font options.
func (c *Context) FontOptions() (*FontOptions, error) {
	if c.native() == nil {
		return nil, ErrClosed
	}
	o, err := NewFontOptions()
	if err != nil {
		return nil, err
	}
	o.do(func(dst *C.cairo_font_options_t) {
		c.do(func(p *C.cairo_t) { C.cairo_get_font_options(p, dst) })
	})
	return o, nil
}

// SetFontFace replaces the current font face. A nil face restores the
// default toy face.
func (c *Context) SetFontFace(f *FontFace) {
	if f == nil {
		c.do(func(p *C.cairo_t) { C.cairo_set_font_face(p, nil) })
		return
	}
	f.do(func(ff *C.cairo_font_face_t) {
		c.do(func(p *C.cairo_t) { C.cairo_set_font_face(p, ff) })
	})
}

// FontFace returns the current font face. The returned handle holds its own
// reference and must be closed by the caller.
func (c *Context) FontFace() *FontFace {
	var f *C.cairo_font_face_t
	if !c.do(func(p *C.cairo_t) { f = C.cairo_get_font_face(p) }) {
		return nil
	}
	return wrapFontFace(f, true)
}

// SetScaledFont replaces the font face, font matrix and font options with
// those of sf.
func (c *Context) SetScaledFont(sf *ScaledFont) {
	sf.do(func(s *C.cairo_scaled_font_t) {
		c.do(func(p *C.cairo_t) { C.cairo_set_scaled_font(p, s) })
	})
}

// ScaledFont returns the scaled font for the current font state. The
// returned handle holds its own reference and must be closed by the caller.
func (c *Context) ScaledFont() *ScaledFont {
	var s *C.cairo_scaled_font_t
	if !c.do(func(p *C.cairo_t) { s = C.cairo_get_scaled_font(p) }) {
		return nil
	}
	return wrapScaledFont(s, true)
}

// ShowText draws UTF-8 text at the current point using the simple
// character mapping of the current font.
func (c *Context) ShowText(text string) error {
	cs, free := cString(text)
	defer free()
	return c.call("cairo_show_text", func(p *C.cairo_t) { C.cairo_show_text(p, cs) })
}

// TextPath adds the outlines of text to the current path.
func (c *Context) TextPath(text string) {
	cs, free := cString(text)
	defer free()
	c.do(func(p *C.cairo_t) { C.cairo_text_path(p, cs) })
}

// ShowGlyphs draws a glyph run. An empty run draws nothing.
func (c *Context) ShowGlyphs(glyphs []Glyph) error {
	buf, err := glyphBuffer(glyphs)
	if err != nil {
		return err
	}
	defer buf.free()
	return c.call("cairo_show_glyphs", func(p *C.cairo_t) {
		C.cairo_show_glyphs(p, (*C.cairo_glyph_t)(buf.ptr), C.int(len(glyphs)))
	})
}

// GlyphPath adds the outlines of a glyph run to the current path.
func (c *Context) GlyphPath(glyphs []Glyph) error {
	buf, err := glyphBuffer(glyphs)
	if err != nil {
		return err
	}
	defer buf.free()
	return c.call("cairo_glyph_path", func(p *C.cairo_t) {
		C.cairo_glyph_path(p, (*C.cairo_glyph_t)(buf.ptr), C.int(len(glyphs)))
	})
}

// ShowTextGlyphs draws run while recording, for backends that support it,
// the mapping from text to glyphs given by its clusters. The clusters must
// cover every byte of text and every glyph; otherwise the context enters
// the StatusInvalidClusters state.
func (c *Context) ShowTextGlyphs(text string, run TextRun) error {
	if nb, ng := clusterSums(run.Clusters); nb != len(text) || ng != len(run.Glyphs) {
		Logger().Debug("cairo: clusters do not cover the run",
			"bytes", nb, "text", len(text), "glyphs", ng, "run", len(run.Glyphs))
	}
	gb, err := glyphBuffer(run.Glyphs)
	if err != nil {
		return err
	}
	defer gb.free()
	cb, err := clusterBuffer(run.Clusters)
	if err != nil {
		return err
	}
	defer cb.free()
	cs, free := cString(text)
	defer free()

	return c.call("cairo_show_text_glyphs", func(p *C.cairo_t) {
		C.cairo_show_text_glyphs(p, cs, C.int(len(text)),
			(*C.cairo_glyph_t)(gb.ptr), C.int(len(run.Glyphs)),
			(*C.cairo_text_cluster_t)(cb.ptr), C.int(len(run.Clusters)),
			C.cairo_text_cluster_flags_t(run.Flags))
	})
}

// FontExtents returns the metrics of the current font.
func (c *Context) FontExtents() (FontExtents, error) {
	var e C.cairo_font_extents_t
	err := c.call("cairo_font_extents", func(p *C.cairo_t) { C.cairo_font_extents(p, &e) })
	return fontExtentsFromC(&e), err
}

// TextExtents measures UTF-8 text with the current font.
func (c *Context) TextExtents(text string) (TextExtents, error) {
	cs, free := cString(text)
	defer free()
	var e C.cairo_text_extents_t
	err := c.call("cairo_text_extents", func(p *C.cairo_t) { C.cairo_text_extents(p, cs, &e) })
	return textExtentsFromC(&e), err
}

// GlyphExtents measures a glyph run with the current font.
func (c *Context) GlyphExtents(glyphs []Glyph) (TextExtents, error) {
	buf, err := glyphBuffer(glyphs)
	if err != nil {
		return TextExtents{}, err
	}
	defer buf.free()
	var e C.cairo_text_extents_t
	err = c.call("cairo_glyph_extents", func(p *C.cairo_t) {
		C.cairo_glyph_extents(p, (*C.cairo_glyph_t)(buf.ptr), C.int(len(glyphs)), &e)
	})
	return textExtentsFromC(&e), err
}

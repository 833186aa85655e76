package cairo

/*
#include "gocairo.h"
*/
import "C"

import "unsafe"

// extents reads a bounding box with one of the *_extents functions.
func (c *Context) extents(op string, fn func(p *C.cairo_t, x1, y1, x2, y2 *C.double)) (Extents, error) {
	var x1, y1, x2, y2 C.double
	err := c.call(op, func(p *C.cairo_t) { fn(p, &x1, &y1, &x2, &y2) })
	return Extents{X1: float64(x1), Y1: float64(y1), X2: float64(x2), Y2: float64(y2)}, err
}

// Clip intersects the clip region with the current path and clears the path.
func (c *Context) Clip() error {
	return c.call("cairo_clip", func(p *C.cairo_t) { C.cairo_clip(p) })
}

// ClipPreserve is Clip without clearing the path.
func (c *Context) ClipPreserve() error {
	return c.call("cairo_clip_preserve", func(p *C.cairo_t) { C.cairo_clip_preserve(p) })
}

// ResetClip removes any clip region.
func (c *Context) ResetClip() {
	c.do(func(p *C.cairo_t) { C.cairo_reset_clip(p) })
}

// ClipExtents returns the bounding box of the clip region in user space.
func (c *Context) ClipExtents() (Extents, error) {
	return c.extents("cairo_clip_extents", func(p *C.cairo_t, x1, y1, x2, y2 *C.double) {
		C.cairo_clip_extents(p, x1, y1, x2, y2)
	})
}

// InClip reports whether (x, y) is inside the clip region.
func (c *Context) InClip(x, y float64) bool {
	var in bool
	c.do(func(p *C.cairo_t) { in = cBool(C.cairo_in_clip(p, C.double(x), C.double(y))) })
	return in
}

// ClipRectangles returns the clip region as a list of user-space
// rectangles. A clip that is not a union of rectangles yields
// StatusClipNotRepresentable.
func (c *Context) ClipRectangles() ([]Rectangle, error) {
	var list *C.cairo_rectangle_list_t
	if !c.do(func(p *C.cairo_t) { list = C.cairo_copy_clip_rectangle_list(p) }) {
		return nil, ErrClosed
	}
	defer C.cairo_rectangle_list_destroy(list)
	if err := statusError("cairo_copy_clip_rectangle_list", list.status); err != nil {
		return nil, err
	}
	src := unsafe.Slice(list.rectangles, int(list.num_rectangles))
	out := make([]Rectangle, len(src))
	for i := range src {
		out[i] = rectangleFromC(&src[i])
	}
	return out, nil
}

// Fill fills the current path with the source and clears the path.
func (c *Context) Fill() error {
	return c.call("cairo_fill", func(p *C.cairo_t) { C.cairo_fill(p) })
}

// FillPreserve is Fill without clearing the path.
func (c *Context) FillPreserve() error {
	return c.call("cairo_fill_preserve", func(p *C.cairo_t) { C.cairo_fill_preserve(p) })
}

// FillExtents returns the area Fill would affect, in user space.
func (c *Context) FillExtents() (Extents, error) {
	return c.extents("cairo_fill_extents", func(p *C.cairo_t, x1, y1, x2, y2 *C.double) {
		C.cairo_fill_extents(p, x1, y1, x2, y2)
	})
}

// InFill reports whether (x, y) is inside the area Fill would affect.
func (c *Context) InFill(x, y float64) bool {
	var in bool
	c.do(func(p *C.cairo_t) { in = cBool(C.cairo_in_fill(p, C.double(x), C.double(y))) })
	return in
}

// Stroke strokes the current path and clears it.
func (c *Context) Stroke() error {
	return c.call("cairo_stroke", func(p *C.cairo_t) { C.cairo_stroke(p) })
}

// StrokePreserve is Stroke without clearing the path.
func (c *Context) StrokePreserve() error {
	return c.call("cairo_stroke_preserve", func(p *C.cairo_t) { C.cairo_stroke_preserve(p) })
}

// StrokeExtents returns the area Stroke would affect, in user space.
func (c *Context) StrokeExtents() (Extents, error) {
	return c.extents("cairo_stroke_extents", func(p *C.cairo_t, x1, y1, x2, y2 *C.double) {
		C.cairo_stroke_extents(p, x1, y1, x2, y2)
	})
}

// InStroke reports whether (x, y) is inside the area Stroke would affect.
func (c *Context) InStroke(x, y float64) bool {
	var in bool
	c.do(func(p *C.cairo_t) { in = cBool(C.cairo_in_stroke(p, C.double(x), C.double(y))) })
	return in
}

// Paint paints the source everywhere inside the clip region.
func (c *Context) Paint() error {
	return c.call("cairo_paint", func(p *C.cairo_t) { C.cairo_paint(p) })
}

// PaintWithAlpha is Paint with a constant alpha.
func (c *Context) PaintWithAlpha(alpha float64) error {
	return c.call("cairo_paint_with_alpha", func(p *C.cairo_t) { C.cairo_paint_with_alpha(p, C.double(alpha)) })
}

// Mask paints the source using the alpha channel of mask.
func (c *Context) Mask(mask *Pattern) error {
	if mask.native() == nil {
		return ErrClosed
	}
	var err error
	mask.do(func(pt *C.cairo_pattern_t) {
		err = c.call("cairo_mask", func(p *C.cairo_t) { C.cairo_mask(p, pt) })
	})
	return err
}

// MaskSurface paints the source using the alpha channel of s placed at (x, y).
func (c *Context) MaskSurface(s Target, x, y float64) error {
	err := ErrClosed
	s.base().do(func(sp *C.cairo_surface_t) {
		err = c.call("cairo_mask_surface", func(p *C.cairo_t) {
			C.cairo_mask_surface(p, sp, C.double(x), C.double(y))
		})
	})
	return err
}

// CopyPage emits the current page of the target and keeps its content.
func (c *Context) CopyPage() error {
	return c.call("cairo_copy_page", func(p *C.cairo_t) { C.cairo_copy_page(p) })
}

// ShowPage emits the current page of the target and starts a blank one.
func (c *Context) ShowPage() error {
	return c.call("cairo_show_page", func(p *C.cairo_t) { C.cairo_show_page(p) })
}

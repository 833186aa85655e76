package cairo

/*
#include "gocairo.h"
*/
import "C"

import (
	"image/color"
	"runtime"
	"unsafe"
)

var contextKind = &nativeKind{
	name:      "context",
	reference: func(p unsafe.Pointer) { C.cairo_reference((*C.cairo_t)(p)) },
	destroy:   func(p unsafe.Pointer) { C.cairo_destroy((*C.cairo_t)(p)) },
	count: func(p unsafe.Pointer) uint {
		return uint(C.cairo_get_reference_count((*C.cairo_t)(p)))
	},
}

// Context is a cairo drawing context bound to a target surface.
//
// Drawing state changes (setters, path construction) return nothing: a
// failure leaves the context in an error state reported by the next call
// returning an error, and by Err. Once in error, every further operation
// is a no-op reporting the same status.
type Context struct {
	h handle
}

// NewContext creates a drawing context targeting t. The context holds its
// own reference to the surface, so t may be closed while drawing continues.
func NewContext(t Target) (*Context, error) {
	var p *C.cairo_t
	if !t.base().do(func(s *C.cairo_surface_t) { p = C.cairo_create(s) }) {
		return nil, ErrClosed
	}
	if err := statusError("cairo_create", C.cairo_status(p)); err != nil {
		C.cairo_destroy(p)
		return nil, err
	}
	c := &Context{}
	bind(c, &c.h, unsafe.Pointer(p), contextKind, false)
	return c, nil
}

func (c *Context) native() *C.cairo_t {
	if c == nil {
		return nil
	}
	return (*C.cairo_t)(c.h.ptr)
}

// do runs fn on the native context. It reports false if c is closed.
func (c *Context) do(fn func(p *C.cairo_t)) bool {
	p := c.native()
	if p == nil {
		return false
	}
	fn(p)
	runtime.KeepAlive(c)
	return true
}

// call runs fn and returns the context status observed right after it.
func (c *Context) call(op string, fn func(p *C.cairo_t)) error {
	var err error
	if !c.do(func(p *C.cairo_t) {
		fn(p)
		err = statusError(op, C.cairo_status(p))
	}) {
		return ErrClosed
	}
	return err
}

// Err returns the sticky status of the context as an error.
func (c *Context) Err() error {
	return c.call("cairo_status", func(*C.cairo_t) {})
}

// ReferenceCount returns the native reference count, 0 once closed.
func (c *Context) ReferenceCount() uint {
	if c == nil {
		return 0
	}
	return c.h.refCount()
}

// Close drops this handle's reference. It is safe to call more than once.
func (c *Context) Close() error {
	if c != nil {
		c.h.release()
	}
	return nil
}

// Save pushes a copy of the drawing state onto the state stack.
func (c *Context) Save() {
	c.do(func(p *C.cairo_t) { C.cairo_save(p) })
}

// Restore pops the state saved by the matching Save. An unmatched Restore
// puts the context in the StatusInvalidRestore state.
func (c *Context) Restore() {
	c.do(func(p *C.cairo_t) { C.cairo_restore(p) })
}

// PushGroup redirects drawing to an intermediate surface until PopGroup.
func (c *Context) PushGroup() {
	c.do(func(p *C.cairo_t) { C.cairo_push_group(p) })
}

// PushGroupWithContent is PushGroup with an explicit group content.
func (c *Context) PushGroupWithContent(content Content) {
	c.do(func(p *C.cairo_t) { C.cairo_push_group_with_content(p, C.cairo_content_t(content)) })
}

// PopGroup ends the group started by PushGroup and returns it as a pattern.
func (c *Context) PopGroup() (*Pattern, error) {
	var pt *C.cairo_pattern_t
	err := c.call("cairo_pop_group", func(p *C.cairo_t) { pt = C.cairo_pop_group(p) })
	if pt == nil {
		return nil, err
	}
	if err != nil {
		C.cairo_pattern_destroy(pt)
		return nil, err
	}
	return wrapPattern(pt, false), nil
}

// PopGroupToSource ends the current group and makes it the source pattern.
func (c *Context) PopGroupToSource() {
	c.do(func(p *C.cairo_t) { C.cairo_pop_group_to_source(p) })
}

// Target returns the surface passed to NewContext. The returned handle holds
// its own reference and must be closed by the caller.
func (c *Context) Target() *Surface {
	var s *C.cairo_surface_t
	if !c.do(func(p *C.cairo_t) { s = C.cairo_get_target(p) }) {
		return nil
	}
	return wrapSurface(s, true)
}

// GroupTarget returns the surface of the innermost group, or the target
// when no group is active. The caller must close the returned handle.
func (c *Context) GroupTarget() *Surface {
	var s *C.cairo_surface_t
	if !c.do(func(p *C.cairo_t) { s = C.cairo_get_group_target(p) }) {
		return nil
	}
	return wrapSurface(s, true)
}

// SetSource sets the pattern used by drawing operations. The context keeps
// its own reference to the pattern.
func (c *Context) SetSource(src *Pattern) {
	src.do(func(pt *C.cairo_pattern_t) {
		c.do(func(p *C.cairo_t) { C.cairo_set_source(p, pt) })
	})
}

// SetSourceRGB sets an opaque solid source color.
func (c *Context) SetSourceRGB(r, g, b float64) {
	c.do(func(p *C.cairo_t) { C.cairo_set_source_rgb(p, C.double(r), C.double(g), C.double(b)) })
}

// SetSourceRGBA sets a translucent solid source color.
func (c *Context) SetSourceRGBA(r, g, b, a float64) {
	c.do(func(p *C.cairo_t) { C.cairo_set_source_rgba(p, C.double(r), C.double(g), C.double(b), C.double(a)) })
}

// SetSourceColor sets a solid source from any color.Color.
func (c *Context) SetSourceColor(col color.Color) {
	v := FromColor(col)
	c.SetSourceRGBA(v.R, v.G, v.B, v.A)
}

// SetSourceSurface uses s as the source, with its origin at (x, y) in user space.
func (c *Context) SetSourceSurface(s Target, x, y float64) {
	s.base().do(func(sp *C.cairo_surface_t) {
		c.do(func(p *C.cairo_t) { C.cairo_set_source_surface(p, sp, C.double(x), C.double(y)) })
	})
}

// Source returns the current source pattern. The returned handle holds its
// own reference and must be closed by the caller.
func (c *Context) Source() *Pattern {
	var pt *C.cairo_pattern_t
	if !c.do(func(p *C.cairo_t) { pt = C.cairo_get_source(p) }) {
		return nil
	}
	return wrapPattern(pt, true)
}

// SetAntialias sets the antialiasing mode for shapes.
func (c *Context) SetAntialias(a Antialias) {
	c.do(func(p *C.cairo_t) { C.cairo_set_antialias(p, C.cairo_antialias_t(a)) })
}

// Antialias returns the antialiasing mode.
func (c *Context) Antialias() Antialias {
	var a Antialias
	c.do(func(p *C.cairo_t) { a = Antialias(C.cairo_get_antialias(p)) })
	return a
}

// SetDash sets the dash pattern used by Stroke. An empty Array disables
// dashing. Invalid patterns are reported as StatusInvalidDash.
func (c *Context) SetDash(d Dash) error {
	buf, err := doubleBuffer(d.Array)
	if err != nil {
		return err
	}
	defer buf.free()
	return c.call("cairo_set_dash", func(p *C.cairo_t) {
		C.cairo_set_dash(p, (*C.double)(buf.ptr), C.int(len(d.Array)), C.double(d.Offset))
	})
}

// DashCount returns the length of the dash array, 0 when not dashing.
func (c *Context) DashCount() int {
	var n int
	c.do(func(p *C.cairo_t) { n = int(C.cairo_get_dash_count(p)) })
	return n
}

// Dash returns the current dash pattern. Without dashing it returns an
// empty Array and a zero Offset.
func (c *Context) Dash() (Dash, error) {
	n := c.DashCount()
	buf, err := allocBuffer(n, C.sizeof_double)
	if err != nil {
		return Dash{}, err
	}
	defer buf.free()

	var off C.double
	if !c.do(func(p *C.cairo_t) { C.cairo_get_dash(p, (*C.double)(buf.ptr), &off) }) {
		return Dash{}, ErrClosed
	}
	d := Dash{Array: make([]float64, n), Offset: float64(off)}
	for i, v := range buf.doubles() {
		d.Array[i] = float64(v)
	}
	return d, nil
}

// SetFillRule sets the fill rule used by Fill and Clip.
func (c *Context) SetFillRule(r FillRule) {
	c.do(func(p *C.cairo_t) { C.cairo_set_fill_rule(p, C.cairo_fill_rule_t(r)) })
}

// FillRule returns the fill rule.
func (c *Context) FillRule() FillRule {
	var r FillRule
	c.do(func(p *C.cairo_t) { r = FillRule(C.cairo_get_fill_rule(p)) })
	return r
}

// SetLineCap sets the shape of line endpoints.
func (c *Context) SetLineCap(lc LineCap) {
	c.do(func(p *C.cairo_t) { C.cairo_set_line_cap(p, C.cairo_line_cap_t(lc)) })
}

// LineCap returns the line cap.
func (c *Context) LineCap() LineCap {
	var lc LineCap
	c.do(func(p *C.cairo_t) { lc = LineCap(C.cairo_get_line_cap(p)) })
	return lc
}

// SetLineJoin sets the shape of line joins.
func (c *Context) SetLineJoin(lj LineJoin) {
	c.do(func(p *C.cairo_t) { C.cairo_set_line_join(p, C.cairo_line_join_t(lj)) })
}

// LineJoin returns the line join.
func (c *Context) LineJoin() LineJoin {
	var lj LineJoin
	c.do(func(p *C.cairo_t) { lj = LineJoin(C.cairo_get_line_join(p)) })
	return lj
}

// SetLineWidth sets the stroke width in user space.
func (c *Context) SetLineWidth(w float64) {
	c.do(func(p *C.cairo_t) { C.cairo_set_line_width(p, C.double(w)) })
}

// LineWidth returns the stroke width.
func (c *Context) LineWidth() float64 {
	var w C.double
	c.do(func(p *C.cairo_t) { w = C.cairo_get_line_width(p) })
	return float64(w)
}

// SetMiterLimit sets the limit beyond which miter joins become bevels.
func (c *Context) SetMiterLimit(limit float64) {
	c.do(func(p *C.cairo_t) { C.cairo_set_miter_limit(p, C.double(limit)) })
}

// MiterLimit returns the miter limit.
func (c *Context) MiterLimit() float64 {
	var v C.double
	c.do(func(p *C.cairo_t) { v = C.cairo_get_miter_limit(p) })
	return float64(v)
}

// SetOperator sets the compositing operator.
func (c *Context) SetOperator(op Operator) {
	c.do(func(p *C.cairo_t) { C.cairo_set_operator(p, C.cairo_operator_t(op)) })
}

// Operator returns the compositing operator.
func (c *Context) Operator() Operator {
	var op Operator
	c.do(func(p *C.cairo_t) { op = Operator(C.cairo_get_operator(p)) })
	return op
}

// SetTolerance sets the maximum error, in device units, of curve flattening.
func (c *Context) SetTolerance(t float64) {
	c.do(func(p *C.cairo_t) { C.cairo_set_tolerance(p, C.double(t)) })
}

// Tolerance returns the flattening tolerance.
func (c *Context) Tolerance() float64 {
	var v C.double
	c.do(func(p *C.cairo_t) { v = C.cairo_get_tolerance(p) })
	return float64(v)
}

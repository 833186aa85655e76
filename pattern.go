package cairo

/*
#include "gocairo.h"
*/
import "C"

import (
	"runtime"
	"unsafe"
)

var patternKind = &nativeKind{
	name:      "pattern",
	reference: func(p unsafe.Pointer) { C.cairo_pattern_reference((*C.cairo_pattern_t)(p)) },
	destroy:   func(p unsafe.Pointer) { C.cairo_pattern_destroy((*C.cairo_pattern_t)(p)) },
	count: func(p unsafe.Pointer) uint {
		return uint(C.cairo_pattern_get_reference_count((*C.cairo_pattern_t)(p)))
	},
}

// Pattern is a reference to a native cairo pattern: a solid color, a
// surface, a linear or radial gradient or a mesh. Mesh construction
// methods only apply to mesh patterns; on other kinds they put the pattern
// in the StatusPatternTypeMismatch state.
type Pattern struct {
	h handle
}

func wrapPattern(p *C.cairo_pattern_t, borrowed bool) *Pattern {
	pt := &Pattern{}
	bind(pt, &pt.h, unsafe.Pointer(p), patternKind, borrowed)
	return pt
}

func (pt *Pattern) native() *C.cairo_pattern_t {
	if pt == nil {
		return nil
	}
	return (*C.cairo_pattern_t)(pt.h.ptr)
}

func (pt *Pattern) do(fn func(p *C.cairo_pattern_t)) bool {
	p := pt.native()
	if p == nil {
		return false
	}
	fn(p)
	runtime.KeepAlive(pt)
	return true
}

func (pt *Pattern) call(op string, fn func(p *C.cairo_pattern_t) C.cairo_status_t) error {
	var err error
	if !pt.do(func(p *C.cairo_pattern_t) { err = statusError(op, fn(p)) }) {
		return ErrClosed
	}
	return err
}

// NewRGBPattern creates an opaque solid pattern. Components are clamped to [0, 1].
func NewRGBPattern(r, g, b float64) *Pattern {
	return wrapPattern(C.cairo_pattern_create_rgb(C.double(r), C.double(g), C.double(b)), false)
}

// NewRGBAPattern creates a translucent solid pattern.
func NewRGBAPattern(r, g, b, a float64) *Pattern {
	return wrapPattern(C.cairo_pattern_create_rgba(C.double(r), C.double(g), C.double(b), C.double(a)), false)
}

// NewSurfacePattern creates a pattern painting s. The pattern holds its own
// reference to the surface.
func NewSurfacePattern(s Target) *Pattern {
	var p *C.cairo_pattern_t
	if !s.base().do(func(sp *C.cairo_surface_t) { p = C.cairo_pattern_create_for_surface(sp) }) {
		p = C.cairo_pattern_create_for_surface(nil)
	}
	return wrapPattern(p, false)
}

// NewLinearGradient creates a gradient along the line (x0, y0)-(x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *Pattern {
	return wrapPattern(C.cairo_pattern_create_linear(C.double(x0), C.double(y0), C.double(x1), C.double(y1)), false)
}

// NewRadialGradient creates a gradient between two circles.
func NewRadialGradient(cx0, cy0, r0, cx1, cy1, r1 float64) *Pattern {
	return wrapPattern(C.cairo_pattern_create_radial(
		C.double(cx0), C.double(cy0), C.double(r0),
		C.double(cx1), C.double(cy1), C.double(r1)), false)
}

// NewMeshPattern creates an empty mesh pattern. Patches are added between
// BeginPatch and EndPatch.
func NewMeshPattern() *Pattern {
	return wrapPattern(C.cairo_pattern_create_mesh(), false)
}

// Err returns the sticky status of the pattern as an error.
func (pt *Pattern) Err() error {
	return pt.call("cairo_pattern_status", func(p *C.cairo_pattern_t) C.cairo_status_t {
		return C.cairo_pattern_status(p)
	})
}

// ReferenceCount returns the native reference count, 0 once closed.
func (pt *Pattern) ReferenceCount() uint {
	if pt == nil {
		return 0
	}
	return pt.h.refCount()
}

// Close drops this handle's reference. It is safe to call more than once.
func (pt *Pattern) Close() error {
	if pt != nil {
		pt.h.release()
	}
	return nil
}

// Type returns the kind of pattern.
func (pt *Pattern) Type() PatternType {
	var t PatternType
	pt.do(func(p *C.cairo_pattern_t) { t = PatternType(C.cairo_pattern_get_type(p)) })
	return t
}

// AddColorStopRGB adds an opaque color stop to a gradient.
func (pt *Pattern) AddColorStopRGB(offset, r, g, b float64) {
	pt.do(func(p *C.cairo_pattern_t) {
		C.cairo_pattern_add_color_stop_rgb(p, C.double(offset), C.double(r), C.double(g), C.double(b))
	})
}

// AddColorStopRGBA adds a translucent color stop to a gradient.
func (pt *Pattern) AddColorStopRGBA(offset, r, g, b, a float64) {
	pt.do(func(p *C.cairo_pattern_t) {
		C.cairo_pattern_add_color_stop_rgba(p, C.double(offset), C.double(r), C.double(g), C.double(b), C.double(a))
	})
}

// AddColorStop adds a color stop given as an RGBA value.
func (pt *Pattern) AddColorStop(offset float64, c RGBA) {
	pt.AddColorStopRGBA(offset, c.R, c.G, c.B, c.A)
}

// ColorStopCount returns the number of color stops of a gradient.
func (pt *Pattern) ColorStopCount() (int, error) {
	var n C.int
	err := pt.call("cairo_pattern_get_color_stop_count", func(p *C.cairo_pattern_t) C.cairo_status_t {
		return C.cairo_pattern_get_color_stop_count(p, &n)
	})
	return int(n), err
}

// ColorStop returns the color stop at index i.
func (pt *Pattern) ColorStop(i int) (ColorStop, error) {
	var off, r, g, b, a C.double
	err := pt.call("cairo_pattern_get_color_stop_rgba", func(p *C.cairo_pattern_t) C.cairo_status_t {
		return C.cairo_pattern_get_color_stop_rgba(p, C.int(i), &off, &r, &g, &b, &a)
	})
	if err != nil {
		return ColorStop{}, err
	}
	return ColorStop{Offset: float64(off), R: float64(r), G: float64(g), B: float64(b), A: float64(a)}, nil
}

// ColorStops returns every color stop of a gradient in offset order.
func (pt *Pattern) ColorStops() ([]ColorStop, error) {
	n, err := pt.ColorStopCount()
	if err != nil {
		return nil, err
	}
	stops := make([]ColorStop, n)
	for i := range stops {
		if stops[i], err = pt.ColorStop(i); err != nil {
			return nil, err
		}
	}
	return stops, nil
}

// RGBA returns the color of a solid pattern.
func (pt *Pattern) RGBA() (RGBA, error) {
	var r, g, b, a C.double
	err := pt.call("cairo_pattern_get_rgba", func(p *C.cairo_pattern_t) C.cairo_status_t {
		return C.cairo_pattern_get_rgba(p, &r, &g, &b, &a)
	})
	return RGBA{R: float64(r), G: float64(g), B: float64(b), A: float64(a)}, err
}

// Surface returns the surface of a surface pattern. The returned handle
// holds its own reference and must be closed by the caller.
func (pt *Pattern) Surface() (*Surface, error) {
	var sp *C.cairo_surface_t
	err := pt.call("cairo_pattern_get_surface", func(p *C.cairo_pattern_t) C.cairo_status_t {
		return C.cairo_pattern_get_surface(p, &sp)
	})
	if err != nil {
		return nil, err
	}
	return wrapSurface(sp, true), nil
}

// LinearPoints returns the endpoints of a linear gradient.
func (pt *Pattern) LinearPoints() (p0, p1 Point, err error) {
	var x0, y0, x1, y1 C.double
	err = pt.call("cairo_pattern_get_linear_points", func(p *C.cairo_pattern_t) C.cairo_status_t {
		return C.cairo_pattern_get_linear_points(p, &x0, &y0, &x1, &y1)
	})
	return Pt(float64(x0), float64(y0)), Pt(float64(x1), float64(y1)), err
}

// Circle is a center and radius, as used by radial gradients.
type Circle struct {
	Center Point
	Radius float64
}

// RadialCircles returns the start and end circles of a radial gradient.
func (pt *Pattern) RadialCircles() (c0, c1 Circle, err error) {
	var x0, y0, r0, x1, y1, r1 C.double
	err = pt.call("cairo_pattern_get_radial_circles", func(p *C.cairo_pattern_t) C.cairo_status_t {
		return C.cairo_pattern_get_radial_circles(p, &x0, &y0, &r0, &x1, &y1, &r1)
	})
	c0 = Circle{Center: Pt(float64(x0), float64(y0)), Radius: float64(r0)}
	c1 = Circle{Center: Pt(float64(x1), float64(y1)), Radius: float64(r1)}
	return c0, c1, err
}

// SetExtend sets how the pattern is painted outside its natural area.
func (pt *Pattern) SetExtend(e Extend) {
	pt.do(func(p *C.cairo_pattern_t) { C.cairo_pattern_set_extend(p, C.cairo_extend_t(e)) })
}

// Extend returns the extend mode.
func (pt *Pattern) Extend() Extend {
	var e Extend
	pt.do(func(p *C.cairo_pattern_t) { e = Extend(C.cairo_pattern_get_extend(p)) })
	return e
}

// SetFilter sets the sampling filter.
func (pt *Pattern) SetFilter(f Filter) {
	pt.do(func(p *C.cairo_pattern_t) { C.cairo_pattern_set_filter(p, C.cairo_filter_t(f)) })
}

// Filter returns the sampling filter.
func (pt *Pattern) Filter() Filter {
	var f Filter
	pt.do(func(p *C.cairo_pattern_t) { f = Filter(C.cairo_pattern_get_filter(p)) })
	return f
}

// SetMatrix sets the pattern-space to user-space transformation.
func (pt *Pattern) SetMatrix(m Matrix) {
	cm := m.c()
	pt.do(func(p *C.cairo_pattern_t) { C.cairo_pattern_set_matrix(p, &cm) })
}

// Matrix returns the pattern matrix.
func (pt *Pattern) Matrix() Matrix {
	var cm C.cairo_matrix_t
	if !pt.do(func(p *C.cairo_pattern_t) { C.cairo_pattern_get_matrix(p, &cm) }) {
		return Matrix{}
	}
	return matrixFromC(&cm)
}

// BeginPatch starts a new patch of a mesh pattern.
func (pt *Pattern) BeginPatch() {
	pt.do(func(p *C.cairo_pattern_t) { C.cairo_mesh_pattern_begin_patch(p) })
}

// EndPatch completes the current patch of a mesh pattern.
func (pt *Pattern) EndPatch() {
	pt.do(func(p *C.cairo_pattern_t) { C.cairo_mesh_pattern_end_patch(p) })
}

// MoveTo sets the first corner of the current mesh patch.
func (pt *Pattern) MoveTo(x, y float64) {
	pt.do(func(p *C.cairo_pattern_t) { C.cairo_mesh_pattern_move_to(p, C.double(x), C.double(y)) })
}

// LineTo adds a straight side to the current mesh patch.
func (pt *Pattern) LineTo(x, y float64) {
	pt.do(func(p *C.cairo_pattern_t) { C.cairo_mesh_pattern_line_to(p, C.double(x), C.double(y)) })
}

// CurveTo adds a curved side to the current mesh patch.
func (pt *Pattern) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	pt.do(func(p *C.cairo_pattern_t) {
		C.cairo_mesh_pattern_curve_to(p, C.double(x1), C.double(y1), C.double(x2), C.double(y2), C.double(x3), C.double(y3))
	})
}

// SetControlPoint sets interior control point i (0-3) of the current patch.
func (pt *Pattern) SetControlPoint(i int, x, y float64) {
	pt.do(func(p *C.cairo_pattern_t) {
		C.cairo_mesh_pattern_set_control_point(p, C.uint(i), C.double(x), C.double(y))
	})
}

// SetCornerColorRGB sets the color of corner i (0-3) of the current patch.
func (pt *Pattern) SetCornerColorRGB(i int, r, g, b float64) {
	pt.do(func(p *C.cairo_pattern_t) {
		C.cairo_mesh_pattern_set_corner_color_rgb(p, C.uint(i), C.double(r), C.double(g), C.double(b))
	})
}

// SetCornerColorRGBA sets the translucent color of corner i of the current patch.
func (pt *Pattern) SetCornerColorRGBA(i int, r, g, b, a float64) {
	pt.do(func(p *C.cairo_pattern_t) {
		C.cairo_mesh_pattern_set_corner_color_rgba(p, C.uint(i), C.double(r), C.double(g), C.double(b), C.double(a))
	})
}

// PatchCount returns the number of completed patches of a mesh pattern.
func (pt *Pattern) PatchCount() (int, error) {
	var n C.uint
	err := pt.call("cairo_mesh_pattern_get_patch_count", func(p *C.cairo_pattern_t) C.cairo_status_t {
		return C.cairo_mesh_pattern_get_patch_count(p, &n)
	})
	return int(n), err
}

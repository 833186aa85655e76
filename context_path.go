package cairo

/*
#include "gocairo.h"
*/
import "C"

import "unsafe"

// CopyPath returns a copy of the current path. Curves are kept as CurveTo
// elements. On a context in an error state it returns that error.
func (c *Context) CopyPath() (*Path, error) {
	return c.copyPath("cairo_copy_path", func(p *C.cairo_t) *C.cairo_path_t {
		return C.cairo_copy_path(p)
	})
}

// CopyPathFlat is CopyPath with every curve flattened into LineTo elements
// within the current tolerance.
func (c *Context) CopyPathFlat() (*Path, error) {
	return c.copyPath("cairo_copy_path_flat", func(p *C.cairo_t) *C.cairo_path_t {
		return C.cairo_copy_path_flat(p)
	})
}

// copyPath decodes the native copy into a Go Path and destroys it before
// returning.
func (c *Context) copyPath(op string, fn func(p *C.cairo_t) *C.cairo_path_t) (*Path, error) {
	var cp *C.cairo_path_t
	if !c.do(func(p *C.cairo_t) { cp = fn(p) }) {
		return nil, ErrClosed
	}
	defer C.cairo_path_destroy(cp)
	if err := statusError(op, cp.status); err != nil {
		return nil, err
	}
	data := unsafe.Slice((*pathData)(unsafe.Pointer(cp.data)), int(cp.num_data))
	elems, err := decodePath(data)
	if err != nil {
		return nil, &Error{Op: op, Status: StatusInvalidPathData}
	}
	return PathOf(elems...), nil
}

// AppendPath replays path into the current path.
func (c *Context) AppendPath(path *Path) error {
	var elems []PathElement
	if path != nil {
		elems = path.elements
	}
	n := pathDataLen(elems)
	if n == 0 {
		return c.Err()
	}

	data, err := allocBuffer(n, C.sizeof_cairo_path_data_t)
	if err != nil {
		return err
	}
	defer data.free()
	hdr, err := allocBuffer(1, C.sizeof_cairo_path_t)
	if err != nil {
		return err
	}
	defer hdr.free()

	encodePath(unsafe.Slice((*pathData)(data.ptr), n), elems)
	cp := (*C.cairo_path_t)(hdr.ptr)
	cp.status = C.CAIRO_STATUS_SUCCESS
	cp.data = (*C.cairo_path_data_t)(data.ptr)
	cp.num_data = C.int(n)

	return c.call("cairo_append_path", func(p *C.cairo_t) { C.cairo_append_path(p, cp) })
}

// HasCurrentPoint reports whether the path has a current point.
func (c *Context) HasCurrentPoint() bool {
	var ok bool
	c.do(func(p *C.cairo_t) { ok = cBool(C.cairo_has_current_point(p)) })
	return ok
}

// CurrentPoint returns the current point in user space, (0, 0) without one.
func (c *Context) CurrentPoint() Point {
	var x, y C.double
	c.do(func(p *C.cairo_t) { C.cairo_get_current_point(p, &x, &y) })
	return Pt(float64(x), float64(y))
}

// NewPath clears the current path.
func (c *Context) NewPath() {
	c.do(func(p *C.cairo_t) { C.cairo_new_path(p) })
}

// NewSubPath starts a new subpath without a current point.
func (c *Context) NewSubPath() {
	c.do(func(p *C.cairo_t) { C.cairo_new_sub_path(p) })
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	c.do(func(p *C.cairo_t) { C.cairo_close_path(p) })
}

// MoveTo begins a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) {
	c.do(func(p *C.cairo_t) { C.cairo_move_to(p, C.double(x), C.double(y)) })
}

// LineTo adds a line to (x, y). Without a current point it behaves as MoveTo.
func (c *Context) LineTo(x, y float64) {
	c.do(func(p *C.cairo_t) { C.cairo_line_to(p, C.double(x), C.double(y)) })
}

// CurveTo adds a cubic Bezier curve to (x3, y3).
func (c *Context) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	c.do(func(p *C.cairo_t) {
		C.cairo_curve_to(p, C.double(x1), C.double(y1), C.double(x2), C.double(y2), C.double(x3), C.double(y3))
	})
}

// RelMoveTo is MoveTo relative to the current point. Without a current
// point the context enters the StatusNoCurrentPoint state.
func (c *Context) RelMoveTo(dx, dy float64) {
	c.do(func(p *C.cairo_t) { C.cairo_rel_move_to(p, C.double(dx), C.double(dy)) })
}

// RelLineTo is LineTo relative to the current point.
func (c *Context) RelLineTo(dx, dy float64) {
	c.do(func(p *C.cairo_t) { C.cairo_rel_line_to(p, C.double(dx), C.double(dy)) })
}

// RelCurveTo is CurveTo with every point relative to the current point.
func (c *Context) RelCurveTo(dx1, dy1, dx2, dy2, dx3, dy3 float64) {
	c.do(func(p *C.cairo_t) {
		C.cairo_rel_curve_to(p, C.double(dx1), C.double(dy1), C.double(dx2), C.double(dy2), C.double(dx3), C.double(dy3))
	})
}

// Arc adds a circular arc in the direction of increasing angles.
func (c *Context) Arc(xc, yc, radius, angle1, angle2 float64) {
	c.do(func(p *C.cairo_t) {
		C.cairo_arc(p, C.double(xc), C.double(yc), C.double(radius), C.double(angle1), C.double(angle2))
	})
}

// ArcNegative adds a circular arc in the direction of decreasing angles.
func (c *Context) ArcNegative(xc, yc, radius, angle1, angle2 float64) {
	c.do(func(p *C.cairo_t) {
		C.cairo_arc_negative(p, C.double(xc), C.double(yc), C.double(radius), C.double(angle1), C.double(angle2))
	})
}

// Rectangle adds a closed rectangle subpath.
func (c *Context) Rectangle(x, y, width, height float64) {
	c.do(func(p *C.cairo_t) {
		C.cairo_rectangle(p, C.double(x), C.double(y), C.double(width), C.double(height))
	})
}

// PathExtents returns the bounding box of the current path in user space,
// ignoring stroke parameters.
func (c *Context) PathExtents() (Extents, error) {
	return c.extents("cairo_path_extents", func(p *C.cairo_t, x1, y1, x2, y2 *C.double) {
		C.cairo_path_extents(p, x1, y1, x2, y2)
	})
}

// Translate shifts the user-space origin by (tx, ty).
func (c *Context) Translate(tx, ty float64) {
	c.do(func(p *C.cairo_t) { C.cairo_translate(p, C.double(tx), C.double(ty)) })
}

// Scale scales the user-space axes.
func (c *Context) Scale(sx, sy float64) {
	c.do(func(p *C.cairo_t) { C.cairo_scale(p, C.double(sx), C.double(sy)) })
}

// Rotate rotates the user-space axes by angle radians.
func (c *Context) Rotate(angle float64) {
	c.do(func(p *C.cairo_t) { C.cairo_rotate(p, C.double(angle)) })
}

// Transform applies m to the current transformation, before it.
func (c *Context) Transform(m Matrix) {
	cm := m.c()
	c.do(func(p *C.cairo_t) { C.cairo_transform(p, &cm) })
}

// SetMatrix replaces the current transformation matrix. A non-invertible
// matrix puts the context in the StatusInvalidMatrix state.
func (c *Context) SetMatrix(m Matrix) {
	cm := m.c()
	c.do(func(p *C.cairo_t) { C.cairo_set_matrix(p, &cm) })
}

// Matrix returns the current transformation matrix.
func (c *Context) Matrix() Matrix {
	var cm C.cairo_matrix_t
	if !c.do(func(p *C.cairo_t) { C.cairo_get_matrix(p, &cm) }) {
		return Matrix{}
	}
	return matrixFromC(&cm)
}

// IdentityMatrix resets the current transformation to the identity.
func (c *Context) IdentityMatrix() {
	c.do(func(p *C.cairo_t) { C.cairo_identity_matrix(p) })
}

// UserToDevice maps a point from user space to device space.
func (c *Context) UserToDevice(x, y float64) (float64, float64) {
	cx, cy := C.double(x), C.double(y)
	c.do(func(p *C.cairo_t) { C.cairo_user_to_device(p, &cx, &cy) })
	return float64(cx), float64(cy)
}

// UserToDeviceDistance maps a distance vector from user space to device space.
func (c *Context) UserToDeviceDistance(dx, dy float64) (float64, float64) {
	cx, cy := C.double(dx), C.double(dy)
	c.do(func(p *C.cairo_t) { C.cairo_user_to_device_distance(p, &cx, &cy) })
	return float64(cx), float64(cy)
}

// DeviceToUser maps a point from device space to user space.
func (c *Context) DeviceToUser(x, y float64) (float64, float64) {
	cx, cy := C.double(x), C.double(y)
	c.do(func(p *C.cairo_t) { C.cairo_device_to_user(p, &cx, &cy) })
	return float64(cx), float64(cy)
}

// DeviceToUserDistance maps a distance vector from device space to user space.
func (c *Context) DeviceToUserDistance(dx, dy float64) (float64, float64) {
	cx, cy := C.double(dx), C.double(dy)
	c.do(func(p *C.cairo_t) { C.cairo_device_to_user_distance(p, &cx, &cy) })
	return float64(cx), float64(cy)
}

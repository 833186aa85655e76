package cairo

/*
#include "gocairo.h"
*/
import "C"

// Matrix is a 2D affine transformation with the field order of cairo_matrix_t.
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
//
// Matrix is a value type; it is copied across the native boundary and all
// arithmetic is performed by cairo's cairo_matrix_* functions.
type Matrix struct {
	XX, YX float64
	XY, YY float64
	X0, Y0 float64
}

// NewMatrix returns the matrix with the given components.
func NewMatrix(xx, yx, xy, yy, x0, y0 float64) Matrix {
	return Matrix{XX: xx, YX: yx, XY: xy, YY: yy, X0: x0, Y0: y0}
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	var cm C.cairo_matrix_t
	C.cairo_matrix_init_identity(&cm)
	return matrixFromC(&cm)
}

// NewTranslate creates a translation matrix.
func NewTranslate(tx, ty float64) Matrix {
	var cm C.cairo_matrix_t
	C.cairo_matrix_init_translate(&cm, C.double(tx), C.double(ty))
	return matrixFromC(&cm)
}

// NewScale creates a scaling matrix.
func NewScale(sx, sy float64) Matrix {
	var cm C.cairo_matrix_t
	C.cairo_matrix_init_scale(&cm, C.double(sx), C.double(sy))
	return matrixFromC(&cm)
}

// NewRotate creates a rotation matrix (angle in radians). With the default
// axis orientation of cairo, positive angles rotate from the positive X axis
// toward the positive Y axis.
func NewRotate(radians float64) Matrix {
	var cm C.cairo_matrix_t
	C.cairo_matrix_init_rotate(&cm, C.double(radians))
	return matrixFromC(&cm)
}

// Translate returns m with a translation applied before it.
func (m Matrix) Translate(tx, ty float64) Matrix {
	cm := m.c()
	C.cairo_matrix_translate(&cm, C.double(tx), C.double(ty))
	return matrixFromC(&cm)
}

// Scale returns m with a scaling applied before it.
func (m Matrix) Scale(sx, sy float64) Matrix {
	cm := m.c()
	C.cairo_matrix_scale(&cm, C.double(sx), C.double(sy))
	return matrixFromC(&cm)
}

// Rotate returns m with a rotation applied before it.
func (m Matrix) Rotate(radians float64) Matrix {
	cm := m.c()
	C.cairo_matrix_rotate(&cm, C.double(radians))
	return matrixFromC(&cm)
}

// Multiply returns the transformation that applies m first and then other.
func (m Matrix) Multiply(other Matrix) Matrix {
	a, b := m.c(), other.c()
	var r C.cairo_matrix_t
	C.cairo_matrix_multiply(&r, &a, &b)
	return matrixFromC(&r)
}

// Invert returns the inverse of m. A non-invertible matrix yields
// StatusInvalidMatrix and m unchanged.
func (m Matrix) Invert() (Matrix, error) {
	cm := m.c()
	if err := statusError("cairo_matrix_invert", C.cairo_matrix_invert(&cm)); err != nil {
		return m, err
	}
	return matrixFromC(&cm), nil
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	cm := m.c()
	cx, cy := C.double(x), C.double(y)
	C.cairo_matrix_transform_point(&cm, &cx, &cy)
	return float64(cx), float64(cy)
}

// TransformDistance applies the transformation to a vector, ignoring the
// translation components.
func (m Matrix) TransformDistance(dx, dy float64) (float64, float64) {
	cm := m.c()
	cx, cy := C.double(dx), C.double(dy)
	C.cairo_matrix_transform_distance(&cm, &cx, &cy)
	return float64(cx), float64(cy)
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Matrix{XX: 1, YY: 1}
}

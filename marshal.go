package cairo

/*
#include <stdlib.h>
#include "gocairo.h"
*/
import "C"

import "unsafe"

// TextExtents describes the ink and advance of a string or glyph run in user space.
type TextExtents struct {
	XBearing, YBearing float64
	Width, Height      float64
	XAdvance, YAdvance float64
}

// FontExtents describes the vertical metrics of a font in user space.
type FontExtents struct {
	Ascent      float64
	Descent     float64
	Height      float64
	MaxXAdvance float64
	MaxYAdvance float64
}

// ColorStop is one stop of a gradient pattern.
type ColorStop struct {
	Offset     float64
	R, G, B, A float64
}

func (m Matrix) c() C.cairo_matrix_t {
	return C.cairo_matrix_t{
		xx: C.double(m.XX), yx: C.double(m.YX),
		xy: C.double(m.XY), yy: C.double(m.YY),
		x0: C.double(m.X0), y0: C.double(m.Y0),
	}
}

func matrixFromC(cm *C.cairo_matrix_t) Matrix {
	return Matrix{
		XX: float64(cm.xx), YX: float64(cm.yx),
		XY: float64(cm.xy), YY: float64(cm.yy),
		X0: float64(cm.x0), Y0: float64(cm.y0),
	}
}

func textExtentsFromC(e *C.cairo_text_extents_t) TextExtents {
	return TextExtents{
		XBearing: float64(e.x_bearing), YBearing: float64(e.y_bearing),
		Width: float64(e.width), Height: float64(e.height),
		XAdvance: float64(e.x_advance), YAdvance: float64(e.y_advance),
	}
}

func fontExtentsFromC(e *C.cairo_font_extents_t) FontExtents {
	return FontExtents{
		Ascent:      float64(e.ascent),
		Descent:     float64(e.descent),
		Height:      float64(e.height),
		MaxXAdvance: float64(e.max_x_advance),
		MaxYAdvance: float64(e.max_y_advance),
	}
}

func rectangleFromC(r *C.cairo_rectangle_t) Rectangle {
	return Rectangle{
		X: float64(r.x), Y: float64(r.y),
		Width: float64(r.width), Height: float64(r.height),
	}
}

// cBuffer is a zeroed C allocation used to pass arrays across the native
// boundary. It is freed with free; a nil buffer is valid and empty.
type cBuffer struct {
	ptr unsafe.Pointer
	n   int
}

// allocBuffer allocates n elements of size bytes. n == 0 yields an empty
// buffer without allocating.
func allocBuffer(n int, size uintptr) (cBuffer, error) {
	if n == 0 {
		return cBuffer{}, nil
	}
	p := C.calloc(C.size_t(n), C.size_t(size))
	if p == nil {
		return cBuffer{}, ErrTempAlloc
	}
	return cBuffer{ptr: p, n: n}, nil
}

func (b cBuffer) free() {
	if b.ptr != nil {
		C.free(b.ptr)
	}
}

func (b cBuffer) doubles() []C.double {
	if b.ptr == nil {
		return nil
	}
	return unsafe.Slice((*C.double)(b.ptr), b.n)
}

func (b cBuffer) glyphs() []C.cairo_glyph_t {
	if b.ptr == nil {
		return nil
	}
	return unsafe.Slice((*C.cairo_glyph_t)(b.ptr), b.n)
}

func (b cBuffer) clusters() []C.cairo_text_cluster_t {
	if b.ptr == nil {
		return nil
	}
	return unsafe.Slice((*C.cairo_text_cluster_t)(b.ptr), b.n)
}

// doubleBuffer copies values into a C array of doubles.
func doubleBuffer(values []float64) (cBuffer, error) {
	b, err := allocBuffer(len(values), C.sizeof_double)
	if err != nil {
		return b, err
	}
	dst := b.doubles()
	for i, v := range values {
		dst[i] = C.double(v)
	}
	return b, nil
}

// glyphBuffer copies a glyph run into a C array of cairo_glyph_t.
func glyphBuffer(glyphs []Glyph) (cBuffer, error) {
	b, err := allocBuffer(len(glyphs), C.sizeof_cairo_glyph_t)
	if err != nil {
		return b, err
	}
	dst := b.glyphs()
	for i, g := range glyphs {
		dst[i].index = C.ulong(g.Index)
		dst[i].x = C.double(g.X)
		dst[i].y = C.double(g.Y)
	}
	return b, nil
}

// clusterBuffer copies a cluster run into a C array of cairo_text_cluster_t.
func clusterBuffer(clusters []TextCluster) (cBuffer, error) {
	b, err := allocBuffer(len(clusters), C.sizeof_cairo_text_cluster_t)
	if err != nil {
		return b, err
	}
	dst := b.clusters()
	for i, c := range clusters {
		dst[i].num_bytes = C.int(c.NumBytes)
		dst[i].num_glyphs = C.int(c.NumGlyphs)
	}
	return b, nil
}

func glyphsFromC(src []C.cairo_glyph_t) []Glyph {
	out := make([]Glyph, len(src))
	for i, g := range src {
		out[i] = Glyph{Index: uint64(g.index), X: float64(g.x), Y: float64(g.y)}
	}
	return out
}

func clustersFromC(src []C.cairo_text_cluster_t) []TextCluster {
	out := make([]TextCluster, len(src))
	for i, c := range src {
		out[i] = TextCluster{NumBytes: int(c.num_bytes), NumGlyphs: int(c.num_glyphs)}
	}
	return out
}

// cString returns a C copy of s and the function releasing it.
func cString(s string) (*C.char, func()) {
	cs := C.CString(s)
	return cs, func() { C.free(unsafe.Pointer(cs)) }
}

package cairo

/*
#include <stdlib.h>
#include "gocairo.h"
*/
import "C"

import (
	"runtime"
	"unsafe"
)

var scaledFontKind = &nativeKind{
	name:      "scaled font",
	reference: func(p unsafe.Pointer) { C.cairo_scaled_font_reference((*C.cairo_scaled_font_t)(p)) },
	destroy:   func(p unsafe.Pointer) { C.cairo_scaled_font_destroy((*C.cairo_scaled_font_t)(p)) },
	count: func(p unsafe.Pointer) uint {
		return uint(C.cairo_scaled_font_get_reference_count((*C.cairo_scaled_font_t)(p)))
	},
}

// ScaledFont is a font face at a specific size and transformation, ready for
// metrics queries and glyph layout.
type ScaledFont struct {
	h handle
}

func wrapScaledFont(p *C.cairo_scaled_font_t, borrowed bool) *ScaledFont {
	sf := &ScaledFont{}
	bind(sf, &sf.h, unsafe.Pointer(p), scaledFontKind, borrowed)
	return sf
}

// NewScaledFont creates a scaled font. fontMatrix maps font space to user
// space (its scale is the font size), ctm maps user space to device space.
// opts may be nil for default options.
func NewScaledFont(face *FontFace, fontMatrix, ctm Matrix, opts *FontOptions) (*ScaledFont, error) {
	if face.native() == nil || (opts != nil && opts.native() == nil) {
		return nil, ErrClosed
	}
	fm, cm := fontMatrix.c(), ctm.c()
	var p *C.cairo_scaled_font_t
	face.do(func(f *C.cairo_font_face_t) {
		if !opts.do(func(o *C.cairo_font_options_t) { p = C.cairo_scaled_font_create(f, &fm, &cm, o) }) {
			def := C.cairo_font_options_create()
			p = C.cairo_scaled_font_create(f, &fm, &cm, def)
			C.cairo_font_options_destroy(def)
		}
	})
	if err := statusError("cairo_scaled_font_create", C.cairo_scaled_font_status(p)); err != nil {
		C.cairo_scaled_font_destroy(p)
		return nil, err
	}
	return wrapScaledFont(p, false), nil
}

func (sf *ScaledFont) native() *C.cairo_scaled_font_t {
	if sf == nil {
		return nil
	}
	return (*C.cairo_scaled_font_t)(sf.h.ptr)
}

func (sf *ScaledFont) do(fn func(p *C.cairo_scaled_font_t)) bool {
	p := sf.native()
	if p == nil {
		return false
	}
	fn(p)
	runtime.KeepAlive(sf)
	return true
}

func (sf *ScaledFont) call(op string, fn func(p *C.cairo_scaled_font_t)) error {
	var err error
	if !sf.do(func(p *C.cairo_scaled_font_t) {
		fn(p)
		err = statusError(op, C.cairo_scaled_font_status(p))
	}) {
		return ErrClosed
	}
	return err
}

// Err returns the sticky status of the scaled font as an error.
func (sf *ScaledFont) Err() error {
	return sf.call("cairo_scaled_font_status", func(*C.cairo_scaled_font_t) {})
}

// ReferenceCount returns the native reference count, 0 once closed.
func (sf *ScaledFont) ReferenceCount() uint {
	if sf == nil {
		return 0
	}
	return sf.h.refCount()
}

// Close drops this handle's reference. It is safe to call more than once.
func (sf *ScaledFont) Close() error {
	if sf != nil {
		sf.h.release()
	}
	return nil
}

// Type returns the font backend.
func (sf *ScaledFont) Type() FontType {
	var t FontType
	sf.do(func(p *C.cairo_scaled_font_t) { t = FontType(C.cairo_scaled_font_get_type(p)) })
	return t
}

// Extents returns the font metrics in user space.
func (sf *ScaledFont) Extents() (FontExtents, error) {
	var e C.cairo_font_extents_t
	err := sf.call("cairo_scaled_font_extents", func(p *C.cairo_scaled_font_t) {
		C.cairo_scaled_font_extents(p, &e)
	})
	return fontExtentsFromC(&e), err
}

// TextExtents measures UTF-8 text as if drawn without shaping.
func (sf *ScaledFont) TextExtents(text string) (TextExtents, error) {
	cs, free := cString(text)
	defer free()
	var e C.cairo_text_extents_t
	err := sf.call("cairo_scaled_font_text_extents", func(p *C.cairo_scaled_font_t) {
		C.cairo_scaled_font_text_extents(p, cs, &e)
	})
	return textExtentsFromC(&e), err
}

// GlyphExtents measures a glyph run. An empty run has zero extents.
func (sf *ScaledFont) GlyphExtents(glyphs []Glyph) (TextExtents, error) {
	buf, err := glyphBuffer(glyphs)
	if err != nil {
		return TextExtents{}, err
	}
	defer buf.free()
	var e C.cairo_text_extents_t
	err = sf.call("cairo_scaled_font_glyph_extents", func(p *C.cairo_scaled_font_t) {
		C.cairo_scaled_font_glyph_extents(p, (*C.cairo_glyph_t)(buf.ptr), C.int(len(glyphs)), &e)
	})
	return textExtentsFromC(&e), err
}

// TextRun is the result of converting text to glyphs: the positioned glyphs
// and the clusters mapping byte ranges of the text to them.
type TextRun struct {
	Glyphs   []Glyph
	Clusters []TextCluster
	Flags    ClusterFlags
}

// TextToGlyphs converts UTF-8 text to glyphs starting at (x, y) using the
// font's simple character mapping. The cluster byte counts sum to
// len(text) and the cluster glyph counts sum to len(Glyphs).
func (sf *ScaledFont) TextToGlyphs(x, y float64, text string) (TextRun, error) {
	cs := C.CString(text)
	defer C.free(unsafe.Pointer(cs))

	var (
		glyphs   *C.cairo_glyph_t
		clusters *C.cairo_text_cluster_t
		ng, nc   C.int
		flags    C.cairo_text_cluster_flags_t
		st       C.cairo_status_t
	)
	if !sf.do(func(p *C.cairo_scaled_font_t) {
		st = C.cairo_scaled_font_text_to_glyphs(p, C.double(x), C.double(y), cs, C.int(len(text)),
			&glyphs, &ng, &clusters, &nc, &flags)
	}) {
		return TextRun{}, ErrClosed
	}
	defer C.cairo_glyph_free(glyphs)
	defer C.cairo_text_cluster_free(clusters)
	if err := statusError("cairo_scaled_font_text_to_glyphs", st); err != nil {
		return TextRun{}, err
	}

	run := TextRun{Flags: ClusterFlags(flags)}
	if ng > 0 {
		run.Glyphs = glyphsFromC(unsafe.Slice(glyphs, int(ng)))
	}
	if nc > 0 {
		run.Clusters = clustersFromC(unsafe.Slice(clusters, int(nc)))
	}
	return run, nil
}

// FontFace returns the face the font was created from. The returned handle
// holds its own reference and must be closed by the caller.
func (sf *ScaledFont) FontFace() *FontFace {
	var f *C.cairo_font_face_t
	if !sf.do(func(p *C.cairo_scaled_font_t) { f = C.cairo_scaled_font_get_font_face(p) }) {
		return nil
	}
	return wrapFontFace(f, true)
}

// FontOptions returns a copy of the font's options.
func (sf *ScaledFont) FontOptions() (*FontOptions, error) {
	o, err := NewFontOptions()
	if err != nil {
		return nil, err
	}
	if !sf.do(func(p *C.cairo_scaled_font_t) { C.cairo_scaled_font_get_font_options(p, o.native()) }) {
		o.Close()
		return nil, ErrClosed
	}
	runtime.KeepAlive(o)
	return o, nil
}

func (sf *ScaledFont) matrix(get func(p *C.cairo_scaled_font_t, m *C.cairo_matrix_t)) Matrix {
	var cm C.cairo_matrix_t
	if !sf.do(func(p *C.cairo_scaled_font_t) { get(p, &cm) }) {
		return Matrix{}
	}
	return matrixFromC(&cm)
}

// FontMatrix returns the font matrix the font was created with.
func (sf *ScaledFont) FontMatrix() Matrix {
	return sf.matrix(func(p *C.cairo_scaled_font_t, m *C.cairo_matrix_t) { C.cairo_scaled_font_get_font_matrix(p, m) })
}

// CTM returns the user-to-device matrix the font was created with.
func (sf *ScaledFont) CTM() Matrix {
	return sf.matrix(func(p *C.cairo_scaled_font_t, m *C.cairo_matrix_t) { C.cairo_scaled_font_get_ctm(p, m) })
}

// ScaleMatrix returns the font matrix multiplied by the CTM.
func (sf *ScaledFont) ScaleMatrix() Matrix {
	return sf.matrix(func(p *C.cairo_scaled_font_t, m *C.cairo_matrix_t) { C.cairo_scaled_font_get_scale_matrix(p, m) })
}

package cairo

/*
#include "gocairo.h"
*/
import "C"

import (
	"runtime"
	"unsafe"
)

var fontFaceKind = &nativeKind{
	name:      "font face",
	reference: func(p unsafe.Pointer) { C.cairo_font_face_reference((*C.cairo_font_face_t)(p)) },
	destroy:   func(p unsafe.Pointer) { C.cairo_font_face_destroy((*C.cairo_font_face_t)(p)) },
	count: func(p unsafe.Pointer) uint {
		return uint(C.cairo_font_face_get_reference_count((*C.cairo_font_face_t)(p)))
	},
}

// FontFace is a reference to a native font face: a typeface without size
// or rendering options.
type FontFace struct {
	h handle
}

func wrapFontFace(p *C.cairo_font_face_t, borrowed bool) *FontFace {
	f := &FontFace{}
	bind(f, &f.h, unsafe.Pointer(p), fontFaceKind, borrowed)
	return f
}

// NewToyFontFace creates a face from a family name, slant and weight using
// cairo's platform font selection.
func NewToyFontFace(family string, slant FontSlant, weight FontWeight) (*FontFace, error) {
	cs, free := cString(family)
	defer free()
	p := C.cairo_toy_font_face_create(cs, C.cairo_font_slant_t(slant), C.cairo_font_weight_t(weight))
	if err := statusError("cairo_toy_font_face_create", C.cairo_font_face_status(p)); err != nil {
		C.cairo_font_face_destroy(p)
		return nil, err
	}
	return wrapFontFace(p, false), nil
}

// NewFontFaceFromData creates a FreeType face from the font file in data.
// index selects a face inside a font collection. data is copied.
func NewFontFaceFromData(data []byte, index int) (*FontFace, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	var st C.cairo_status_t
	p := C.gocairo_ft_font_face_create((*C.uchar)(unsafe.Pointer(&data[0])), C.size_t(len(data)), C.long(index), &st)
	if err := statusError("cairo_ft_font_face_create_for_ft_face", st); err != nil {
		return nil, err
	}
	return wrapFontFace(p, false), nil
}

func (f *FontFace) native() *C.cairo_font_face_t {
	if f == nil {
		return nil
	}
	return (*C.cairo_font_face_t)(f.h.ptr)
}

func (f *FontFace) do(fn func(p *C.cairo_font_face_t)) bool {
	p := f.native()
	if p == nil {
		return false
	}
	fn(p)
	runtime.KeepAlive(f)
	return true
}

// Err returns the sticky status of the face as an error.
func (f *FontFace) Err() error {
	err := ErrClosed
	f.do(func(p *C.cairo_font_face_t) {
		err = statusError("cairo_font_face_status", C.cairo_font_face_status(p))
	})
	return err
}

// ReferenceCount returns the native reference count, 0 once closed.
func (f *FontFace) ReferenceCount() uint {
	if f == nil {
		return 0
	}
	return f.h.refCount()
}

// Close drops this handle's reference. It is safe to call more than once.
func (f *FontFace) Close() error {
	if f != nil {
		f.h.release()
	}
	return nil
}

// Type returns the font backend of the face.
func (f *FontFace) Type() FontType {
	var t FontType
	f.do(func(p *C.cairo_font_face_t) { t = FontType(C.cairo_font_face_get_type(p)) })
	return t
}

// ToyFamily returns the family name of a toy face.
func (f *FontFace) ToyFamily() string {
	var s string
	f.do(func(p *C.cairo_font_face_t) { s = C.GoString(C.cairo_toy_font_face_get_family(p)) })
	return s
}

// ToySlant returns the slant of a toy face.
func (f *FontFace) ToySlant() FontSlant {
	var s FontSlant
	f.do(func(p *C.cairo_font_face_t) { s = FontSlant(C.cairo_toy_font_face_get_slant(p)) })
	return s
}

// ToyWeight returns the weight of a toy face.
func (f *FontFace) ToyWeight() FontWeight {
	var w FontWeight
	f.do(func(p *C.cairo_font_face_t) { w = FontWeight(C.cairo_toy_font_face_get_weight(p)) })
	return w
}

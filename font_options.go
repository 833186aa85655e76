package cairo

/*
#include "gocairo.h"
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// Font options are not reference counted: every FontOptions owns its own
// native copy.
var fontOptionsKind = &nativeKind{
	name:    "font options",
	destroy: func(p unsafe.Pointer) { C.cairo_font_options_destroy((*C.cairo_font_options_t)(p)) },
}

// FontOptions bundles the rendering hints applied to fonts: antialiasing,
// subpixel order, hint style and hint metrics.
type FontOptions struct {
	h handle
}

// NewFontOptions creates font options with every setting at its default.
func NewFontOptions() (*FontOptions, error) {
	return wrapFontOptions("cairo_font_options_create", C.cairo_font_options_create())
}

func wrapFontOptions(op string, p *C.cairo_font_options_t) (*FontOptions, error) {
	if err := statusError(op, C.cairo_font_options_status(p)); err != nil {
		C.cairo_font_options_destroy(p)
		return nil, err
	}
	o := &FontOptions{}
	bind(o, &o.h, unsafe.Pointer(p), fontOptionsKind, false)
	return o, nil
}

func (o *FontOptions) native() *C.cairo_font_options_t {
	if o == nil {
		return nil
	}
	return (*C.cairo_font_options_t)(o.h.ptr)
}

func (o *FontOptions) do(fn func(p *C.cairo_font_options_t)) bool {
	p := o.native()
	if p == nil {
		return false
	}
	fn(p)
	runtime.KeepAlive(o)
	return true
}

// Err returns the status of the options as an error.
func (o *FontOptions) Err() error {
	err := ErrClosed
	o.do(func(p *C.cairo_font_options_t) {
		err = statusError("cairo_font_options_status", C.cairo_font_options_status(p))
	})
	return err
}

// Close releases the native options. It is safe to call more than once.
func (o *FontOptions) Close() error {
	if o != nil {
		o.h.release()
	}
	return nil
}

// Copy returns an independent copy of o.
func (o *FontOptions) Copy() (*FontOptions, error) {
	var p *C.cairo_font_options_t
	if !o.do(func(src *C.cairo_font_options_t) { p = C.cairo_font_options_copy(src) }) {
		return nil, ErrClosed
	}
	return wrapFontOptions("cairo_font_options_copy", p)
}

// Merge overrides the settings of o with every non-default setting of other.
func (o *FontOptions) Merge(other *FontOptions) {
	other.do(func(src *C.cairo_font_options_t) {
		o.do(func(p *C.cairo_font_options_t) { C.cairo_font_options_merge(p, src) })
	})
}

// Equal reports whether o and other hold the same settings.
func (o *FontOptions) Equal(other *FontOptions) bool {
	var eq bool
	other.do(func(b *C.cairo_font_options_t) {
		o.do(func(a *C.cairo_font_options_t) { eq = cBool(C.cairo_font_options_equal(a, b)) })
	})
	return eq
}

// Hash returns a hash of the settings, suitable for map keys.
func (o *FontOptions) Hash() uint64 {
	var h uint64
	o.do(func(p *C.cairo_font_options_t) { h = uint64(C.cairo_font_options_hash(p)) })
	return h
}

// SetAntialias sets the antialiasing mode for glyphs.
func (o *FontOptions) SetAntialias(a Antialias) {
	o.do(func(p *C.cairo_font_options_t) { C.cairo_font_options_set_antialias(p, C.cairo_antialias_t(a)) })
}

// Antialias returns the antialiasing mode.
func (o *FontOptions) Antialias() Antialias {
	var a Antialias
	o.do(func(p *C.cairo_font_options_t) { a = Antialias(C.cairo_font_options_get_antialias(p)) })
	return a
}

// SetSubpixelOrder sets the subpixel order for subpixel antialiasing.
func (o *FontOptions) SetSubpixelOrder(s SubpixelOrder) {
	o.do(func(p *C.cairo_font_options_t) {
		C.cairo_font_options_set_subpixel_order(p, C.cairo_subpixel_order_t(s))
	})
}

// SubpixelOrder returns the subpixel order.
func (o *FontOptions) SubpixelOrder() SubpixelOrder {
	var s SubpixelOrder
	o.do(func(p *C.cairo_font_options_t) { s = SubpixelOrder(C.cairo_font_options_get_subpixel_order(p)) })
	return s
}

// SetHintStyle sets the amount of outline hinting.
func (o *FontOptions) SetHintStyle(h HintStyle) {
	o.do(func(p *C.cairo_font_options_t) { C.cairo_font_options_set_hint_style(p, C.cairo_hint_style_t(h)) })
}

// HintStyle returns the hint style.
func (o *FontOptions) HintStyle() HintStyle {
	var h HintStyle
	o.do(func(p *C.cairo_font_options_t) { h = HintStyle(C.cairo_font_options_get_hint_style(p)) })
	return h
}

// SetHintMetrics sets whether metrics are rounded to whole device units.
func (o *FontOptions) SetHintMetrics(h HintMetrics) {
	o.do(func(p *C.cairo_font_options_t) { C.cairo_font_options_set_hint_metrics(p, C.cairo_hint_metrics_t(h)) })
}

// HintMetrics returns the hint metrics setting.
func (o *FontOptions) HintMetrics() HintMetrics {
	var h HintMetrics
	o.do(func(p *C.cairo_font_options_t) { h = HintMetrics(C.cairo_font_options_get_hint_metrics(p)) })
	return h
}

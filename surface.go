package cairo

/*
#include "gocairo.h"
*/
import "C"

import (
	"runtime"
	"unsafe"
)

var surfaceKind = &nativeKind{
	name:      "surface",
	reference: func(p unsafe.Pointer) { C.cairo_surface_reference((*C.cairo_surface_t)(p)) },
	destroy:   func(p unsafe.Pointer) { C.cairo_surface_destroy((*C.cairo_surface_t)(p)) },
	count: func(p unsafe.Pointer) uint {
		return uint(C.cairo_surface_get_reference_count((*C.cairo_surface_t)(p)))
	},
}

// Target is anything a Context can draw onto: *Surface and every concrete
// surface type embedding it.
type Target interface {
	base() *Surface
}

// Surface is a reference to a native cairo surface. The concrete surface
// types embed *Surface, so every method here is available on them.
//
// A Surface must be released with Close. Surfaces obtained from a Context
// (Target, GroupTarget) or a Pattern hold their own reference and are
// closed independently of the object they came from.
type Surface struct {
	h      handle
	stream *stream
}

func wrapSurface(p *C.cairo_surface_t, borrowed bool) *Surface {
	s := &Surface{}
	bind(s, &s.h, unsafe.Pointer(p), surfaceKind, borrowed)
	return s
}

// newSurface wraps a freshly created surface, or destroys it and returns its
// status when creation failed.
func newSurface(op string, p *C.cairo_surface_t, st *stream) (*Surface, error) {
	if err := statusError(op, C.cairo_surface_status(p)); err != nil {
		C.cairo_surface_destroy(p)
		return nil, st.wrap(err)
	}
	s := wrapSurface(p, false)
	s.stream = st
	return s, nil
}

func (s *Surface) base() *Surface { return s }

func (s *Surface) native() *C.cairo_surface_t {
	if s == nil {
		return nil
	}
	return (*C.cairo_surface_t)(s.h.ptr)
}

// do runs fn on the native surface. It reports false if s is closed.
func (s *Surface) do(fn func(p *C.cairo_surface_t)) bool {
	p := s.native()
	if p == nil {
		return false
	}
	fn(p)
	runtime.KeepAlive(s)
	return true
}

// call runs fn and returns the surface status observed right after it.
func (s *Surface) call(op string, fn func(p *C.cairo_surface_t)) error {
	var err error
	if !s.do(func(p *C.cairo_surface_t) {
		fn(p)
		err = statusError(op, C.cairo_surface_status(p))
	}) {
		return ErrClosed
	}
	return s.stream.wrap(err)
}

// Err returns the sticky status of the surface as an error.
func (s *Surface) Err() error {
	return s.call("cairo_surface_status", func(*C.cairo_surface_t) {})
}

// ReferenceCount returns the native reference count, 0 once closed.
func (s *Surface) ReferenceCount() uint {
	if s == nil {
		return 0
	}
	return s.h.refCount()
}

// Close drops this handle's reference. The native surface is destroyed once
// every handle aliasing it is closed. Close is safe to call more than once.
func (s *Surface) Close() error {
	if s != nil {
		s.h.release()
	}
	return nil
}

// CreateSimilar creates a surface of the same backend as s.
func (s *Surface) CreateSimilar(content Content, width, height int) (*Surface, error) {
	var p *C.cairo_surface_t
	if !s.do(func(sp *C.cairo_surface_t) {
		p = C.cairo_surface_create_similar(sp, C.cairo_content_t(content), C.int(width), C.int(height))
	}) {
		return nil, ErrClosed
	}
	return newSurface("cairo_surface_create_similar", p, nil)
}

// CreateSimilarImage creates an image surface suited for uploading to s.
func (s *Surface) CreateSimilarImage(format Format, width, height int) (*ImageSurface, error) {
	var p *C.cairo_surface_t
	if !s.do(func(sp *C.cairo_surface_t) {
		p = C.cairo_surface_create_similar_image(sp, C.cairo_format_t(format), C.int(width), C.int(height))
	}) {
		return nil, ErrClosed
	}
	base, err := newSurface("cairo_surface_create_similar_image", p, nil)
	if err != nil {
		return nil, err
	}
	return &ImageSurface{Surface: base}, nil
}

// Finish completes all output to the backing store and drops external
// resources. Drawing on a finished surface fails with StatusSurfaceFinished.
func (s *Surface) Finish() error {
	return s.call("cairo_surface_finish", func(p *C.cairo_surface_t) {
		C.cairo_surface_finish(p)
	})
}

// Flush completes pending drawing so that the surface memory is current.
func (s *Surface) Flush() {
	s.do(func(p *C.cairo_surface_t) { C.cairo_surface_flush(p) })
}

// MarkDirty tells cairo that the surface memory was changed outside cairo.
func (s *Surface) MarkDirty() {
	s.do(func(p *C.cairo_surface_t) { C.cairo_surface_mark_dirty(p) })
}

// MarkDirtyRectangle is MarkDirty limited to a device-space rectangle.
func (s *Surface) MarkDirtyRectangle(x, y, width, height int) {
	s.do(func(p *C.cairo_surface_t) {
		C.cairo_surface_mark_dirty_rectangle(p, C.int(x), C.int(y), C.int(width), C.int(height))
	})
}

// Type returns the backend of the surface.
func (s *Surface) Type() SurfaceType {
	var t SurfaceType
	s.do(func(p *C.cairo_surface_t) { t = SurfaceType(C.cairo_surface_get_type(p)) })
	return t
}

// Content returns the color/alpha content of the surface.
func (s *Surface) Content() Content {
	var c Content
	s.do(func(p *C.cairo_surface_t) { c = Content(C.cairo_surface_get_content(p)) })
	return c
}

// SetDeviceOffset sets the offset added to device coordinates.
func (s *Surface) SetDeviceOffset(x, y float64) {
	s.do(func(p *C.cairo_surface_t) { C.cairo_surface_set_device_offset(p, C.double(x), C.double(y)) })
}

// DeviceOffset returns the offset set by SetDeviceOffset.
func (s *Surface) DeviceOffset() (x, y float64) {
	var cx, cy C.double
	s.do(func(p *C.cairo_surface_t) { C.cairo_surface_get_device_offset(p, &cx, &cy) })
	return float64(cx), float64(cy)
}

// SetDeviceScale sets the scale applied to device coordinates.
func (s *Surface) SetDeviceScale(x, y float64) {
	s.do(func(p *C.cairo_surface_t) { C.cairo_surface_set_device_scale(p, C.double(x), C.double(y)) })
}

// DeviceScale returns the scale set by SetDeviceScale.
func (s *Surface) DeviceScale() (x, y float64) {
	var cx, cy C.double
	s.do(func(p *C.cairo_surface_t) { C.cairo_surface_get_device_scale(p, &cx, &cy) })
	return float64(cx), float64(cy)
}

// SetFallbackResolution sets the resolution in pixels per inch used when
// vector backends rasterize unsupported operations.
func (s *Surface) SetFallbackResolution(xppi, yppi float64) {
	s.do(func(p *C.cairo_surface_t) {
		C.cairo_surface_set_fallback_resolution(p, C.double(xppi), C.double(yppi))
	})
}

// FallbackResolution returns the resolution set by SetFallbackResolution.
func (s *Surface) FallbackResolution() (xppi, yppi float64) {
	var cx, cy C.double
	s.do(func(p *C.cairo_surface_t) { C.cairo_surface_get_fallback_resolution(p, &cx, &cy) })
	return float64(cx), float64(cy)
}

// CopyPage emits the current page and keeps its content for the next page.
func (s *Surface) CopyPage() error {
	return s.call("cairo_surface_copy_page", func(p *C.cairo_surface_t) { C.cairo_surface_copy_page(p) })
}

// ShowPage emits the current page and starts a blank one.
func (s *Surface) ShowPage() error {
	return s.call("cairo_surface_show_page", func(p *C.cairo_surface_t) { C.cairo_surface_show_page(p) })
}

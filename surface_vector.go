package cairo

/*
#include "gocairo.h"
*/
import "C"

import "io"

// PDFSurface writes a PDF document to an io.Writer.
//
// The writer is referenced until the native surface is destroyed: output
// is produced while drawing and completed by Finish or the final Close.
type PDFSurface struct {
	*Surface
}

// NewPDFSurface creates a PDF surface whose first page is width x height
// points (1 point == 1/72 inch).
func NewPDFSurface(w io.Writer, width, height float64) (*PDFSurface, error) {
	st, h := newStream(w, nil)
	p := C.gocairo_pdf_surface_create(C.uintptr_t(h), C.double(width), C.double(height))
	s, err := newSurface("cairo_pdf_surface_create_for_stream", p, st)
	if err != nil {
		return nil, err
	}
	return &PDFSurface{Surface: s}, nil
}

// SetSize changes the size of the next pages. It must be called before any
// drawing on the page.
func (s *PDFSurface) SetSize(width, height float64) {
	s.do(func(p *C.cairo_surface_t) { C.cairo_pdf_surface_set_size(p, C.double(width), C.double(height)) })
}

// RestrictToVersion limits the output to the given PDF version.
func (s *PDFSurface) RestrictToVersion(v PDFVersion) {
	s.do(func(p *C.cairo_surface_t) { C.cairo_pdf_surface_restrict_to_version(p, C.cairo_pdf_version_t(v)) })
}

// SVGSurface writes an SVG document to an io.Writer.
type SVGSurface struct {
	*Surface
}

// NewSVGSurface creates an SVG surface of width x height points.
func NewSVGSurface(w io.Writer, width, height float64) (*SVGSurface, error) {
	st, h := newStream(w, nil)
	p := C.gocairo_svg_surface_create(C.uintptr_t(h), C.double(width), C.double(height))
	s, err := newSurface("cairo_svg_surface_create_for_stream", p, st)
	if err != nil {
		return nil, err
	}
	return &SVGSurface{Surface: s}, nil
}

// RestrictToVersion limits the output to the given SVG version.
func (s *SVGSurface) RestrictToVersion(v SVGVersion) {
	s.do(func(p *C.cairo_surface_t) { C.cairo_svg_surface_restrict_to_version(p, C.cairo_svg_version_t(v)) })
}

// PSSurface writes a PostScript document to an io.Writer.
type PSSurface struct {
	*Surface
}

// NewPSSurface creates a PostScript surface of width x height points.
func NewPSSurface(w io.Writer, width, height float64) (*PSSurface, error) {
	st, h := newStream(w, nil)
	p := C.gocairo_ps_surface_create(C.uintptr_t(h), C.double(width), C.double(height))
	s, err := newSurface("cairo_ps_surface_create_for_stream", p, st)
	if err != nil {
		return nil, err
	}
	return &PSSurface{Surface: s}, nil
}

// SetSize changes the size of the next pages.
func (s *PSSurface) SetSize(width, height float64) {
	s.do(func(p *C.cairo_surface_t) { C.cairo_ps_surface_set_size(p, C.double(width), C.double(height)) })
}

// SetEPS selects Encapsulated PostScript output.
func (s *PSSurface) SetEPS(eps bool) {
	var b C.cairo_bool_t
	if eps {
		b = 1
	}
	s.do(func(p *C.cairo_surface_t) { C.cairo_ps_surface_set_eps(p, b) })
}

// RestrictToLevel limits the output to the given language level.
func (s *PSSurface) RestrictToLevel(level PSLevel) {
	s.do(func(p *C.cairo_surface_t) { C.cairo_ps_surface_restrict_to_level(p, C.cairo_ps_level_t(level)) })
}

// RecordingSurface records drawing operations for later replay.
type RecordingSurface struct {
	*Surface
}

// NewRecordingSurface creates a recording surface. A nil extents records an
// unbounded surface.
func NewRecordingSurface(content Content, extents *Rectangle) (*RecordingSurface, error) {
	var r *C.cairo_rectangle_t
	if extents != nil {
		r = &C.cairo_rectangle_t{
			x: C.double(extents.X), y: C.double(extents.Y),
			width: C.double(extents.Width), height: C.double(extents.Height),
		}
	}
	p := C.cairo_recording_surface_create(C.cairo_content_t(content), r)
	s, err := newSurface("cairo_recording_surface_create", p, nil)
	if err != nil {
		return nil, err
	}
	return &RecordingSurface{Surface: s}, nil
}

// InkExtents returns the bounding box of everything drawn so far.
func (s *RecordingSurface) InkExtents() Rectangle {
	var x, y, w, h C.double
	s.do(func(p *C.cairo_surface_t) { C.cairo_recording_surface_ink_extents(p, &x, &y, &w, &h) })
	return Rectangle{X: float64(x), Y: float64(y), Width: float64(w), Height: float64(h)}
}

// Extents returns the extents the surface was created with; ok is false
// for an unbounded surface.
func (s *RecordingSurface) Extents() (r Rectangle, ok bool) {
	var cr C.cairo_rectangle_t
	s.do(func(p *C.cairo_surface_t) { ok = cBool(C.cairo_recording_surface_get_extents(p, &cr)) })
	if ok {
		r = rectangleFromC(&cr)
	}
	return r, ok
}

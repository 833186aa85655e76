package cairo

/*
#include "gocairo.h"
*/
import "C"

import (
	"encoding/binary"
	"image"
	"image/color"
	"io"
	"unsafe"

	"golang.org/x/image/draw"
)

// ImageSurface is a surface backed by pixels in memory.
type ImageSurface struct {
	*Surface
}

// NewImageSurface creates an image surface of the given format and size,
// initially transparent black.
func NewImageSurface(format Format, width, height int) (*ImageSurface, error) {
	p := C.cairo_image_surface_create(C.cairo_format_t(format), C.int(width), C.int(height))
	s, err := newSurface("cairo_image_surface_create", p, nil)
	if err != nil {
		return nil, err
	}
	return &ImageSurface{Surface: s}, nil
}

// NewImageSurfaceFromPNG decodes a PNG read from r into a new image surface.
// A failure of r is reported as StatusReadError wrapping the reader's error.
func NewImageSurfaceFromPNG(r io.Reader) (*ImageSurface, error) {
	st, h := newStream(nil, r)
	defer h.Delete()
	p := C.gocairo_image_surface_create_from_png(C.uintptr_t(h))
	s, err := newSurface("cairo_image_surface_create_from_png_stream", p, st)
	if err != nil {
		return nil, err
	}
	s.stream = nil
	return &ImageSurface{Surface: s}, nil
}

// WriteToPNG encodes the surface as PNG into w.
// A failure of w is reported as StatusWriteError wrapping the writer's error.
func (s *Surface) WriteToPNG(w io.Writer) error {
	st, h := newStream(w, nil)
	defer h.Delete()
	var err error
	if !s.do(func(p *C.cairo_surface_t) {
		err = statusError("cairo_surface_write_to_png_stream", C.gocairo_surface_write_to_png(p, C.uintptr_t(h)))
	}) {
		return ErrClosed
	}
	return st.wrap(err)
}

// NewImageSurfaceFromImage copies img into a new ARGB32 image surface.
// The image is scaled when WithSize asks for a different size.
func NewImageSurfaceFromImage(img image.Image, opts ...ImageOption) (*ImageSurface, error) {
	o := defaultImageOptions()
	for _, opt := range opts {
		opt(&o)
	}

	src := img.Bounds()
	width, height := o.width, o.height
	if width <= 0 || height <= 0 {
		width, height = src.Dx(), src.Dy()
	}

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	if width == src.Dx() && height == src.Dy() {
		draw.Draw(rgba, rgba.Bounds(), img, src.Min, draw.Src)
	} else {
		o.interpolator.Scale(rgba, rgba.Bounds(), img, src, draw.Src, nil)
	}

	s, err := NewImageSurface(FormatARGB32, width, height)
	if err != nil {
		return nil, err
	}
	s.Flush()
	data, stride := s.pixels()
	for y := range height {
		row := data[y*stride : y*stride+width*4]
		pix := rgba.Pix[y*rgba.Stride : y*rgba.Stride+width*4]
		for x := range width {
			r, g, b, a := pix[x*4], pix[x*4+1], pix[x*4+2], pix[x*4+3]
			binary.NativeEndian.PutUint32(row[x*4:], uint32(a)<<24|uint32(r)<<16|uint32(g)<<8|uint32(b))
		}
	}
	s.MarkDirty()
	return s, nil
}

// pixels returns the native pixel buffer. The slice aliases native memory
// and is only valid while s is open.
func (s *ImageSurface) pixels() ([]byte, int) {
	var data []byte
	var stride int
	s.do(func(p *C.cairo_surface_t) {
		ptr := C.cairo_image_surface_get_data(p)
		stride = int(C.cairo_image_surface_get_stride(p))
		h := int(C.cairo_image_surface_get_height(p))
		if ptr != nil {
			data = unsafe.Slice((*byte)(unsafe.Pointer(ptr)), stride*h)
		}
	})
	return data, stride
}

// Format returns the pixel format.
func (s *ImageSurface) Format() Format {
	f := FormatInvalid
	s.do(func(p *C.cairo_surface_t) { f = Format(C.cairo_image_surface_get_format(p)) })
	return f
}

// Width returns the width in pixels.
func (s *ImageSurface) Width() int {
	var w int
	s.do(func(p *C.cairo_surface_t) { w = int(C.cairo_image_surface_get_width(p)) })
	return w
}

// Height returns the height in pixels.
func (s *ImageSurface) Height() int {
	var h int
	s.do(func(p *C.cairo_surface_t) { h = int(C.cairo_image_surface_get_height(p)) })
	return h
}

// Stride returns the length of a pixel row in bytes.
func (s *ImageSurface) Stride() int {
	var n int
	s.do(func(p *C.cairo_surface_t) { n = int(C.cairo_image_surface_get_stride(p)) })
	return n
}

// Data flushes pending drawing and returns a copy of the pixel rows,
// Stride bytes each.
func (s *ImageSurface) Data() []byte {
	s.Flush()
	data, _ := s.pixels()
	if data == nil {
		return nil
	}
	return append([]byte(nil), data...)
}

// Image converts the surface contents into a Go image. ARGB32 and RGB24
// surfaces become *image.RGBA, A8 surfaces *image.Alpha; other formats
// yield ErrUnsupportedFormat.
func (s *ImageSurface) Image() (image.Image, error) {
	if s.native() == nil {
		return nil, ErrClosed
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	format, width, height := s.Format(), s.Width(), s.Height()
	data := s.Data()
	stride := s.Stride()
	if len(data) < stride*height {
		// Finish releases the pixel buffer but leaves the status at success.
		return nil, &Error{Op: "cairo_image_surface_get_data", Status: StatusSurfaceFinished}
	}

	switch format {
	case FormatARGB32, FormatRGB24:
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		for y := range height {
			row := data[y*stride:]
			for x := range width {
				v := binary.NativeEndian.Uint32(row[x*4:])
				a := uint8(v >> 24)
				if format == FormatRGB24 {
					a = 0xff
				}
				img.SetRGBA(x, y, color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: a})
			}
		}
		return img, nil
	case FormatA8:
		img := image.NewAlpha(image.Rect(0, 0, width, height))
		for y := range height {
			copy(img.Pix[y*img.Stride:y*img.Stride+width], data[y*stride:])
		}
		return img, nil
	}
	return nil, ErrUnsupportedFormat
}

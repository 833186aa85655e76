package cairo

/*
#include "gocairo.h"
*/
import "C"

import (
	"io"
	"runtime/cgo"
	"unsafe"
)

// stream carries an io.Writer or io.Reader across the native boundary.
// cairo only sees the cgo.Handle; the first I/O error is kept so that it
// can be wrapped into the StatusWriteError or StatusReadError that follows.
type stream struct {
	w   io.Writer
	r   io.Reader
	n   int64
	err error
}

func newStream(w io.Writer, r io.Reader) (*stream, cgo.Handle) {
	s := &stream{w: w, r: r}
	return s, cgo.NewHandle(s)
}

// wrap attaches the stream's I/O error to err when err is a native failure.
func (s *stream) wrap(err error) error {
	if err == nil || s == nil || s.err == nil {
		return err
	}
	if e, ok := err.(*Error); ok && e.Err == nil {
		e.Err = s.err
	}
	return err
}

//export gocairoWrite
func gocairoWrite(h C.uintptr_t, data *C.uchar, length C.uint) C.int {
	s := cgo.Handle(h).Value().(*stream)
	if s.err != nil {
		return 1
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(data)), int(length))
	n, err := s.w.Write(buf)
	s.n += int64(n)
	if err != nil {
		s.err = err
		Logger().Warn("cairo: stream write failed", "written", s.n, "err", err)
		return 1
	}
	return 0
}

//export gocairoRead
func gocairoRead(h C.uintptr_t, data *C.uchar, length C.uint) C.int {
	s := cgo.Handle(h).Value().(*stream)
	if s.err != nil {
		return 1
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(data)), int(length))
	n, err := io.ReadFull(s.r, buf)
	s.n += int64(n)
	if err != nil {
		s.err = err
		Logger().Warn("cairo: stream read failed", "read", s.n, "err", err)
		return 1
	}
	return 0
}

//export gocairoRelease
func gocairoRelease(h C.uintptr_t) {
	handle := cgo.Handle(h)
	if s, ok := handle.Value().(*stream); ok {
		Logger().Debug("cairo: stream released", "bytes", s.n)
	}
	handle.Delete()
}

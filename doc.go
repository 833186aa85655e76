// Package cairo provides Go bindings for the cairo 2D graphics library.
//
// # Overview
//
// Every drawing operation, compositing operator, path flattening routine,
// font metric and gradient evaluation is performed by the native cairo
// library. The package wraps cairo objects in Go handles, copies values
// across the native boundary and turns cairo status codes into Go errors.
//
// # Quick Start
//
//	import "github.com/gogpu/cairo"
//
//	s, err := cairo.NewImageSurface(cairo.FormatARGB32, 512, 512)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	cr, err := cairo.NewContext(s)
//	if err != nil {
//	    return err
//	}
//	defer cr.Close()
//
//	cr.SetSourceRGB(1, 0, 0)
//	cr.Arc(256, 256, 100, 0, 2*math.Pi)
//	if err := cr.Fill(); err != nil {
//	    return err
//	}
//	return s.WriteToPNG(w)
//
// # Lifetime
//
// Context, Surface, Pattern, FontFace and ScaledFont are reference counted
// by cairo. Each Go handle owns exactly one native reference and gives it
// back on Close. Getters that return an object owned by another one
// (Context.Source, Context.Target, Context.FontFace, ScaledFont.FontFace,
// Pattern.Surface and similar) take a new reference, so the returned handle
// and its origin can be closed in any order. A handle that becomes
// unreachable without Close is released by the garbage collector; Close
// releases it deterministically and is safe to call twice. After Close,
// setters do nothing, getters return zero values and methods returning an
// error return ErrClosed.
//
// Path is an ordinary Go value. CopyPath decodes the native path into a
// Path and frees the native copy before returning; AppendPath encodes a
// Path into a temporary native buffer.
//
// # Errors
//
// cairo objects have a sticky status: after a failure, the object keeps the
// failing status and ignores further operations. Setters and path
// construction methods return nothing; a failure they cause is reported by
// the next method returning an error and by Err. Drawing and query methods
// check the status right after the native call and return an *Error
// carrying the native function name and the Status. Status implements
// error, so
//
//	errors.Is(err, cairo.StatusInvalidRestore)
//
// identifies the failure kind. Errors of the binding itself (ErrClosed,
// ErrTempAlloc) are distinct from every Status.
//
// # Concurrency
//
// Calls are synchronous and the package starts no goroutines. A handle
// must be used by one goroutine at a time, and two handles aliasing the
// same native object must not be used concurrently without external
// synchronization. Distinct objects may be used from different goroutines.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing toward positive Y
package cairo

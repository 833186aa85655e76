package cairo

/*
#include "gocairo.h"
*/
import "C"

import "errors"

// Status is a cairo status code. Every cairo object carries a sticky status:
// once an operation fails, the object keeps that status and further operations
// on it are no-ops.
//
// Status implements error, so a Status can be compared with errors.Is.
type Status int

// Status values, in the order of the native cairo_status_t enumeration.
const (
	StatusSuccess                 = Status(C.CAIRO_STATUS_SUCCESS)
	StatusNoMemory                = Status(C.CAIRO_STATUS_NO_MEMORY)
	StatusInvalidRestore          = Status(C.CAIRO_STATUS_INVALID_RESTORE)
	StatusInvalidPopGroup         = Status(C.CAIRO_STATUS_INVALID_POP_GROUP)
	StatusNoCurrentPoint          = Status(C.CAIRO_STATUS_NO_CURRENT_POINT)
	StatusInvalidMatrix           = Status(C.CAIRO_STATUS_INVALID_MATRIX)
	StatusInvalidStatus           = Status(C.CAIRO_STATUS_INVALID_STATUS)
	StatusNullPointer             = Status(C.CAIRO_STATUS_NULL_POINTER)
	StatusInvalidString           = Status(C.CAIRO_STATUS_INVALID_STRING)
	StatusInvalidPathData         = Status(C.CAIRO_STATUS_INVALID_PATH_DATA)
	StatusReadError               = Status(C.CAIRO_STATUS_READ_ERROR)
	StatusWriteError              = Status(C.CAIRO_STATUS_WRITE_ERROR)
	StatusSurfaceFinished         = Status(C.CAIRO_STATUS_SURFACE_FINISHED)
	StatusSurfaceTypeMismatch     = Status(C.CAIRO_STATUS_SURFACE_TYPE_MISMATCH)
	StatusPatternTypeMismatch     = Status(C.CAIRO_STATUS_PATTERN_TYPE_MISMATCH)
	StatusInvalidContent          = Status(C.CAIRO_STATUS_INVALID_CONTENT)
	StatusInvalidFormat           = Status(C.CAIRO_STATUS_INVALID_FORMAT)
	StatusInvalidVisual           = Status(C.CAIRO_STATUS_INVALID_VISUAL)
	StatusFileNotFound            = Status(C.CAIRO_STATUS_FILE_NOT_FOUND)
	StatusInvalidDash             = Status(C.CAIRO_STATUS_INVALID_DASH)
	StatusInvalidDSCComment       = Status(C.CAIRO_STATUS_INVALID_DSC_COMMENT)
	StatusInvalidIndex            = Status(C.CAIRO_STATUS_INVALID_INDEX)
	StatusClipNotRepresentable    = Status(C.CAIRO_STATUS_CLIP_NOT_REPRESENTABLE)
	StatusTempFileError           = Status(C.CAIRO_STATUS_TEMP_FILE_ERROR)
	StatusInvalidStride           = Status(C.CAIRO_STATUS_INVALID_STRIDE)
	StatusFontTypeMismatch        = Status(C.CAIRO_STATUS_FONT_TYPE_MISMATCH)
	StatusUserFontImmutable       = Status(C.CAIRO_STATUS_USER_FONT_IMMUTABLE)
	StatusUserFontError           = Status(C.CAIRO_STATUS_USER_FONT_ERROR)
	StatusNegativeCount           = Status(C.CAIRO_STATUS_NEGATIVE_COUNT)
	StatusInvalidClusters         = Status(C.CAIRO_STATUS_INVALID_CLUSTERS)
	StatusInvalidSlant            = Status(C.CAIRO_STATUS_INVALID_SLANT)
	StatusInvalidWeight           = Status(C.CAIRO_STATUS_INVALID_WEIGHT)
	StatusInvalidSize             = Status(C.CAIRO_STATUS_INVALID_SIZE)
	StatusUserFontNotImplemented  = Status(C.CAIRO_STATUS_USER_FONT_NOT_IMPLEMENTED)
	StatusDeviceTypeMismatch      = Status(C.CAIRO_STATUS_DEVICE_TYPE_MISMATCH)
	StatusDeviceError             = Status(C.CAIRO_STATUS_DEVICE_ERROR)
	StatusInvalidMeshConstruction = Status(C.CAIRO_STATUS_INVALID_MESH_CONSTRUCTION)
	StatusDeviceFinished          = Status(C.CAIRO_STATUS_DEVICE_FINISHED)
	StatusJBIG2GlobalMissing      = Status(C.CAIRO_STATUS_JBIG2_GLOBAL_MISSING)
	StatusPNGError                = Status(C.CAIRO_STATUS_PNG_ERROR)
	StatusFreeTypeError           = Status(C.CAIRO_STATUS_FREETYPE_ERROR)
	StatusWin32GDIError           = Status(C.CAIRO_STATUS_WIN32_GDI_ERROR)
	StatusTagError                = Status(C.CAIRO_STATUS_TAG_ERROR)
)

// String returns cairo's description of the status.
func (s Status) String() string {
	return C.GoString(C.cairo_status_to_string(C.cairo_status_t(s)))
}

// Error implements the error interface.
func (s Status) Error() string {
	return "cairo: " + s.String()
}

// toError converts a Status into a Go error, nil for StatusSuccess.
func (s Status) toError() error {
	if s == StatusSuccess {
		return nil
	}
	return s
}

// Error is returned by operations that leave a native object in an error state.
type Error struct {
	// Op is the native function that observed the failure.
	Op string

	// Status is the sticky status of the object after Op.
	Status Status

	// Err is the Go error behind the failure, set when the failure came
	// from an io.Reader or io.Writer passed to the binding.
	Err error
}

func (e *Error) Error() string {
	msg := e.Op + ": " + e.Status.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the Status together with the underlying Go error, if any.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Status, e.Err}
	}
	return []error{e.Status}
}

// Sentinel errors raised by the binding itself rather than by cairo.
var (
	// ErrClosed is returned when a method is called on a released handle.
	ErrClosed = errors.New("cairo: use of closed handle")

	// ErrTempAlloc is returned when a temporary buffer used to pass
	// arguments across the native boundary could not be allocated.
	ErrTempAlloc = errors.New("cairo: temporary buffer allocation failed")

	// ErrUnsupportedFormat is returned when converting an image surface whose
	// pixel format has no image package equivalent.
	ErrUnsupportedFormat = errors.New("cairo: unsupported image format")

	// ErrEmptyFontData is returned when a font face is created from empty data.
	ErrEmptyFontData = errors.New("cairo: empty font data")
)

// statusError builds the error for op from a native status code.
func statusError(op string, st C.cairo_status_t) error {
	if st == C.CAIRO_STATUS_SUCCESS {
		return nil
	}
	return &Error{Op: op, Status: Status(st)}
}

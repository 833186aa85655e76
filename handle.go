package cairo

import (
	"runtime"
	"unsafe"
)

// nativeKind describes the lifetime functions of one native object type.
// reference and count are nil for types cairo does not reference count.
type nativeKind struct {
	name      string
	reference func(unsafe.Pointer)
	destroy   func(unsafe.Pointer)
	count     func(unsafe.Pointer) uint
}

// handle pairs a native pointer with its release obligation. Every Go value
// wrapping a native object embeds exactly one handle, and each handle owns
// exactly one native reference.
type handle struct {
	ptr     unsafe.Pointer
	kind    *nativeKind
	cleanup runtime.Cleanup
}

type unreachable struct {
	ptr  unsafe.Pointer
	kind *nativeKind
}

// bind attaches p to owner's handle h.
//
// Freshly created objects are passed with borrowed == false: the caller already
// owns the single reference cairo returned. Objects obtained from another
// structure (a context's source, a scaled font's face) are borrowed; bind takes
// a native reference for them so both owners can be released independently.
func bind[T any](owner *T, h *handle, p unsafe.Pointer, kind *nativeKind, borrowed bool) {
	if borrowed {
		kind.reference(p)
	}
	h.ptr = p
	h.kind = kind
	h.cleanup = runtime.AddCleanup(owner, releaseUnreachable, unreachable{ptr: p, kind: kind})
}

// releaseUnreachable drops the reference of a handle that was never closed.
func releaseUnreachable(u unreachable) {
	Logger().Debug("cairo: releasing unreachable handle", "kind", u.kind.name)
	u.kind.destroy(u.ptr)
}

// release drops the handle's native reference. It is safe to call more than once.
func (h *handle) release() {
	if h.ptr == nil {
		return
	}
	h.cleanup.Stop()
	h.kind.destroy(h.ptr)
	h.ptr = nil
}

// refCount returns the native reference count, or 0 for a released handle.
func (h *handle) refCount() uint {
	if h.ptr == nil || h.kind.count == nil {
		return 0
	}
	return h.kind.count(h.ptr)
}

package cairo

/*
#cgo pkg-config: cairo freetype2
#cgo linux LDFLAGS: -lpthread

#include <stdlib.h>
#include "gocairo.h"
*/
import "C"

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Version returns the version of the native cairo library linked at run time,
// encoded as major*10000 + minor*100 + micro.
func Version() int {
	return int(C.cairo_version())
}

// VersionString returns the run-time cairo version as "X.Y.Z".
func VersionString() string {
	return C.GoString(C.cairo_version_string())
}

// CheckVersion reports an error if the linked cairo is older than min.
// min is a dotted version such as "1.16.0"; a leading "v" is optional.
func CheckVersion(min string) error {
	want := canonicalVersion(min)
	if !semver.IsValid(want) {
		return fmt.Errorf("cairo: invalid version %q", min)
	}
	have := canonicalVersion(VersionString())
	if semver.Compare(have, want) < 0 {
		return fmt.Errorf("cairo: version %s is older than required %s", VersionString(), min)
	}
	return nil
}

func canonicalVersion(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

// cBool converts a cairo_bool_t.
func cBool(b C.cairo_bool_t) bool {
	return b != 0
}

package cairo

/*
#include "gocairo.h"
*/
import "C"

// Glyph is one positioned glyph of a run. Index is the glyph id in the
// font face; X and Y are the glyph origin in user space.
type Glyph struct {
	Index uint64
	X, Y  float64
}

// TextCluster maps NumBytes bytes of UTF-8 text to NumGlyphs glyphs.
// Across a run, the NumBytes sum to the text length and the NumGlyphs
// sum to the glyph count.
type TextCluster struct {
	NumBytes  int
	NumGlyphs int
}

// ClusterFlags describes the order of a cluster run.
type ClusterFlags int

const (
	// ClusterForward maps clusters to glyphs in the same order.
	ClusterForward ClusterFlags = 0
	// ClusterBackward maps clusters to glyphs in reverse order, as for
	// right-to-left text.
	ClusterBackward = ClusterFlags(C.CAIRO_TEXT_CLUSTER_FLAG_BACKWARD)
)

// Backward reports whether the backward flag is set.
func (f ClusterFlags) Backward() bool {
	return f&ClusterBackward != 0
}

// clusterSums returns the byte and glyph totals of a cluster run.
func clusterSums(clusters []TextCluster) (bytes, glyphs int) {
	for _, c := range clusters {
		bytes += c.NumBytes
		glyphs += c.NumGlyphs
	}
	return bytes, glyphs
}

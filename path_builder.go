// path_builder.go

package cairo

import "math"

// PathBuilder provides a fluent interface for path construction.
// All methods return the builder for chaining.
type PathBuilder struct {
	path *Path
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// MoveTo moves to a new position.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.path.MoveTo(x, y)
	return b
}

// LineTo draws a line to a position.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.path.LineTo(x, y)
	return b
}

// CurveTo draws a cubic Bezier curve.
func (b *PathBuilder) CurveTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	b.path.CurveTo(c1x, c1y, c2x, c2y, x, y)
	return b
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.Close()
	return b
}

// Rect adds a rectangle to the path.
func (b *PathBuilder) Rect(x, y, w, h float64) *PathBuilder {
	b.path.Rectangle(x, y, w, h)
	return b
}

// Ellipse adds an ellipse made of four cubic curves.
func (b *PathBuilder) Ellipse(cx, cy, rx, ry float64) *PathBuilder {
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	kx, ky := k*rx, k*ry

	b.path.MoveTo(cx+rx, cy)
	b.path.CurveTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	b.path.CurveTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	b.path.CurveTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	b.path.CurveTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	b.path.Close()
	return b
}

// Circle adds a circle to the path.
func (b *PathBuilder) Circle(cx, cy, r float64) *PathBuilder {
	return b.Ellipse(cx, cy, r, r)
}

// Polygon adds a regular polygon to the path.
func (b *PathBuilder) Polygon(cx, cy, radius float64, sides int) *PathBuilder {
	if sides < 3 {
		return b
	}

	angleStep := 2 * math.Pi / float64(sides)
	startAngle := -math.Pi / 2 // Start at top

	for i := range sides {
		angle := startAngle + float64(i)*angleStep
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		if i == 0 {
			b.path.MoveTo(x, y)
		} else {
			b.path.LineTo(x, y)
		}
	}
	b.path.Close()
	return b
}

// Build returns the constructed path.
func (b *PathBuilder) Build() *Path {
	return b.path
}

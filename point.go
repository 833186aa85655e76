package cairo

// Point is a coordinate pair in user space, the payload of a path segment.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Transform maps p through m.
func (p Point) Transform(m Matrix) Point {
	x, y := m.TransformPoint(p.X, p.Y)
	return Point{X: x, Y: y}
}

// Rectangle is an axis-aligned rectangle, as returned for clip lists and
// surface extents.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Rect is a convenience function to create a Rectangle.
func Rect(x, y, width, height float64) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// Extents is a bounding box given by its corners, as returned by the
// fill, stroke, clip and path extents queries.
type Extents struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Empty reports whether the box has no area.
func (e Extents) Empty() bool {
	return e.X2 <= e.X1 || e.Y2 <= e.Y1
}

// Rectangle converts the box to origin and size form.
func (e Extents) Rectangle() Rectangle {
	return Rectangle{X: e.X1, Y: e.Y1, Width: e.X2 - e.X1, Height: e.Y2 - e.Y1}
}

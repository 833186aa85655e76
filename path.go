package cairo

import "iter"

// PathElement represents a single segment of a path.
//
// The set of elements is closed: MoveTo, LineTo, CurveTo and ClosePath
// mirror the four segment kinds cairo stores.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CurveTo draws a cubic Bezier curve.
type CurveTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CurveTo) isPathElement() {}

// ClosePath closes the current subpath. It carries no coordinates.
type ClosePath struct{}

func (ClosePath) isPathElement() {}

// Path is an owned sequence of path elements. It is independent of any
// Context: Context.CopyPath returns one and Context.AppendPath consumes one.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// PathOf creates a path holding the given elements.
func PathOf(elems ...PathElement) *Path {
	p := &Path{elements: make([]PathElement, 0, len(elems))}
	for _, e := range elems {
		p.Append(e)
	}
	return p
}

// Append adds one element, tracking the current point.
func (p *Path) Append(e PathElement) {
	switch e := e.(type) {
	case MoveTo:
		p.start = e.Point
		p.current = e.Point
	case LineTo:
		p.current = e.Point
	case CurveTo:
		p.current = e.Point
	case ClosePath:
		p.current = p.start
	}
	p.elements = append(p.elements, e)
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.Append(MoveTo{Point: Pt(x, y)})
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Append(LineTo{Point: Pt(x, y)})
}

// CurveTo draws a cubic Bezier curve to (x, y).
func (p *Path) CurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.Append(CurveTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.Append(ClosePath{})
}

// Rectangle adds a closed rectangle subpath.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// All iterates over the elements in order with their index.
func (p *Path) All() iter.Seq2[int, PathElement] {
	return func(yield func(int, PathElement) bool) {
		for i, e := range p.elements {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Transform returns a copy of the path with every point mapped through m.
func (p *Path) Transform(m Matrix) *Path {
	result := &Path{elements: make([]PathElement, 0, len(p.elements))}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.Append(MoveTo{Point: e.Point.Transform(m)})
		case LineTo:
			result.Append(LineTo{Point: e.Point.Transform(m)})
		case CurveTo:
			result.Append(CurveTo{
				Control1: e.Control1.Transform(m),
				Control2: e.Control2.Transform(m),
				Point:    e.Point.Transform(m),
			})
		case ClosePath:
			result.Append(e)
		}
	}
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{elements: make([]PathElement, len(p.elements))}
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

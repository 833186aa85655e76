package cairo

import "unsafe"

// Segment kinds of cairo_path_data_type_t.
const (
	pathMoveTo    int32 = 0
	pathLineTo    int32 = 1
	pathCurveTo   int32 = 2
	pathClosePath int32 = 3
)

// pathData mirrors one cairo_path_data_t: a union of a header
// {type int32; length int32} and a point {x, y double}. Both views are
// 16 bytes wide.
type pathData [2]float64

type pathHeader struct {
	typ    int32
	length int32
}

func (d *pathData) header() *pathHeader {
	return (*pathHeader)(unsafe.Pointer(d))
}

func (d *pathData) setHeader(typ int32, length int) {
	*d = pathData{}
	h := d.header()
	h.typ = typ
	h.length = int32(length)
}

func (d *pathData) point() Point {
	return Point{X: d[0], Y: d[1]}
}

func (d *pathData) setPoint(p Point) {
	d[0], d[1] = p.X, p.Y
}

// elementLen returns the number of data slots an element occupies,
// header included.
func elementLen(e PathElement) int {
	switch e.(type) {
	case MoveTo, LineTo:
		return 2
	case CurveTo:
		return 4
	case ClosePath:
		return 1
	}
	return 0
}

// pathDataLen returns the number of slots needed to encode elems.
func pathDataLen(elems []PathElement) int {
	n := 0
	for _, e := range elems {
		n += elementLen(e)
	}
	return n
}

// encodePath writes elems into dst, which must hold pathDataLen(elems) slots.
// It returns the number of slots written.
func encodePath(dst []pathData, elems []PathElement) int {
	i := 0
	for _, elem := range elems {
		switch e := elem.(type) {
		case MoveTo:
			dst[i].setHeader(pathMoveTo, 2)
			dst[i+1].setPoint(e.Point)
		case LineTo:
			dst[i].setHeader(pathLineTo, 2)
			dst[i+1].setPoint(e.Point)
		case CurveTo:
			dst[i].setHeader(pathCurveTo, 4)
			dst[i+1].setPoint(e.Control1)
			dst[i+2].setPoint(e.Control2)
			dst[i+3].setPoint(e.Point)
		case ClosePath:
			dst[i].setHeader(pathClosePath, 1)
		default:
			continue
		}
		i += elementLen(elem)
	}
	return i
}

// decodePath walks src header by header and returns one element per header.
// A header whose length does not match its kind, or that runs past the end
// of src, yields StatusInvalidPathData.
func decodePath(src []pathData) ([]PathElement, error) {
	elems := make([]PathElement, 0, len(src)/2)
	for i := 0; i < len(src); {
		h := src[i].header()
		n := int(h.length)
		if n < 1 || i+n > len(src) {
			return nil, StatusInvalidPathData
		}
		switch {
		case h.typ == pathMoveTo && n == 2:
			elems = append(elems, MoveTo{Point: src[i+1].point()})
		case h.typ == pathLineTo && n == 2:
			elems = append(elems, LineTo{Point: src[i+1].point()})
		case h.typ == pathCurveTo && n == 4:
			elems = append(elems, CurveTo{
				Control1: src[i+1].point(),
				Control2: src[i+2].point(),
				Point:    src[i+3].point(),
			})
		case h.typ == pathClosePath && n == 1:
			elems = append(elems, ClosePath{})
		default:
			return nil, StatusInvalidPathData
		}
		i += n
	}
	return elems, nil
}

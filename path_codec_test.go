package cairo

import (
	"errors"
	"reflect"
	"testing"
	"unsafe"
)

func samplePath() []PathElement {
	return []PathElement{
		MoveTo{Point: Pt(10, 20)},
		LineTo{Point: Pt(30, 40)},
		CurveTo{Control1: Pt(1, 2), Control2: Pt(3, 4), Point: Pt(5, 6)},
		ClosePath{},
		MoveTo{Point: Pt(-1.5, 2.25)},
		LineTo{Point: Pt(100, 0)},
	}
}

func TestPathDataLayout(t *testing.T) {
	if size := unsafe.Sizeof(pathData{}); size != 16 {
		t.Fatalf("pathData is %d bytes, want 16", size)
	}
	if size := unsafe.Sizeof(pathHeader{}); size != 8 {
		t.Fatalf("pathHeader is %d bytes, want 8", size)
	}
}

func TestPathDataLen(t *testing.T) {
	tests := []struct {
		name  string
		elems []PathElement
		want  int
	}{
		{"empty", nil, 0},
		{"move", []PathElement{MoveTo{}}, 2},
		{"line", []PathElement{LineTo{}}, 2},
		{"curve", []PathElement{CurveTo{}}, 4},
		{"close", []PathElement{ClosePath{}}, 1},
		{"mixed", samplePath(), 2 + 2 + 4 + 1 + 2 + 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pathDataLen(tt.elems); got != tt.want {
				t.Errorf("pathDataLen() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPathCodecRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		elems []PathElement
	}{
		{"empty", []PathElement{}},
		{"single move", []PathElement{MoveTo{Point: Pt(1, 2)}}},
		{"close only", []PathElement{ClosePath{}}},
		{"mixed", samplePath()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]pathData, pathDataLen(tt.elems))
			if n := encodePath(data, tt.elems); n != len(data) {
				t.Fatalf("encodePath wrote %d slots, want %d", n, len(data))
			}
			got, err := decodePath(data)
			if err != nil {
				t.Fatalf("decodePath: %v", err)
			}
			if !reflect.DeepEqual(got, tt.elems) {
				t.Errorf("round trip = %#v, want %#v", got, tt.elems)
			}
		})
	}
}

func TestEncodePathHeaders(t *testing.T) {
	data := make([]pathData, pathDataLen(samplePath()))
	encodePath(data, samplePath())

	want := []struct {
		index  int
		typ    int32
		length int32
	}{
		{0, pathMoveTo, 2},
		{2, pathLineTo, 2},
		{4, pathCurveTo, 4},
		{8, pathClosePath, 1},
		{9, pathMoveTo, 2},
		{11, pathLineTo, 2},
	}
	for _, w := range want {
		h := data[w.index].header()
		if h.typ != w.typ || h.length != w.length {
			t.Errorf("slot %d header = {%d %d}, want {%d %d}", w.index, h.typ, h.length, w.typ, w.length)
		}
	}
	if p := data[7].point(); p != Pt(5, 6) {
		t.Errorf("curve end point = %v, want (5, 6)", p)
	}
}

func TestDecodePathInvalid(t *testing.T) {
	header := func(typ int32, length int) pathData {
		var d pathData
		d.setHeader(typ, length)
		return d
	}

	tests := []struct {
		name string
		data []pathData
	}{
		{"zero length", []pathData{header(pathMoveTo, 0)}},
		{"negative length", []pathData{header(pathLineTo, -2)}},
		{"overrun", []pathData{header(pathCurveTo, 4), {}}},
		{"move with wrong length", []pathData{header(pathMoveTo, 3), {}, {}}},
		{"close with points", []pathData{header(pathClosePath, 2), {}}},
		{"unknown type", []pathData{header(7, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodePath(tt.data)
			if !errors.Is(err, StatusInvalidPathData) {
				t.Errorf("decodePath error = %v, want StatusInvalidPathData", err)
			}
		})
	}
}

func TestDecodePathEmpty(t *testing.T) {
	got, err := decodePath(nil)
	if err != nil {
		t.Fatalf("decodePath(nil): %v", err)
	}
	if len(got) != 0 {
		t.Errorf("decodePath(nil) = %v, want empty", got)
	}
}

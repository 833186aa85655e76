package cairo

import (
	"math"
	"testing"
)

func TestNewDash(t *testing.T) {
	tests := []struct {
		name    string
		lengths []float64
		dashed  bool
		length  float64
	}{
		{"none", nil, false, 0},
		{"dash gap", []float64{5, 3}, true, 8},
		{"odd count repeats", []float64{5}, true, 10},
		{"four values", []float64{10, 5, 2, 5}, true, 22},
		{"negative kept as given", []float64{-5, 3}, true, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDash(tt.lengths...)
			if d.IsDashed() != tt.dashed {
				t.Errorf("IsDashed() = %v, want %v", d.IsDashed(), tt.dashed)
			}
			if got := d.PatternLength(); math.Abs(got-tt.length) > 1e-9 {
				t.Errorf("PatternLength() = %v, want %v", got, tt.length)
			}
			if len(d.Array) != len(tt.lengths) {
				t.Errorf("len(Array) = %d, want %d", len(d.Array), len(tt.lengths))
			}
		})
	}
}

func TestNewDash_CopiesInput(t *testing.T) {
	lengths := []float64{4, 2}
	d := NewDash(lengths...)
	lengths[0] = 100
	if d.Array[0] != 4 {
		t.Error("NewDash aliases its argument")
	}
}

func TestDash_WithOffsetAndScale(t *testing.T) {
	d := NewDash(4, 2).WithOffset(1)
	if d.Offset != 1 {
		t.Errorf("Offset = %v, want 1", d.Offset)
	}

	s := d.Scale(2.5)
	if s.Array[0] != 10 || s.Array[1] != 5 || s.Offset != 2.5 {
		t.Errorf("Scale(2.5) = %+v", s)
	}
	if d.Array[0] != 4 {
		t.Error("Scale modified the receiver")
	}
}

func TestDash_Clone(t *testing.T) {
	d := NewDash(1, 2, 3).WithOffset(0.5)
	c := d.Clone()
	c.Array[0] = 9
	if d.Array[0] != 1 || c.Offset != 0.5 {
		t.Errorf("Clone is not independent: original %+v, clone %+v", d, c)
	}
}

func TestContext_DashStrokeExtents(t *testing.T) {
	cr := newTestContext(t, 100, 100)

	if err := cr.SetDash(NewDash(10, 10)); err != nil {
		t.Fatalf("SetDash: %v", err)
	}
	cr.SetLineWidth(2)
	cr.SetLineCap(LineCapButt)
	cr.MoveTo(0, 50)
	cr.LineTo(100, 50)

	ext, err := cr.StrokeExtents()
	if err != nil {
		t.Fatalf("StrokeExtents: %v", err)
	}
	if ext.Empty() || ext.Y1 < 48.9 || ext.Y2 > 51.1 {
		t.Errorf("StrokeExtents() = %+v", ext)
	}
	if !cr.InStroke(5, 50) {
		t.Error("point in the first dash is not in the stroke")
	}
	if cr.InStroke(15, 50) {
		t.Error("point in the first gap is in the stroke")
	}
	if err := cr.Stroke(); err != nil {
		t.Errorf("Stroke: %v", err)
	}
}

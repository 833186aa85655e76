package cairo

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// newTestContext returns a context drawing on a w×h ARGB32 image surface.
// Both are closed when the test ends.
func newTestContext(t *testing.T, w, h int) *Context {
	t.Helper()

	s, err := NewImageSurface(FormatARGB32, w, h)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	cr, err := NewContext(s)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	t.Cleanup(func() { cr.Close() })
	return cr
}

func TestContext_StickyRestore(t *testing.T) {
	cr := newTestContext(t, 10, 10)

	cr.Restore()

	err := cr.Err()
	if !errors.Is(err, StatusInvalidRestore) {
		t.Fatalf("Err() = %v, want StatusInvalidRestore", err)
	}

	// Operations after the failure are no-ops reporting the same status.
	cr.MoveTo(1, 1)
	cr.LineTo(5, 5)
	if _, err := cr.CopyPath(); !errors.Is(err, StatusInvalidRestore) {
		t.Errorf("CopyPath() error = %v, want StatusInvalidRestore", err)
	}

	err = cr.Fill()
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatalf("Fill() error = %T, want *Error", err)
	}
	if cerr.Op != "cairo_fill" || cerr.Status != StatusInvalidRestore {
		t.Errorf("Fill() error = {%s %v}, want {cairo_fill %v}", cerr.Op, cerr.Status, StatusInvalidRestore)
	}
	if errors.Is(err, ErrClosed) {
		t.Error("status error matches ErrClosed")
	}
}

func TestContext_SaveRestoreBalanced(t *testing.T) {
	cr := newTestContext(t, 10, 10)

	cr.SetLineWidth(7)
	cr.Save()
	cr.SetLineWidth(1)
	cr.Restore()

	if err := cr.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if w := cr.LineWidth(); w != 7 {
		t.Errorf("LineWidth() after Restore = %v, want 7", w)
	}
}

func TestContext_NoCurrentPoint(t *testing.T) {
	cr := newTestContext(t, 10, 10)

	cr.RelLineTo(1, 1)
	if err := cr.Err(); !errors.Is(err, StatusNoCurrentPoint) {
		t.Errorf("Err() after RelLineTo without current point = %v, want StatusNoCurrentPoint", err)
	}
}

func TestContext_Closed(t *testing.T) {
	cr := newTestContext(t, 10, 10)

	if err := cr.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := cr.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}

	// Void methods and getters are safe on a closed context.
	cr.MoveTo(1, 1)
	cr.SetSourceRGB(1, 0, 0)
	if cr.HasCurrentPoint() {
		t.Error("HasCurrentPoint() on closed context = true")
	}
	if m := cr.Matrix(); m != (Matrix{}) {
		t.Errorf("Matrix() on closed context = %+v, want zero", m)
	}
	if cr.Target() != nil || cr.Source() != nil {
		t.Error("borrowed getters on closed context returned handles")
	}
	if n := cr.ReferenceCount(); n != 0 {
		t.Errorf("ReferenceCount() = %d, want 0", n)
	}

	checks := map[string]error{
		"Err":      cr.Err(),
		"Fill":     cr.Fill(),
		"Paint":    cr.Paint(),
		"SetDash":  cr.SetDash(NewDash(1, 1)),
		"ShowText": cr.ShowText("x"),
	}
	for name, err := range checks {
		if !errors.Is(err, ErrClosed) {
			t.Errorf("%s() on closed context = %v, want ErrClosed", name, err)
		}
	}
	if _, err := cr.CopyPath(); !errors.Is(err, ErrClosed) {
		t.Errorf("CopyPath() = %v, want ErrClosed", err)
	}
	if _, err := cr.Dash(); !errors.Is(err, ErrClosed) {
		t.Errorf("Dash() = %v, want ErrClosed", err)
	}
	if _, err := cr.FontOptions(); !errors.Is(err, ErrClosed) {
		t.Errorf("FontOptions() = %v, want ErrClosed", err)
	}
}

func TestNewContext_ClosedSurface(t *testing.T) {
	s, err := NewImageSurface(FormatARGB32, 4, 4)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	s.Close()

	if _, err := NewContext(s); !errors.Is(err, ErrClosed) {
		t.Errorf("NewContext(closed) error = %v, want ErrClosed", err)
	}
}

func TestContext_TargetOutlivesHandles(t *testing.T) {
	s, err := NewImageSurface(FormatARGB32, 8, 8)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	cr, err := NewContext(s)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	defer cr.Close()

	base := s.ReferenceCount()
	if base < 2 {
		t.Errorf("surface references with a context = %d, want at least 2", base)
	}

	target := cr.Target()
	if n := target.ReferenceCount(); n != base+1 {
		t.Errorf("surface references with a Target alias = %d, want %d", n, base+1)
	}

	// Closing the original leaves the alias and the context usable.
	s.Close()
	if n := target.ReferenceCount(); n != base {
		t.Errorf("references after closing the original = %d, want %d", n, base)
	}
	cr.SetSourceRGB(0, 0, 1)
	if err := cr.Paint(); err != nil {
		t.Fatalf("Paint() after closing the original surface: %v", err)
	}
	if st := target.Type(); st != SurfaceTypeImage {
		t.Errorf("Target().Type() = %v, want SurfaceTypeImage", st)
	}

	target.Close()
	target.Close()
	if err := target.Err(); !errors.Is(err, ErrClosed) {
		t.Errorf("Err() on closed alias = %v, want ErrClosed", err)
	}
}

func TestContext_SourceAlias(t *testing.T) {
	cr := newTestContext(t, 4, 4)

	pt := NewRGBAPattern(0.25, 0.5, 0.75, 1)
	cr.SetSource(pt)
	base := pt.ReferenceCount()
	if base != 2 {
		t.Errorf("pattern references after SetSource = %d, want 2", base)
	}

	src := cr.Source()
	defer src.Close()
	if n := src.ReferenceCount(); n != base+1 {
		t.Errorf("pattern references with a Source alias = %d, want %d", n, base+1)
	}

	pt.Close()
	got, err := src.RGBA()
	if err != nil {
		t.Fatalf("RGBA() on alias after closing the original: %v", err)
	}
	if want := (RGBA{0.25, 0.5, 0.75, 1}); got != want {
		t.Errorf("RGBA() = %+v, want %+v", got, want)
	}

	cr.SetSourceRGB(0, 0, 0)
	if n := src.ReferenceCount(); n != 1 {
		t.Errorf("alias references after the context dropped the source = %d, want 1", n)
	}
}

func TestContext_Dash(t *testing.T) {
	cr := newTestContext(t, 10, 10)

	d, err := cr.Dash()
	if err != nil {
		t.Fatalf("Dash(): %v", err)
	}
	if len(d.Array) != 0 || d.Offset != 0 {
		t.Errorf("default Dash() = %+v, want empty", d)
	}

	want := NewDash(4, 2, 1, 2).WithOffset(1.5)
	if err := cr.SetDash(want); err != nil {
		t.Fatalf("SetDash: %v", err)
	}
	if n := cr.DashCount(); n != 4 {
		t.Errorf("DashCount() = %d, want 4", n)
	}
	got, err := cr.Dash()
	if err != nil {
		t.Fatalf("Dash(): %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dash() = %+v, want %+v", got, want)
	}

	if err := cr.SetDash(Dash{}); err != nil {
		t.Fatalf("SetDash(empty): %v", err)
	}
	if n := cr.DashCount(); n != 0 {
		t.Errorf("DashCount() after disabling = %d, want 0", n)
	}
}

func TestContext_InvalidDash(t *testing.T) {
	tests := []struct {
		name string
		dash Dash
	}{
		{"negative", NewDash(4, -1)},
		{"all zero", NewDash(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cr := newTestContext(t, 10, 10)
			if err := cr.SetDash(tt.dash); !errors.Is(err, StatusInvalidDash) {
				t.Errorf("SetDash(%v) = %v, want StatusInvalidDash", tt.dash.Array, err)
			}
			if err := cr.Err(); !errors.Is(err, StatusInvalidDash) {
				t.Errorf("Err() = %v, want the sticky StatusInvalidDash", err)
			}
		})
	}
}

func TestContext_StateRoundTrip(t *testing.T) {
	cr := newTestContext(t, 10, 10)

	cr.SetAntialias(AntialiasNone)
	cr.SetFillRule(FillRuleEvenOdd)
	cr.SetLineCap(LineCapRound)
	cr.SetLineJoin(LineJoinBevel)
	cr.SetLineWidth(3.5)
	cr.SetMiterLimit(4)
	cr.SetOperator(OperatorSource)
	cr.SetTolerance(0.25)

	if err := cr.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if got := cr.Antialias(); got != AntialiasNone {
		t.Errorf("Antialias() = %v", got)
	}
	if got := cr.FillRule(); got != FillRuleEvenOdd {
		t.Errorf("FillRule() = %v", got)
	}
	if got := cr.LineCap(); got != LineCapRound {
		t.Errorf("LineCap() = %v", got)
	}
	if got := cr.LineJoin(); got != LineJoinBevel {
		t.Errorf("LineJoin() = %v", got)
	}
	if got := cr.LineWidth(); got != 3.5 {
		t.Errorf("LineWidth() = %v", got)
	}
	if got := cr.MiterLimit(); got != 4 {
		t.Errorf("MiterLimit() = %v", got)
	}
	if got := cr.Operator(); got != OperatorSource {
		t.Errorf("Operator() = %v", got)
	}
	if got := cr.Tolerance(); got != 0.25 {
		t.Errorf("Tolerance() = %v", got)
	}
}

func TestContext_PathRoundTrip(t *testing.T) {
	cr := newTestContext(t, 200, 200)

	want := []PathElement{
		MoveTo{Point: Pt(10, 10)},
		LineTo{Point: Pt(50, 10)},
		LineTo{Point: Pt(50, 50)},
		ClosePath{},
		MoveTo{Point: Pt(100, 100)},
		CurveTo{Control1: Pt(110, 90), Control2: Pt(130, 140), Point: Pt(150, 100)},
		LineTo{Point: Pt(160, 180)},
	}

	if err := cr.AppendPath(PathOf(want...)); err != nil {
		t.Fatalf("AppendPath: %v", err)
	}
	got, err := cr.CopyPath()
	if err != nil {
		t.Fatalf("CopyPath: %v", err)
	}
	if !reflect.DeepEqual(got.Elements(), want) {
		t.Errorf("CopyPath() = %#v\nwant %#v", got.Elements(), want)
	}
	if cp := cr.CurrentPoint(); cp != Pt(160, 180) {
		t.Errorf("CurrentPoint() = %v, want (160, 180)", cp)
	}
}

func TestContext_CopyPathEmpty(t *testing.T) {
	cr := newTestContext(t, 10, 10)

	p, err := cr.CopyPath()
	if err != nil {
		t.Fatalf("CopyPath: %v", err)
	}
	if p.Len() != 0 {
		t.Errorf("CopyPath() of empty path has %d elements", p.Len())
	}
	if err := cr.AppendPath(NewPath()); err != nil {
		t.Errorf("AppendPath(empty) = %v", err)
	}
	if err := cr.AppendPath(nil); err != nil {
		t.Errorf("AppendPath(nil) = %v", err)
	}
}

func TestContext_CopyPathFlat(t *testing.T) {
	cr := newTestContext(t, 100, 100)

	cr.MoveTo(0, 0)
	cr.CurveTo(0, 50, 50, 100, 100, 100)

	p, err := cr.CopyPathFlat()
	if err != nil {
		t.Fatalf("CopyPathFlat: %v", err)
	}
	if p.Len() < 3 {
		t.Fatalf("flattened curve has %d elements, want several lines", p.Len())
	}
	for i, e := range p.All() {
		switch e.(type) {
		case MoveTo, LineTo:
		default:
			t.Errorf("element %d is %T after flattening", i, e)
		}
	}
	if cp := p.CurrentPoint(); math.Abs(cp.X-100) > 1e-6 || math.Abs(cp.Y-100) > 1e-6 {
		t.Errorf("flattened path ends at %v, want (100, 100)", cp)
	}
}

func TestContext_FillQueries(t *testing.T) {
	cr := newTestContext(t, 100, 100)

	cr.Rectangle(10, 10, 20, 30)
	ext, err := cr.FillExtents()
	if err != nil {
		t.Fatalf("FillExtents: %v", err)
	}
	if want := (Extents{X1: 10, Y1: 10, X2: 30, Y2: 40}); ext != want {
		t.Errorf("FillExtents() = %+v, want %+v", ext, want)
	}
	if pe, _ := cr.PathExtents(); pe != ext {
		t.Errorf("PathExtents() = %+v, want %+v", pe, ext)
	}
	if !cr.InFill(15, 15) || cr.InFill(50, 50) {
		t.Error("InFill reports wrong containment")
	}

	cr.SetLineWidth(4)
	se, err := cr.StrokeExtents()
	if err != nil {
		t.Fatalf("StrokeExtents: %v", err)
	}
	if want := (Extents{X1: 8, Y1: 8, X2: 32, Y2: 42}); se != want {
		t.Errorf("StrokeExtents() = %+v, want %+v", se, want)
	}

	if err := cr.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if cr.HasCurrentPoint() {
		t.Error("Fill did not clear the path")
	}
}

func TestContext_Clip(t *testing.T) {
	cr := newTestContext(t, 100, 100)

	cr.Rectangle(10, 20, 30, 40)
	if err := cr.Clip(); err != nil {
		t.Fatalf("Clip: %v", err)
	}

	rects, err := cr.ClipRectangles()
	if err != nil {
		t.Fatalf("ClipRectangles: %v", err)
	}
	if len(rects) != 1 || rects[0] != Rect(10, 20, 30, 40) {
		t.Errorf("ClipRectangles() = %+v, want [{10 20 30 40}]", rects)
	}
	ext, err := cr.ClipExtents()
	if err != nil {
		t.Fatalf("ClipExtents: %v", err)
	}
	if want := (Extents{X1: 10, Y1: 20, X2: 40, Y2: 60}); ext != want {
		t.Errorf("ClipExtents() = %+v, want %+v", ext, want)
	}
	if !cr.InClip(15, 25) || cr.InClip(5, 5) {
		t.Error("InClip reports wrong containment")
	}

	cr.ResetClip()
	cr.Arc(50, 50, 20, 0, 2*math.Pi)
	if err := cr.Clip(); err != nil {
		t.Fatalf("Clip(circle): %v", err)
	}
	if _, err := cr.ClipRectangles(); !errors.Is(err, StatusClipNotRepresentable) {
		t.Errorf("ClipRectangles() on a circular clip = %v, want StatusClipNotRepresentable", err)
	}
	if err := cr.Err(); err != nil {
		t.Errorf("unrepresentable clip list changed the context status: %v", err)
	}
}

func TestContext_Groups(t *testing.T) {
	cr := newTestContext(t, 10, 10)

	cr.PushGroup()
	gt := cr.GroupTarget()
	tt := cr.Target()
	defer gt.Close()
	defer tt.Close()
	if gt.ReferenceCount() == 0 || tt.ReferenceCount() == 0 {
		t.Fatal("group target aliases are not live")
	}

	cr.SetSourceRGB(1, 0, 0)
	if err := cr.Paint(); err != nil {
		t.Fatalf("Paint in group: %v", err)
	}
	pt, err := cr.PopGroup()
	if err != nil {
		t.Fatalf("PopGroup: %v", err)
	}
	defer pt.Close()
	if pt.Type() != PatternTypeSurface {
		t.Errorf("PopGroup() pattern type = %v, want PatternTypeSurface", pt.Type())
	}

	if _, err := cr.PopGroup(); !errors.Is(err, StatusInvalidPopGroup) {
		t.Errorf("unbalanced PopGroup() = %v, want StatusInvalidPopGroup", err)
	}
}

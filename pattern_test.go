package cairo

import (
	"errors"
	"reflect"
	"testing"
)

func TestPattern_Solid(t *testing.T) {
	pt := NewRGBPattern(0.5, 0.25, 1)
	defer pt.Close()

	if pt.Type() != PatternTypeSolid {
		t.Errorf("Type() = %v, want PatternTypeSolid", pt.Type())
	}
	c, err := pt.RGBA()
	if err != nil {
		t.Fatalf("RGBA: %v", err)
	}
	if want := (RGBA{0.5, 0.25, 1, 1}); c != want {
		t.Errorf("RGBA() = %+v, want %+v", c, want)
	}

	if _, err := pt.ColorStopCount(); !errors.Is(err, StatusPatternTypeMismatch) {
		t.Errorf("ColorStopCount on a solid pattern = %v, want StatusPatternTypeMismatch", err)
	}
	if _, _, err := pt.LinearPoints(); !errors.Is(err, StatusPatternTypeMismatch) {
		t.Errorf("LinearPoints on a solid pattern = %v, want StatusPatternTypeMismatch", err)
	}
}

func TestPattern_LinearGradient(t *testing.T) {
	pt := NewLinearGradient(0, 0, 100, 50)
	defer pt.Close()

	pt.AddColorStop(1, Blue)
	pt.AddColorStopRGB(0, 1, 0, 0)
	pt.AddColorStopRGBA(0.5, 0, 1, 0, 0.5)

	stops, err := pt.ColorStops()
	if err != nil {
		t.Fatalf("ColorStops: %v", err)
	}
	want := []ColorStop{
		{Offset: 0, R: 1, A: 1},
		{Offset: 0.5, G: 1, A: 0.5},
		{Offset: 1, B: 1, A: 1},
	}
	if !reflect.DeepEqual(stops, want) {
		t.Errorf("ColorStops() = %+v, want %+v", stops, want)
	}

	if _, err := pt.ColorStop(3); !errors.Is(err, StatusInvalidIndex) {
		t.Errorf("ColorStop(3) = %v, want StatusInvalidIndex", err)
	}
	if err := pt.Err(); err != nil {
		t.Errorf("out of range query changed the pattern status: %v", err)
	}

	p0, p1, err := pt.LinearPoints()
	if err != nil {
		t.Fatalf("LinearPoints: %v", err)
	}
	if p0 != Pt(0, 0) || p1 != Pt(100, 50) {
		t.Errorf("LinearPoints() = %v, %v", p0, p1)
	}
	if _, err := pt.RGBA(); !errors.Is(err, StatusPatternTypeMismatch) {
		t.Errorf("RGBA on a gradient = %v, want StatusPatternTypeMismatch", err)
	}
}

func TestPattern_RadialGradient(t *testing.T) {
	pt := NewRadialGradient(10, 10, 0, 10, 10, 40)
	defer pt.Close()

	c0, c1, err := pt.RadialCircles()
	if err != nil {
		t.Fatalf("RadialCircles: %v", err)
	}
	if c0 != (Circle{Center: Pt(10, 10)}) || c1 != (Circle{Center: Pt(10, 10), Radius: 40}) {
		t.Errorf("RadialCircles() = %+v, %+v", c0, c1)
	}
	if pt.Type() != PatternTypeRadial {
		t.Errorf("Type() = %v, want PatternTypeRadial", pt.Type())
	}
}

func TestPattern_Attributes(t *testing.T) {
	pt := NewLinearGradient(0, 0, 1, 1)
	defer pt.Close()

	pt.SetExtend(ExtendReflect)
	pt.SetFilter(FilterNearest)
	m := NewScale(2, 3)
	pt.SetMatrix(m)

	if pt.Extend() != ExtendReflect {
		t.Errorf("Extend() = %v, want ExtendReflect", pt.Extend())
	}
	if pt.Filter() != FilterNearest {
		t.Errorf("Filter() = %v, want FilterNearest", pt.Filter())
	}
	if got := pt.Matrix(); got != m {
		t.Errorf("Matrix() = %+v, want %+v", got, m)
	}

	pt.SetMatrix(NewScale(0, 1))
	if err := pt.Err(); !errors.Is(err, StatusInvalidMatrix) {
		t.Errorf("Err() after singular SetMatrix = %v, want StatusInvalidMatrix", err)
	}
}

func TestPattern_SurfaceAlias(t *testing.T) {
	s, err := NewImageSurface(FormatARGB32, 4, 4)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	pt := NewSurfacePattern(s)
	defer pt.Close()

	if pt.Type() != PatternTypeSurface {
		t.Fatalf("Type() = %v, want PatternTypeSurface", pt.Type())
	}
	base := s.ReferenceCount()

	got, err := pt.Surface()
	if err != nil {
		t.Fatalf("Surface: %v", err)
	}
	defer got.Close()
	if n := got.ReferenceCount(); n != base+1 {
		t.Errorf("references with a Surface alias = %d, want %d", n, base+1)
	}

	s.Close()
	if got.Type() != SurfaceTypeImage {
		t.Error("alias unusable after closing the original surface")
	}

	solid := NewRGBPattern(0, 0, 0)
	defer solid.Close()
	if _, err := solid.Surface(); !errors.Is(err, StatusPatternTypeMismatch) {
		t.Errorf("Surface() on a solid pattern = %v, want StatusPatternTypeMismatch", err)
	}
}

func TestPattern_Mesh(t *testing.T) {
	pt := NewMeshPattern()
	defer pt.Close()

	pt.BeginPatch()
	pt.MoveTo(0, 0)
	pt.LineTo(100, 0)
	pt.CurveTo(110, 30, 90, 70, 100, 100)
	pt.LineTo(0, 100)
	pt.SetControlPoint(0, 20, 20)
	pt.SetCornerColorRGB(0, 1, 0, 0)
	pt.SetCornerColorRGB(1, 0, 1, 0)
	pt.SetCornerColorRGBA(2, 0, 0, 1, 0.5)
	pt.SetCornerColorRGB(3, 1, 1, 0)
	pt.EndPatch()

	n, err := pt.PatchCount()
	if err != nil {
		t.Fatalf("PatchCount: %v", err)
	}
	if n != 1 {
		t.Errorf("PatchCount() = %d, want 1", n)
	}

	cr := newTestContext(t, 100, 100)
	cr.SetSource(pt)
	if err := cr.Paint(); err != nil {
		t.Errorf("Paint with mesh source: %v", err)
	}
}

func TestPattern_MeshConstructionErrors(t *testing.T) {
	mesh := NewMeshPattern()
	defer mesh.Close()
	mesh.EndPatch()
	if err := mesh.Err(); !errors.Is(err, StatusInvalidMeshConstruction) {
		t.Errorf("EndPatch without BeginPatch = %v, want StatusInvalidMeshConstruction", err)
	}

	linear := NewLinearGradient(0, 0, 1, 1)
	defer linear.Close()
	linear.BeginPatch()
	if err := linear.Err(); !errors.Is(err, StatusPatternTypeMismatch) {
		t.Errorf("BeginPatch on a gradient = %v, want StatusPatternTypeMismatch", err)
	}
}

func TestPattern_Closed(t *testing.T) {
	pt := NewRGBPattern(1, 1, 1)
	pt.Close()
	pt.Close()

	pt.AddColorStopRGB(0, 0, 0, 0)
	if pt.Type() != 0 || pt.ReferenceCount() != 0 {
		t.Error("getters on a closed pattern returned values")
	}
	if _, err := pt.RGBA(); !errors.Is(err, ErrClosed) {
		t.Errorf("RGBA on closed pattern = %v, want ErrClosed", err)
	}

	cr := newTestContext(t, 2, 2)
	cr.SetSource(pt)
	if err := cr.Err(); err != nil {
		t.Errorf("SetSource(closed) changed the context status: %v", err)
	}
}

func TestContext_PopGroupToSource(t *testing.T) {
	s, err := NewImageSurface(FormatARGB32, 2, 2)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	defer s.Close()
	cr, err := NewContext(s)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	defer cr.Close()

	cr.PushGroupWithContent(ContentColorAlpha)
	cr.SetSourceColor(White)
	if err := cr.Paint(); err != nil {
		t.Fatalf("Paint: %v", err)
	}
	cr.PopGroupToSource()
	if err := cr.PaintWithAlpha(1); err != nil {
		t.Fatalf("PaintWithAlpha: %v", err)
	}

	img, err := s.Image()
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if r, _, _, a := img.At(0, 0).RGBA(); r != 0xffff || a != 0xffff {
		t.Errorf("pixel after group paint = r%d a%d, want opaque white", r, a)
	}
}

func TestContext_Mask(t *testing.T) {
	cr := newTestContext(t, 4, 4)

	mask := NewRGBAPattern(0, 0, 0, 0.5)
	defer mask.Close()
	cr.SetSourceColor(Black)
	if err := cr.Mask(mask); err != nil {
		t.Errorf("Mask: %v", err)
	}

	a8, err := NewImageSurface(FormatA8, 4, 4)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	defer a8.Close()
	if err := cr.MaskSurface(a8, 0, 0); err != nil {
		t.Errorf("MaskSurface: %v", err)
	}
	a8.Close()
	if err := cr.MaskSurface(a8, 0, 0); !errors.Is(err, ErrClosed) {
		t.Errorf("MaskSurface(closed) = %v, want ErrClosed", err)
	}
}

package cairo

import (
	"image/color"
	"math"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

func diff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestRGBA_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          RGBA
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", Black, 0, 0, 0, 65535},
		{"opaque white", White, 65535, 65535, 65535, 65535},
		{"opaque red", Red, 65535, 0, 0, 65535},
		{"transparent", RGBA{}, 0, 0, 0, 0},
		{"50% alpha red", RGBA{1, 0, 0, 0.5}, 32767, 0, 0, 32767},
		{"out of range clamps", RGBA{2, -1, 0, 1}, 65535, 0, 0, 65535},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if diff(r, tt.wantR) > 1 || diff(g, tt.wantG) > 1 || diff(b, tt.wantB) > 1 || diff(a, tt.wantA) > 1 {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	if math.Abs(got.R-1) > 1e-9 || got.G != 0 || math.Abs(got.A-128.0/255) > 1e-3 {
		t.Errorf("FromColor(NRGBA) = %+v", got)
	}

	same := RGBA{0.1, 0.2, 0.3, 0.4}
	if FromColor(same) != same {
		t.Error("FromColor(RGBA) changed the value")
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#fff", RGBA{1, 1, 1, 1}},
		{"000", RGBA{0, 0, 0, 1}},
		{"#ff000080", RGBA{1, 0, 0, 128.0 / 255}},
		{"00ff00", RGBA{0, 1, 0, 1}},
		{"#f00f", RGBA{1, 0, 0, 1}},
		{"", RGBA{0, 0, 0, 1}},
		{"#zzzzzz", RGBA{0, 0, 0, 1}},
		{"12345", RGBA{0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Hex(tt.in)
			if math.Abs(got.R-tt.want.R) > 1e-9 || math.Abs(got.G-tt.want.G) > 1e-9 ||
				math.Abs(got.B-tt.want.B) > 1e-9 || math.Abs(got.A-tt.want.A) > 1e-9 {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBA_Lerp(t *testing.T) {
	mid := Black.Lerp(White, 0.5)
	if mid != (RGBA{0.5, 0.5, 0.5, 1}) {
		t.Errorf("Lerp(0.5) = %+v", mid)
	}
	if Red.Lerp(Blue, 0) != Red || Red.Lerp(Blue, 1) != Blue {
		t.Error("Lerp endpoints differ from the inputs")
	}
}

func TestContext_SetSourceColor(t *testing.T) {
	cr := newTestContext(t, 1, 1)

	cr.SetSourceColor(color.NRGBA{R: 0, G: 0, B: 255, A: 255})
	src := cr.Source()
	defer src.Close()

	got, err := src.RGBA()
	if err != nil {
		t.Fatalf("RGBA: %v", err)
	}
	if got != Blue {
		t.Errorf("source = %+v, want %+v", got, Blue)
	}
}

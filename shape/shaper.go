package shape

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/cairo"
	"github.com/gogpu/cairo/internal/cache"
)

// Font is a parsed font file. It is read-only and safe for concurrent use.
type Font struct {
	data []byte
	font *font.Font
}

// ParseFont parses a TrueType or OpenType font. data is copied.
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	dataCopy := bytes.Clone(data)
	face, err := font.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("shape: parse font: %w", err)
	}
	return &Font{data: dataCopy, font: face.Font}, nil
}

// Data returns the font file the Font was parsed from. It must not be modified.
func (f *Font) Data() []byte {
	return f.data
}

// Run is one directional run of shaped text.
type Run struct {
	// Text is the part of the input covered by the run.
	Text string

	// Start and End are the byte offsets of Text in the input.
	Start, End int

	// Direction is the resolved direction of the run.
	Direction Direction

	// TextRun holds the positioned glyphs and their clusters. The cluster
	// byte counts sum to len(Text), the glyph counts to len(Glyphs).
	cairo.TextRun

	// Advance is the horizontal pen advance of the run.
	Advance float64
}

// Shaper turns text into cairo glyph runs using HarfBuzz shaping.
//
// Shaper is safe for concurrent use. Parsed fonts are cached and shared;
// HarfbuzzShaper instances, which are not concurrent-safe, are pooled.
type Shaper struct {
	cfg        config
	shaperPool sync.Pool
	fonts      *cache.Cache[[sha256.Size]byte, *Font]
}

// New creates a Shaper.
func New(opts ...Option) *Shaper {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Shaper{
		cfg: cfg,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fonts: cache.New[[sha256.Size]byte, *Font](cfg.cacheLimit),
	}
}

// Font returns the parsed font for data, parsing it only the first time
// the same bytes are seen.
func (s *Shaper) Font(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	return s.fonts.GetOrCreate(sha256.Sum256(data), func() (*Font, error) {
		cairo.Logger().Debug("shape: parsing font", "bytes", len(data))
		return ParseFont(data)
	})
}

// Shape shapes text at size user units with the baseline origin at (x, y).
// Runs are returned in visual order, left to right, each starting where the
// previous one ended. Empty text yields no runs.
func (s *Shaper) Shape(f *Font, size, x, y float64, text string) ([]Run, error) {
	if f == nil {
		return nil, ErrNilFont
	}
	if text == "" {
		return nil, nil
	}

	// font.Face is not safe for concurrent use, so each call gets its own.
	face := font.NewFace(f.font)
	segs := segmentText(text, s.cfg.direction)
	runs := make([]Run, 0, len(segs))
	pen := x

	for _, seg := range segs {
		part := text[seg.start:seg.end]
		runes := []rune(part)
		dir := di.DirectionLTR
		if seg.dir == DirectionRTL {
			dir = di.DirectionRTL
		}

		input := shaping.Input{
			Text:      runes,
			RunStart:  0,
			RunEnd:    len(runes),
			Direction: dir,
			Face:      face,
			Size:      floatToFixed(size),
			Script:    detectScript(runes),
			Language:  s.cfg.language,
		}

		hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
		output := hb.Shape(input)
		s.shaperPool.Put(hb)

		run := Run{Text: part, Start: seg.start, End: seg.end, Direction: seg.dir}
		run.TextRun, run.Advance = convertGlyphs(output.Glyphs, part, seg.dir, pen, y)
		pen += run.Advance
		runs = append(runs, run)

		cairo.Logger().Debug("shape: shaped run",
			"start", seg.start, "end", seg.end, "dir", seg.dir.String(), "glyphs", len(run.Glyphs))
	}
	return runs, nil
}

// ClearCache removes all cached parsed fonts.
func (s *Shaper) ClearCache() {
	s.fonts.Clear()
}

// convertGlyphs positions shaped glyphs from the pen position (x, y) and
// derives the cluster mapping from their text indices. HarfBuzz emits
// right-to-left runs in visual order, which is cairo's backward cluster order.
func convertGlyphs(glyphs []shaping.Glyph, text string, dir Direction, x, y float64) (cairo.TextRun, float64) {
	var run cairo.TextRun
	if dir == DirectionRTL {
		run.Flags = cairo.ClusterBackward
	}
	if len(glyphs) == 0 {
		return run, 0
	}

	offsets := runeOffsets(text)
	runes := len(offsets) - 1
	counts := make(map[int]int)
	run.Glyphs = make([]cairo.Glyph, len(glyphs))
	pen := x

	for i, g := range glyphs {
		// Font offsets point up; cairo's y axis points down.
		run.Glyphs[i] = cairo.Glyph{
			Index: uint64(g.GlyphID),
			X:     pen + fixedToFloat(g.XOffset),
			Y:     y - fixedToFloat(g.YOffset),
		}
		pen += fixedToFloat(g.Advance)
		counts[min(max(g.TextIndex(), 0), runes)]++
	}

	starts := slices.Sorted(maps.Keys(counts))
	run.Clusters = make([]cairo.TextCluster, len(starts))
	for k, start := range starts {
		lo, hi := start, runes
		if k == 0 {
			lo = 0
		}
		if k+1 < len(starts) {
			hi = starts[k+1]
		}
		run.Clusters[k] = cairo.TextCluster{
			NumBytes:  offsets[hi] - offsets[lo],
			NumGlyphs: counts[start],
		}
	}
	return run, pen - x
}

// detectScript returns the script of the first non-space rune. Runs mixing
// scripts of the same direction are shaped with that script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

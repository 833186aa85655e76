// Package shape converts text into glyph runs that cairo can draw.
//
// cairo's own text API maps characters to glyphs one to one. Shaper runs
// HarfBuzz (via go-text/typesetting) instead, so ligatures, kerning and
// complex scripts come out right, and splits mixed-direction text into
// bidi runs. Each Run carries cairo glyphs together with the clusters
// mapping its text to those glyphs, ready for Context.ShowTextGlyphs:
//
//	f, err := shaper.Font(goregular.TTF)
//	runs, err := shaper.Shape(f, 24, 10, 40, "office")
//	for _, r := range runs {
//	    cr.ShowTextGlyphs(r.Text, r.TextRun)
//	}
//
// Glyph ids refer to the font file given to Font, so the cairo font face
// used for drawing must come from the same data (cairo.NewFontFaceFromData).
//
// Shaper is safe for concurrent use.
package shape

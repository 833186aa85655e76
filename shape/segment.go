package shape

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
)

// Direction is the writing direction of a paragraph or run.
type Direction int

const (
	// DirectionAuto takes the paragraph direction from its first strong character.
	DirectionAuto Direction = iota
	// DirectionLTR is left-to-right.
	DirectionLTR
	// DirectionRTL is right-to-left.
	DirectionRTL
)

func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "ltr"
	case DirectionRTL:
		return "rtl"
	default:
		return "auto"
	}
}

// segment is a byte range of the input with a single resolved direction.
type segment struct {
	start, end int
	dir        Direction
}

// segmentText splits text into bidi runs in visual order, left to right.
func segmentText(text string, base Direction) []segment {
	fallback := []segment{{start: 0, end: len(text), dir: DirectionLTR}}
	if base == DirectionRTL {
		fallback[0].dir = DirectionRTL
	}

	var opts []bidi.Option
	switch base {
	case DirectionLTR:
		opts = append(opts, bidi.DefaultDirection(bidi.LeftToRight))
	case DirectionRTL:
		opts = append(opts, bidi.DefaultDirection(bidi.RightToLeft))
	}

	var p bidi.Paragraph
	if _, err := p.SetString(text, opts...); err != nil {
		return fallback
	}
	ordering, err := p.Order()
	if err != nil {
		return fallback
	}

	offsets := runeOffsets(text)
	runes := len(offsets) - 1
	segs := make([]segment, 0, ordering.NumRuns())
	covered := 0
	// run.Pos() returns rune indices, end inclusive.
	for i := range ordering.NumRuns() {
		run := ordering.Run(i)
		start, end := run.Pos()
		if start < 0 || end < start || end >= runes {
			return fallback
		}
		dir := DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = DirectionRTL
		}
		segs = append(segs, segment{start: offsets[start], end: offsets[end+1], dir: dir})
		covered += offsets[end+1] - offsets[start]
	}
	if covered != len(text) {
		return fallback
	}
	return segs
}

// runeOffsets returns the byte offset of every rune of s, followed by len(s).
func runeOffsets(s string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}

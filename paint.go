package cairo

/*
#include "gocairo.h"
*/
import "C"

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt starts and stops the line exactly at the endpoints.
	LineCapButt = LineCap(C.CAIRO_LINE_CAP_BUTT)
	// LineCapRound uses a round ending centered on the endpoint.
	LineCapRound = LineCap(C.CAIRO_LINE_CAP_ROUND)
	// LineCapSquare uses a square ending centered on the endpoint.
	LineCapSquare = LineCap(C.CAIRO_LINE_CAP_SQUARE)
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join, subject to the miter limit.
	LineJoinMiter = LineJoin(C.CAIRO_LINE_JOIN_MITER)
	// LineJoinRound specifies a rounded join.
	LineJoinRound = LineJoin(C.CAIRO_LINE_JOIN_ROUND)
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel = LineJoin(C.CAIRO_LINE_JOIN_BEVEL)
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleWinding uses the non-zero winding rule.
	FillRuleWinding = FillRule(C.CAIRO_FILL_RULE_WINDING)
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd = FillRule(C.CAIRO_FILL_RULE_EVEN_ODD)
)

// Antialias selects the antialiasing mode used for drawing and text.
type Antialias int

const (
	AntialiasDefault  = Antialias(C.CAIRO_ANTIALIAS_DEFAULT)
	AntialiasNone     = Antialias(C.CAIRO_ANTIALIAS_NONE)
	AntialiasGray     = Antialias(C.CAIRO_ANTIALIAS_GRAY)
	AntialiasSubpixel = Antialias(C.CAIRO_ANTIALIAS_SUBPIXEL)
	AntialiasFast     = Antialias(C.CAIRO_ANTIALIAS_FAST)
	AntialiasGood     = Antialias(C.CAIRO_ANTIALIAS_GOOD)
	AntialiasBest     = Antialias(C.CAIRO_ANTIALIAS_BEST)
)

// Operator is a compositing operator.
type Operator int

const (
	OperatorClear         = Operator(C.CAIRO_OPERATOR_CLEAR)
	OperatorSource        = Operator(C.CAIRO_OPERATOR_SOURCE)
	OperatorOver          = Operator(C.CAIRO_OPERATOR_OVER)
	OperatorIn            = Operator(C.CAIRO_OPERATOR_IN)
	OperatorOut           = Operator(C.CAIRO_OPERATOR_OUT)
	OperatorAtop          = Operator(C.CAIRO_OPERATOR_ATOP)
	OperatorDest          = Operator(C.CAIRO_OPERATOR_DEST)
	OperatorDestOver      = Operator(C.CAIRO_OPERATOR_DEST_OVER)
	OperatorDestIn        = Operator(C.CAIRO_OPERATOR_DEST_IN)
	OperatorDestOut       = Operator(C.CAIRO_OPERATOR_DEST_OUT)
	OperatorDestAtop      = Operator(C.CAIRO_OPERATOR_DEST_ATOP)
	OperatorXor           = Operator(C.CAIRO_OPERATOR_XOR)
	OperatorAdd           = Operator(C.CAIRO_OPERATOR_ADD)
	OperatorSaturate      = Operator(C.CAIRO_OPERATOR_SATURATE)
	OperatorMultiply      = Operator(C.CAIRO_OPERATOR_MULTIPLY)
	OperatorScreen        = Operator(C.CAIRO_OPERATOR_SCREEN)
	OperatorOverlay       = Operator(C.CAIRO_OPERATOR_OVERLAY)
	OperatorDarken        = Operator(C.CAIRO_OPERATOR_DARKEN)
	OperatorLighten       = Operator(C.CAIRO_OPERATOR_LIGHTEN)
	OperatorColorDodge    = Operator(C.CAIRO_OPERATOR_COLOR_DODGE)
	OperatorColorBurn     = Operator(C.CAIRO_OPERATOR_COLOR_BURN)
	OperatorHardLight     = Operator(C.CAIRO_OPERATOR_HARD_LIGHT)
	OperatorSoftLight     = Operator(C.CAIRO_OPERATOR_SOFT_LIGHT)
	OperatorDifference    = Operator(C.CAIRO_OPERATOR_DIFFERENCE)
	OperatorExclusion     = Operator(C.CAIRO_OPERATOR_EXCLUSION)
	OperatorHSLHue        = Operator(C.CAIRO_OPERATOR_HSL_HUE)
	OperatorHSLSaturation = Operator(C.CAIRO_OPERATOR_HSL_SATURATION)
	OperatorHSLColor      = Operator(C.CAIRO_OPERATOR_HSL_COLOR)
	OperatorHSLLuminosity = Operator(C.CAIRO_OPERATOR_HSL_LUMINOSITY)
)

// Content describes the color and alpha content of a surface or group.
type Content int

const (
	ContentColor      = Content(C.CAIRO_CONTENT_COLOR)
	ContentAlpha      = Content(C.CAIRO_CONTENT_ALPHA)
	ContentColorAlpha = Content(C.CAIRO_CONTENT_COLOR_ALPHA)
)

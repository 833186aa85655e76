package cairo

/*
#include "gocairo.h"
*/
import "C"

// Format identifies the pixel layout of an image surface.
type Format int

const (
	FormatInvalid  = Format(C.CAIRO_FORMAT_INVALID)
	FormatARGB32   = Format(C.CAIRO_FORMAT_ARGB32)
	FormatRGB24    = Format(C.CAIRO_FORMAT_RGB24)
	FormatA8       = Format(C.CAIRO_FORMAT_A8)
	FormatA1       = Format(C.CAIRO_FORMAT_A1)
	FormatRGB16565 = Format(C.CAIRO_FORMAT_RGB16_565)
	FormatRGB30    = Format(C.CAIRO_FORMAT_RGB30)
)

// FormatStrideForWidth returns the row stride cairo requires for an image
// of the given format and width, or -1 if the combination is invalid.
func FormatStrideForWidth(format Format, width int) int {
	return int(C.cairo_format_stride_for_width(C.cairo_format_t(format), C.int(width)))
}

// Extend describes how a pattern is painted outside its natural area.
type Extend int

const (
	ExtendNone    = Extend(C.CAIRO_EXTEND_NONE)
	ExtendRepeat  = Extend(C.CAIRO_EXTEND_REPEAT)
	ExtendReflect = Extend(C.CAIRO_EXTEND_REFLECT)
	ExtendPad     = Extend(C.CAIRO_EXTEND_PAD)
)

// Filter selects the sampling filter used when reading pattern pixels.
type Filter int

const (
	FilterFast     = Filter(C.CAIRO_FILTER_FAST)
	FilterGood     = Filter(C.CAIRO_FILTER_GOOD)
	FilterBest     = Filter(C.CAIRO_FILTER_BEST)
	FilterNearest  = Filter(C.CAIRO_FILTER_NEAREST)
	FilterBilinear = Filter(C.CAIRO_FILTER_BILINEAR)
	FilterGaussian = Filter(C.CAIRO_FILTER_GAUSSIAN)
)

// PatternType is the concrete kind of a Pattern.
type PatternType int

const (
	PatternTypeSolid        = PatternType(C.CAIRO_PATTERN_TYPE_SOLID)
	PatternTypeSurface      = PatternType(C.CAIRO_PATTERN_TYPE_SURFACE)
	PatternTypeLinear       = PatternType(C.CAIRO_PATTERN_TYPE_LINEAR)
	PatternTypeRadial       = PatternType(C.CAIRO_PATTERN_TYPE_RADIAL)
	PatternTypeMesh         = PatternType(C.CAIRO_PATTERN_TYPE_MESH)
	PatternTypeRasterSource = PatternType(C.CAIRO_PATTERN_TYPE_RASTER_SOURCE)
)

// SurfaceType is the backend of a Surface.
type SurfaceType int

const (
	SurfaceTypeImage     = SurfaceType(C.CAIRO_SURFACE_TYPE_IMAGE)
	SurfaceTypePDF       = SurfaceType(C.CAIRO_SURFACE_TYPE_PDF)
	SurfaceTypePS        = SurfaceType(C.CAIRO_SURFACE_TYPE_PS)
	SurfaceTypeXlib      = SurfaceType(C.CAIRO_SURFACE_TYPE_XLIB)
	SurfaceTypeXCB       = SurfaceType(C.CAIRO_SURFACE_TYPE_XCB)
	SurfaceTypeQuartz    = SurfaceType(C.CAIRO_SURFACE_TYPE_QUARTZ)
	SurfaceTypeWin32     = SurfaceType(C.CAIRO_SURFACE_TYPE_WIN32)
	SurfaceTypeSVG       = SurfaceType(C.CAIRO_SURFACE_TYPE_SVG)
	SurfaceTypeRecording = SurfaceType(C.CAIRO_SURFACE_TYPE_RECORDING)
)

// FontSlant is the slant of a toy font face.
type FontSlant int

const (
	FontSlantNormal  = FontSlant(C.CAIRO_FONT_SLANT_NORMAL)
	FontSlantItalic  = FontSlant(C.CAIRO_FONT_SLANT_ITALIC)
	FontSlantOblique = FontSlant(C.CAIRO_FONT_SLANT_OBLIQUE)
)

// FontWeight is the weight of a toy font face.
type FontWeight int

const (
	FontWeightNormal = FontWeight(C.CAIRO_FONT_WEIGHT_NORMAL)
	FontWeightBold   = FontWeight(C.CAIRO_FONT_WEIGHT_BOLD)
)

// FontType is the backend of a FontFace or ScaledFont.
type FontType int

const (
	FontTypeToy    = FontType(C.CAIRO_FONT_TYPE_TOY)
	FontTypeFT     = FontType(C.CAIRO_FONT_TYPE_FT)
	FontTypeWin32  = FontType(C.CAIRO_FONT_TYPE_WIN32)
	FontTypeQuartz = FontType(C.CAIRO_FONT_TYPE_QUARTZ)
	FontTypeUser   = FontType(C.CAIRO_FONT_TYPE_USER)
)

// SubpixelOrder is the order of color elements within a device pixel.
type SubpixelOrder int

const (
	SubpixelOrderDefault = SubpixelOrder(C.CAIRO_SUBPIXEL_ORDER_DEFAULT)
	SubpixelOrderRGB     = SubpixelOrder(C.CAIRO_SUBPIXEL_ORDER_RGB)
	SubpixelOrderBGR     = SubpixelOrder(C.CAIRO_SUBPIXEL_ORDER_BGR)
	SubpixelOrderVRGB    = SubpixelOrder(C.CAIRO_SUBPIXEL_ORDER_VRGB)
	SubpixelOrderVBGR    = SubpixelOrder(C.CAIRO_SUBPIXEL_ORDER_VBGR)
)

// HintStyle is the amount of outline hinting applied to glyphs.
type HintStyle int

const (
	HintStyleDefault = HintStyle(C.CAIRO_HINT_STYLE_DEFAULT)
	HintStyleNone    = HintStyle(C.CAIRO_HINT_STYLE_NONE)
	HintStyleSlight  = HintStyle(C.CAIRO_HINT_STYLE_SLIGHT)
	HintStyleMedium  = HintStyle(C.CAIRO_HINT_STYLE_MEDIUM)
	HintStyleFull    = HintStyle(C.CAIRO_HINT_STYLE_FULL)
)

// HintMetrics controls whether font metrics are rounded to integers.
type HintMetrics int

const (
	HintMetricsDefault = HintMetrics(C.CAIRO_HINT_METRICS_DEFAULT)
	HintMetricsOff     = HintMetrics(C.CAIRO_HINT_METRICS_OFF)
	HintMetricsOn      = HintMetrics(C.CAIRO_HINT_METRICS_ON)
)

// PDFVersion is a PDF specification version a PDF surface can be limited to.
type PDFVersion int

const (
	PDFVersion14 = PDFVersion(C.CAIRO_PDF_VERSION_1_4)
	PDFVersion15 = PDFVersion(C.CAIRO_PDF_VERSION_1_5)
)

// SVGVersion is an SVG specification version an SVG surface can be limited to.
type SVGVersion int

const (
	SVGVersion11 = SVGVersion(C.CAIRO_SVG_VERSION_1_1)
	SVGVersion12 = SVGVersion(C.CAIRO_SVG_VERSION_1_2)
)

// PSLevel is a PostScript language level a PS surface can be limited to.
type PSLevel int

const (
	PSLevel2 = PSLevel(C.CAIRO_PS_LEVEL_2)
	PSLevel3 = PSLevel(C.CAIRO_PS_LEVEL_3)
)

package cairo

import "golang.org/x/image/draw"

// ImageOption configures NewImageSurfaceFromImage.
// Use functional options to customize the conversion.
//
// Example:
//
//	// Copy the image at its own size
//	s, err := cairo.NewImageSurfaceFromImage(img)
//
//	// Downscale to a thumbnail with a smoother filter
//	s, err := cairo.NewImageSurfaceFromImage(img,
//	    cairo.WithSize(128, 128),
//	    cairo.WithInterpolator(draw.CatmullRom))
type ImageOption func(*imageOptions)

// imageOptions holds optional configuration for image conversion.
type imageOptions struct {
	width, height int
	interpolator  draw.Interpolator
}

// defaultImageOptions returns the default conversion options.
func defaultImageOptions() imageOptions {
	return imageOptions{
		interpolator: draw.BiLinear,
	}
}

// WithSize scales the source image to width x height pixels.
// Non-positive dimensions keep the source size.
func WithSize(width, height int) ImageOption {
	return func(o *imageOptions) {
		o.width = width
		o.height = height
	}
}

// WithInterpolator selects the scaler used when WithSize changes the size.
// The default is draw.BiLinear.
func WithInterpolator(i draw.Interpolator) ImageOption {
	return func(o *imageOptions) {
		if i != nil {
			o.interpolator = i
		}
	}
}

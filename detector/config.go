package detector

import "github.com/pkg/errors"

// PreprocessOptions are the pixel-level toggles applied to a copy of the
// input image before resizing. The zero value disables everything.
type PreprocessOptions struct {
	// Invert flips every channel value, for light-on-dark pages.
	Invert bool
	// GammaCorrect applies automatic gamma correction to low-contrast input.
	GammaCorrect bool
	// Rotate runs detection on the input rotated 90 degrees clockwise and
	// maps results back, for vertically oriented text.
	Rotate bool
	// AutoRotate reruns detection rotated when the first pass finds mostly
	// tall, narrow regions. Ignored when Rotate is already set.
	AutoRotate bool
	// Grayscale collapses the image to luminance before normalization.
	Grayscale bool
	// Denoise applies a light Gaussian blur to suppress sensor noise.
	Denoise bool
}

// DecodeOptions control how the probability map is decoded into regions.
type DecodeOptions struct {
	// MaxSideLen bounds the longer edge of the resized working image.
	MaxSideLen int
	// UnclipRatio expands each detected rectangle outward in proportion to
	// its area over its perimeter. Zero keeps the raw contour rectangle.
	UnclipRatio float64
	// BoxScoreThreshold drops regions whose mean probability is lower.
	BoxScoreThreshold float64
	// MaskThreshold binarizes the probability map.
	MaskThreshold float64
	// MinBoxSize drops rectangles whose shorter side is below this many
	// pixels at working resolution.
	MinBoxSize int
	// MaxCandidates caps the number of connected components decoded.
	MaxCandidates int
	// MinRegionArea drops regions smaller than this in original-image
	// square pixels.
	MinRegionArea float64
}

// DefaultDecodeOptions returns the stock decode parameters.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{
		MaxSideLen:        2048,
		UnclipRatio:       2.3,
		BoxScoreThreshold: 0.7,
		MaskThreshold:     0.5,
		MinBoxSize:        3,
		MaxCandidates:     1000,
		MinRegionArea:     16,
	}
}

// Validate checks every decode parameter against its documented range.
func (o DecodeOptions) Validate() error {
	if o.MaxSideLen <= 0 {
		return errors.Errorf("max side length must be positive, got %d", o.MaxSideLen)
	}
	if o.UnclipRatio < 0 {
		return errors.Errorf("unclip ratio cannot be negative, got %g", o.UnclipRatio)
	}
	if o.BoxScoreThreshold < 0 || o.BoxScoreThreshold > 1 {
		return errors.Errorf("box score threshold must be in [0,1], got %g", o.BoxScoreThreshold)
	}
	if o.MaskThreshold < 0 || o.MaskThreshold > 1 {
		return errors.Errorf("mask threshold must be in [0,1], got %g", o.MaskThreshold)
	}
	if o.MinBoxSize < 0 {
		return errors.Errorf("min box size cannot be negative, got %d", o.MinBoxSize)
	}
	if o.MaxCandidates <= 0 {
		return errors.Errorf("max candidates must be positive, got %d", o.MaxCandidates)
	}
	if o.MinRegionArea < 0 {
		return errors.Errorf("min region area cannot be negative, got %g", o.MinRegionArea)
	}
	return nil
}

package images

import (
	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// Pixel-level operations applied ahead of resizing. Each returns a fresh
// buffer; the input is never mutated.

// Invert inverts the image colors.
func Invert(src *ImageBuffer) *ImageBuffer {
	out, _ := FromImage(imaging.Invert(src.ToImage()))
	return out
}

// GammaCorrect applies gamma correction with the given gamma. Values above
// 1.0 lighten the image.
func GammaCorrect(src *ImageBuffer, gamma float64) *ImageBuffer {
	out, _ := FromImage(imaging.AdjustGamma(src.ToImage(), gamma))
	return out
}

// Grayscale converts the image to grayscale while keeping three channels,
// matching the backend's RGB input contract.
func Grayscale(src *ImageBuffer) *ImageBuffer {
	out, _ := FromImage(imaging.Grayscale(src.ToImage()))
	return out
}

// Denoise applies a Gaussian blur with the given radius to suppress
// high-frequency noise ahead of detection.
func Denoise(src *ImageBuffer, radius float64) *ImageBuffer {
	if radius <= 0 {
		return src.Clone()
	}
	out, _ := FromImage(blur.Gaussian(src.ToImage(), radius))
	return out
}

// RotateCW rotates the image 90 degrees clockwise. A pixel at (x, y) in the
// source lands at (h-1-y, x) in the result.
func RotateCW(src *ImageBuffer) *ImageBuffer {
	out, _ := FromImage(imaging.Rotate270(src.ToImage()))
	return out
}

// RotateCCW rotates the image 90 degrees counter-clockwise, undoing RotateCW.
func RotateCCW(src *ImageBuffer) *ImageBuffer {
	out, _ := FromImage(imaging.Rotate90(src.ToImage()))
	return out
}

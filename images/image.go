// Package images provides the decoded pixel buffer consumed by the detection
// pipeline, together with the geometric transforms recorded during
// preprocessing so detection output can be mapped back to source coordinates.
package images

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// Channels is the channel count of every ImageBuffer. Buffers are always
// stored as interleaved 8-bit RGB regardless of the source format.
const Channels = 3

// ImageBuffer owns decoded pixel data with known geometry. It is immutable
// after construction; every operation in this package returns a new buffer.
type ImageBuffer struct {
	width  int
	height int
	pixels []uint8 // interleaved RGB, length == width*height*Channels
}

// NewImageBuffer wraps a raw interleaved RGB pixel array.
//
// Arguments:
//   - width: Image width in pixels, must be > 0.
//   - height: Image height in pixels, must be > 0.
//   - pixels: Interleaved RGB bytes of length width*height*3.
//
// Returns:
//   - *ImageBuffer: The constructed buffer.
//   - error: ErrDecode if the geometry and storage length disagree.
func NewImageBuffer(width, height int, pixels []uint8) (*ImageBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrDecode, "invalid dimensions %dx%d", width, height)
	}
	if len(pixels) != width*height*Channels {
		return nil, errors.Wrapf(ErrDecode,
			"pixel storage length %d does not match %dx%dx%d",
			len(pixels), width, height, Channels)
	}
	return &ImageBuffer{width: width, height: height, pixels: pixels}, nil
}

// FromImage converts a decoded image.Image into an ImageBuffer.
func FromImage(img image.Image) (*ImageBuffer, error) {
	if img == nil {
		return nil, errors.Wrap(ErrDecode, "nil image")
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrDecode, "empty image %dx%d", w, h)
	}
	pixels := make([]uint8, w*h*Channels)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels[i] = uint8(r >> 8)
			pixels[i+1] = uint8(g >> 8)
			pixels[i+2] = uint8(b >> 8)
			i += Channels
		}
	}
	return &ImageBuffer{width: w, height: h, pixels: pixels}, nil
}

// Width returns the image width in pixels.
func (b *ImageBuffer) Width() int { return b.width }

// Height returns the image height in pixels.
func (b *ImageBuffer) Height() int { return b.height }

// Pixels exposes the interleaved RGB storage. Callers must treat the slice
// as read-only.
func (b *ImageBuffer) Pixels() []uint8 { return b.pixels }

// At returns the RGB triple at (x, y). Coordinates outside the buffer
// return black.
func (b *ImageBuffer) At(x, y int) (r, g, bl uint8) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0, 0, 0
	}
	i := (y*b.width + x) * Channels
	return b.pixels[i], b.pixels[i+1], b.pixels[i+2]
}

// Clone returns a deep copy of the buffer.
func (b *ImageBuffer) Clone() *ImageBuffer {
	pixels := make([]uint8, len(b.pixels))
	copy(pixels, b.pixels)
	return &ImageBuffer{width: b.width, height: b.height, pixels: pixels}
}

// ToImage converts the buffer to an NRGBA image for use with the Go image
// processing ecosystem.
func (b *ImageBuffer) ToImage() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	i := 0
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			out.SetNRGBA(x, y, color.NRGBA{
				R: b.pixels[i],
				G: b.pixels[i+1],
				B: b.pixels[i+2],
				A: 255,
			})
			i += Channels
		}
	}
	return out
}

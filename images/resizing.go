package images

import (
	"image"
	"image/draw"
	"math"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Transform records the scale and padding applied while preparing an image
// for inference. It is required to map geometry produced at working
// resolution back into original image coordinates.
type Transform struct {
	// Scale is the uniform factor applied to both axes.
	Scale float64
	// PadX and PadY are the right/bottom padding in working pixels.
	PadX int
	PadY int
	// WorkingWidth and WorkingHeight are the padded tensor dimensions.
	WorkingWidth  int
	WorkingHeight int
	// OriginalWidth and OriginalHeight are the pre-resize dimensions.
	OriginalWidth  int
	OriginalHeight int
}

// ToOriginal maps a point from working resolution back into original image
// coordinates. Padding sits on the right/bottom edges, so the mapping is a
// pure inverse scale; results are clamped into [0, width-1] x [0, height-1].
func (t Transform) ToOriginal(x, y float64) (float64, float64) {
	ox := x / t.Scale
	oy := y / t.Scale
	ox = math.Min(math.Max(ox, 0), float64(t.OriginalWidth-1))
	oy = math.Min(math.Max(oy, 0), float64(t.OriginalHeight-1))
	return ox, oy
}

// ContentWidth returns the working width without right padding.
func (t Transform) ContentWidth() int { return t.WorkingWidth - t.PadX }

// ContentHeight returns the working height without bottom padding.
func (t Transform) ContentHeight() int { return t.WorkingHeight - t.PadY }

// ResizeAspectRatio resizes an image so its longer edge equals maxSide,
// preserving aspect ratio, then pads the right/bottom edges with black so
// both dimensions are multiples of padMultiple. Images smaller than maxSide
// are scaled up rather than cropped.
//
// Arguments:
//   - src: The image to resize.
//   - maxSide: Target length of the longer edge, must be > 0.
//   - padMultiple: Dimension alignment required by the backend, must be > 0.
//
// Returns:
//   - *ImageBuffer: The resized and padded buffer.
//   - Transform: The recorded scale and padding.
//   - error: An error if the arguments are invalid.
func ResizeAspectRatio(src *ImageBuffer, maxSide, padMultiple int) (*ImageBuffer, Transform, error) {
	if maxSide <= 0 {
		return nil, Transform{}, errors.Errorf("maxSide must be positive, got %d", maxSide)
	}
	if padMultiple <= 0 {
		return nil, Transform{}, errors.Errorf("padMultiple must be positive, got %d", padMultiple)
	}

	longest := src.width
	if src.height > longest {
		longest = src.height
	}
	scale := float64(maxSide) / float64(longest)
	targetW := int(math.Round(float64(src.width) * scale))
	targetH := int(math.Round(float64(src.height) * scale))
	if targetW < 1 {
		targetW = 1
	}
	if targetH < 1 {
		targetH = 1
	}

	resized := resize.Resize(uint(targetW), uint(targetH), src.ToImage(), resize.Bilinear)

	padW := 0
	padH := 0
	if targetW%padMultiple != 0 {
		padW = padMultiple - targetW%padMultiple
	}
	if targetH%padMultiple != 0 {
		padH = padMultiple - targetH%padMultiple
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, targetW+padW, targetH+padH))
	draw.Draw(canvas, image.Rect(0, 0, targetW, targetH), resized, image.Point{}, draw.Src)

	out, err := FromImage(canvas)
	if err != nil {
		return nil, Transform{}, err
	}

	return out, Transform{
		Scale:          scale,
		PadX:           padW,
		PadY:           padH,
		WorkingWidth:   targetW + padW,
		WorkingHeight:  targetH + padH,
		OriginalWidth:  src.width,
		OriginalHeight: src.height,
	}, nil
}

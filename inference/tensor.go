package inference

import (
	"github.com/nvr-ai/go-textdetect/images"
	"gorgonia.org/tensor"
)

// NCHWTensor converts an ImageBuffer into a dense float32 tensor of shape
// [1, 3, H, W], normalizing each value as (v - mean) / scale. The buffer's
// interleaved RGB storage is split into channel planes in RGB order.
//
// Arguments:
//   - img: The preprocessed, already resized and padded image.
//   - mean: The value subtracted from every pixel.
//   - scale: The divisor applied after subtraction.
//
// Returns:
//   - *tensor.Dense: The backing tensor; the image is not retained.
func NCHWTensor(img *images.ImageBuffer, mean, scale float32) *tensor.Dense {
	w, h := img.Width(), img.Height()
	plane := w * h
	data := make([]float32, 3*plane)
	pixels := img.Pixels()

	i := 0
	for p := 0; p < plane; p++ {
		data[p] = (float32(pixels[i]) - mean) / scale
		data[plane+p] = (float32(pixels[i+1]) - mean) / scale
		data[2*plane+p] = (float32(pixels[i+2]) - mean) / scale
		i += images.Channels
	}

	return tensor.New(
		tensor.WithShape(1, 3, h, w),
		tensor.WithBacking(data),
	)
}

// PlaneDims extracts the spatial height and width from a score tensor of
// shape [N, C, H, W] or [H, W].
func PlaneDims(t *tensor.Dense) (height, width int, ok bool) {
	shape := t.Shape()
	if len(shape) < 2 {
		return 0, 0, false
	}
	return shape[len(shape)-2], shape[len(shape)-1], true
}

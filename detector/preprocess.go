package detector

import (
	"math"

	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-textdetect/images"
	"github.com/nvr-ai/go-textdetect/inference"
)

// denoiseRadius is the Gaussian blur radius used by the Denoise toggle.
const denoiseRadius = 1.5

// preprocess applies the pixel toggles and the resize pipeline to a copy of
// the input, producing the normalized NCHW tensor the backend consumes. The
// rotate argument is the effective rotation for this pass, which may come
// from the Rotate toggle or from an auto-rotate rerun.
func preprocess(
	img *images.ImageBuffer,
	opts PreprocessOptions,
	rotate bool,
	decode DecodeOptions,
	model inference.ModelConfig,
) (*tensor.Dense, images.Transform, error) {
	work := img
	if opts.Invert {
		work = images.Invert(work)
	}
	if opts.GammaCorrect {
		work = images.GammaCorrect(work, autoGamma(work))
	}
	if opts.Grayscale {
		work = images.Grayscale(work)
	}
	if opts.Denoise {
		work = images.Denoise(work, denoiseRadius)
	}
	if rotate {
		work = images.RotateCW(work)
	}

	resized, transform, err := images.ResizeAspectRatio(work, decode.MaxSideLen, model.PadMultiple)
	if err != nil {
		return nil, images.Transform{}, err
	}
	return inference.NCHWTensor(resized, model.Mean, model.Scale), transform, nil
}

// autoGamma picks a gamma that pulls the image's mean luminance toward
// middle gray. Well-exposed input yields a gamma near 1.
func autoGamma(img *images.ImageBuffer) float64 {
	pixels := img.Pixels()
	if len(pixels) == 0 {
		return 1
	}
	var sum float64
	for i := 0; i < len(pixels); i += images.Channels {
		sum += 0.299*float64(pixels[i]) + 0.587*float64(pixels[i+1]) + 0.114*float64(pixels[i+2])
	}
	mean := sum / float64(len(pixels)/images.Channels) / 255
	if mean <= 0 || mean >= 1 {
		return 1
	}
	gamma := math.Log(mean) / math.Log(0.5)
	return math.Max(0.5, math.Min(gamma, 3))
}

package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-textdetect/images"
	"github.com/nvr-ai/go-textdetect/inference"
)

func TestTraceComponents(t *testing.T) {
	// Two diagonal pixels are not 4-connected, so three blobs total.
	plane := make([]float32, 8*8)
	fillRect(plane, 8, 0, 0, 2, 2, 0.9)
	plane[4*8+4] = 0.8
	plane[5*8+5] = 0.8

	components := traceComponents(plane, 8, 8, 0.5, 1000)
	require.Len(t, components, 3)
	assert.Len(t, components[0].points, 9)
	assert.InDelta(t, 0.9*9, components[0].scoreSum, 1e-5)
}

func TestTraceComponents_MaxCandidates(t *testing.T) {
	// Isolated pixels on a checkerboard-ish pattern, one component each.
	plane := make([]float32, 8*8)
	for y := 0; y < 8; y += 2 {
		for x := 0; x < 8; x += 2 {
			plane[y*8+x] = 1.0
		}
	}
	assert.Len(t, traceComponents(plane, 8, 8, 0.5, 1000), 16)
	assert.Len(t, traceComponents(plane, 8, 8, 0.5, 5), 5)
}

func TestDecodeRegions_MinBoxSizeFilter(t *testing.T) {
	// A 2-pixel-wide stripe is below the default minimum box size.
	plane := make([]float32, 32*32)
	fillRect(plane, 32, 10, 10, 11, 25, 1.0)

	transform := images.Transform{
		Scale: 1, WorkingWidth: 32, WorkingHeight: 32,
		OriginalWidth: 32, OriginalHeight: 32,
	}
	opts := DefaultDecodeOptions()
	opts.UnclipRatio = 0
	opts.BoxScoreThreshold = 0.1

	score := tensor.New(tensor.WithShape(1, 1, 32, 32), tensor.WithBacking(plane))
	regions, err := decodeRegions(score, opts, transform)
	require.NoError(t, err)
	assert.Empty(t, regions, "short side below MinBoxSize must be dropped")
}

func TestDecodeRegions_BadTensor(t *testing.T) {
	opts := DefaultDecodeOptions()
	transform := images.Transform{Scale: 1, OriginalWidth: 4, OriginalHeight: 4}

	scalar := tensor.New(tensor.WithShape(3), tensor.WithBacking([]float32{1, 2, 3}))
	_, err := decodeRegions(scalar, opts, transform)
	assert.Error(t, err)
}

func TestExtractMask_CropsPaddingAndFallsBack(t *testing.T) {
	plane := make([]float32, 4*4)
	for i := range plane {
		plane[i] = float32(i)
	}
	score := tensor.New(tensor.WithShape(1, 1, 4, 4), tensor.WithBacking(plane))

	transform := images.Transform{
		Scale:         1,
		PadX:          1,
		PadY:          2,
		WorkingWidth:  4,
		WorkingHeight: 4,
	}

	// No dedicated mask output: the score map stands in.
	mask, err := extractMask(&inference.Outputs{Score: score}, transform)
	require.NoError(t, err)
	assert.Equal(t, 3, mask.Width)
	assert.Equal(t, 2, mask.Height)
	assert.Equal(t, []float32{0, 1, 2, 4, 5, 6}, mask.Data)

	// A dedicated mask output takes precedence over the score map.
	maskPlane := []float32{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9}
	maskTensor := tensor.New(tensor.WithShape(1, 1, 4, 4), tensor.WithBacking(maskPlane))
	mask, err = extractMask(&inference.Outputs{Score: score, Mask: maskTensor}, transform)
	require.NoError(t, err)
	assert.Equal(t, []float32{9, 9, 9, 9, 9, 9}, mask.Data)
}

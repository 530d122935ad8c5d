package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidBuffer(t *testing.T, width, height int, value uint8) *ImageBuffer {
	t.Helper()
	pixels := make([]uint8, width*height*Channels)
	for i := range pixels {
		pixels[i] = value
	}
	buf, err := NewImageBuffer(width, height, pixels)
	require.NoError(t, err)
	return buf
}

func TestResizeAspectRatio(t *testing.T) {
	testCases := []struct {
		name       string
		srcW, srcH int
		maxSide    int
		wantW      int
		wantH      int
		wantPadX   int
		wantPadY   int
	}{
		{name: "landscape no padding", srcW: 100, srcH: 50, maxSide: 128, wantW: 128, wantH: 64},
		{name: "portrait no padding", srcW: 50, srcH: 100, maxSide: 128, wantW: 64, wantH: 128},
		{name: "height padded to multiple", srcW: 333, srcH: 77, maxSide: 128, wantW: 128, wantH: 32, wantPadY: 2},
		{name: "small image upscaled", srcW: 10, srcH: 10, maxSide: 64, wantW: 64, wantH: 64},
		{name: "square already aligned", srcW: 256, srcH: 256, maxSide: 256, wantW: 256, wantH: 256},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := solidBuffer(t, tc.srcW, tc.srcH, 200)
			out, transform, err := ResizeAspectRatio(src, tc.maxSide, 32)
			require.NoError(t, err)

			assert.Equal(t, tc.wantW, out.Width())
			assert.Equal(t, tc.wantH, out.Height())
			assert.Equal(t, tc.wantW, transform.WorkingWidth)
			assert.Equal(t, tc.wantH, transform.WorkingHeight)
			assert.Equal(t, tc.wantPadX, transform.PadX)
			assert.Equal(t, tc.wantPadY, transform.PadY)
			assert.Equal(t, tc.srcW, transform.OriginalWidth)
			assert.Equal(t, tc.srcH, transform.OriginalHeight)
			assert.Equal(t, tc.wantW-tc.wantPadX, transform.ContentWidth())
			assert.Equal(t, tc.wantH-tc.wantPadY, transform.ContentHeight())
		})
	}
}

func TestResizeAspectRatio_PadsWithBlack(t *testing.T) {
	src := solidBuffer(t, 333, 77, 255)
	out, transform, err := ResizeAspectRatio(src, 128, 32)
	require.NoError(t, err)
	require.Equal(t, 2, transform.PadY)

	// Content stays bright, the padded bottom rows are black.
	r, g, b := out.At(64, 10)
	assert.Greater(t, int(r)+int(g)+int(b), 700)
	r, g, b = out.At(64, out.Height()-1)
	assert.Zero(t, r+g+b)
}

func TestResizeAspectRatio_InvalidArguments(t *testing.T) {
	src := solidBuffer(t, 10, 10, 0)

	_, _, err := ResizeAspectRatio(src, 0, 32)
	assert.Error(t, err)
	_, _, err = ResizeAspectRatio(src, 128, 0)
	assert.Error(t, err)
}

func TestTransform_ToOriginal(t *testing.T) {
	transform := Transform{
		Scale:          1.28,
		WorkingWidth:   128,
		WorkingHeight:  64,
		OriginalWidth:  100,
		OriginalHeight: 50,
	}

	x, y := transform.ToOriginal(64, 32)
	assert.InDelta(t, 50, x, 1e-9)
	assert.InDelta(t, 25, y, 1e-9)

	// Points in the padded margin clamp to the original extent.
	x, y = transform.ToOriginal(200, 100)
	assert.Equal(t, 99.0, x)
	assert.Equal(t, 49.0, y)

	x, y = transform.ToOriginal(-5, -5)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImageBuffer(t *testing.T) {
	testCases := []struct {
		name   string
		width  int
		height int
		pixels []uint8
		valid  bool
	}{
		{name: "valid 2x2", width: 2, height: 2, pixels: make([]uint8, 12), valid: true},
		{name: "zero width", width: 0, height: 2, pixels: nil, valid: false},
		{name: "negative height", width: 2, height: -1, pixels: nil, valid: false},
		{name: "short storage", width: 2, height: 2, pixels: make([]uint8, 11), valid: false},
		{name: "long storage", width: 2, height: 2, pixels: make([]uint8, 13), valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf, err := NewImageBuffer(tc.width, tc.height, tc.pixels)
			if tc.valid {
				require.NoError(t, err)
				assert.Equal(t, tc.width, buf.Width())
				assert.Equal(t, tc.height, buf.Height())
			} else {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrDecode))
			}
		})
	}
}

func TestImageBuffer_RoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 128, A: 255})
	src.SetNRGBA(2, 1, color.NRGBA{B: 7, A: 255})

	buf, err := FromImage(src)
	require.NoError(t, err)

	r, g, b := buf.At(0, 0)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})
	r, g, b = buf.At(1, 0)
	assert.Equal(t, [3]uint8{0, 128, 0}, [3]uint8{r, g, b})
	r, g, b = buf.At(2, 1)
	assert.Equal(t, [3]uint8{0, 0, 7}, [3]uint8{r, g, b})

	back, err := FromImage(buf.ToImage())
	require.NoError(t, err)
	assert.Equal(t, buf.Pixels(), back.Pixels())
}

func TestImageBuffer_AtOutOfBounds(t *testing.T) {
	buf, err := NewImageBuffer(1, 1, []uint8{9, 9, 9})
	require.NoError(t, err)

	r, g, b := buf.At(-1, 0)
	assert.Zero(t, r+g+b)
	r, g, b = buf.At(0, 1)
	assert.Zero(t, r+g+b)
}

func TestImageBuffer_CloneIsIndependent(t *testing.T) {
	buf, err := NewImageBuffer(1, 1, []uint8{1, 2, 3})
	require.NoError(t, err)

	clone := buf.Clone()
	clone.Pixels()[0] = 42
	assert.Equal(t, uint8(1), buf.Pixels()[0])
}

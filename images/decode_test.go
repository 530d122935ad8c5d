package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{B: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFromBytes(t *testing.T) {
	buf, err := FromBytes(encodePNG(t))
	require.NoError(t, err)
	assert.Equal(t, 2, buf.Width())
	assert.Equal(t, 2, buf.Height())

	r, _, _ := buf.At(0, 0)
	assert.Equal(t, uint8(255), r)
	_, _, b := buf.At(1, 1)
	assert.Equal(t, uint8(255), b)
}

func TestFromBytes_Invalid(t *testing.T) {
	_, err := FromBytes(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))

	_, err = FromBytes([]byte("not an image"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t), 0o644))

	buf, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, buf.Width())

	_, err = FromFile(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
}

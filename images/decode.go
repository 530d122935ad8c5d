package images

import (
	"bytes"
	"image"
	"os"

	// Codec registration for image.Decode. PNG and JPEG come from the
	// standard library; WebP and BMP from golang.org/x/image.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/pkg/errors"
)

// ErrDecode reports a corrupt or unsupported input image.
var ErrDecode = errors.New("image decode failed")

// FromFile reads and decodes an image file into an ImageBuffer.
//
// Arguments:
//   - path: Path to a PNG, JPEG, WebP, or BMP file.
//
// Returns:
//   - *ImageBuffer: The decoded buffer.
//   - error: ErrDecode if the file cannot be read or decoded.
func FromFile(path string) (*ImageBuffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "read %s: %v", path, err)
	}
	return FromBytes(data)
}

// FromBytes decodes raw encoded image bytes into an ImageBuffer.
func FromBytes(data []byte) (*ImageBuffer, error) {
	if len(data) == 0 {
		return nil, errors.Wrap(ErrDecode, "empty image data")
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "%v", err)
	}
	return FromImage(img)
}

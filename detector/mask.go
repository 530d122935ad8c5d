package detector

// Mask is a 2D probability field, one float32 per pixel in row-major
// order. It is aligned to the resized working image, not the original.
type Mask struct {
	Width  int
	Height int
	Data   []float32
}

// NewMask allocates a zeroed mask.
func NewMask(width, height int) *Mask {
	return &Mask{Width: width, Height: height, Data: make([]float32, width*height)}
}

// At returns the probability at (x, y). Out-of-range coordinates return 0.
func (m *Mask) At(x, y int) float32 {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0
	}
	return m.Data[y*m.Width+x]
}

// crop returns the top-left width x height window of the mask. Used to
// strip alignment padding after inference.
func (m *Mask) crop(width, height int) *Mask {
	if width >= m.Width && height >= m.Height {
		return m
	}
	if width > m.Width {
		width = m.Width
	}
	if height > m.Height {
		height = m.Height
	}
	out := NewMask(width, height)
	for y := 0; y < height; y++ {
		copy(out.Data[y*width:(y+1)*width], m.Data[y*m.Width:y*m.Width+width])
	}
	return out
}

// rotateCCW rotates the mask a quarter turn counter-clockwise. It undoes
// the clockwise rotation applied to the input image during preprocessing,
// so the mask lines up with the unrotated working image.
func (m *Mask) rotateCCW() *Mask {
	out := NewMask(m.Height, m.Width)
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			out.Data[y*out.Width+x] = m.At(out.Height-1-y, x)
		}
	}
	return out
}

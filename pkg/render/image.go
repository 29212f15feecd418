// Package render drives the parallel scanline dispatcher: it fires camera
// rays through the image plane, integrates them with stratified sampling,
// and assembles the gamma-encoded output buffer.
package render

// Image is a row-major RGB8 buffer, top row first, with no alpha channel.
type Image struct {
	Width, Height int
	Pixels        []byte // len == 3*Width*Height
}

// NewImage allocates a zeroed buffer of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]byte, 3*width*height),
	}
}

// SetRow writes a span of width RGB triplets to image row j (0 = top).
func (img *Image) SetRow(j int, row []byte) {
	copy(img.Pixels[j*img.Width*3:(j+1)*img.Width*3], row)
}

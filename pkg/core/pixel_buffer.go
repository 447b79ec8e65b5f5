package core

// PixelBuffer is a row-major width x height grid of float colors.
// Row 0 is the top of the image.
type PixelBuffer struct {
	Width  int
	Height int
	Pixels []Color
}

// NewPixelBuffer allocates a black buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// Index returns the flattened index of pixel (x, y)
func (b *PixelBuffer) Index(x, y int) int {
	return y*b.Width + x
}

// At returns the color at (x, y)
func (b *PixelBuffer) At(x, y int) Color {
	return b.Pixels[b.Index(x, y)]
}

// Set stores the color at (x, y)
func (b *PixelBuffer) Set(x, y int, c Color) {
	b.Pixels[b.Index(x, y)] = c
}

// Fill sets every pixel to c
func (b *PixelBuffer) Fill(c Color) {
	for i := range b.Pixels {
		b.Pixels[i] = c
	}
}

package loaders

import "github.com/df07/go-pathtracer/pkg/core"

// FlipVertical mirrors buf top to bottom in place
func FlipVertical(buf *core.PixelBuffer) {
	for y := 0; y < buf.Height/2; y++ {
		for x := 0; x < buf.Width; x++ {
			a, b := buf.Index(x, y), buf.Index(x, buf.Height-1-y)
			buf.Pixels[a], buf.Pixels[b] = buf.Pixels[b], buf.Pixels[a]
		}
	}
}

// FlipHorizontal mirrors buf left to right in place
func FlipHorizontal(buf *core.PixelBuffer) {
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width/2; x++ {
			a, b := buf.Index(x, y), buf.Index(buf.Width-1-x, y)
			buf.Pixels[a], buf.Pixels[b] = buf.Pixels[b], buf.Pixels[a]
		}
	}
}

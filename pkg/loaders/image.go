package loaders

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultJPEGQuality is used when saving .jpg/.jpeg files
const DefaultJPEGQuality = 95

// ImageData is a decoded image with the channel count found in the file
type ImageData struct {
	*core.PixelBuffer
	Channels int            // 1 gray, 3 RGB, 4 RGBA
	Format   imaging.Format // Format inferred from the file name
}

// LoadImage decodes an image file (format sniffed from its header) into float colors
func LoadImage(filename string) (*ImageData, error) {
	img, err := imaging.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", filename, err)
	}

	// The header decides the decoder; the extension is informational only
	format, err := imaging.FormatFromFilename(filename)
	if err != nil {
		format = -1
	}

	return &ImageData{
		PixelBuffer: FromImage(img),
		Channels:    channelCount(img),
		Format:      format,
	}, nil
}

// SaveImage encodes buf to filename, choosing the format from the extension
// (.png, .jpg/.jpeg, .gif, .bmp, .tif/.tiff)
func SaveImage(buf *core.PixelBuffer, filename string) error {
	if err := imaging.Save(ToNRGBA(buf), filename, imaging.JPEGQuality(DefaultJPEGQuality)); err != nil {
		return fmt.Errorf("failed to save image %s: %w", filename, err)
	}
	return nil
}

// ResizeImage scales buf to width x height with Lanczos resampling.
// A zero dimension preserves the aspect ratio.
func ResizeImage(buf *core.PixelBuffer, width, height int) *core.PixelBuffer {
	resized := resize.Resize(uint(width), uint(height), ToNRGBA(buf), resize.Lanczos3)
	return FromImage(resized)
}

// ToNRGBA quantizes buf to 8-bit channels
func ToNRGBA(buf *core.PixelBuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := core.ToRGBA(buf.At(x, y))
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}

// FromImage widens any image to float colors. Alpha is dropped.
func FromImage(img image.Image) *core.PixelBuffer {
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()
	buf := core.NewPixelBuffer(bounds.Dx(), bounds.Dy())

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			i := nrgba.PixOffset(x, y)
			buf.Set(x, y, core.ColorFromRGBA8(nrgba.Pix[i+0], nrgba.Pix[i+1], nrgba.Pix[i+2]))
		}
	}
	return buf
}

func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	}
	if opaque, ok := img.(interface{ Opaque() bool }); ok && opaque.Opaque() {
		return 3
	}
	return 4
}

package loaders

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/df07/go-pathtracer/pkg/core"
)

func testBuffer() *core.PixelBuffer {
	buf := core.NewPixelBuffer(2, 2)
	buf.Set(0, 0, core.White)
	buf.Set(1, 0, core.NewColor(1, 0, 0))
	buf.Set(0, 1, core.NewColor(0, 1, 0))
	buf.Set(1, 1, core.NewColor(0, 0, 1))
	return buf
}

// TestLoadImage creates a test PNG and verifies loading
func TestLoadImage(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "test.png")

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 51, A: 255})

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	f.Close()

	imageData, err := LoadImage(testFile)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	if imageData.Width != 2 || imageData.Height != 2 {
		t.Errorf("Expected 2x2 image, got %dx%d", imageData.Width, imageData.Height)
	}
	if imageData.Channels != 3 {
		t.Errorf("Expected 3 channels for an opaque RGBA image, got %d", imageData.Channels)
	}
	if imageData.Format != imaging.PNG {
		t.Errorf("Expected PNG format, got %v", imageData.Format)
	}

	expected := []core.Color{
		core.White,
		core.NewColor(1, 0, 0),
		core.NewColor(0, 1, 0),
		core.NewColor(0, 0, 0.2),
	}
	for i, want := range expected {
		if imageData.Pixels[i].Subtract(want).Length() > 1e-9 {
			t.Errorf("pixel %d: expected %v, got %v", i, want, imageData.Pixels[i])
		}
	}
}

func TestLoadImage_Missing(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestSaveImage_PNGRoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "render.png")
	buf := testBuffer()
	buf.Set(1, 1, core.NewColor(0.5, 2.0, -1.0))

	if err := SaveImage(buf, filename); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	loaded, err := LoadImage(filename)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	// 0.5 truncates to 127; out-of-range channels clamp
	want := core.ColorFromRGBA8(127, 255, 0)
	if !loaded.At(1, 1).Equals(want) {
		t.Errorf("Expected %v, got %v", want, loaded.At(1, 1))
	}
	if !loaded.At(0, 0).Equals(core.White) {
		t.Errorf("Expected white, got %v", loaded.At(0, 0))
	}
}

func TestSaveImage_JPEG(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "render.jpg")
	buf := core.NewPixelBuffer(16, 16)
	buf.Fill(core.NewColor(0.5, 0.5, 0.5))

	if err := SaveImage(buf, filename); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	loaded, err := LoadImage(filename)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if loaded.Format != imaging.JPEG {
		t.Errorf("Expected JPEG format, got %v", loaded.Format)
	}
	// Lossy, but a flat gray survives closely
	if math.Abs(loaded.At(8, 8).X-0.5) > 0.02 {
		t.Errorf("Expected gray near 0.5, got %v", loaded.At(8, 8))
	}
}

func TestSaveImage_UnsupportedExtension(t *testing.T) {
	err := SaveImage(testBuffer(), filepath.Join(t.TempDir(), "render.xyz"))
	if err == nil {
		t.Fatal("Expected error for unknown extension")
	}
	if !errors.Is(err, imaging.ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestResizeImage(t *testing.T) {
	buf := core.NewPixelBuffer(40, 20)
	buf.Fill(core.NewColor(1, 0, 0))

	resized := ResizeImage(buf, 10, 0)
	if resized.Width != 10 || resized.Height != 5 {
		t.Fatalf("Expected 10x5, got %dx%d", resized.Width, resized.Height)
	}
	if resized.At(5, 2).Subtract(core.NewColor(1, 0, 0)).Length() > 0.01 {
		t.Errorf("Expected solid red after resize, got %v", resized.At(5, 2))
	}
}

func TestFlip(t *testing.T) {
	buf := testBuffer()

	FlipVertical(buf)
	if !buf.At(0, 0).Equals(core.NewColor(0, 1, 0)) || !buf.At(0, 1).Equals(core.White) {
		t.Errorf("FlipVertical: unexpected layout %v", buf.Pixels)
	}

	FlipHorizontal(buf)
	if !buf.At(0, 0).Equals(core.NewColor(0, 0, 1)) || !buf.At(1, 1).Equals(core.White) {
		t.Errorf("FlipHorizontal: unexpected layout %v", buf.Pixels)
	}
}

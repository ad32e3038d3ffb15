package imaging

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage writes a solid-color PNG into a temp dir and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "test-image.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestDecode(t *testing.T) {
	path := createTestImage(t, 30, 20, color.RGBA{200, 10, 10, 255})

	img, info, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if info.Width != 30 || info.Height != 20 {
		t.Errorf("info dimensions: got %dx%d, want 30x20", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if info.ColorDepth != "8-bit" {
		t.Errorf("ColorDepth: got %s, want 8-bit", info.ColorDepth)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes: got %d, want > 0", info.FileSizeBytes)
	}

	if img.Bounds() != image.Rect(0, 0, 30, 20) {
		t.Errorf("bounds: got %v", img.Bounds())
	}
	if got := img.NRGBAAt(5, 5); got != (color.NRGBA{200, 10, 10, 255}) {
		t.Errorf("pixel: got %v, want {200 10 10 255}", got)
	}
}

func TestDecode_KeepsStraightAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{200, 100, 50, 128})

	path := filepath.Join(t.TempDir(), "alpha.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	f.Close()

	img, _, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{200, 100, 50, 128}) {
		t.Errorf("pixel: got %v, want {200 100 50 128}", got)
	}
}

func TestDecode_SixteenBit(t *testing.T) {
	src := image.NewRGBA64(image.Rect(0, 0, 2, 2))
	src.SetRGBA64(0, 0, color.RGBA64{0xC8FF, 0x0A00, 0x0A00, 0xFFFF})

	path := filepath.Join(t.TempDir(), "deep.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	f.Close()

	img, info, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if info.ColorDepth != "16-bit" {
		t.Errorf("ColorDepth: got %s, want 16-bit", info.ColorDepth)
	}
	if got := img.NRGBAAt(0, 0); got.R != 0xC8 || got.G != 0x0A || got.B != 0x0A {
		t.Errorf("pixel: got %v, want high bytes (200,10,10)", got)
	}
}

func TestDecode_JPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	path := filepath.Join(t.TempDir(), "photo.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := jpeg.Encode(f, src, nil); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	f.Close()

	_, info, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if info.Format != "jpeg" {
		t.Errorf("Format: got %s, want jpeg", info.Format)
	}
}

func TestDecode_NonExistent(t *testing.T) {
	_, _, err := Decode("/nonexistent/path/to/image.png")
	if err == nil {
		t.Error("Decode should fail for non-existent file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist cause, got %v", err)
	}
}

func TestDecode_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-image.png")
	if err := os.WriteFile(path, []byte("this is not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, _, err := Decode(path); err == nil {
		t.Error("Decode should fail for invalid image file")
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}

	// Second call is a no-op.
	if err := EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir on existing dir failed: %v", err)
	}
}

func TestEnsureDir_FileInTheWay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if err := EnsureDir(path); err == nil {
		t.Error("EnsureDir should fail when a file occupies the path")
	}
}

package imaging

import (
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Compression selects the PNG compression level used by Save.
type Compression int

const (
	DefaultCompression Compression = iota
	NoCompression
	BestSpeed
	BestCompression
)

// ParseCompression maps "default", "none", "fast" and "best" to a level.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return DefaultCompression, nil
	case "none":
		return NoCompression, nil
	case "fast", "speed":
		return BestSpeed, nil
	case "best":
		return BestCompression, nil
	}
	return DefaultCompression, fmt.Errorf("unknown compression level %q", s)
}

func (c Compression) String() string {
	switch c {
	case NoCompression:
		return "none"
	case BestSpeed:
		return "fast"
	case BestCompression:
		return "best"
	default:
		return "default"
	}
}

func (c Compression) pngLevel() png.CompressionLevel {
	switch c {
	case NoCompression:
		return png.NoCompression
	case BestSpeed:
		return png.BestSpeed
	case BestCompression:
		return png.BestCompression
	default:
		return png.DefaultCompression
	}
}

// Save writes img to path in the format implied by its extension.
//
// Parameters:
//   - img: The image to write. Alpha is stored exactly.
//   - path: Destination file. Must end in .png, .tif or .tiff.
//   - level: PNG compression level; ignored for other formats.
//
// # Errors
//
//   - Returns error if the extension is unknown or names a lossy format
//   - Returns error if the file cannot be created or written
func Save(img image.Image, path string, level Compression) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("unsupported output format %q: %w", filepath.Ext(path), err)
	}
	if !losslessExt(path) {
		return fmt.Errorf("output format %q cannot store mask transparency exactly", filepath.Ext(path))
	}

	if err := imaging.Save(img, path, imaging.PNGCompressionLevel(level.pngLevel())); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}

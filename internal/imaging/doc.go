// Package imaging reads source images and writes mask images.
//
// It is the storage boundary of the command: Decode turns a file into an
// in-memory pixel grid, EnsureDir prepares the output directory and Save
// serializes a mask back to disk. Everything between those calls works on
// *image.NRGBA values only.
//
// # Supported Formats
//
// Decoding accepts PNG, JPEG, GIF, TIFF, BMP and WebP. Format detection is
// based on file contents, not the extension.
//
// Encoding accepts only PNG and TIFF, chosen by extension. Masks use a fully
// transparent pixel to mean "not in category", so formats that cannot
// round-trip alpha exactly (JPEG, palette GIF, BMP) are rejected before any
// file is created.
//
// # Pixel Values
//
// Decoded images are normalised to non-premultiplied 8-bit RGBA. 16-bit
// sources keep the high byte of each channel.
//
// # Error Handling
//
// Functions return errors for:
//   - Files that do not exist or cannot be read
//   - Content that is not a supported image format
//   - Output paths with an unsupported or lossy extension
//   - Directory creation and file write failures
package imaging

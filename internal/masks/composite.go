package masks

import (
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/pixel-masks/internal/classify"
)

// Counts holds the number of source pixels matching each category.
type Counts map[classify.Category]int

func newCounts() Counts {
	c := make(Counts, len(classify.All()))
	for _, cat := range classify.All() {
		c[cat] = 0
	}
	return c
}

// Total returns the sum over all categories. Pixels in several categories are
// counted once per category.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Mask is a rendered layer.
type Mask struct {
	Layer Layer
	Image *image.NRGBA
}

// Result is the output of one Composite call.
type Result struct {
	Width  int
	Height int

	// Masks are in the same order as the layers passed to Composite.
	Masks []Mask

	Counts Counts

	// Elapsed is the time spent normalising and scanning the source.
	Elapsed time.Duration
}

// Mask returns the rendered layer with the given name, or nil.
func (r *Result) Mask(name string) *Mask {
	for i := range r.Masks {
		if r.Masks[i].Layer.Name == name {
			return &r.Masks[i]
		}
	}
	return nil
}

type options struct {
	parallel bool
}

// Option configures Composite.
type Option func(*options)

// WithParallel scans row bands concurrently when enabled.
func WithParallel(enabled bool) Option {
	return func(o *options) {
		o.parallel = enabled
	}
}

// Composite classifies every pixel of img and renders each layer.
//
// The source is read through its non-premultiplied 8-bit RGBA view; alpha is
// ignored. Every mask has the source's width and height with its origin at
// (0,0), and every pixel of every mask is written exactly once.
//
// # Errors
//
//   - Returns error if layers is empty or any layer fails Validate
//   - Returns error if two layers share a name or a file
//   - Returns error if img is nil
func Composite(img image.Image, layers []Layer, opts ...Option) (*Result, error) {
	if img == nil {
		return nil, fmt.Errorf("no source image")
	}
	if err := validateLayers(layers); err != nil {
		return nil, fmt.Errorf("invalid layers: %w", err)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	src := toNRGBA(img)
	width, height := src.Rect.Dx(), src.Rect.Dy()

	masks := make([]Mask, len(layers))
	for i, l := range layers {
		masks[i] = Mask{Layer: l, Image: image.NewNRGBA(image.Rect(0, 0, width, height))}
	}

	counts := newCounts()
	if o.parallel {
		var mu sync.Mutex
		parallel.Line(height, func(startY, endY int) {
			part := scanRows(src, masks, startY, endY)
			mu.Lock()
			for c, n := range part {
				counts[c] += n
			}
			mu.Unlock()
		})
	} else {
		for c, n := range scanRows(src, masks, 0, height) {
			counts[c] += n
		}
	}

	return &Result{
		Width:   width,
		Height:  height,
		Masks:   masks,
		Counts:  counts,
		Elapsed: time.Since(start),
	}, nil
}

// scanRows renders rows [startY, endY) of every mask and returns the category
// counts for those rows.
func scanRows(src *image.NRGBA, masks []Mask, startY, endY int) Counts {
	categories := classify.All()
	local := make([]int, len(categories))
	width := src.Rect.Dx()

	for y := startY; y < endY; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+width*4]
		for x := 0; x < width; x++ {
			i := x * 4
			set := classify.Classify(row[i], row[i+1], row[i+2])

			for ci, c := range categories {
				if set.Has(c) {
					local[ci]++
				}
			}

			for _, m := range masks {
				col := classify.Transparent
				if c, ok := set.First(m.Layer.Priority...); ok {
					col = c.Color()
				}
				m.Image.SetNRGBA(x, y, col)
			}
		}
	}

	part := make(Counts, len(categories))
	for ci, c := range categories {
		part[c] = local[ci]
	}
	return part
}

// toNRGBA returns img as a zero-origin NRGBA image, copying only when needed.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	return imaging.Clone(img)
}

package masks

import (
	"errors"
	"fmt"

	"github.com/ironsheep/pixel-masks/internal/classify"
)

// Layer describes one output mask.
type Layer struct {
	// Name identifies the layer in logs and in Result.Mask lookups.
	Name string

	// File is the output file name, relative to the output directory.
	File string

	// Priority lists the categories painted by this layer. When a pixel is in
	// more than one of them, the earliest entry wins.
	Priority []classify.Category
}

// SingleLayer returns the mask for one category, e.g. "red-only" written to
// red_pixels_only.png.
func SingleLayer(c classify.Category) Layer {
	return Layer{
		Name:     c.String() + "-only",
		File:     c.String() + "_pixels_only.png",
		Priority: []classify.Category{c},
	}
}

// DefaultLayers returns the four single-category masks followed by the
// red/green and four-way combined masks.
func DefaultLayers() []Layer {
	return []Layer{
		SingleLayer(classify.Red),
		SingleLayer(classify.Green),
		SingleLayer(classify.NearBlack),
		SingleLayer(classify.NearWhite),
		{
			Name:     "red-green",
			File:     "red_and_green_pixels.png",
			Priority: []classify.Category{classify.Red, classify.Green},
		},
		{
			Name:     "all-categories",
			File:     "all_categories.png",
			Priority: []classify.Category{classify.NearBlack, classify.NearWhite, classify.Red, classify.Green},
		},
	}
}

// Validate checks that the layer can be rendered.
func (l Layer) Validate() error {
	if l.Name == "" {
		return errors.New("layer name is empty")
	}
	if l.File == "" {
		return fmt.Errorf("layer %q has no output file", l.Name)
	}
	if len(l.Priority) == 0 {
		return fmt.Errorf("layer %q has no categories", l.Name)
	}
	seen := make(map[classify.Category]bool, len(l.Priority))
	for _, c := range l.Priority {
		if !c.Valid() {
			return fmt.Errorf("layer %q: invalid category %d", l.Name, int(c))
		}
		if seen[c] {
			return fmt.Errorf("layer %q lists %s twice", l.Name, c)
		}
		seen[c] = true
	}
	return nil
}

func validateLayers(layers []Layer) error {
	if len(layers) == 0 {
		return errors.New("no layers to render")
	}
	names := make(map[string]bool, len(layers))
	files := make(map[string]bool, len(layers))
	for _, l := range layers {
		if err := l.Validate(); err != nil {
			return err
		}
		if names[l.Name] {
			return fmt.Errorf("duplicate layer name %q", l.Name)
		}
		if files[l.File] {
			return fmt.Errorf("duplicate layer file %q", l.File)
		}
		names[l.Name] = true
		files[l.File] = true
	}
	return nil
}

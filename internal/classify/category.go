package classify

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Category identifies one color class a pixel can belong to.
type Category int

const (
	Red Category = iota
	Green
	NearBlack
	NearWhite

	numCategories
)

// definition binds a category to its predicate, mask color and name.
type definition struct {
	name    string
	color   color.NRGBA
	matches func(r, g, b uint8) bool
}

// registry holds one entry per category, indexed by Category.
// Adding a category means adding a constant above and a row here.
var registry = [numCategories]definition{
	Red:       {name: "red", color: color.NRGBA{R: 255, G: 0, B: 0, A: 255}, matches: IsRed},
	Green:     {name: "green", color: color.NRGBA{R: 0, G: 255, B: 0, A: 255}, matches: IsGreen},
	NearBlack: {name: "black", color: color.NRGBA{R: 0, G: 0, B: 0, A: 255}, matches: IsNearBlack},
	NearWhite: {name: "white", color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}, matches: IsNearWhite},
}

// Transparent is written wherever a pixel is not in a mask's category.
// It marks absence and is never a category color.
var Transparent = color.NRGBA{}

// All returns every category in declaration order.
func All() []Category {
	out := make([]Category, 0, numCategories)
	for c := Category(0); c < numCategories; c++ {
		out = append(out, c)
	}
	return out
}

// Valid reports whether c is a registered category.
func (c Category) Valid() bool {
	return c >= 0 && c < numCategories
}

// String returns the short lowercase name used in file names and logs.
func (c Category) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return registry[c].name
}

// Color returns the opaque color painted into masks for this category.
func (c Category) Color() color.NRGBA {
	if !c.Valid() {
		return Transparent
	}
	return registry[c].color
}

// Hex returns the category color as "#RRGGBB".
func (c Category) Hex() string {
	col, _ := colorful.MakeColor(c.Color())
	return strings.ToUpper(col.Hex())
}

// Matches reports whether the pixel (r, g, b) belongs to the category.
func (c Category) Matches(r, g, b uint8) bool {
	if !c.Valid() {
		return false
	}
	return registry[c].matches(r, g, b)
}

// Parse returns the category with the given name.
func Parse(name string) (Category, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c := Category(0); c < numCategories; c++ {
		if registry[c].name == name {
			return c, true
		}
	}
	return 0, false
}

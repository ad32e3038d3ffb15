package classify

// Set is the group of categories a single pixel belongs to.
type Set uint8

// Has reports whether c is in the set.
func (s Set) Has(c Category) bool {
	if !c.Valid() {
		return false
	}
	return s&(1<<uint(c)) != 0
}

// Empty reports whether the pixel matched no category.
func (s Set) Empty() bool {
	return s == 0
}

// First returns the first category of priority that is in the set.
// The order of priority is the tie-break; the set itself has no order.
func (s Set) First(priority ...Category) (Category, bool) {
	for _, c := range priority {
		if s.Has(c) {
			return c, true
		}
	}
	return 0, false
}

// Categories lists the members of the set in declaration order.
func (s Set) Categories() []Category {
	var out []Category
	for c := Category(0); c < numCategories; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Classify evaluates every category predicate for one pixel.
func Classify(r, g, b uint8) Set {
	var s Set
	for c := Category(0); c < numCategories; c++ {
		if registry[c].matches(r, g, b) {
			s |= 1 << uint(c)
		}
	}
	return s
}

// IsRed reports whether red dominates green and blue by more than a quarter
// of each, with red above 30.
func IsRed(r, g, b uint8) bool {
	return dominates(r, g, b)
}

// IsGreen is IsRed with the red and green channels swapped.
func IsGreen(r, g, b uint8) bool {
	return dominates(g, r, b)
}

// IsNearBlack reports whether every channel is below 50.
func IsNearBlack(r, g, b uint8) bool {
	return max(r, g, b) < 50
}

// IsNearWhite reports whether every channel is above 100 and the channels
// spread by at most 70.
func IsNearWhite(r, g, b uint8) bool {
	lo, hi := min(r, g, b), max(r, g, b)
	return lo > 100 && hi-lo <= 70
}

// dominates reports whether channel c beats both others.
// The floor keeps dark, slightly tinted pixels out: near zero the quarter
// threshold would accept almost any difference.
func dominates(c, o1, o2 uint8) bool {
	return c > 30 && satSub(c, o1) > o1/4 && satSub(c, o2) > o2/4
}

// satSub returns a-b, or 0 when b > a.
func satSub(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}

package font

import "strings"

// Unspecified is stored for style, weight and category when no value is given.
const Unspecified = "unspecified"

// Style is an open enumeration of CSS font styles. Values outside the known
// set are kept as given.
type Style string

const (
	StyleUnspecified Style = Unspecified
	StyleNormal      Style = "normal"
	StyleItalic      Style = "italic"
	StyleOblique     Style = "oblique"
)

// Styles lists the known styles in display order.
var Styles = []Style{StyleNormal, StyleItalic, StyleOblique}

// ParseStyle trims and lower-cases s; empty input maps to StyleUnspecified.
func ParseStyle(s string) Style {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return StyleUnspecified
	}
	return Style(s)
}

// Known reports whether s is one of Styles.
func (s Style) Known() bool { return contains(Styles, s) }

// Weight is an open enumeration of CSS font weights.
type Weight string

const (
	WeightUnspecified Weight = Unspecified
	WeightNormal      Weight = "normal"
	WeightBold        Weight = "bold"
	WeightBolder      Weight = "bolder"
	WeightLighter     Weight = "lighter"
)

// Weights lists the known weights in display order.
var Weights = []Weight{WeightNormal, WeightBold, WeightBolder, WeightLighter}

// ParseWeight trims and lower-cases s; empty input maps to WeightUnspecified.
func ParseWeight(s string) Weight {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return WeightUnspecified
	}
	return Weight(s)
}

// Known reports whether w is one of Weights.
func (w Weight) Known() bool { return contains(Weights, w) }

// Category groups fonts for the dashboard. Unlike style and weight, case is
// preserved.
type Category string

const (
	CategoryUnspecified Category = Unspecified
	CategoryModerna     Category = "Moderna"
	CategoryElegante    Category = "Elegante"
	CategoryClasica     Category = "Clasica"
	CategoryCreativa    Category = "Creativa"
)

// Categories lists the known categories in display order.
var Categories = []Category{CategoryModerna, CategoryElegante, CategoryClasica, CategoryCreativa}

// ParseCategory trims s and matches it case-insensitively against the known
// categories; unknown values are kept trimmed.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryUnspecified
	}
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c
		}
	}
	return Category(s)
}

// Known reports whether c is one of Categories.
func (c Category) Known() bool { return contains(Categories, c) }

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

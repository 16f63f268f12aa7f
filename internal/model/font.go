package model

import "strings"

// Font is a single search result. Name doubles as the display label and the
// font-family identifier; URL locates the font asset.
type Font struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Valid reports whether the font carries a usable family name
func (f Font) Valid() bool {
	return strings.TrimSpace(f.Name) != ""
}

// CloneFonts returns a copy of fonts that never aliases the input.
// A nil input yields an empty, non-nil slice.
func CloneFonts(fonts []Font) []Font {
	out := make([]Font, len(fonts))
	copy(out, fonts)
	return out
}

package style

import "image/color"

// PropertyMap maps property names to resolved values. Keys are unique;
// during the cascade the last writer for a key wins.
//
// A nil PropertyMap is a valid empty map for reading.
type PropertyMap map[string]Value

// Value returns the value for a property, if set.
func (pmap PropertyMap) Value(key string) (Value, bool) {
	v, ok := pmap[key]
	return v, ok
}

// Lookup returns the value for key, falling back to a shorthand property
// and finally to a default. This implements longhand/shorthand resolution,
// e.g. Lookup("margin-left", "margin", style.Zero).
func (pmap PropertyMap) Lookup(key, fallback string, def Value) Value {
	if v, ok := pmap[key]; ok {
		return v
	}
	if v, ok := pmap[fallback]; ok {
		return v
	}
	return def
}

// Color returns the color for a property, if it is set to a color value.
func (pmap PropertyMap) Color(key string) (color.RGBA, bool) {
	v, ok := pmap[key]
	if !ok {
		return color.RGBA{}, false
	}
	return v.Color()
}

// --- Display modes ---------------------------------------------------------

// DisplayMode is a type for the CSS property "display".
type DisplayMode uint8

// Display modes relevant for block/inline flow.
const (
	NoMode      DisplayMode = iota // unset or error condition
	DisplayNone                    // display = none
	BlockMode                      // block context
	InlineMode                     // inline context
)

func (disp DisplayMode) String() string {
	switch disp {
	case DisplayNone:
		return "none"
	case BlockMode:
		return "block"
	case InlineMode:
		return "inline"
	}
	return "<no mode>"
}

// DisplayMode resolves the display mode set in a property map.
// Unset or unrecognized display properties default to inline.
func (pmap PropertyMap) DisplayMode() DisplayMode {
	v, ok := pmap.Value("display")
	if !ok || v.Type() != KeywordValue {
		return InlineMode
	}
	switch v.KeywordString() {
	case "block":
		return BlockMode
	case "none":
		return DisplayNone
	}
	return InlineMode
}

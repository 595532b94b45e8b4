package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ValueType discriminates the variants of a property Value.
type ValueType uint8

// A value is either unset, a keyword, a length or a color.
const (
	Unset ValueType = iota
	KeywordValue
	LengthValue
	ColorValue
)

// Value is a CSS property value. The zero value is the unset value.
//
// Values are small and immutable; they are passed and compared by value.
type Value struct {
	typ ValueType
	kw  string
	px  float64
	rgb color.RGBA
}

// Auto is the keyword value "auto".
var Auto = Keyword("auto")

// Zero is a length value of 0px.
var Zero = Px(0)

// Keyword creates a keyword value.
func Keyword(kw string) Value {
	return Value{typ: KeywordValue, kw: kw}
}

// Px creates a pixel-length value.
func Px(px float64) Value {
	return Value{typ: LengthValue, px: px}
}

// Color creates a color value.
func Color(c color.RGBA) Value {
	return Value{typ: ColorValue, rgb: c}
}

// RGB creates an opaque color value.
func RGB(r, g, b uint8) Value {
	return Color(color.RGBA{R: r, G: g, B: b, A: 0xff})
}

// Type returns the variant of a value.
func (v Value) Type() ValueType {
	return v.typ
}

// IsKeyword checks a value against a given keyword.
func (v Value) IsKeyword(kw string) bool {
	return v.typ == KeywordValue && v.kw == kw
}

// IsAuto is a predicate for the "auto" keyword.
func (v Value) IsAuto() bool {
	return v.IsKeyword("auto")
}

// KeywordString returns the keyword of a keyword value, "" otherwise.
func (v Value) KeywordString() string {
	if v.typ != KeywordValue {
		return ""
	}
	return v.kw
}

// Px returns the pixel count of a length value. All other variants
// convert to 0, which makes "auto" and unset values contribute nothing
// to box arithmetic.
func (v Value) Px() float64 {
	if v.typ != LengthValue {
		return 0
	}
	return v.px
}

// Color returns the color of a color value.
func (v Value) Color() (color.RGBA, bool) {
	if v.typ != ColorValue {
		return color.RGBA{}, false
	}
	return v.rgb, true
}

func (v Value) String() string {
	switch v.typ {
	case KeywordValue:
		return v.kw
	case LengthValue:
		return fmt.Sprintf("%gpx", v.px)
	case ColorValue:
		return fmt.Sprintf("#%02x%02x%02x", v.rgb.R, v.rgb.G, v.rgb.B)
	}
	return "<unset>"
}

// A minimal named-color palette. CSS keyword colors which clients are
// most likely to use in rules like "background: red".
var namedColors = map[string]color.RGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
}

// ParseValue interprets the textual form of a CSS declaration value.
// It recognizes pixel lengths ("12px"), hex colors ("#cc0000"), a small
// set of named colors, and treats everything else as a keyword.
//
// Malformed values never fail hard: they degrade to keyword values and
// resolve to engine defaults downstream.
func ParseValue(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}
	}
	if strings.HasPrefix(s, "#") {
		if c, ok := parseHexColor(s); ok {
			return Color(c)
		}
		tracer().Infof("style: cannot interpret color value %q", s)
		return Keyword(s)
	}
	if n, ok := parsePxLength(s); ok {
		return Px(n)
	}
	kw := strings.ToLower(s)
	if c, ok := namedColors[kw]; ok {
		return Color(c)
	}
	return Keyword(kw)
}

func parsePxLength(s string) (float64, bool) {
	t := strings.ToLower(s)
	if !strings.HasSuffix(t, "px") {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(t, "px")), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseHexColor(s string) (color.RGBA, bool) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 { // shorthand #rgb
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
		A: 0xff,
	}, true
}

package gfx

import (
	"image"
	"image/color"

	"github.com/npillmayer/tinte/engine/frame"
)

// White is the background color every canvas starts out with.
var White = color.RGBA{0xff, 0xff, 0xff, 0xff}

// Canvas is a fixed-size grid of opaque pixels, stored row-major.
// It implements image.Image, so the standard encoders can consume it.
type Canvas struct {
	width, height int
	pixels        []color.RGBA
}

// NewCanvas allocates a canvas of w×h pixels, initialized to opaque
// white. Negative sizes are clamped to zero.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{
		width:  w,
		height: h,
		pixels: make([]color.RGBA, w*h),
	}
	for i := range c.pixels {
		c.pixels[i] = White
	}
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Pixel returns the color at (x,y). Out-of-bounds coordinates read as
// the background color.
func (c *Canvas) Pixel(x, y int) color.RGBA {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return White
	}
	return c.pixels[y*c.width+x]
}

// fillRect overwrites every pixel within a rectangle, clipped to the
// canvas bounds, with a flat color. No blending: a later fill fully
// replaces earlier pixel values in its footprint. Degenerate rectangles
// clip to an empty region.
func (c *Canvas) fillRect(col color.RGBA, r frame.Rect) {
	x0 := int(clamp(r.X, 0, float64(c.width)))
	y0 := int(clamp(r.Y, 0, float64(c.height)))
	x1 := int(clamp(r.X+r.W, 0, float64(c.width)))
	y1 := int(clamp(r.Y+r.H, 0, float64(c.height)))
	for y := y0; y < y1; y++ {
		row := c.pixels[y*c.width : (y+1)*c.width]
		for x := x0; x < x1; x++ {
			row[x] = col
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- image.Image -----------------------------------------------------------

// ColorModel is part of interface image.Image.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds is part of interface image.Image.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At is part of interface image.Image.
func (c *Canvas) At(x, y int) color.Color {
	return c.Pixel(x, y)
}

var _ image.Image = &Canvas{}

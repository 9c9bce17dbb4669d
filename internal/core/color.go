package core

import "fmt"

// Color is a 24-bit foreground color for a screen cell.
// The zero value means "terminal default"; real colors carry a presence bit
// so that pure black is distinguishable from no color at all.
type Color uint32

const colorSet Color = 1 << 24

// ColorDefault leaves the cell in the terminal's default color.
const ColorDefault Color = 0

// RGB builds a Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return colorSet | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// RGBFloat builds a Color from channels in [0, 1]. Values outside the range are clamped.
func RGBFloat(r, g, b float32) Color {
	return RGB(unit8(r), unit8(g), unit8(b))
}

func unit8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// IsDefault reports whether the color is the terminal default.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// Channels returns the 8-bit red, green and blue components.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Invert returns the channel-wise complement. Default stays default.
func (c Color) Invert() Color {
	if c.IsDefault() {
		return c
	}
	r, g, b := c.Channels()
	return RGB(255-r, 255-g, 255-b)
}

// Hex formats the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.Channels()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

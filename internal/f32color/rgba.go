// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color holds the colour helpers shared by the renderers and
// the configuration loader.
package f32color

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// MulAlpha applies the alpha to the color.
func MulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}

// Disabled blends color towards its luminance and reduces its alpha.
func Disabled(c color.NRGBA) color.NRGBA {
	const r = 80 // blend ratio out of 256
	lum := approxLuminance(c)
	d := color.NRGBA{
		R: mix(c.R, lum, r),
		G: mix(c.G, lum, r),
		B: mix(c.B, lum, r),
		A: c.A,
	}
	return MulAlpha(d, 128+32)
}

func mix(a, b, ratio uint8) uint8 {
	return uint8((uint32(a)*uint32(256-uint32(ratio)) + uint32(b)*uint32(ratio)) / 256)
}

// approxLuminance is a fast approximate version of the Rec. 709 luma.
func approxLuminance(c color.NRGBA) uint8 {
	const (
		r = 13933 // 0.2126 * 256 * 256
		g = 46871 // 0.7152 * 256 * 256
		b = 4732  // 0.0722 * 256 * 256
		t = r + g + b
	)
	return uint8((r*uint32(c.R) + g*uint32(c.G) + b*uint32(c.B)) / t)
}

// ParseHex parses colors in the #RGB, #RRGGBB and #AARRGGBB notations.
// The leading '#' is optional.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
		fallthrough
	case 6:
		h = "ff" + h
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("f32color: invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("f32color: invalid color %q: %w", s, err)
	}
	return ARGB(uint32(v)), nil
}

// ARGB converts a 0xAARRGGBB value to a color.
func ARGB(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}

// RGB converts a 0xRRGGBB value to an opaque color.
func RGB(c uint32) color.NRGBA {
	return ARGB(0xff000000 | c)
}

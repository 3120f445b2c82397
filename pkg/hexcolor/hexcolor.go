// Package hexcolor converts 6-digit hex color strings to RGB values.
//
// Inputs must be exactly six hexadecimal digits with an optional leading '#'.
// No validation is performed: malformed input is a caller contract violation
// and produces undefined output. Callers decoding untrusted color strings
// should validate first with errors.ValidateHexColor.
package hexcolor

import (
	"fmt"
	"image/color"
)

// RGB parses a 6-digit hex string into an opaque NRGBA color.
// The channels are parsed as consecutive 2-digit hex pairs.
func RGB(hex string) color.NRGBA {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	return color.NRGBA{
		R: pair(hex, 0),
		G: pair(hex, 2),
		B: pair(hex, 4),
		A: 0xff,
	}
}

// Format renders a color as a lowercase "#rrggbb" string, discarding alpha.
func Format(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// pair parses the 2-digit hex pair starting at offset i.
// Out-of-range or non-hex input yields 0 for the affected nibbles.
func pair(hex string, i int) uint8 {
	if i+2 > len(hex) {
		return 0
	}
	return nibble(hex[i])<<4 | nibble(hex[i+1])
}

func nibble(b byte) uint8 {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	}
	return 0
}

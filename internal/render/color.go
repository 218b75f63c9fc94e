package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var fallbackColor = color.NRGBA{R: 0x4f, G: 0x46, B: 0xe5, A: 0xff}

// parseHex parses #rrggbb
func parseHex(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}

	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// paletteColor returns the i-th palette color, cycling, with the given opacity
func paletteColor(palette []string, i int, alpha float64) color.NRGBA {
	c := fallbackColor
	if len(palette) > 0 {
		if parsed, err := parseHex(palette[i%len(palette)]); err == nil {
			c = parsed
		}
	}
	c.A = uint8(alpha*255 + 0.5)

	return c
}

package core

import (
	"image/color"
	"strings"
)

// Color represents a foreground color for a screen cell.
// Terminal frontends map it to ANSI codes, the window frontend to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"default":        ColorDefault,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright_red":     ColorBrightRed,
	"bright_green":   ColorBrightGreen,
	"bright_yellow":  ColorBrightYellow,
	"bright_blue":    ColorBrightBlue,
	"bright_magenta": ColorBrightMagenta,
	"bright_cyan":    ColorBrightCyan,
	"bright_white":   ColorBrightWhite,
	"orange":         ColorOrange,
	"gray":           ColorGray,
}

// palette holds the RGBA value of each named color (xterm defaults).
var palette = [...]color.RGBA{
	ColorDefault:       {0xd0, 0xd0, 0xd0, 0xff},
	ColorRed:           {0xcd, 0x00, 0x00, 0xff},
	ColorGreen:         {0x00, 0x80, 0x00, 0xff},
	ColorYellow:        {0xcd, 0xcd, 0x00, 0xff},
	ColorBlue:          {0x00, 0x00, 0xee, 0xff},
	ColorMagenta:       {0xcd, 0x00, 0xcd, 0xff},
	ColorCyan:          {0x00, 0xcd, 0xcd, 0xff},
	ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	ColorBrightRed:     {0xff, 0x00, 0x00, 0xff},
	ColorBrightGreen:   {0x00, 0xff, 0x00, 0xff},
	ColorBrightYellow:  {0xff, 0xff, 0x00, 0xff},
	ColorBrightBlue:    {0x5c, 0x5c, 0xff, 0xff},
	ColorBrightMagenta: {0xff, 0x00, 0xff, 0xff},
	ColorBrightCyan:    {0x00, 0xff, 0xff, 0xff},
	ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	ColorGray:          {0x8a, 0x8a, 0x8a, 0xff},
}

// ParseColor looks up a color by its config name (e.g. "green", "bright_cyan").
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// ToRGBA returns the color for pixel renderers.
func (c Color) ToRGBA() color.RGBA {
	if int(c) >= len(palette) {
		return palette[ColorDefault]
	}
	return palette[c]
}

// String returns the config name of the color.
func (c Color) String() string {
	for name, v := range colorNames {
		if v == c {
			return name
		}
	}
	return "default"
}

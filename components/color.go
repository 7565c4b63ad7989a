package components

import (
	"fmt"
	"image/color"
	"strings"
)

// Palette colors shared by the world and the renderer.
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Gray   = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	Red    = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	Yellow = color.RGBA{R: 253, G: 249, B: 0, A: 255}
	Green  = color.RGBA{R: 0, G: 228, B: 48, A: 255}
	Blue   = color.RGBA{R: 0, G: 121, B: 241, A: 255}
	Violet = color.RGBA{R: 135, G: 60, B: 190, A: 255}
)

var colorsByName = map[string]color.RGBA{
	"white":  White,
	"black":  Black,
	"gray":   Gray,
	"red":    Red,
	"yellow": Yellow,
	"green":  Green,
	"blue":   Blue,
	"violet": Violet,
}

// ParseColor resolves a palette name, case-insensitively.
func ParseColor(name string) (color.RGBA, error) {
	c, ok := colorsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

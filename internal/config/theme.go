package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Theme is the color and typography set shared by all templates.
type Theme struct {
	Background    string  `mapstructure:"background"`
	GridColor     string  `mapstructure:"grid_color"`
	GridOpacity   float64 `mapstructure:"grid_opacity"`
	PrimaryText   string  `mapstructure:"primary_text"`
	SecondaryText string  `mapstructure:"secondary_text"`
	AccentColor   string  `mapstructure:"accent_color"`
	BorderColor   string  `mapstructure:"border_color"`
	FontTitle     string  `mapstructure:"font_title"`
	FontBody      string  `mapstructure:"font_body"`
	FontNumbers   string  `mapstructure:"font_numbers"`
}

// DefaultTheme is the dark blueprint look of the listicle templates.
func DefaultTheme() Theme {
	return Theme{
		Background:    "#1a1a2e",
		GridColor:     "#2a2a3e",
		GridOpacity:   0.3,
		PrimaryText:   "#ffffff",
		SecondaryText: "#888888",
		AccentColor:   "#ff4444",
		BorderColor:   "#4488ff",
		FontTitle:     "bold",
		FontBody:      "regular",
		FontNumbers:   "bold",
	}
}

// DecodeTheme merges loose overrides from a job over DefaultTheme.
// Unknown keys are ignored; known keys with unusable values are errors.
func DecodeTheme(overrides map[string]any) (Theme, error) {
	theme := DefaultTheme()
	if len(overrides) == 0 {
		return theme, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &theme,
	})
	if err != nil {
		return theme, err
	}
	if err := dec.Decode(overrides); err != nil {
		return theme, fmt.Errorf("theme: %w", err)
	}

	for key, v := range map[string]string{
		"background":     theme.Background,
		"grid_color":     theme.GridColor,
		"primary_text":   theme.PrimaryText,
		"secondary_text": theme.SecondaryText,
		"accent_color":   theme.AccentColor,
		"border_color":   theme.BorderColor,
	} {
		if _, err := ParseHexColor(v); err != nil {
			return theme, fmt.Errorf("theme %s: %w", key, err)
		}
	}
	if theme.GridOpacity < 0 || theme.GridOpacity > 1 {
		return theme, fmt.Errorf("theme grid_opacity must be in [0,1], got %v", theme.GridOpacity)
	}
	return theme, nil
}

// ParseHexColor parses #rgb or #rrggbb into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// MustHexColor is ParseHexColor for values that were validated already.
func MustHexColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ItemPalette colors items that do not set their own color.
var ItemPalette = []string{
	"#ff4444", "#4488ff", "#44cc88", "#ffaa00", "#cc44cc",
	"#44cccc", "#ff8844", "#88aa44", "#ff44aa", "#4444ff",
}

// PaletteColor returns the palette entry for the i-th item.
func PaletteColor(i int) string {
	return ItemPalette[i%len(ItemPalette)]
}

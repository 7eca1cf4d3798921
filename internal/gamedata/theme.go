package gamedata

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ThemeFile represents the structure of theme.json: hex color strings
// keyed by role.
type ThemeFile struct {
	Water  string `json:"water"`
	Ship   string `json:"ship"`
	Hit    string `json:"hit"`
	Miss   string `json:"miss"`
	Cursor string `json:"cursor"`
	Text   string `json:"text"`
	Accent string `json:"accent"`
}

// Theme holds the terminal color palette with colors already parsed.
type Theme struct {
	Water  tcell.Color
	Ship   tcell.Color
	Hit    tcell.Color
	Miss   tcell.Color
	Cursor tcell.Color
	Text   tcell.Color
	Accent tcell.Color
}

// LoadTheme loads and parses the color theme from the embedded theme.json.
func LoadTheme() (Theme, error) {
	file, err := Load[ThemeFile]("theme.json")
	if err != nil {
		return Theme{}, err
	}

	var theme Theme
	fields := []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"water", file.Water, &theme.Water},
		{"ship", file.Ship, &theme.Ship},
		{"hit", file.Hit, &theme.Hit},
		{"miss", file.Miss, &theme.Miss},
		{"cursor", file.Cursor, &theme.Cursor},
		{"text", file.Text, &theme.Text},
		{"accent", file.Accent, &theme.Accent},
	}
	for _, f := range fields {
		c, err := ParseHexColor(f.hex)
		if err != nil {
			return Theme{}, fmt.Errorf("theme color %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return theme, nil
}

// MustLoadTheme loads the color theme, panicking on error.
func MustLoadTheme() Theme {
	theme, err := LoadTheme()
	if err != nil {
		panic(err)
	}
	return theme
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000")
// to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q", hex)
	}

	var r, g, b int32
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return tcell.NewRGBColor(r, g, b), nil
}

package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/breakout3d/internal/core"
)

// Theme maps cell colors to terminal styles.
type Theme struct {
	Name   string
	Colors map[core.Color]lipgloss.Style
}

// Style returns the style for c, falling back to the default color.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if style, ok := t.Colors[c]; ok {
		return style
	}
	return t.Colors[core.ColorDefault]
}

// with returns a copy of t with some colors replaced by ANSI codes.
func (t Theme) with(name string, codes map[core.Color]string) Theme {
	colors := make(map[core.Color]lipgloss.Style, len(t.Colors))
	for c, style := range t.Colors {
		colors[c] = style
	}
	for c, code := range codes {
		colors[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return Theme{Name: name, Colors: colors}
}

// DefaultTheme returns the standard palette.
func DefaultTheme() Theme {
	return Theme{Name: "default"}.with("default", map[core.Color]string{
		core.ColorRed:     "1",
		core.ColorGreen:   "2",
		core.ColorYellow:  "3",
		core.ColorBlue:    "12",
		core.ColorMagenta: "5",
		core.ColorCyan:    "6",
		core.ColorWhite:   "15",
		core.ColorOrange:  "208",
		core.ColorGray:    "245",
	}).withDefault()
}

// NeonTheme returns a brighter palette for the brick rows.
func NeonTheme() Theme {
	return DefaultTheme().with("neon", map[core.Color]string{
		core.ColorRed:    "199", // Neon pink
		core.ColorOrange: "214",
		core.ColorYellow: "227",
		core.ColorGreen:  "118",
		core.ColorCyan:   "87",
	})
}

// PastelTheme returns a softer palette.
func PastelTheme() Theme {
	return DefaultTheme().with("pastel", map[core.Color]string{
		core.ColorRed:    "218",
		core.ColorOrange: "223",
		core.ColorYellow: "229",
		core.ColorGreen:  "157",
		core.ColorCyan:   "123",
		core.ColorGray:   "250",
	})
}

// MonochromeTheme returns a grayscale palette that still tells the rows apart.
func MonochromeTheme() Theme {
	return DefaultTheme().with("mono", map[core.Color]string{
		core.ColorRed:     "255",
		core.ColorOrange:  "250",
		core.ColorYellow:  "245",
		core.ColorGreen:   "240",
		core.ColorCyan:    "236",
		core.ColorBlue:    "252",
		core.ColorMagenta: "248",
		core.ColorWhite:   "255",
		core.ColorGray:    "242",
	})
}

func (t Theme) withDefault() Theme {
	t.Colors[core.ColorDefault] = lipgloss.NewStyle()
	return t
}

var themes = map[string]func() Theme{
	"default": DefaultTheme,
	"neon":    NeonTheme,
	"pastel":  PastelTheme,
	"mono":    MonochromeTheme,
}

// ThemeNames lists the built-in themes in alphabetical order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme. Empty means default.
func ThemeByName(name string) (Theme, error) {
	if name == "" {
		return DefaultTheme(), nil
	}
	newTheme, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (want one of %v)", name, ThemeNames())
	}
	return newTheme(), nil
}

// Global theme (set once at startup)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// CurrentTheme returns the global theme.
func CurrentTheme() Theme {
	return theme
}

package placeholder

import (
	"image/color"
	"sort"
	"strings"

	"github.com/fogleman/gg"
)

// Direction is the axis a background gradient runs along.
type Direction int

const (
	// Vertical interpolates row by row, top to bottom.
	Vertical Direction = iota
	// Horizontal interpolates column by column, left to right.
	Horizontal
)

// Gradient is a two-stop linear background.
type Gradient struct {
	From      color.RGBA
	To        color.RGBA
	Direction Direction
}

// Theme is a named rendering policy: a background plus a decoration routine.
type Theme struct {
	Name       string
	Background Gradient
	Decorate   func(dc *gg.Context, rng Source)
}

// Built-in theme names.
const (
	ThemeNature       = "nature"
	ThemeArchitecture = "architecture"
	ThemePortrait     = "portrait"
	ThemeLandscape    = "landscape"
	ThemeDusk         = "dusk"
	ThemeTeam         = "team"
)

var themes = map[string]Theme{
	ThemeNature: {
		Name:       ThemeNature,
		Background: Gradient{From: rgb(20, 50, 200), To: rgb(20, 200, 100)},
		Decorate:   drawTrees,
	},
	ThemeArchitecture: {
		Name:       ThemeArchitecture,
		Background: Gradient{From: rgb(150, 150, 150), To: rgb(250, 250, 250)},
		Decorate:   drawBuildings,
	},
	ThemePortrait: {
		Name:       ThemePortrait,
		Background: Gradient{From: rgb(100, 100, 120), To: rgb(200, 200, 220)},
		Decorate:   drawFigure,
	},
	ThemeLandscape: {
		Name:       ThemeLandscape,
		Background: Gradient{From: rgb(50, 50, 50), To: rgb(255, 200, 150)},
		Decorate:   drawGround,
	},
	ThemeDusk: {
		Name:       ThemeDusk,
		Background: Gradient{From: rgb(255, 200, 100), To: rgb(0, 0, 0)},
		Decorate:   drawGround,
	},
	ThemeTeam: {
		Name:       ThemeTeam,
		Background: Gradient{From: rgb(50, 50, 50), To: rgb(255, 200, 150), Direction: Horizontal},
		Decorate:   drawOrbs,
	},
}

// ThemeByName looks up a built-in theme, ignoring case.
func ThemeByName(name string) (Theme, bool) {
	t, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// ThemeNames lists the built-in themes in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeFor picks the theme for a category. None uses the fallback theme,
// or landscape when the fallback is blank or unknown.
func ThemeFor(c Category, fallback string) Theme {
	switch c {
	case Nature:
		return themes[ThemeNature]
	case Architecture:
		return themes[ThemeArchitecture]
	case None:
		if t, ok := ThemeByName(fallback); ok {
			return t
		}
		return themes[ThemeLandscape]
	default:
		return themes[ThemePortrait]
	}
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

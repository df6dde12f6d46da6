package placeholder

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Placement is the vertical position of the label. Labels are always
// centred horizontally.
type Placement int

const (
	// Center puts the label in the middle of the frame.
	Center Placement = iota
	// Bottom pins the top of the label bottomMargin pixels above the bottom edge.
	Bottom
)

const bottomMargin = 50

func (p Placement) String() string {
	if p == Bottom {
		return "bottom"
	}
	return "center"
}

// ParsePlacement accepts "center", "centre", "bottom" or an empty string (center).
func ParsePlacement(s string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "center", "centre":
		return Center, nil
	case "bottom":
		return Bottom, nil
	default:
		return Center, fmt.Errorf("unknown placement %q", s)
	}
}

// labelOrigin returns the top-left corner of a label of the given size.
func labelOrigin(frameW, frameH, textW, textH float64, p Placement) (x, y float64) {
	x = (frameW - textW) / 2
	if p == Bottom {
		return x, frameH - bottomMargin
	}
	return x, (frameH - textH) / 2
}

func drawLabel(dc *gg.Context, face font.Face, text string, p Placement, c color.Color) {
	if text == "" {
		return
	}
	dc.SetFontFace(face)
	dc.SetColor(c)

	tw, th := dc.MeasureString(text)
	x, y := labelOrigin(float64(dc.Width()), float64(dc.Height()), tw, th, p)
	dc.DrawStringAnchored(text, x, y, 0, 1)
}

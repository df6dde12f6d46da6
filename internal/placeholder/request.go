// Package placeholder renders procedural placeholder images and writes them as JPEG files.
package placeholder

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDimensions is returned for a width or height that is not positive.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrEmptyPath is returned when a request has no destination.
	ErrEmptyPath = errors.New("empty destination path")
	// ErrUnknownTheme is returned when a request names a theme that does not exist.
	ErrUnknownTheme = errors.New("unknown theme")
)

// Category selects the palette and decorations of a gallery image.
type Category string

const (
	None         Category = ""
	Nature       Category = "Nature"
	Architecture Category = "Architecture"
	Portrait     Category = "Portrait"
)

// ParseCategory maps a category name to a Category. Matching is case-insensitive.
// Blank input is None; anything unrecognised is treated as Portrait.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return None
	case "nature":
		return Nature
	case "architecture":
		return Architecture
	default:
		return Portrait
	}
}

// Request describes a single placeholder image.
type Request struct {
	Path     string
	Width    int
	Height   int
	Label    string
	Category Category
	// Theme names a theme explicitly and takes precedence over Category.
	Theme string
}

// Validate reports configuration errors that must stop the request before
// anything is allocated or written.
func (r Request) Validate() error {
	if r.Path == "" {
		return ErrEmptyPath
	}
	if err := checkSize(r.Width, r.Height); err != nil {
		return fmt.Errorf("%s: %w", r.Path, err)
	}
	if r.Theme != "" {
		if _, ok := ThemeByName(r.Theme); !ok {
			return fmt.Errorf("%s: %w %q", r.Path, ErrUnknownTheme, r.Theme)
		}
	}
	return nil
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

package batch

import (
	"fmt"
	"path"
	"strings"

	"github.com/bagtoad/placegen/internal/placeholder"
)

// Built-in batch names.
const (
	Gallery      = "gallery"
	About        = "about"
	Placeholders = "placeholders"
)

// teamMembers are the people shown on the about page.
var teamMembers = []string{"Emily Rodriguez", "Michael Chen", "Sarah Thompson"}

// Builtin returns fresh copies of the built-in batches in run order.
func Builtin() []Batch {
	return []Batch{galleryBatch(), aboutBatch(), placeholdersBatch()}
}

func galleryBatch() Batch {
	img := func(name string, w, h int, label string, c placeholder.Category) placeholder.Request {
		return placeholder.Request{
			Path:     path.Join("public", "gallery", name),
			Width:    w,
			Height:   h,
			Label:    label,
			Category: c,
		}
	}
	return Batch{
		Name:      Gallery,
		Message:   "Gallery images generated successfully!",
		Placement: placeholder.Bottom,
		Fallback:  placeholder.ThemePortrait,
		Images: []placeholder.Request{
			img("nature1.jpg", 800, 600, "Forest Path", placeholder.Nature),
			img("architecture1.jpg", 600, 800, "Modern Building", placeholder.Architecture),
			img("portrait1.jpg", 600, 800, "Professional", placeholder.Portrait),
			img("nature2.jpg", 1600, 900, "Mountain Lake", placeholder.Nature),
			img("architecture2.jpg", 600, 800, "Cathedral", placeholder.Architecture),
			img("portrait2.jpg", 600, 800, "Artistic", placeholder.Portrait),
			img("nature3.jpg", 800, 600, "Autumn", placeholder.Nature),
			img("architecture3.jpg", 1600, 900, "Skyline", placeholder.Architecture),
			img("portrait3.jpg", 600, 800, "Candid", placeholder.Portrait),
		},
	}
}

func aboutBatch() Batch {
	images := []placeholder.Request{
		{Path: "public/about-hero.jpg", Width: 1920, Height: 1080, Label: "Landscape Design"},
		{Path: "public/studio-story.jpg", Width: 1200, Height: 800, Label: "Our Studio"},
	}
	for _, member := range teamMembers {
		images = append(images, placeholder.Request{
			Path:   path.Join("public", "team", SnakeName(member)+".jpg"),
			Width:  800,
			Height: 800,
			Label:  member,
			Theme:  placeholder.ThemeTeam,
		})
	}
	return Batch{
		Name:      About,
		Message:   "About page images generated successfully!",
		Placement: placeholder.Center,
		Fallback:  placeholder.ThemeLandscape,
		Images:    images,
	}
}

func placeholdersBatch() Batch {
	labels := []struct {
		w, h  int
		label string
	}{
		{800, 600, "Modern Garden"},
		{600, 800, "Backyard"},
		{1000, 600, "Water Feature"},
		{800, 500, "Sustainable Design"},
		{700, 900, "Urban Garden"},
		{900, 600, "Zen Space"},
		{800, 700, "Mediterranean"},
		{1000, 700, "Tropical Landscape"},
		{600, 800, "Woodland Garden"},
	}

	images := make([]placeholder.Request, 0, len(labels))
	for i, l := range labels {
		images = append(images, placeholder.Request{
			Path:   path.Join("public", "gallery", fmt.Sprintf("landscape%d.jpg", i+1)),
			Width:  l.w,
			Height: l.h,
			Label:  l.label,
		})
	}
	return Batch{
		Name:      Placeholders,
		Message:   "Placeholder images generated successfully!",
		Placement: placeholder.Center,
		Fallback:  placeholder.ThemeDusk,
		Images:    images,
	}
}

// SnakeName lowercases a display name and joins its words with underscores.
func SnakeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

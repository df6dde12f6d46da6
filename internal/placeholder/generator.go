package placeholder

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/rs/zerolog/log"

	"github.com/bagtoad/placegen/internal/fonts"
	"github.com/bagtoad/placegen/internal/output"
)

// Options configures a Generator. The zero value is usable.
type Options struct {
	// Rand drives decoration placement. Nil uses the process-wide source.
	Rand Source
	// Placement is the vertical label position.
	Placement Placement
	// Fallback names the theme used for requests without a category.
	Fallback string
	// Font supplies label faces. Nil uses fonts.Default().
	Font *fonts.Resolver
	// Quality is the JPEG quality, 1-100.
	Quality int
	// LabelColor defaults to white.
	LabelColor color.Color
}

// Generator renders placeholder images and writes them as JPEG files.
// A Generator without an explicit Rand is safe for concurrent use.
type Generator struct {
	opts Options
}

// New returns a Generator with zero options replaced by defaults.
func New(opts Options) *Generator {
	if opts.Rand == nil {
		opts.Rand = globalSource{}
	}
	if opts.Fallback == "" {
		opts.Fallback = ThemeLandscape
	}
	if opts.Font == nil {
		opts.Font = fonts.Default()
	}
	if opts.Quality <= 0 || opts.Quality > 100 {
		opts.Quality = output.DefaultQuality
	}
	if opts.LabelColor == nil {
		opts.LabelColor = color.White
	}
	return &Generator{opts: opts}
}

// WithRand returns a copy of g drawing decorations from rng.
func (g *Generator) WithRand(rng Source) *Generator {
	c := *g
	if rng == nil {
		rng = globalSource{}
	}
	c.opts.Rand = rng
	return &c
}

// WithPolicy returns a copy of g using the given label placement and
// fallback theme.
func (g *Generator) WithPolicy(p Placement, fallback string) *Generator {
	c := *g
	c.opts.Placement = p
	if fallback != "" {
		c.opts.Fallback = fallback
	}
	return &c
}

// Options returns the effective options.
func (g *Generator) Options() Options {
	return g.opts
}

// Theme returns the theme a request renders with.
func (g *Generator) Theme(req Request) (Theme, error) {
	if req.Theme != "" {
		t, ok := ThemeByName(req.Theme)
		if !ok {
			return Theme{}, fmt.Errorf("%w %q", ErrUnknownTheme, req.Theme)
		}
		return t, nil
	}
	return ThemeFor(req.Category, g.opts.Fallback), nil
}

// Render draws the image for req without touching the file system.
func (g *Generator) Render(req Request) (image.Image, error) {
	if err := checkSize(req.Width, req.Height); err != nil {
		return nil, err
	}
	theme, err := g.Theme(req)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(req.Width, req.Height)
	paintBackground(dc, theme.Background)
	theme.Decorate(dc, g.opts.Rand)
	drawLabel(dc, g.opts.Font.Face(), req.Label, g.opts.Placement, g.opts.LabelColor)

	return dc.Image(), nil
}

// Generate renders req and writes it to req.Path, replacing any existing
// file. Invalid requests fail before anything is created on disk.
func (g *Generator) Generate(ctx context.Context, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	img, err := g.Render(req)
	if err != nil {
		return fmt.Errorf("%s: %w", req.Path, err)
	}
	if err := output.WriteJPEG(req.Path, img, g.opts.Quality); err != nil {
		return err
	}

	log.Debug().
		Str("path", req.Path).
		Int("width", req.Width).
		Int("height", req.Height).
		Str("category", string(req.Category)).
		Msg("Generated placeholder")
	return nil
}

// Generate writes a single placeholder with default options. category may
// be empty.
func Generate(path string, width, height int, label string, category Category) error {
	return New(Options{}).Generate(context.Background(), Request{
		Path:     path,
		Width:    width,
		Height:   height,
		Label:    label,
		Category: category,
	})
}

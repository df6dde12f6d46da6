package placeholder

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bagtoad/placegen/internal/fonts"
)

// decodeJPEG opens path and returns its decoded header, failing the test if
// the file is missing or not a JPEG.
func decodeJPEG(t *testing.T, path string) image.Config {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("cannot open %s: %v", path, err)
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		t.Fatalf("cannot decode %s: %v", path, err)
	}
	b := img.Bounds()
	return image.Config{ColorModel: img.ColorModel(), Width: b.Dx(), Height: b.Dy()}
}

func TestGenerateScenarios(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		path     string
		width    int
		height   int
		label    string
		category Category
	}{
		{"landscape", filepath.Join(dir, "out", "a.jpg"), 800, 600, "Modern Garden", None},
		{"new directory", filepath.Join(dir, "out", "team", "x.jpg"), 800, 800, "Jane Doe", None},
		{"empty label", filepath.Join(dir, "out", "c.jpg"), 600, 800, "", Architecture},
		{"nature", filepath.Join(dir, "out", "n.jpg"), 320, 240, "Forest Path", Nature},
		{"portrait", filepath.Join(dir, "out", "p.jpg"), 240, 320, "Candid", Portrait},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := Generate(tc.path, tc.width, tc.height, tc.label, tc.category); err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			cfg := decodeJPEG(t, tc.path)
			if cfg.Width != tc.width || cfg.Height != tc.height {
				t.Errorf("expected %dx%d, got %dx%d", tc.width, tc.height, cfg.Width, cfg.Height)
			}
			if cfg.ColorModel != color.YCbCrModel {
				t.Errorf("expected a colour JPEG, got model %v", cfg.ColorModel)
			}
		})
	}
}

func TestGenerateInvalidDimensions(t *testing.T) {
	dir := t.TempDir()

	sizes := [][2]int{{0, 600}, {600, 0}, {-1, 10}, {10, -5}, {0, 0}}
	for _, s := range sizes {
		path := filepath.Join(dir, "bad", "b.jpg")
		err := Generate(path, s[0], s[1], "Bad", None)
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("%dx%d: expected ErrInvalidDimensions, got %v", s[0], s[1], err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("%dx%d: file should not exist", s[0], s[1])
		}
		if _, err := os.Stat(filepath.Dir(path)); !os.IsNotExist(err) {
			t.Errorf("%dx%d: directory should not have been created", s[0], s[1])
		}
	}
}

func TestGenerateEmptyPath(t *testing.T) {
	err := Generate("", 10, 10, "x", None)
	if !errors.Is(err, ErrEmptyPath) {
		t.Errorf("expected ErrEmptyPath, got %v", err)
	}
}

func TestGenerateUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "u.jpg")
	err := New(Options{}).Generate(context.Background(), Request{Path: path, Width: 10, Height: 10, Theme: "neon"})
	if !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("expected ErrUnknownTheme, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should not exist for an unknown theme")
	}
}

func TestGenerateTwiceInNewDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fresh", "nested")

	for i, name := range []string{"one.jpg", "two.jpg"} {
		if err := Generate(filepath.Join(dir, name), 64, 48, "Twice", None); err != nil {
			t.Fatalf("call %d failed: %v", i+1, err)
		}
	}
}

func TestGenerateOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "over.jpg")
	if err := os.WriteFile(path, []byte("not a jpeg"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Generate(path, 120, 90, "Again", Nature); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	cfg := decodeJPEG(t, path)
	if cfg.Width != 120 || cfg.Height != 90 {
		t.Errorf("expected 120x90, got %dx%d", cfg.Width, cfg.Height)
	}

	// No temp files should be left next to the output.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the output file, found %d entries", len(entries))
	}
}

func TestGenerateCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "c.jpg")
	err := New(Options{}).Generate(ctx, Request{Path: path, Width: 10, Height: 10})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRenderOverflowingLabel(t *testing.T) {
	g := New(Options{})
	label := strings.Repeat("Much Too Wide ", 40)

	for _, p := range []Placement{Center, Bottom} {
		img, err := g.WithPolicy(p, "").Render(Request{Width: 40, Height: 30, Label: label})
		if err != nil {
			t.Fatalf("%s: Render failed: %v", p, err)
		}
		if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
			t.Errorf("%s: expected 40x30, got %v", p, b)
		}
	}
}

func TestRenderSeededIsDeterministic(t *testing.T) {
	req := Request{Width: 200, Height: 150, Label: "Seeded", Category: Nature}

	render := func() []byte {
		g := New(Options{Rand: rand.New(rand.NewPCG(7, 11))})
		img, err := g.Render(req)
		if err != nil {
			t.Fatal(err)
		}
		rgba, ok := img.(*image.RGBA)
		if !ok {
			t.Fatalf("expected *image.RGBA, got %T", img)
		}
		return rgba.Pix
	}

	if !bytes.Equal(render(), render()) {
		t.Error("renders with the same seed should be identical")
	}
}

func TestRenderFontFallback(t *testing.T) {
	r := fonts.New("definitely-not-installed-7f3a.ttf", 24)
	g := New(Options{Font: r})

	img, err := g.Render(Request{Width: 300, Height: 100, Label: "Fallback"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 100 {
		t.Errorf("expected 300x100, got %v", b)
	}
	if !strings.HasPrefix(r.Source(), "builtin:") {
		t.Errorf("expected a built-in font, got %q", r.Source())
	}

	path := filepath.Join(t.TempDir(), "fallback.jpg")
	if err := g.Generate(context.Background(), Request{Path: path, Width: 300, Height: 100, Label: "Fallback"}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	decodeJPEG(t, path)
}

func TestGeneratorTheme(t *testing.T) {
	g := New(Options{Fallback: ThemeDusk})

	tests := []struct {
		req  Request
		want string
	}{
		{Request{}, ThemeDusk},
		{Request{Category: Nature}, ThemeNature},
		{Request{Category: Architecture}, ThemeArchitecture},
		{Request{Category: Portrait}, ThemePortrait},
		{Request{Category: Category("Abstract")}, ThemePortrait},
		{Request{Category: Nature, Theme: "Team"}, ThemeTeam},
	}
	for _, tc := range tests {
		th, err := g.Theme(tc.req)
		if err != nil {
			t.Fatalf("%+v: %v", tc.req, err)
		}
		if th.Name != tc.want {
			t.Errorf("%+v: expected theme %q, got %q", tc.req, tc.want, th.Name)
		}
	}
}

func TestNewDefaults(t *testing.T) {
	opts := New(Options{Quality: 500}).Options()
	if opts.Quality != 75 {
		t.Errorf("expected quality 75, got %d", opts.Quality)
	}
	if opts.Fallback != ThemeLandscape {
		t.Errorf("expected fallback %q, got %q", ThemeLandscape, opts.Fallback)
	}
	if opts.Rand == nil || opts.Font == nil || opts.LabelColor == nil {
		t.Error("expected defaults for Rand, Font and LabelColor")
	}
}

package output

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func solid(w, h int) image.Image {
	return imaging.New(w, h, color.NRGBA{R: 40, G: 120, B: 200, A: 255})
}

func TestWriteJPEGCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "public", "team", "jane_doe.jpg")

	if err := WriteJPEG(path, solid(64, 32), 90); err != nil {
		t.Fatalf("WriteJPEG failed: %v", err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("cannot decode output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("expected 64x32, got %v", b)
	}
}

func TestWriteJPEGReplacesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hero.jpg")

	if err := WriteJPEG(path, solid(10, 10), 0); err != nil {
		t.Fatal(err)
	}
	if err := WriteJPEG(path, solid(20, 15), 0); err != nil {
		t.Fatal(err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 15 {
		t.Errorf("expected the second image, got %v", b)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestWriteJPEGParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "public")
	if err := os.WriteFile(blocker, []byte("file"), 0644); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(blocker, "gallery", "x.jpg")
	err := WriteJPEG(path, solid(4, 4), 75)
	if err == nil {
		t.Fatal("expected an error when the parent is a file")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the path: %v", err)
	}
}

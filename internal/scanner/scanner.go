// Package scanner inspects generated JPEG assets on disk.
package scanner

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bagtoad/placegen/internal/placeholder"
)

// SupportedExtensions contains the file extensions treated as JPEG assets.
var SupportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
}

// Asset is a JPEG file found on disk.
type Asset struct {
	Path   string
	Width  int
	Height int
	// Err is set when the file could not be decoded.
	Err error
}

// Result holds the output of scanning a directory.
type Result struct {
	Assets       []Asset
	SkippedCount int
}

// Scan lists the JPEG files directly inside dir with their dimensions.
// Hidden entries are ignored, other files are counted as skipped, and
// undecodable JPEGs are reported on their Asset rather than failing the scan.
func Scan(dir string) (*Result, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory: %w", err)
	}

	result := &Result{}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !SupportedExtensions[ext] {
			result.SkippedCount++
			continue
		}
		result.Assets = append(result.Assets, Probe(filepath.Join(dir, entry.Name())))
	}
	return result, nil
}

// Probe decodes the JPEG header of a single file.
func Probe(path string) Asset {
	asset := Asset{Path: path}

	f, err := os.Open(path)
	if err != nil {
		asset.Err = err
		return asset
	}
	defer f.Close()

	cfg, err := jpeg.DecodeConfig(f)
	if err != nil {
		asset.Err = fmt.Errorf("cannot decode %s: %w", path, err)
		return asset
	}
	asset.Width, asset.Height = cfg.Width, cfg.Height
	return asset
}

// Problem describes an expected asset that is missing or wrong.
type Problem struct {
	Path   string
	Reason string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Path, p.Reason)
}

// Verify checks that every request has a decodable JPEG of the requested
// size at its path. Requests are grouped by directory so each directory is
// scanned once.
func Verify(reqs []placeholder.Request) []Problem {
	byDir := make(map[string][]placeholder.Request)
	for _, r := range reqs {
		dir := filepath.Dir(r.Path)
		byDir[dir] = append(byDir[dir], r)
	}

	dirs := make([]string, 0, len(byDir))
	for d := range byDir {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)

	var problems []Problem
	for _, dir := range dirs {
		found := make(map[string]Asset)
		if res, err := Scan(dir); err == nil {
			for _, a := range res.Assets {
				found[a.Path] = a
			}
		}

		for _, r := range byDir[dir] {
			a, ok := found[r.Path]
			if !ok {
				// Extensions outside SupportedExtensions are probed directly.
				if _, err := os.Stat(r.Path); err != nil {
					problems = append(problems, Problem{Path: r.Path, Reason: "missing"})
					continue
				}
				a = Probe(r.Path)
			}
			switch {
			case a.Err != nil:
				problems = append(problems, Problem{Path: r.Path, Reason: a.Err.Error()})
			case a.Width != r.Width || a.Height != r.Height:
				problems = append(problems, Problem{
					Path:   r.Path,
					Reason: fmt.Sprintf("expected %dx%d, found %dx%d", r.Width, r.Height, a.Width, a.Height),
				})
			}
		}
	}
	return problems
}

// Package fonts resolves a named TrueType font, falling back to a built-in face.
package fonts

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	// DefaultName is the font looked up when none is configured.
	DefaultName = "arial.ttf"
	// DefaultSize is the label size in points.
	DefaultSize = 40.0

	builtinRegular = "builtin:goregular"
	builtinBitmap  = "builtin:basic7x13"
)

// Resolver finds a font by file name and hands out faces for it. The lookup
// happens once; Face never fails.
type Resolver struct {
	name string
	size float64
	dirs []string

	once   sync.Once
	font   *truetype.Font
	source string
}

// New returns a resolver for the named font file at size points. Extra
// directories are searched before the platform font directories.
func New(name string, size float64, dirs ...string) *Resolver {
	if name == "" {
		name = DefaultName
	}
	if size <= 0 {
		size = DefaultSize
	}
	return &Resolver{name: name, size: size, dirs: dirs}
}

var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
)

// Default returns the shared resolver for DefaultName at DefaultSize.
func Default() *Resolver {
	defaultOnce.Do(func() {
		defaultResolver = New(DefaultName, DefaultSize)
	})
	return defaultResolver
}

// Face returns a new face for the resolved font. Faces cache glyphs and are
// not safe for concurrent use, so every caller gets its own.
func (r *Resolver) Face() font.Face {
	r.once.Do(r.load)
	if r.font == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(r.font, &truetype.Options{Size: r.size})
}

// Source reports where the font came from: a file path or a builtin:* marker.
func (r *Resolver) Source() string {
	r.once.Do(r.load)
	return r.source
}

func (r *Resolver) load() {
	if path, ok := r.Locate(); ok {
		f, err := parseFile(path)
		if err == nil {
			r.font, r.source = f, path
			log.Debug().Str("font", path).Msg("Loaded label font")
			return
		}
		log.Debug().Err(err).Str("font", path).Msg("Cannot parse font, using built-in face")
	} else {
		log.Debug().Str("font", r.name).Msg("Font not found, using built-in face")
	}

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Debug().Err(err).Msg("Cannot parse built-in font, using bitmap face")
		r.source = builtinBitmap
		return
	}
	r.font, r.source = f, builtinRegular
}

// Locate searches for the font file: the name itself, then each configured
// directory, then the platform font directories. Directory matches are
// case-insensitive and include subdirectories.
func (r *Resolver) Locate() (string, bool) {
	if info, err := os.Stat(r.name); err == nil && !info.IsDir() {
		return r.name, true
	}

	base := filepath.Base(r.name)
	for _, dir := range append(append([]string{}, r.dirs...), systemDirs()...) {
		if path, ok := findIn(dir, base); ok {
			return path, true
		}
	}
	return "", false
}

func findIn(dir, base string) (string, bool) {
	var found string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && strings.EqualFold(d.Name(), base) {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	return found, found != ""
}

func parseFile(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return truetype.Parse(data)
}

func systemDirs() []string {
	var dirs []string
	home, _ := os.UserHomeDir()

	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs = append(dirs, filepath.Join(windir, "Fonts"))
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
	case "darwin":
		dirs = append(dirs, "/Library/Fonts", "/System/Library/Fonts")
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
	default:
		dirs = append(dirs, "/usr/share/fonts", "/usr/local/share/fonts")
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".fonts"), filepath.Join(home, ".local", "share", "fonts"))
		}
	}
	return dirs
}

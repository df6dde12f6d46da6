// Package config loads placegen settings from an optional file, the
// environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bagtoad/placegen/internal/batch"
	"github.com/bagtoad/placegen/internal/fonts"
	"github.com/bagtoad/placegen/internal/output"
	"github.com/bagtoad/placegen/internal/placeholder"
)

// DefaultFile is read when present and no file is named explicitly.
const DefaultFile = "placegen.yaml"

// EnvPrefix prefixes environment overrides, e.g. PLACEGEN_WORKERS.
const EnvPrefix = "PLACEGEN"

// Config is the top-level configuration.
type Config struct {
	Root     string        `mapstructure:"root"`      // directory output paths are relative to
	Workers  int           `mapstructure:"workers"`   // images rendered at once
	Quality  int           `mapstructure:"quality"`   // JPEG quality 1-100
	Seed     int64         `mapstructure:"seed"`      // 0 leaves decorations unseeded
	LogLevel string        `mapstructure:"log_level"` // zerolog level name
	Font     FontConfig    `mapstructure:"font"`
	Batches  []BatchConfig `mapstructure:"batches"`
}

// FontConfig selects the label font.
type FontConfig struct {
	Name string   `mapstructure:"name"`
	Size float64  `mapstructure:"size"`
	Dirs []string `mapstructure:"dirs"`
}

// BatchConfig declares a batch. A batch named like a built-in replaces it.
type BatchConfig struct {
	Name      string        `mapstructure:"name"`
	Message   string        `mapstructure:"message"`
	Placement string        `mapstructure:"placement"`
	Theme     string        `mapstructure:"theme"` // fallback for images without a category
	Images    []ImageConfig `mapstructure:"images"`
}

// ImageConfig declares a single image.
type ImageConfig struct {
	Path     string `mapstructure:"path"`
	Width    int    `mapstructure:"width"`
	Height   int    `mapstructure:"height"`
	Label    string `mapstructure:"label"`
	Category string `mapstructure:"category"`
	Theme    string `mapstructure:"theme"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Root:     ".",
		Workers:  1,
		Quality:  output.DefaultQuality,
		LogLevel: "info",
		Font: FontConfig{
			Name: fonts.DefaultName,
			Size: fonts.DefaultSize,
		},
	}
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"root":      "root",
	"workers":   "workers",
	"seed":      "seed",
	"quality":   "quality",
	"log-level": "log_level",
	"font":      "font.name",
}

// Load builds the configuration from defaults, the file at path, PLACEGEN_*
// environment variables and any changed flags in that order of increasing
// precedence. An empty path reads DefaultFile if it exists; a named file
// must exist.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("root", def.Root)
	v.SetDefault("workers", def.Workers)
	v.SetDefault("quality", def.Quality)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("font.name", def.Font.Name)
	v.SetDefault("font.size", def.Font.Size)
	v.SetDefault("font.dirs", []string{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("cannot bind flag %s: %w", name, err)
				}
			}
		}
	}

	file, err := configFile(path)
	if err != nil {
		return nil, err
	}
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType(configType(file))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func configFile(path string) (string, error) {
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			return DefaultFile, nil
		}
		return "", nil
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("cannot access config file: %w", err)
	}
	return path, nil
}

func configType(path string) string {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "toml", "json":
		return ext
	default:
		return "yaml"
	}
}

// Validate checks settings that would otherwise fail every request. Image
// dimensions are left to the generator so that a bad entry only fails itself.
func (c *Config) Validate() error {
	var errs []error

	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("config: workers must be at least 1 (got %d)", c.Workers))
	}
	if c.Quality < 1 || c.Quality > 100 {
		errs = append(errs, fmt.Errorf("config: quality must be between 1 and 100 (got %d)", c.Quality))
	}
	if c.Font.Size <= 0 {
		errs = append(errs, fmt.Errorf("config: font.size must be positive (got %v)", c.Font.Size))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("config: log_level: %w", err))
	}

	names := make(map[string]bool)
	for i, b := range c.Batches {
		if strings.TrimSpace(b.Name) == "" {
			errs = append(errs, fmt.Errorf("config: batches[%d]: name is required", i))
		} else if names[strings.ToLower(b.Name)] {
			errs = append(errs, fmt.Errorf("config: batches[%d]: duplicate name %q", i, b.Name))
		}
		names[strings.ToLower(b.Name)] = true

		if _, err := placeholder.ParsePlacement(b.Placement); err != nil {
			errs = append(errs, fmt.Errorf("config: batch %q: %w", b.Name, err))
		}
		if b.Theme != "" {
			if _, ok := placeholder.ThemeByName(b.Theme); !ok {
				errs = append(errs, fmt.Errorf("config: batch %q: unknown theme %q", b.Name, b.Theme))
			}
		}
		for j, img := range b.Images {
			if img.Path == "" {
				errs = append(errs, fmt.Errorf("config: batch %q: images[%d]: path is required", b.Name, j))
			}
			if img.Theme != "" {
				if _, ok := placeholder.ThemeByName(img.Theme); !ok {
					errs = append(errs, fmt.Errorf("config: batch %q: images[%d]: unknown theme %q", b.Name, j, img.Theme))
				}
			}
		}
	}

	return errors.Join(errs...)
}

// CustomBatches converts the configured batches. Call after Validate.
func (c *Config) CustomBatches() []batch.Batch {
	batches := make([]batch.Batch, 0, len(c.Batches))
	for _, bc := range c.Batches {
		placement, _ := placeholder.ParsePlacement(bc.Placement)
		b := batch.Batch{
			Name:      bc.Name,
			Message:   bc.Message,
			Placement: placement,
			Fallback:  bc.Theme,
			Images:    make([]placeholder.Request, 0, len(bc.Images)),
		}
		for _, img := range bc.Images {
			b.Images = append(b.Images, placeholder.Request{
				Path:     img.Path,
				Width:    img.Width,
				Height:   img.Height,
				Label:    img.Label,
				Category: placeholder.ParseCategory(img.Category),
				Theme:    img.Theme,
			})
		}
		batches = append(batches, b)
	}
	return batches
}

// ResolvedBatches returns the built-in batches merged with the configured ones.
func (c *Config) ResolvedBatches() []batch.Batch {
	return batch.Resolve(c.CustomBatches())
}

// FontResolver returns a resolver for the configured label font.
func (c *Config) FontResolver() *fonts.Resolver {
	return fonts.New(c.Font.Name, c.Font.Size, c.Font.Dirs...)
}

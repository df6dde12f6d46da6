package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bagtoad/placegen/internal/batch"
	"github.com/bagtoad/placegen/internal/config"
	"github.com/bagtoad/placegen/internal/placeholder"
	"github.com/bagtoad/placegen/internal/report"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// app carries state shared by all subcommands once flags are parsed.
type app struct {
	configPath string
	summary    bool

	cfg     *config.Config
	batches []batch.Batch
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "placegen [batch...]",
		Short: "Generate placeholder JPEG images for the website",
		Long: `placegen paints placeholder images (gradient background, a few
decorative shapes and a text label) and writes them as JPEG files under
public/.

Run without arguments to generate every batch: the gallery images, the about
page images and the landscape placeholders. Name one or more batches to
generate only those. Batches can be replaced or added in placegen.yaml.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to config file (default ./"+config.DefaultFile+" if present)")
	pf.String("root", ".", "directory output paths are relative to")
	pf.Int("workers", 1, "number of images rendered at once")
	pf.Int64("seed", 0, "seed for decoration placement (0 = random)")
	pf.Int("quality", 75, "JPEG quality (1-100)")
	pf.String("font", "", "label font file name or path")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.BoolVar(&a.summary, "summary", false, "print a per-image summary")

	for _, b := range batch.Builtin() {
		name := b.Name
		rootCmd.AddCommand(&cobra.Command{
			Use:   name,
			Short: fmt.Sprintf("Generate the %s batch (%d images)", name, len(b.Images)),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd, []string{name})
			},
		})
	}

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newListCmd(a),
		newVerifyCmd(a),
		newWatchCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads configuration and configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if err := setupLogging(cfg.LogLevel); err != nil {
		return err
	}
	a.cfg = cfg
	a.batches = cfg.ResolvedBatches()
	log.Debug().Str("root", cfg.Root).Int("workers", cfg.Workers).Int("batches", len(a.batches)).Msg("Configuration loaded")
	return nil
}

func (a *app) generator() *placeholder.Generator {
	return placeholder.New(placeholder.Options{
		Font:    a.cfg.FontResolver(),
		Quality: a.cfg.Quality,
	})
}

func (a *app) runOptions() batch.Options {
	return batch.Options{Root: a.cfg.Root, Workers: a.cfg.Workers, Seed: a.cfg.Seed}
}

// run generates the named batches, or all of them.
func (a *app) run(cmd *cobra.Command, names []string) error {
	selected, err := batch.Select(a.batches, names)
	if err != nil {
		return err
	}
	return a.runBatches(cmd, selected)
}

func (a *app) runBatches(cmd *cobra.Command, selected []batch.Batch) error {
	results, err := batch.Run(cmd.Context(), a.generator(), selected, a.runOptions())
	if results == nil && err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if a.summary {
		report.Print(out, selected, results)
	} else {
		report.Confirm(out, selected, results)
	}
	return err
}

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	return nil
}

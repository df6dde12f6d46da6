package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bagtoad/placegen/internal/config"
	"github.com/bagtoad/placegen/internal/watcher"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [batch...]",
		Short: "Regenerate whenever the config file changes",
		Long: `watch generates the selected batches, then regenerates them each time
the config file is saved. Press Ctrl+C to stop.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath
			if path == "" {
				path = config.DefaultFile
			}
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("watch needs a config file: %w", err)
			}
			a.configPath = path

			if err := a.run(cmd, args); err != nil {
				log.Error().Err(err).Msg("Generation failed")
			}

			log.Info().Str("file", path).Msg("Watching for changes")
			return watcher.Watch(cmd.Context(), path, watcher.DefaultDebounce, func() {
				if err := a.setup(cmd); err != nil {
					log.Error().Err(err).Msg("Config reload failed")
					return
				}
				if err := a.run(cmd, args); err != nil {
					log.Error().Err(err).Msg("Generation failed")
				}
			})
		},
	}
}

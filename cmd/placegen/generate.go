package main

import (
	"github.com/spf13/cobra"

	"github.com/bagtoad/placegen/internal/batch"
	"github.com/bagtoad/placegen/internal/placeholder"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		out       string
		width     int
		height    int
		label     string
		category  string
		theme     string
		placement string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a single placeholder image",
		Long: `generate writes one placeholder image. --theme names the styling
directly and takes priority over --category; the category selects the gallery
styling (nature, architecture, portrait). With neither, landscape is used.`,
		Example: `  placegen generate --out public/blog/cover.jpg --width 1200 --height 630 --label "Journal"
  placegen generate --out out/c.jpg --width 600 --height 800 --category architecture --placement bottom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := placeholder.ParsePlacement(placement)
			if err != nil {
				return err
			}
			b := batch.Batch{
				Name:      "generate",
				Message:   "Placeholder image generated successfully!",
				Placement: p,
				Images: []placeholder.Request{{
					Path:     out,
					Width:    width,
					Height:   height,
					Label:    label,
					Category: placeholder.ParseCategory(category),
					Theme:    theme,
				}},
			}
			return a.runBatches(cmd, []batch.Batch{b})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "placeholder.jpg", "output path")
	cmd.Flags().IntVar(&width, "width", 640, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 480, "image height in pixels")
	cmd.Flags().StringVar(&label, "label", "Placeholder Image", "text drawn on the image")
	cmd.Flags().StringVar(&category, "category", "", "gallery category: nature, architecture or portrait")
	cmd.Flags().StringVar(&theme, "theme", "", "theme name, overrides --category (see list --themes)")
	cmd.Flags().StringVar(&placement, "placement", "center", "label placement: center or bottom")
	return cmd
}

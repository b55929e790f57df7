// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/carousel/internal/carousel"
	"github.com/pdiddy/carousel/internal/export"
)

var gridCmd = &cobra.Command{
	Use:   "grid [images-dir | input.pptx]",
	Short: "Assemble slide images into a review grid deck",
	Long: `Grid lays exported slide images out as thumbnails, several per page,
with page titles, borders and slide-number labels. Given a .pptx instead
of an images directory, the slides are exported first.`,
	Args: cobra.ExactArgs(1),
	RunE: runGrid,
}

func runGrid(cmd *cobra.Command, args []string) error {
	input := args[0]
	pattern, _ := cmd.Flags().GetString("pattern")
	conf := loadConfig()

	imagesDir := input
	if strings.EqualFold(filepath.Ext(input), ".pptx") {
		tmp, err := os.MkdirTemp("", "carousel-grid-")
		if err != nil {
			return fmt.Errorf("creating work directory: %w", err)
		}
		defer os.RemoveAll(tmp)

		exporter, err := export.Detect(string(conf.Export.Backend))
		if err != nil {
			return err
		}
		if _, err := exporter.Export(context.Background(), input, tmp, nil, export.Options{
			DPI:      conf.Export.DPI,
			NoCache:  conf.Export.NoCache,
			CacheDir: conf.Export.CacheDir,
			FontDirs: conf.Export.FontDirs,
			Progress: os.Stdout,
		}); err != nil {
			return err
		}
		imagesDir = tmp
	}

	images, err := carousel.CollectImages(imagesDir, pattern)
	if err != nil {
		return err
	}

	cfg := conf.Grid
	if cmd.Flags().Changed("slides-per-page") {
		cfg.SlidesPerPage, _ = cmd.Flags().GetInt("slides-per-page")
	}
	if cmd.Flags().Changed("width") {
		cfg.WidthInches, _ = cmd.Flags().GetFloat64("width")
	}
	if cmd.Flags().Changed("height") {
		cfg.HeightInches, _ = cmd.Flags().GetFloat64("height")
	}
	if noTitles, _ := cmd.Flags().GetBool("no-titles"); noTitles {
		cfg.Titles = false
	}
	if noBorders, _ := cmd.Flags().GetBool("no-borders"); noBorders {
		cfg.Borders = false
	}

	doc, err := carousel.BuildGrid(images, cfg)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = filepath.Join(filepath.Dir(input), stem(input)+"_carousel.pptx")
	}
	if err := doc.Save(output); err != nil {
		return err
	}

	fmt.Printf("grid: %s (%d images, %d pages)\n", output, len(images), doc.SlideCount())
	return nil
}

func init() {
	gridCmd.Flags().StringP("output", "o", "", "output path (default: <stem>_carousel.pptx)")
	gridCmd.Flags().IntP("slides-per-page", "s", 4, "thumbnails per page (max 9)")
	gridCmd.Flags().Float64("width", 16.0, "page width in inches")
	gridCmd.Flags().Float64("height", 9.0, "page height in inches")
	gridCmd.Flags().Bool("no-titles", false, "skip page titles")
	gridCmd.Flags().Bool("no-borders", false, "skip thumbnail borders")
	gridCmd.Flags().String("pattern", "slide_*.png", "image filename pattern")

	rootCmd.AddCommand(gridCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/carousel/internal/export"
	"github.com/pdiddy/carousel/internal/extract"
	"github.com/pdiddy/carousel/internal/pptx"
	"github.com/pdiddy/carousel/internal/ranges"
	"github.com/pdiddy/carousel/pkg/types"
)

var definitionCmd = &cobra.Command{
	Use:   "definition [input.pptx]",
	Short: "Extract a deck's structure into a definition document",
	Long: `Definition walks every shape of the deck into a JSON or YAML document:
geometry in inches, text runs with fonts, tables, groups, and notes.
With --export-images each selected slide is also rendered to PNG and
referenced from the document.`,
	Args: cobra.ExactArgs(1),
	RunE: runDefinition,
}

func runDefinition(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	format, _ := cmd.Flags().GetString("format")
	if format != extract.FormatJSON && format != extract.FormatYAML {
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}

	deck, err := pptx.Open(inputPath)
	if err != nil {
		return err
	}

	indices, err := selectSlides(cmd, len(deck.Slides))
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		ext := "json"
		if format == extract.FormatYAML {
			ext = "yaml"
		}
		output = filepath.Join(filepath.Dir(inputPath), stem(inputPath)+"_definition."+ext)
	}

	def := extract.Build(deck, indices)

	if exportImages, _ := cmd.Flags().GetBool("export-images"); exportImages {
		imagesDir, _ := cmd.Flags().GetString("images-dir")
		if imagesDir == "" {
			imagesDir = filepath.Join(filepath.Dir(inputPath), stem(inputPath)+"_images")
		}
		cfg := loadConfig().Export
		if cmd.Flags().Changed("backend") {
			v, _ := cmd.Flags().GetString("backend")
			cfg.Backend = types.ExportBackend(v)
		}
		if cmd.Flags().Changed("dpi") {
			cfg.DPI, _ = cmd.Flags().GetInt("dpi")
		}
		if cmd.Flags().Changed("no-cache") {
			cfg.NoCache, _ = cmd.Flags().GetBool("no-cache")
		}

		exporter, err := export.Detect(string(cfg.Backend))
		if err != nil {
			return err
		}
		if _, err := exporter.Export(context.Background(), inputPath, imagesDir, indices, export.Options{
			DPI:      cfg.DPI,
			NoCache:  cfg.NoCache,
			CacheDir: cfg.CacheDir,
			FontDirs: cfg.FontDirs,
			Progress: os.Stdout,
		}); err != nil {
			return err
		}

		rel, err := filepath.Rel(filepath.Dir(output), imagesDir)
		if err != nil {
			rel = imagesDir
		}
		for i := range def.Slides {
			def.Slides[i].SlideImage = filepath.Join(rel,
				fmt.Sprintf("slide_%03d.png", def.Slides[i].Index))
		}
	}

	pretty, _ := cmd.Flags().GetBool("pretty")
	if err := extract.WriteFile(def, output, format, pretty); err != nil {
		return err
	}

	fmt.Printf("definition: %s (%d slides)\n", output, len(def.Slides))
	return nil
}

// selectSlides resolves --range and --max-slides into slide indices.
// A range expression wins when both are given; nil means every slide.
func selectSlides(cmd *cobra.Command, total int) ([]int, error) {
	rangeExpr, _ := cmd.Flags().GetString("range")
	if rangeExpr != "" {
		indices, err := ranges.Parse(rangeExpr, total)
		if err != nil {
			return nil, fmt.Errorf("parsing range %q: %w", rangeExpr, err)
		}
		return indices, nil
	}

	maxSlides, _ := cmd.Flags().GetInt("max-slides")
	if maxSlides > 0 && maxSlides < total {
		indices := make([]int, maxSlides)
		for i := range indices {
			indices[i] = i + 1
		}
		return indices, nil
	}
	return nil, nil
}

func init() {
	definitionCmd.Flags().StringP("output", "o", "", "output path (default: <stem>_definition.<ext>)")
	definitionCmd.Flags().StringP("format", "f", "json", "output format: json or yaml")
	definitionCmd.Flags().Bool("pretty", false, "indent JSON output")
	definitionCmd.Flags().Bool("export-images", false, "export each slide as PNG and reference it")
	definitionCmd.Flags().String("images-dir", "", "directory for exported images (default: <stem>_images)")
	definitionCmd.Flags().Int("max-slides", 0, "process only the first N slides")
	definitionCmd.Flags().String("range", "", "slide range, e.g. \"1-10,15\" or \"..5\"")
	definitionCmd.Flags().String("backend", export.BackendAuto, "image export backend: auto, native, or soffice")
	definitionCmd.Flags().Int("dpi", export.DefaultDPI, "image export resolution")
	definitionCmd.Flags().Bool("no-cache", false, "bypass the render cache")

	rootCmd.AddCommand(definitionCmd)
}

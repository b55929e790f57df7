// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/carousel/internal/carousel"
	"github.com/pdiddy/carousel/internal/extract"
	"github.com/pdiddy/carousel/internal/pptx"
	"github.com/pdiddy/carousel/internal/ranges"
)

var carouselCmd = &cobra.Command{
	Use:   "carousel [images-dir]",
	Short: "Assemble slide images into a template-driven carousel deck",
	Long: `Carousel builds one ultra-wide page per slide image, following the
picture placements of a template deck: the current slide sits in the
template's center slot with its neighbors partially visible, and
gradient overlays fade both edges to black.`,
	Args: cobra.ExactArgs(1),
	RunE: runCarousel,
}

func runCarousel(cmd *cobra.Command, args []string) error {
	imagesDir := args[0]
	templatePath, _ := cmd.Flags().GetString("template")
	pattern, _ := cmd.Flags().GetString("pattern")

	images, err := carousel.CollectImages(imagesDir, pattern)
	if err != nil {
		return err
	}

	if rangeExpr, _ := cmd.Flags().GetString("range"); rangeExpr != "" {
		indices, err := ranges.Parse(rangeExpr, len(images))
		if err != nil {
			return fmt.Errorf("parsing range %q: %w", rangeExpr, err)
		}
		selected := make([]string, 0, len(indices))
		for _, idx := range indices {
			selected = append(selected, images[idx-1])
		}
		images = selected
	}

	template, err := pptx.Open(templatePath)
	if err != nil {
		return err
	}
	layout := carousel.LayoutFromDefinition(extract.Build(template, nil))

	doc, err := carousel.BuildCarousel(images, layout)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = filepath.Join(filepath.Dir(imagesDir), stem(imagesDir)+"_carousel.pptx")
	}
	if err := doc.Save(output); err != nil {
		return err
	}

	fmt.Printf("carousel: %s (%d pages)\n", output, doc.SlideCount())
	return nil
}

func init() {
	carouselCmd.Flags().StringP("output", "o", "", "output path (default: <stem>_carousel.pptx)")
	carouselCmd.Flags().String("template", "", "template deck whose layout drives the carousel (required)")
	carouselCmd.Flags().String("pattern", "slide_*.png", "image filename pattern")
	carouselCmd.Flags().String("range", "", "image range, e.g. \"1-10,15\"")
	carouselCmd.MarkFlagRequired("template")

	rootCmd.AddCommand(carouselCmd)
}

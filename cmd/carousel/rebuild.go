// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/carousel/internal/rebuild"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild [definition.{json,yaml}]",
	Short: "Reconstruct a full-bleed deck from a definition document",
	Long: `Rebuild creates one slide per definition entry that has an exported
image, placing the image at full slide size. Image paths resolve
relative to the definition file. Slides whose image file is missing are
skipped with a warning.`,
	Args: cobra.ExactArgs(1),
	RunE: runRebuild,
}

func runRebuild(cmd *cobra.Command, args []string) error {
	defPath := args[0]

	width, _ := cmd.Flags().GetFloat64("width")
	height, _ := cmd.Flags().GetFloat64("height")

	doc, err := rebuild.FromDefinition(defPath, rebuild.Options{
		WidthInches:  width,
		HeightInches: height,
	}, os.Stderr)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = filepath.Join(filepath.Dir(defPath), stem(defPath)+"_rebuilt.pptx")
	}
	if err := doc.Save(output); err != nil {
		return err
	}

	fmt.Printf("rebuilt: %s (%d slides)\n", output, doc.SlideCount())
	return nil
}

func init() {
	rebuildCmd.Flags().StringP("output", "o", "", "output path (default: <stem>_rebuilt.pptx)")
	rebuildCmd.Flags().Float64("width", 0, "slide width in inches (default: definition metadata)")
	rebuildCmd.Flags().Float64("height", 0, "slide height in inches (default: definition metadata)")

	rootCmd.AddCommand(rebuildCmd)
}

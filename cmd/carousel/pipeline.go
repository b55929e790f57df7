// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/carousel/internal/export"
	"github.com/pdiddy/carousel/internal/pipeline"
	"github.com/pdiddy/carousel/pkg/types"
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline [input.pptx]",
	Short: "Run definition extraction and carousel assembly end to end",
	Long: `Pipeline extracts the deck's definition with slide images, then builds
the template carousel, all in one run. Intermediates go to a temporary
directory removed on success; --keep-temp writes them beside the input
and leaves them in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
	templatePath, _ := cmd.Flags().GetString("template")
	output, _ := cmd.Flags().GetString("output")
	keepTemp, _ := cmd.Flags().GetBool("keep-temp")
	rangeExpr, _ := cmd.Flags().GetString("range")

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

	return pipeline.Run(context.Background(), args[0], pipeline.Options{
		Output:       output,
		TemplatePath: templatePath,
		KeepTemp:     keepTemp,
		Backend:      string(cfg.Backend),
		DPI:          cfg.DPI,
		Range:        rangeExpr,
		NoCache:      cfg.NoCache,
		CacheDir:     cfg.CacheDir,
		FontDirs:     cfg.FontDirs,
	}, os.Stdout)
}

func init() {
	pipelineCmd.Flags().StringP("output", "o", "", "output path (default: <stem>_carousel.pptx)")
	pipelineCmd.Flags().String("template", "", "template deck whose layout drives the carousel (required)")
	pipelineCmd.Flags().Bool("keep-temp", false, "keep intermediates beside the input")
	pipelineCmd.Flags().String("backend", export.BackendAuto, "image export backend: auto, native, or soffice")
	pipelineCmd.Flags().Int("dpi", export.DefaultDPI, "image export resolution")
	pipelineCmd.Flags().String("range", "", "slide range, e.g. \"1-10,15\"")
	pipelineCmd.Flags().Bool("no-cache", false, "bypass the render cache")
	pipelineCmd.MarkFlagRequired("template")

	rootCmd.AddCommand(pipelineCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/carousel/internal/export"
	"github.com/pdiddy/carousel/pkg/types"
)

// loadConfig merges file and environment settings over the built-in
// defaults. Flag values given on the command line still win; callers
// check Changed() before overriding.
func loadConfig() types.CarouselConfig {
	cfg := types.CarouselConfig{
		Export: types.ExportConfig{
			Backend: types.BackendAuto,
			DPI:     export.DefaultDPI,
		},
		Grid: types.DefaultGridConfig(),
	}

	if v := viper.GetString("export.backend"); v != "" {
		cfg.Export.Backend = types.ExportBackend(v)
	}
	if v := viper.GetInt("export.dpi"); v > 0 {
		cfg.Export.DPI = v
	}
	if viper.IsSet("export.no_cache") {
		cfg.Export.NoCache = viper.GetBool("export.no_cache")
	}
	if v := viper.GetString("export.cache_dir"); v != "" {
		cfg.Export.CacheDir = v
	}
	if v := viper.GetStringSlice("export.font_dirs"); len(v) > 0 {
		cfg.Export.FontDirs = v
	}

	if v := viper.GetInt("grid.slides_per_page"); v > 0 {
		cfg.Grid.SlidesPerPage = v
	}
	if v := viper.GetFloat64("grid.width_inches"); v > 0 {
		cfg.Grid.WidthInches = v
	}
	if v := viper.GetFloat64("grid.height_inches"); v > 0 {
		cfg.Grid.HeightInches = v
	}
	if viper.IsSet("grid.titles") {
		cfg.Grid.Titles = viper.GetBool("grid.titles")
	}
	if viper.IsSet("grid.borders") {
		cfg.Grid.Borders = viper.GetBool("grid.borders")
	}

	return cfg
}

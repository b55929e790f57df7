// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the carousel CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the carousel CLI.
var rootCmd = &cobra.Command{
	Use:   "carousel",
	Short: "Convert PowerPoint decks into carousel-style presentations",
	Long: `carousel turns a .pptx deck into ultra-wide carousel presentations.

It extracts per-slide structure into a definition document, exports slide
images, and reassembles them either as a review grid (several thumbnails
per page) or as a template-driven carousel where each page centers one
slide with its neighbors fading into the edges. The pipeline subcommand
runs extraction and carousel assembly end to end.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./carousel.yaml or ~/.config/carousel/carousel.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("carousel")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "carousel"))
		}
	}

	viper.SetEnvPrefix("CAROUSEL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// stem returns the filename without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

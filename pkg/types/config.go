// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExportBackend identifies the slide-image export tool.
type ExportBackend string

const (
	// BackendAuto picks soffice when present on PATH, else native.
	BackendAuto ExportBackend = "auto"
	// BackendNative rasterizes slides with the built-in renderer.
	BackendNative ExportBackend = "native"
	// BackendSoffice shells out to LibreOffice.
	BackendSoffice ExportBackend = "soffice"
)

// ExportConfig holds settings for slide-image export.
type ExportConfig struct {
	// Backend selects the export tool: auto, native, or soffice.
	Backend ExportBackend `json:"backend" yaml:"backend"`

	// DPI is the rasterization resolution (default 150).
	DPI int `json:"dpi" yaml:"dpi"`

	// NoCache bypasses the render cache.
	NoCache bool `json:"no_cache" yaml:"no_cache"`

	// CacheDir overrides the render cache location. Empty means the
	// user cache directory.
	CacheDir string `json:"cache_dir,omitempty" yaml:"cache_dir,omitempty"`

	// FontDirs lists extra directories to search for fonts, in addition
	// to the system font directories.
	FontDirs []string `json:"font_dirs,omitempty" yaml:"font_dirs,omitempty"`
}

// GridConfig holds settings for grid carousel assembly.
type GridConfig struct {
	// SlidesPerPage is the number of thumbnails per page (default 4).
	SlidesPerPage int `json:"slides_per_page" yaml:"slides_per_page"`

	// WidthInches and HeightInches set the output page size
	// (default 16.0 x 9.0).
	WidthInches  float64 `json:"width_inches" yaml:"width_inches"`
	HeightInches float64 `json:"height_inches" yaml:"height_inches"`

	// Titles controls the "Slides X - Y" band at the top of each page.
	Titles bool `json:"titles" yaml:"titles"`

	// Borders controls the frame drawn around each thumbnail.
	Borders bool `json:"borders" yaml:"borders"`
}

// DefaultGridConfig returns the stock grid settings.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		SlidesPerPage: 4,
		WidthInches:   16.0,
		HeightInches:  9.0,
		Titles:        true,
		Borders:       true,
	}
}

// CarouselConfig groups all stage configurations for the tool.
type CarouselConfig struct {
	Export ExportConfig `json:"export" yaml:"export"`
	Grid   GridConfig   `json:"grid" yaml:"grid"`
}

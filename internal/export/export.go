// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders deck slides to PNG files, either with the
// built-in rasterizer or by shelling out to LibreOffice.
package export

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Backend names accepted by Detect.
const (
	BackendAuto    = "auto"
	BackendNative  = "native"
	BackendSoffice = "soffice"
)

// DefaultDPI is the export resolution when none is configured.
const DefaultDPI = 150

// Options configures an export run.
type Options struct {
	// DPI controls the output resolution; pixel width is DPI times the
	// slide width in inches. Zero means DefaultDPI.
	DPI int

	// NoCache bypasses the render cache.
	NoCache bool

	// CacheDir overrides the render cache location.
	CacheDir string

	// FontDirs are extra font directories for the native backend.
	FontDirs []string

	// Progress receives per-slide progress lines when non-nil.
	Progress io.Writer
}

func (o Options) dpi() int {
	if o.DPI <= 0 {
		return DefaultDPI
	}
	return o.DPI
}

// Exporter renders the selected slides of a deck into outDir as
// slide_%03d.png, numbered by slide index. indices is 1-based and
// ascending; nil selects every slide. It returns the written paths in
// slide order.
type Exporter interface {
	Name() string
	Export(ctx context.Context, deckPath, outDir string, indices []int, opts Options) ([]string, error)
}

// Detect resolves a backend name to an exporter. "auto" picks soffice
// when LibreOffice is on PATH, the native rasterizer otherwise.
func Detect(backend string) (Exporter, error) {
	return detect(backend, defaultExec)
}

func detect(backend string, exec executor) (Exporter, error) {
	switch backend {
	case BackendNative:
		return &nativeExporter{}, nil
	case BackendSoffice:
		s := newSofficeExporter(exec)
		if !s.available() {
			return nil, fmt.Errorf("soffice not found on PATH")
		}
		return s, nil
	case BackendAuto, "":
		s := newSofficeExporter(exec)
		if s.available() {
			return s, nil
		}
		return &nativeExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown export backend %q", backend)
	}
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args ...string) error
}

type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

var defaultExec executor = &osExecutor{}

func progressf(w io.Writer, format string, args ...any) {
	if w != nil {
		fmt.Fprintf(w, format, args...)
	}
}

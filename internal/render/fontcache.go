// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render rasterizes parsed slides to PNG images using system
// fonts.
package render

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

const (
	maxFontScanDepth = 3
	maxFontFileSize  = 20 << 20
)

type faceKey struct {
	name   string
	size   float64
	bold   bool
	italic bool
}

// FontCache loads TrueType/OpenType fonts from the system font
// directories plus any extra directories and caches parsed fonts and
// sized faces. Safe for concurrent use; the directory scan happens
// lazily on first lookup.
type FontCache struct {
	mu      sync.RWMutex
	dirs    []string
	fonts   map[string]*opentype.Font
	faces   map[faceKey]font.Face
	scanned bool
}

// NewFontCache returns a cache searching the OS font directories plus
// extraDirs.
func NewFontCache(extraDirs ...string) *FontCache {
	return &FontCache{
		dirs:  append(systemFontDirs(), extraDirs...),
		fonts: make(map[string]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

// Face returns a sized face for the font name and style, or nil when no
// matching font is available.
func (fc *FontCache) Face(name string, sizePt float64, bold, italic bool) font.Face {
	fc.ensureScanned()

	key := faceKey{name: strings.ToLower(name), size: sizePt, bold: bold, italic: italic}
	fc.mu.RLock()
	if face, ok := fc.faces[key]; ok {
		fc.mu.RUnlock()
		return face
	}
	fc.mu.RUnlock()

	f := fc.find(name, bold, italic)
	if f == nil {
		return nil
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    sizePt,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}

	fc.mu.Lock()
	fc.faces[key] = face
	fc.mu.Unlock()
	return face
}

// LoadFontData registers a font from raw TTF/OTF bytes under name.
func (fc *FontCache) LoadFontData(name string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return err
	}
	fc.mu.Lock()
	fc.fonts[strings.ToLower(name)] = f
	fc.registerFamily(f)
	fc.mu.Unlock()
	return nil
}

// find looks up a parsed font by name, trying style-specific filename
// variants first (Windows ships "arialbd", "ariali" and friends).
func (fc *FontCache) find(name string, bold, italic bool) *opentype.Font {
	fc.mu.RLock()
	defer fc.mu.RUnlock()

	lower := strings.ToLower(name)
	var suffixes []string
	switch {
	case bold && italic:
		suffixes = []string{" bold italic", "bi", "z"}
	case bold:
		suffixes = []string{" bold", "bd", "b"}
	case italic:
		suffixes = []string{" italic", "i"}
	}
	for _, s := range suffixes {
		if f, ok := fc.fonts[lower+s]; ok {
			return f
		}
	}
	return fc.fonts[lower]
}

func (fc *FontCache) ensureScanned() {
	fc.mu.RLock()
	scanned := fc.scanned
	fc.mu.RUnlock()
	if scanned {
		return
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.scanned {
		return
	}
	fc.scanned = true

	for _, dir := range fc.dirs {
		fc.scanDir(dir, 0)
	}
}

func (fc *FontCache) scanDir(dir string, depth int) {
	if depth > maxFontScanDepth {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			fc.scanDir(filepath.Join(dir, entry.Name()), depth+1)
			continue
		}
		lower := strings.ToLower(entry.Name())
		isCollection := strings.HasSuffix(lower, ".ttc") || strings.HasSuffix(lower, ".otc")
		isSingle := strings.HasSuffix(lower, ".ttf") || strings.HasSuffix(lower, ".otf")
		if !isCollection && !isSingle {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.Size() > maxFontFileSize {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}

		if isCollection {
			fc.loadCollection(data)
			continue
		}
		if f, err := opentype.Parse(data); err == nil {
			fc.fonts[strings.TrimSuffix(lower, filepath.Ext(lower))] = f
			fc.registerFamily(f)
		}
	}
}

func (fc *FontCache) loadCollection(data []byte) {
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return
	}
	for i := 0; i < coll.NumFonts(); i++ {
		if f, err := coll.Font(i); err == nil {
			fc.registerFamily(f)
		}
	}
}

// registerFamily indexes a font by the family and full names from its
// name table.
func (fc *FontCache) registerFamily(f *opentype.Font) {
	if family, err := f.Name(nil, sfnt.NameIDFamily); err == nil && family != "" {
		fc.fonts[strings.ToLower(family)] = f
	}
	if full, err := f.Name(nil, sfnt.NameIDFull); err == nil && full != "" {
		fc.fonts[strings.ToLower(full)] = f
	}
}

func systemFontDirs() []string {
	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs := []string{filepath.Join(windir, "Fonts")}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
		return dirs
	case "darwin":
		dirs := []string{"/System/Library/Fonts", "/Library/Fonts"}
		if home, _ := os.UserHomeDir(); home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs
	default:
		dirs := []string{"/usr/share/fonts", "/usr/local/share/fonts"}
		if home, _ := os.UserHomeDir(); home != "" {
			dirs = append(dirs,
				filepath.Join(home, ".local", "share", "fonts"),
				filepath.Join(home, ".fonts"))
		}
		return dirs
	}
}

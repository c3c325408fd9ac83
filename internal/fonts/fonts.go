// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fonts locates a TrueType font able to render Cyrillic text.
package fonts

import (
	"os"
	"runtime"

	"github.com/rldyourmnd/telegram-to-pdfVectorDB/pkg/types"
)

// Font is the resolved font choice. Path is empty when Name is a core PDF
// font used as the fallback.
type Font struct {
	Name string
	Path string
}

// Embedded reports whether the font comes from a TTF file.
func (f Font) Embedded() bool { return f.Path != "" }

// statFunc abstracts file lookup for testing.
type statFunc func(name string) (os.FileInfo, error)

// Resolve returns the first existing file among the search paths for the
// running OS family, or the fallback core font.
func Resolve(cfg types.FontConfig) Font {
	return resolve(cfg, runtime.GOOS, os.Stat)
}

func resolve(cfg types.FontConfig, goos string, stat statFunc) Font {
	for _, p := range cfg.SearchPaths[goos] {
		info, err := stat(p)
		if err != nil || info.IsDir() {
			continue
		}
		return Font{Name: "UnicodeFont", Path: p}
	}

	return Fallback(cfg)
}

// Fallback returns the configured core font, Helvetica when unset.
func Fallback(cfg types.FontConfig) Font {
	if cfg.Fallback == "" {
		return Font{Name: "Helvetica"}
	}
	return Font{Name: cfg.Fallback}
}

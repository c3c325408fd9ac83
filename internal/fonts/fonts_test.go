// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rldyourmnd/telegram-to-pdfVectorDB/pkg/types"
)

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "DejaVuSans.ttf")
	require.NoError(t, os.WriteFile(present, []byte("ttf"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.ttf"), 0o755))

	cfg := types.FontConfig{
		SearchPaths: map[string][]string{
			"linux": {
				filepath.Join(dir, "missing.ttf"),
				filepath.Join(dir, "folder.ttf"),
				present,
			},
			"windows": {present},
		},
		Fallback: "Courier",
	}

	tests := []struct {
		name string
		goos string
		want Font
	}{
		{"first existing file wins", "linux", Font{Name: "UnicodeFont", Path: present}},
		{"other OS family", "windows", Font{Name: "UnicodeFont", Path: present}},
		{"no list for OS falls back", "darwin", Font{Name: "Courier"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolve(cfg, tt.goos, os.Stat)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDefaultFallback(t *testing.T) {
	got := resolve(types.FontConfig{}, "linux", os.Stat)
	assert.Equal(t, "Helvetica", got.Name)
	assert.False(t, got.Embedded())
}

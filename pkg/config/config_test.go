package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/anchorui/pkg/graphics"
)

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Screen.Width)
	assert.Equal(t, 600, cfg.Screen.Height)
	assert.Equal(t, SequentialIDs, cfg.IDs.Scheme)
	assert.Equal(t, "anchorui", cfg.Metrics.Namespace)
	assert.Equal(t, graphics.Rect{Width: 800, Height: 600}, cfg.ScreenRect())
}

func TestLoadResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	src := `
screen:
  width: 320
  height: 240
styles:
  files: [styles/base.yaml, /abs/theme.yaml]
  watch: true
fonts:
  default: body
  files:
    body: fonts/Body.ttf
  size: 16
ids:
  scheme: ULID
log:
  verbose: true
metrics:
  namespace: kiosk
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(src), 0o644))

	cfg, err := LoadOptional(dir)
	require.NoError(t, err)
	assert.Equal(t, graphics.Rect{Width: 320, Height: 240}, cfg.ScreenRect())
	assert.Equal(t, []string{filepath.Join(dir, "styles/base.yaml"), "/abs/theme.yaml"}, cfg.Styles.Files)
	assert.True(t, cfg.Styles.Watch)
	assert.Equal(t, filepath.Join(dir, "fonts/Body.ttf"), cfg.Fonts.Files["body"])
	assert.Equal(t, 16.0, cfg.Fonts.Size)
	assert.Equal(t, ULIDs, cfg.IDs.Scheme)
	assert.True(t, cfg.Log.Verbose)
	assert.Equal(t, "kiosk", cfg.Metrics.Namespace)
	assert.Equal(t, dir, cfg.Assets.Root)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  string
	}{
		{"negative width", "screen: {width: -1}", "screen size must be positive"},
		{"unknown scheme", "ids: {scheme: uuid}", `unknown id scheme "uuid"`},
		{"negative font size", "fonts: {size: -2}", "font size must not be negative"},
		{"unlisted default font", "fonts: {default: title}", `default font "title"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("screen: [1, 2"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

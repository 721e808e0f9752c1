package cmd

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/anchorui/pkg/graphics"
)

const themeYAML = `
Panel:
  layout: verticalBox
Label:
  height: 30
`

const sceneYAML = `
import: theme.yaml
styles:
  Title < Label:
    height: 20
    text: Hello
ui:
  Panel:
    id: main
    anchors.fill: parent
    children:
      - Title: {id: title}
      - Label: {id: body, text: World}
`

// captureOutput redirects the command output streams for one test.
func captureOutput(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	prevOut, prevErr := stdout, stderr
	stdout, stderr = out, errOut
	t.Cleanup(func() { stdout, stderr = prevOut, prevErr })
	return out, errOut
}

func writeScene(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return filepath.Join(dir, "scene.yaml")
}

func TestExecuteHelpAndVersion(t *testing.T) {
	out, _ := captureOutput(t)

	require.NoError(t, Execute(nil))
	assert.Contains(t, out.String(), "Commands:")
	for _, name := range []string{"layout", "render", "check", "watch"} {
		assert.Contains(t, out.String(), name)
	}

	out.Reset()
	require.NoError(t, Execute([]string{"--version"}))
	assert.Equal(t, "uiscene version "+Version+" (built "+BuildTime+")\n", out.String())

	out.Reset()
	require.NoError(t, Execute([]string{"layout", "--help"}))
	assert.Contains(t, out.String(), "uiscene layout [flags] <scene.yaml>")
}

func TestExecuteUnknownCommand(t *testing.T) {
	_, errOut := captureOutput(t)
	err := Execute([]string{"bogus"})
	require.Error(t, err)
	assert.Contains(t, errOut.String(), `unknown command "bogus"`)
}

func TestParseSceneArgs(t *testing.T) {
	opts, positional, err := parseSceneArgs([]string{"-s", "320x240", "a.yaml", "--config", "c.yaml", "-V", "b.png"})
	require.NoError(t, err)
	assert.Equal(t, graphics.Size{Width: 320, Height: 240}, opts.size)
	assert.Equal(t, "c.yaml", opts.configPath)
	assert.True(t, opts.verbose)
	assert.Equal(t, []string{"a.yaml", "b.png"}, positional)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing config", []string{"--config"}, "requires a file argument"},
		{"missing size", []string{"a.yaml", "--size"}, "requires a WIDTHxHEIGHT argument"},
		{"bad size", []string{"--size", "wide"}, `invalid size "wide"`},
		{"zero size", []string{"--size", "0x10"}, `invalid size "0x10"`},
		{"unknown flag", []string{"--fast"}, "unknown flag: --fast"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseSceneArgs(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLayout(t *testing.T) {
	out, errOut := captureOutput(t)
	path := writeScene(t, map[string]string{"scene.yaml": sceneYAML, "theme.yaml": themeYAML})

	require.NoError(t, Execute([]string{"layout", "--size", "320x240", path}))
	assert.Contains(t, out.String(), "root (-) [0 0 320x240]")
	assert.Contains(t, out.String(), "  main (Panel) [0 0 320x240]")
	assert.Contains(t, out.String(), "    title (Title) [0 0 320x20]")
	assert.Contains(t, out.String(), "    body (Label) [0 20 320x30]")
	assert.Empty(t, errOut.String())
}

func TestLayoutUsesConfigNextToScene(t *testing.T) {
	out, _ := captureOutput(t)
	path := writeScene(t, map[string]string{
		"scene.yaml":    sceneYAML,
		"theme.yaml":    themeYAML,
		"anchorui.yaml": "screen: {width: 640, height: 480}\n",
	})

	require.NoError(t, Execute([]string{"layout", path}))
	assert.Contains(t, out.String(), "root (-) [0 0 640x480]")
}

func TestLayoutErrors(t *testing.T) {
	captureOutput(t)

	err := Execute([]string{"layout"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one scene file")

	err = Execute([]string{"layout", filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")

	path := writeScene(t, map[string]string{"scene.yaml": sceneYAML})
	err = Execute([]string{"layout", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to import")

	path = writeScene(t, map[string]string{"scene.yaml": "ui:\n  Missing: {id: x}\n"})
	err = Execute([]string{"layout", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown style "Missing"`)
}

func TestRender(t *testing.T) {
	captureOutput(t)
	path := writeScene(t, map[string]string{"scene.yaml": sceneYAML, "theme.yaml": themeYAML})
	out := filepath.Join(t.TempDir(), "scene.png")

	require.NoError(t, Execute([]string{"render", "-s", "320x240", path, out}))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())

	lit := false
	for y := 0; y < 20 && !lit; y++ {
		for x := 0; x < 80 && !lit; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			lit = r > 0x8000
		}
	}
	assert.True(t, lit, "the title text is drawn in white")

	r, g, b, a := img.At(319, 239).RGBA()
	assert.Equal(t, [4]uint32{0, 0, 0, 0xffff}, [4]uint32{r, g, b, a}, "the background is cleared to black")
}

func TestRenderErrors(t *testing.T) {
	captureOutput(t)
	path := writeScene(t, map[string]string{"scene.yaml": sceneYAML, "theme.yaml": themeYAML})

	err := Execute([]string{"render", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a scene file and an output file")

	err = Execute([]string{"render", "--background", "nope", path, "out.png"})
	require.Error(t, err)

	err = Execute([]string{"render", path, filepath.Join(t.TempDir(), "missing", "out.png")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write")
}

func TestCheck(t *testing.T) {
	out, errOut := captureOutput(t)
	good := writeScene(t, map[string]string{"scene.yaml": sceneYAML, "theme.yaml": themeYAML})
	bad := writeScene(t, map[string]string{"scene.yaml": "styles:\n  Label: {}\nui:\n  Label: {id: bad, height: tall}\n"})

	require.NoError(t, Execute([]string{"check", good}))
	assert.Contains(t, out.String(), good+": ok")

	out.Reset()
	err := Execute([]string{"check", good, bad})
	require.Error(t, err)
	assert.Equal(t, "1 of 2 scene(s) failed", err.Error())
	assert.Contains(t, out.String(), bad+": 1 problem(s)")
	assert.Contains(t, errOut.String(), "widget=bad")
}

func TestWatchSceneRendersOnce(t *testing.T) {
	out, _ := captureOutput(t)
	path := writeScene(t, map[string]string{"scene.yaml": sceneYAML, "theme.yaml": themeYAML})
	outPath := filepath.Join(t.TempDir(), "scene.png")

	s, err := loadScene(path, sceneOptions{}, nil)
	require.NoError(t, err)
	defer s.close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, watchScene(ctx, s, graphics.Black, outPath, time.Millisecond))
	assert.FileExists(t, outPath)
	assert.Contains(t, out.String(), "watching 1 style file(s)")
}

func TestWatchSceneNeedsStyleFiles(t *testing.T) {
	captureOutput(t)
	path := writeScene(t, map[string]string{"scene.yaml": "styles:\n  Label: {}\n"})

	s, err := loadScene(path, sceneOptions{}, nil)
	require.NoError(t, err)
	defer s.close()

	err = watchScene(context.Background(), s, graphics.Black, "out.png", time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "imports no style files")
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-drift/anchorui/pkg/graphics"
	"github.com/go-drift/anchorui/pkg/render/raster"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Rasterize a scene to a PNG file",
		Long: `Load a scene, lay it out and draw it into a PNG image the size of
the screen. When styles.watch is set in the configuration the command
keeps running like "watch".

Flags:
  -c, --config FILE     Use FILE instead of anchorui.yaml next to the scene
  -s, --size WxH        Override the configured screen size
  -V, --verbose         Log problems with their kind and stack trace
  --background COLOR    Clear color, #rrggbb or #aarrggbb (default #000000)`,
		Usage: "uiscene render [flags] <scene.yaml> <out.png>",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	background := graphics.Black
	var rest []string
	for i := 0; i < len(args); i++ {
		if args[i] != "--background" {
			rest = append(rest, args[i])
			continue
		}
		if i+1 >= len(args) {
			return fmt.Errorf("--background requires a color argument")
		}
		i++
		c, err := graphics.ParseColor(args[i])
		if err != nil {
			return err
		}
		background = c
	}

	opts, positional, err := parseSceneArgs(rest)
	if err != nil {
		return err
	}
	if len(positional) != 2 {
		return fmt.Errorf("render requires a scene file and an output file")
	}

	s, err := loadScene(positional[0], opts, nil)
	if err != nil {
		return err
	}
	defer s.close()

	if s.m.Config().Styles.Watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchScene(ctx, s, background, positional[1], watchPollInterval)
	}
	return renderPNG(s, background, positional[1])
}

func renderPNG(s *scene, background graphics.Color, out string) error {
	screen := s.m.Config().ScreenRect()
	canvas := raster.New(screen.Width, screen.Height)
	canvas.Clear(background)
	s.m.Render(canvas)
	if err := canvas.SavePNG(out); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	return nil
}

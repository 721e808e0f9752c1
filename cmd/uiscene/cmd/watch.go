package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/go-drift/anchorui/pkg/graphics"
)

const watchPollInterval = 100 * time.Millisecond

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Re-render a scene whenever its style files change",
		Long: `Load and render a scene like "render", then watch the imported and
configured style files. Every change restyles the widgets and rewrites the
PNG. Stop with Ctrl-C.

Flags:
  -c, --config FILE     Use FILE instead of anchorui.yaml next to the scene
  -s, --size WxH        Override the configured screen size
  -V, --verbose         Log problems with their kind and stack trace`,
		Usage: "uiscene watch [flags] <scene.yaml> <out.png>",
		Run:   runWatch,
	})
}

func runWatch(args []string) error {
	opts, positional, err := parseSceneArgs(args)
	if err != nil {
		return err
	}
	if len(positional) != 2 {
		return fmt.Errorf("watch requires a scene file and an output file")
	}

	s, err := loadScene(positional[0], opts, nil)
	if err != nil {
		return err
	}
	defer s.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchScene(ctx, s, graphics.Black, positional[1], watchPollInterval)
}

// watchScene renders s to out, then re-renders after every reload until
// ctx is done.
func watchScene(ctx context.Context, s *scene, background graphics.Color, out string, interval time.Duration) error {
	files := append(slices.Clone(s.m.Config().Styles.Files), s.imports...)
	if len(files) == 0 {
		return fmt.Errorf("%s imports no style files to watch", s.path)
	}
	if err := s.m.WatchStyles(ctx, files...); err != nil {
		return err
	}
	if err := renderPNG(s, background, out); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s, watching %d style file(s)\n", out, len(files))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if s.m.Poll() == 0 {
				continue
			}
			s.settle()
			if err := renderPNG(s, background, out); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "wrote %s\n", out)
		}
	}
}

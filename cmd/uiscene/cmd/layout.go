package cmd

import (
	"fmt"

	"github.com/go-drift/anchorui/pkg/ui"
)

func init() {
	RegisterCommand(&Command{
		Name:  "layout",
		Short: "Print the laid-out widget tree of a scene",
		Long: `Load a scene and print one line per widget: its id, style, rectangle
and states. Hidden widgets are marked.

Flags:
  -c, --config FILE     Use FILE instead of anchorui.yaml next to the scene
  -s, --size WxH        Override the configured screen size
  -V, --verbose         Log problems with their kind and stack trace`,
		Usage: "uiscene layout [flags] <scene.yaml>",
		Run:   runLayout,
	})
}

func runLayout(args []string) error {
	opts, positional, err := parseSceneArgs(args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("layout requires exactly one scene file")
	}

	s, err := loadScene(positional[0], opts, nil)
	if err != nil {
		return err
	}
	defer s.close()

	return ui.Dump(stdout, s.m.RootWidget())
}

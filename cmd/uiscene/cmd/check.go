package cmd

import (
	"fmt"
	"sync"

	"github.com/go-drift/anchorui/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Load a scene and report every style or layout problem",
		Long: `Load a scene and log every problem reported while importing styles
and creating widgets. The command fails if any problem was reported.

Flags:
  -c, --config FILE     Use FILE instead of anchorui.yaml next to the scene
  -s, --size WxH        Override the configured screen size
  -V, --verbose         Log problems with their kind and stack trace`,
		Usage: "uiscene check [flags] <scene.yaml>...",
		Run:   runCheck,
	})
}

// countingHandler forwards to a LogHandler and counts what it sees.
type countingHandler struct {
	log errors.LogHandler

	mu      sync.Mutex
	nErrors int
	nPanics int
}

func (h *countingHandler) HandleError(err *errors.UIError) {
	h.mu.Lock()
	h.nErrors++
	h.mu.Unlock()
	h.log.HandleError(err)
}

func (h *countingHandler) HandlePanic(err *errors.PanicError) {
	h.mu.Lock()
	h.nPanics++
	h.mu.Unlock()
	h.log.HandlePanic(err)
}

func (h *countingHandler) total() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.nErrors + h.nPanics
}

func runCheck(args []string) error {
	opts, positional, err := parseSceneArgs(args)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return fmt.Errorf("check requires at least one scene file")
	}

	failed := 0
	for _, path := range positional {
		h := &countingHandler{log: errors.LogHandler{Verbose: opts.verbose, Out: stderr}}
		s, err := loadScene(path, opts, h)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		s.close()
		if n := h.total(); n > 0 {
			fmt.Fprintf(stdout, "%s: %d problem(s)\n", path, n)
			failed++
			continue
		}
		fmt.Fprintf(stdout, "%s: ok\n", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scene(s) failed", failed, len(positional))
	}
	return nil
}

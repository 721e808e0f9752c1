// Package uitest drives a real ui.Manager from tests.
//
// # Quick Start
//
//	func TestDialog(t *testing.T) {
//	    h := uitest.New(t, nil)
//	    h.MustLoadStyles(`Button: {size: 80 20}`)
//	    h.MustLoadUI(`Button: {id: ok, anchors.centerIn: parent}`)
//
//	    if err := h.Tap(uitest.ByID("ok")); err != nil {
//	        t.Fatal(err)
//	    }
//	    h.RequireNoErrors()
//	}
//
// The harness installs itself as the error handler for the duration of the
// test, so reported misuse and style errors can be asserted on instead of
// being logged.
//
// # Snapshot Testing
//
// Capture and compare the widget tree and its display list:
//
//	h.CaptureSnapshot().MatchesFile(t, "testdata/dialog.snapshot.json")
//
// Update snapshots with:
//
//	ANCHORUI_UPDATE_SNAPSHOTS=1 go test ./...
package uitest

import (
	"sync"
	"testing"

	"github.com/go-drift/anchorui/pkg/config"
	"github.com/go-drift/anchorui/pkg/errors"
	"github.com/go-drift/anchorui/pkg/render"
	"github.com/go-drift/anchorui/pkg/style"
	"github.com/go-drift/anchorui/pkg/ui"
	"github.com/go-drift/anchorui/pkg/widget"
)

// maxPumpTurns bounds Pump when callbacks keep posting new callbacks.
const maxPumpTurns = 100

// Harness wraps a manager created for one test.
type Harness struct {
	t testing.TB
	m *ui.Manager

	mu     sync.Mutex
	errs   []*errors.UIError
	panics []*errors.PanicError
}

// New creates a manager from cfg (nil for the defaults) and captures the
// errors it reports. Everything is torn down when the test ends.
func New(t testing.TB, cfg *config.Config, opts ...ui.Option) *Harness {
	t.Helper()
	h := &Harness{t: t}
	prev := errors.SetHandler(h)

	m, err := ui.New(cfg, opts...)
	if err != nil {
		errors.SetHandler(prev)
		t.Fatalf("uitest: failed to create manager: %v", err)
	}
	h.m = m
	t.Cleanup(func() {
		m.Terminate()
		errors.SetHandler(prev)
	})
	h.Pump()
	return h
}

// Manager returns the manager under test.
func (h *Harness) Manager() *ui.Manager { return h.m }

// Root returns the root widget.
func (h *Harness) Root() *widget.Base { return h.m.Root() }

// LoadStyles imports styles from YAML source.
func (h *Harness) LoadStyles(src string) error {
	node, err := style.Decode([]byte(src))
	if err != nil {
		return err
	}
	return h.m.ImportStyles(node)
}

// MustLoadStyles is LoadStyles that fails the test on error.
func (h *Harness) MustLoadStyles(src string) {
	h.t.Helper()
	if err := h.LoadStyles(src); err != nil {
		h.t.Fatalf("uitest: failed to load styles: %v", err)
	}
}

// LoadUI creates widgets from YAML source under the root and pumps the
// queue.
func (h *Harness) LoadUI(src string) ([]widget.Widget, error) {
	node, err := style.Decode([]byte(src))
	if err != nil {
		return nil, err
	}
	created, err := h.m.LoadUI(node, nil)
	h.Pump()
	return created, err
}

// MustLoadUI is LoadUI that fails the test on error.
func (h *Harness) MustLoadUI(src string) []widget.Widget {
	h.t.Helper()
	created, err := h.LoadUI(src)
	if err != nil {
		h.t.Fatalf("uitest: failed to load ui: %v", err)
	}
	return created
}

// Pump polls the queue until it is empty and returns the number of
// callbacks run.
func (h *Harness) Pump() int {
	total := 0
	for turn := 0; turn < maxPumpTurns; turn++ {
		n := h.m.Poll()
		total += n
		if n == 0 {
			break
		}
	}
	return total
}

// Find evaluates a finder against the current tree.
func (h *Harness) Find(finder Finder) FinderResult {
	root := h.m.RootWidget()
	if root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{widgets: finder.Evaluate(root), finder: finder}
}

// Render draws the tree into a fresh recorder.
func (h *Harness) Render() *render.Recorder {
	rec := render.NewRecorder()
	h.m.Render(rec)
	return rec
}

// HandleError implements errors.ErrorHandler.
func (h *Harness) HandleError(err *errors.UIError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

// HandlePanic implements errors.ErrorHandler.
func (h *Harness) HandlePanic(err *errors.PanicError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.panics = append(h.panics, err)
}

// Errors returns the errors reported so far.
func (h *Harness) Errors() []*errors.UIError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*errors.UIError(nil), h.errs...)
}

// Panics returns the panics recovered so far.
func (h *Harness) Panics() []*errors.PanicError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*errors.PanicError(nil), h.panics...)
}

// ClearErrors forgets the captured errors and panics.
func (h *Harness) ClearErrors() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = nil
	h.panics = nil
}

// RequireNoErrors fails the test if anything was reported.
func (h *Harness) RequireNoErrors() {
	h.t.Helper()
	for _, err := range h.Errors() {
		h.t.Errorf("uitest: unexpected error: %v", err)
	}
	for _, p := range h.Panics() {
		h.t.Errorf("uitest: unexpected panic: %v", p)
	}
	if h.t.Failed() {
		h.t.FailNow()
	}
}

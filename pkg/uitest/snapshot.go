package uitest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-drift/anchorui/pkg/widget"
)

// UpdateSnapshotsEnv rewrites golden files instead of comparing when set
// to 1.
const UpdateSnapshotsEnv = "ANCHORUI_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the widget tree and the display list it renders.
type Snapshot struct {
	Tree       *Node    `json:"tree"`
	DisplayOps []string `json:"displayOps,omitempty"`
}

// Node is one widget in a snapshot.
type Node struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Style    string  `json:"style,omitempty"`
	Rect     [4]int  `json:"rect"`
	States   string  `json:"states"`
	Hidden   bool    `json:"hidden,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// CaptureSnapshot captures the current tree and display operations.
func (h *Harness) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	root := h.m.RootWidget()
	if root == nil {
		return snap
	}
	snap.Tree = captureNode(root)
	for _, op := range h.Render().Ops {
		snap.DisplayOps = append(snap.DisplayOps, op.String())
	}
	return snap
}

func captureNode(w widget.Widget) *Node {
	b := w.AsWidget()
	r := b.Rect()
	n := &Node{
		ID:     b.ID(),
		Type:   typeName(w),
		Style:  b.StyleName(),
		Rect:   [4]int{r.X, r.Y, r.Width, r.Height},
		States: b.States().String(),
		Hidden: !b.IsExplicitlyVisible(),
	}
	for _, c := range b.Children() {
		n.Children = append(n.Children, captureNode(c))
	}
	return n
}

func typeName(w widget.Widget) string {
	t := reflect.TypeOf(w)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports the first differing line and instructions for updating. When
// ANCHORUI_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}
	var expected Snapshot
	if err := json.Unmarshal(data, &expected); err != nil {
		t.Fatalf("failed to parse snapshot %s: %v", path, err)
		return
	}

	if diff := s.Diff(&expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff describes the first line where other (the expected snapshot)
// differs from s. It returns an empty string if they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	got := strings.Split(string(a), "\n")
	want := strings.Split(string(b), "\n")
	for i := 0; i < max(len(got), len(want)); i++ {
		var g, w string
		if i < len(got) {
			g = got[i]
		}
		if i < len(want) {
			w = want[i]
		}
		if g != w {
			return fmt.Sprintf("line %d:\n- %s\n+ %s", i+1, w, g)
		}
	}
	return ""
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

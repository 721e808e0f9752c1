package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

func TestUIErrorString(t *testing.T) {
	err := &UIError{
		Op:   "widget.AddChild",
		Kind: KindUsage,
		Err:  stderrors.New("attempt to add a null child"),
	}
	want := "widget.AddChild [usage]: attempt to add a null child"
	if got := err.Error(); got != want {
		t.Errorf("UIError.Error() = %q, want %q", got, want)
	}
}

func TestUIErrorWithWidget(t *testing.T) {
	err := &UIError{
		Op:     "widget.ApplyStyle",
		Kind:   KindStyle,
		Widget: "okButton",
		Err:    stderrors.New("invalid anchor description"),
	}
	if got := err.Error(); !strings.Contains(got, "widget=okButton") {
		t.Errorf("error string %q should contain widget id", got)
	}
}

func TestUIErrorUnwrap(t *testing.T) {
	inner := stderrors.New("inner")
	err := &UIError{Op: "x", Err: inner}
	if !stderrors.Is(err, inner) {
		t.Error("expected errors.Is to find the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindUsage, "usage"},
		{KindStyle, "style"},
		{KindContract, "contract"},
		{KindResource, "resource"},
		{KindConfig, "config"},
		{KindRender, "render"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "dispatch.Poll"
	if got, want := err.Error(), "panic in dispatch.Poll: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestContractPanics(t *testing.T) {
	defer func() {
		r := recover()
		ce, ok := r.(*ContractError)
		if !ok {
			t.Fatalf("recovered %T, want *ContractError", r)
		}
		if ce.Op != "widget.InsertChild" || ce.Msg != "index 7 out of range [0, 3]" {
			t.Errorf("unexpected contract error: %v", ce)
		}
	}()
	Contract("widget.InsertChild", "index %d out of range [0, %d]", 7, 3)
}

func TestReport(t *testing.T) {
	var captured *UIError
	old := SetHandler(&testHandler{onError: func(err *UIError) { captured = err }})
	defer SetHandler(old)

	Warn("widget.AddChild", "panel", "attempt to add a child again")

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Severity != SeverityWarning {
		t.Errorf("Severity = %v, want warning", captured.Severity)
	}
	if captured.Widget != "panel" {
		t.Errorf("Widget = %q, want %q", captured.Widget, "panel")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	old := SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(old)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestRecoverRepanicsContract(t *testing.T) {
	defer func() {
		if _, ok := recover().(*ContractError); !ok {
			t.Error("expected contract violation to escape Recover")
		}
	}()
	func() {
		defer Recover("test.recover")
		Contract("test", "broken")
	}()
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(&UIError{
		Op:       "widget.AddChild",
		Kind:     KindUsage,
		Severity: SeverityWarning,
		Widget:   "root",
		Err:      stderrors.New("attempt to add a null child"),
	})
	want := "[ui warning] widget.AddChild widget=root: attempt to add a null child\n"
	if got := buf.String(); got != want {
		t.Errorf("log line = %q, want %q", got, want)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	old := SetHandler(nil)
	defer SetHandler(old)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

type testHandler struct {
	onError func(*UIError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *UIError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

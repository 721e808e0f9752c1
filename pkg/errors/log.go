package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that writes one line per error.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out receives the log lines. Defaults to stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

// HandleError logs a UIError.
func (h *LogHandler) HandleError(err *UIError) {
	if err == nil {
		return
	}
	w := h.out()
	fmt.Fprintf(w, "[ui %s] %s", err.Severity, err.Op)
	if h.Verbose {
		fmt.Fprintf(w, " [%s]", err.Kind)
	}
	if err.Widget != "" {
		fmt.Fprintf(w, " widget=%s", err.Widget)
	}
	fmt.Fprintf(w, ": %v\n", err.Err)
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[ui panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[ui panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// Package errors provides error wrapping with slog annotations and source locations.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// annotatedError is an error with a message, slog attributes, and the source
// location where it was created.
type annotatedError struct {
	msg    string
	cause  error
	attrs  []slog.Attr
	source string
}

// Error implements the error interface.
func (e *annotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

// Unwrap exposes the wrapped error for errors.Is and errors.As.
func (e *annotatedError) Unwrap() error {
	return e.cause
}

// NewSentinel creates a sentinel error without source annotation. Use it for
// package-level error values that are matched with Is.
func NewSentinel(msg string) error {
	return &annotatedError{msg: msg, cause: nil, attrs: nil, source: ""}
}

// New creates an error annotated with the caller's source location.
func New(msg string) error {
	return &annotatedError{msg: msg, cause: nil, attrs: nil, source: callerSource()}
}

// Wrap annotates err with a message, optional slog attributes, and the
// caller's source location. A nil err is allowed and produces an error with
// only the message.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{msg: msg, cause: err, attrs: attrs, source: callerSource()}
}

// DecoratePanic converts a recovered panic value into an annotated error
// pointing at the panic site.
func DecoratePanic(recovered any) error {
	return &annotatedError{
		msg:    fmt.Sprintf("panic: %v", recovered),
		cause:  nil,
		attrs:  nil,
		source: panicSource(),
	}
}

// SlogError renders err as a slog group attribute containing the message, the
// collected annotations, and the innermost source location.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}

	var (
		annotations []slog.Attr
		source      string
	)
	for unwrapped := err; unwrapped != nil; unwrapped = errors.Unwrap(unwrapped) {
		var annotated *annotatedError
		if errors.As(unwrapped, &annotated) {
			annotations = append(annotations, annotated.attrs...)
			if annotated.source != "" {
				source = annotated.source
			}
			unwrapped = annotated
		}
	}

	attrs := []slog.Attr{slog.String("message", err.Error())}
	if source != "" {
		attrs = append(attrs, slog.String("source", source))
	}
	if len(annotations) > 0 {
		args := make([]any, 0, len(annotations))
		for _, attr := range annotations {
			args = append(args, attr)
		}
		attrs = append(attrs, slog.Group("annotations", args...))
	}
	return slog.Group("error", asAnys(attrs)...)
}

func asAnys(attrs []slog.Attr) []any {
	anys := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		anys = append(anys, attr)
	}
	return anys
}

// callerSource resolves the first program counter outside this package.
func callerSource() string {
	const maxDepth = 16
	var pcs [maxDepth]uintptr
	// Skip runtime.Callers and the function in this package that called us.
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasSuffix(frame.File, "annotatederror.go") {
			return fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}
		if !more {
			return ""
		}
	}
}

// panicSource resolves the source location of the panic site by skipping
// runtime panic machinery frames.
func panicSource() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(1, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		isRuntime := strings.HasPrefix(frame.Function, "runtime.")
		isSelf := strings.HasSuffix(frame.File, "annotatederror.go")
		if !isRuntime && !isSelf {
			return fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}
		if !more {
			return ""
		}
	}
}

// Re-exports so that callers do not need to import both this package and the
// standard library errors package.

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool { return errors.As(err, target) }

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join wraps the given errors into a single error.
func Join(errs ...error) error { return errors.Join(errs...) }

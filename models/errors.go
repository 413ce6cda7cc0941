package models

import (
	"fmt"

	"github.com/go-stack/stack"
	"github.com/rs/zerolog"
)

type ErrorUnauthorized struct{ Message string }

func (e ErrorUnauthorized) Error() string { return e.Message }

type ErrorForbidden struct{ Message string }

func (e ErrorForbidden) Error() string { return e.Message }

// ErrorValidation carries per-field messages when they are known.
type ErrorValidation struct {
	Message string
	Fields  map[string][]string
}

func (e ErrorValidation) Error() string { return e.Message }

type ErrorNotFound struct{ Message string }

func (e ErrorNotFound) Error() string { return e.Message }

type ErrorConflict struct{ Message string }

func (e ErrorConflict) Error() string { return e.Message }

// ErrorInternalServer wraps an unexpected failure together with the call
// stack at the point it was wrapped. Its message is never shown to clients.
type ErrorInternalServer struct {
	Message string
	Wrapped error
	Stack   CallStack
}

func (e *ErrorInternalServer) Error() string {
	if e.Wrapped == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
}

func (e *ErrorInternalServer) Unwrap() error { return e.Wrapped }

type CallStack []StackFrame

func (s CallStack) MarshalZerologArray(a *zerolog.Array) {
	for _, frame := range s {
		a.Object(frame)
	}
}

type StackFrame struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function"`
}

func (f StackFrame) MarshalZerologObject(e *zerolog.Event) {
	e.Str("file", f.File).Int("line", f.Line).Str("function", f.Function)
}

// ZerologStackMarshaler lets zerolog's Stack() print internal error stacks.
func ZerologStackMarshaler(err error) interface{} {
	if ie, ok := err.(*ErrorInternalServer); ok {
		return ie.Stack
	}
	return nil
}

func NewInternalError(wrapped error, format string, args ...interface{}) error {
	trace := stack.Trace().TrimRuntime()
	// drop NewInternalError itself
	if len(trace) > 0 {
		trace = trace[1:]
	}
	frames := make(CallStack, len(trace))
	for i, call := range trace {
		frame := call.Frame()
		frames[i] = StackFrame{File: frame.File, Line: frame.Line, Function: frame.Function}
	}
	return &ErrorInternalServer{
		Message: fmt.Sprintf(format, args...),
		Wrapped: wrapped,
		Stack:   frames,
	}
}

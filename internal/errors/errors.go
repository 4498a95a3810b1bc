// Package errors defines the error taxonomy for the viewer: configuration
// errors are rejected and the prior state kept, I/O errors end the session,
// and logic errors are diagnostics for programming faults.
package errors

import (
	"errors"
	"fmt"
)

// Re-exported from the standard library for convenience.
var (
	Is = errors.Is
	As = errors.As
)

// ConfigError reports out-of-range or unparseable user input. The operation
// that produced it must be rejected and the previous valid value retained.
type ConfigError struct {
	Field string
	Value string
	Msg   string
}

func NewConfigError(field, value, msg string) *ConfigError {
	return &ConfigError{Field: field, Value: value, Msg: msg}
}

func (e *ConfigError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %q: %s", e.Field, e.Value, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// IOError reports a failed seek or read, or a file that cannot be viewed at
// all (too large, unreadable). These are fatal to the open session.
type IOError struct {
	Op     string
	Path   string
	Offset int64
	Err    error
}

func NewIOError(op, path string, offset int64, err error) *IOError {
	return &IOError{Op: op, Path: path, Offset: offset, Err: err}
}

func (e *IOError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s at offset 0x%X: %v", e.Op, e.Path, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s %s at offset 0x%X", e.Op, e.Path, e.Offset)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// LogicError marks a programming fault, such as an intent the core does not
// recognize. It is logged, never shown as a user error, and must not
// terminate the session.
type LogicError struct {
	Msg string
}

func NewLogicError(format string, args ...interface{}) *LogicError {
	return &LogicError{Msg: fmt.Sprintf(format, args...)}
}

func (e *LogicError) Error() string {
	return e.Msg
}

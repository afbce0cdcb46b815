// FILE: flagini/errors.go
package flagini

import (
	"errors"
	"fmt"
)

// Code identifies the failure class recorded after a parsing operation.
type Code uint8

const (
	// CodeNone means no failure has been recorded.
	CodeNone Code = iota
	// CodeHelp means the user explicitly requested usage output. It is not
	// a true failure; ExitCode maps it to a zero status.
	CodeHelp
	// CodeUnknownFlag means a token or config key matched no registered flag.
	CodeUnknownFlag
	// CodeMissingValue means a flag or config key required a value that was
	// absent or empty.
	CodeMissingValue
	// CodeInvalidValue means a value was present but failed type coercion.
	CodeInvalidValue
	// CodeOpenConfig means a named config file could not be opened or read.
	CodeOpenConfig
	// CodeSyntax means a config line violated the key/value grammar.
	CodeSyntax
	// CodeOverflow means a line, key or joined value exceeded its buffer
	// bound. Oversized input is reported, never silently truncated.
	CodeOverflow
	// CodeCycle means a config file was included more than once during a
	// single resolution.
	CodeCycle
)

// String returns a short diagnostic label for the code.
func (c Code) String() string {
	switch c {
	case CodeNone:
		return "none"
	case CodeHelp:
		return "help"
	case CodeUnknownFlag:
		return "unknown flag"
	case CodeMissingValue:
		return "missing value"
	case CodeInvalidValue:
		return "invalid value"
	case CodeOpenConfig:
		return "open config failed"
	case CodeSyntax:
		return "invalid syntax"
	case CodeOverflow:
		return "buffer overflow"
	case CodeCycle:
		return "cyclic inclusion"
	}
	return fmt.Sprintf("code(%d)", uint8(c))
}

// Sentinel errors for errors.Is checks. Every *ParseError wraps the
// sentinel matching its code, alongside the underlying cause when one
// exists.
var (
	// ErrHelp indicates an explicit help request.
	ErrHelp = errors.New("help requested")
	// ErrUnknownFlag indicates a name that matched no registered flag.
	ErrUnknownFlag = errors.New("unknown flag")
	// ErrMissingValue indicates a flag or key without its required value.
	ErrMissingValue = errors.New("missing value")
	// ErrInvalidValue indicates a value that failed coercion.
	ErrInvalidValue = errors.New("invalid value")
	// ErrOpenConfig indicates a config file that could not be opened or read.
	ErrOpenConfig = errors.New("cannot open config file")
	// ErrSyntax indicates a config line violating the key/value grammar.
	ErrSyntax = errors.New("invalid syntax")
	// ErrOverflow indicates input exceeding a scanning buffer bound.
	ErrOverflow = errors.New("buffer overflow")
	// ErrCycle indicates a config file included more than once.
	ErrCycle = errors.New("cyclic inclusion")
)

// sentinel returns the package-level sentinel for the code, or nil for
// CodeNone.
func (c Code) sentinel() error {
	switch c {
	case CodeHelp:
		return ErrHelp
	case CodeUnknownFlag:
		return ErrUnknownFlag
	case CodeMissingValue:
		return ErrMissingValue
	case CodeInvalidValue:
		return ErrInvalidValue
	case CodeOpenConfig:
		return ErrOpenConfig
	case CodeSyntax:
		return ErrSyntax
	case CodeOverflow:
		return ErrOverflow
	case CodeCycle:
		return ErrCycle
	}
	return nil
}

// ParseError is the diagnostic recorded by the first failure of a parsing
// operation. It is overwritten by each new failure and cleared when a new
// parse begins; the boundary reads it once to render a message.
type ParseError struct {
	Code Code
	// Name is the offending name: the raw command-line token for unknown
	// flags and help requests, the registered long name for missing or
	// invalid values, the key text for unknown config keys, or the filename
	// for file-level failures.
	Name string
	// File and Line locate a failure inside a config file, when known.
	// File is empty for command-line failures and for parsers over borrowed
	// readers.
	File string
	Line int
	// Err carries the failure's sentinel, joined with the underlying cause
	// when one exists (an *os.PathError for open failures, a *strconv
	// error for coercion failures).
	Err error
}

// Error renders the message the boundary prints before usage output.
func (e *ParseError) Error() string {
	switch e.Code {
	case CodeHelp:
		return "help requested"
	case CodeUnknownFlag:
		return fmt.Sprintf("unknown flag %q", e.Name)
	case CodeMissingValue:
		return fmt.Sprintf("missing value for flag %q", e.Name)
	case CodeInvalidValue:
		return fmt.Sprintf("invalid value for flag %q", e.Name)
	case CodeOpenConfig:
		return fmt.Sprintf("cannot open config file %q", e.Name)
	case CodeSyntax:
		if e.File != "" {
			return fmt.Sprintf("invalid syntax in config file %q (line %d)", e.File, e.Line)
		}
		return fmt.Sprintf("invalid syntax (line %d)", e.Line)
	case CodeOverflow:
		if e.File != "" {
			return fmt.Sprintf("buffer overflow in config file %q (line %d)", e.File, e.Line)
		}
		return fmt.Sprintf("buffer overflow (line %d)", e.Line)
	case CodeCycle:
		return fmt.Sprintf("cyclic inclusion of config file %q", e.Name)
	}
	return "no error"
}

// Unwrap exposes the wrapped cause so errors.Is matches both the package
// sentinels and underlying OS or strconv errors.
func (e *ParseError) Unwrap() error { return e.Err }

// FILE: flagini/convenience.go
package flagini

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Default is the process-wide flag set behind the package-level functions.
// It has process lifetime and is never reinitialized by the library;
// programs that need isolation (or parallel tests) construct their own sets
// with New.
var Default = New()

// BoolVar registers a presence flag on the Default set.
func BoolVar(p *bool, name string, short byte, desc string) {
	Default.BoolVar(p, name, short, desc)
}

// Bool registers a presence flag on the Default set and returns its
// destination.
func Bool(name string, short byte, desc string) *bool {
	return Default.Bool(name, short, desc)
}

// StringVar registers a string flag on the Default set.
func StringVar(p *string, name string, short byte, def, desc string) {
	Default.StringVar(p, name, short, def, desc)
}

// String registers a string flag on the Default set and returns its
// destination.
func String(name string, short byte, def, desc string) *string {
	return Default.String(name, short, def, desc)
}

// IntVar registers an integer flag on the Default set.
func IntVar(p *int, name string, short byte, def int, desc string) {
	Default.IntVar(p, name, short, def, desc)
}

// Int registers an integer flag on the Default set and returns its
// destination.
func Int(name string, short byte, def int, desc string) *int {
	return Default.Int(name, short, def, desc)
}

// Float32Var registers a single-precision float flag on the Default set.
func Float32Var(p *float32, name string, short byte, def float32, desc string) {
	Default.Float32Var(p, name, short, def, desc)
}

// Float32 registers a single-precision float flag on the Default set and
// returns its destination.
func Float32(name string, short byte, def float32, desc string) *float32 {
	return Default.Float32(name, short, def, desc)
}

// Float64Var registers a double-precision float flag on the Default set.
func Float64Var(p *float64, name string, short byte, def float64, desc string) {
	Default.Float64Var(p, name, short, def, desc)
}

// Float64 registers a double-precision float flag on the Default set and
// returns its destination.
func Float64(name string, short byte, def float64, desc string) *float64 {
	return Default.Float64(name, short, def, desc)
}

// TimeVar registers a timestamp flag on the Default set.
func TimeVar(p *time.Time, name string, short byte, def time.Time, desc string) {
	Default.TimeVar(p, name, short, def, desc)
}

// Time registers a timestamp flag on the Default set and returns its
// destination.
func Time(name string, short byte, def time.Time, desc string) *time.Time {
	return Default.Time(name, short, def, desc)
}

// Config designates the config-file flag on the Default set.
func Config(name string, short byte, desc string) {
	Default.Config(name, short, desc)
}

// IgnoreUnknown sets the unknown-name policy on the Default set.
func IgnoreUnknown(ignore bool) {
	Default.IgnoreUnknown(ignore)
}

// Parse scans os.Args against the Default set.
func Parse() error {
	return Default.Parse(os.Args)
}

// ParseIni resolves a config file against the Default set.
func ParseIni(path string) error {
	return Default.ParseIni(path)
}

// Err returns the Default set's recorded parse diagnostic.
func Err() *ParseError {
	return Default.Err()
}

// PrintUsage writes the Default set's FLAGS block to w.
func PrintUsage(w io.Writer) {
	Default.PrintUsage(w)
}

// PrintError reports the Default set's recorded failure to w.
func PrintError(w io.Writer) {
	Default.PrintError(w)
}

// Quick builds a fresh set from a tagged struct and parses the arguments
// (os.Args when none are given) in a single call. This covers the common
// case: field values become defaults, and after a successful parse the
// struct holds the resolved configuration. The set is returned even on
// parse failure so the caller can still render usage from it.
func Quick(v any, args ...string) (*FlagSet, error) {
	fs := New()
	if err := fs.RegisterStruct(v); err != nil {
		return nil, fmt.Errorf("failed to register defaults: %w", err)
	}
	if len(args) == 0 {
		args = os.Args
	}
	if err := fs.Parse(args); err != nil {
		return fs, err
	}
	return fs, nil
}

// MustQuick is like Quick but panics on error.
func MustQuick(v any, args ...string) *FlagSet {
	fs, err := Quick(v, args...)
	if err != nil {
		panic(fmt.Sprintf("flag initialization failed: %v", err))
	}
	return fs
}

// File: flagini/builder.go
package flagini

import (
	"errors"
	"fmt"
	"os"
)

// ValidatorFunc validates a fully parsed FlagSet. It runs after the parse
// succeeds and should return an error when the resolved configuration is
// unacceptable.
type ValidatorFunc func(fs *FlagSet) error

// Builder provides a fluent interface for assembling and parsing a FlagSet
// in one expression.
type Builder struct {
	fs         *FlagSet
	defaults   any
	args       []string
	validators []ValidatorFunc
}

// NewBuilder creates a builder over a fresh FlagSet, parsing os.Args unless
// WithArgs overrides them.
func NewBuilder() *Builder {
	return &Builder{
		fs:   New(),
		args: os.Args,
	}
}

// WithStruct sets the tagged struct whose fields become the flags; field
// values are the defaults and field addresses the destinations.
func (b *Builder) WithStruct(defaults any) *Builder {
	b.defaults = defaults
	return b
}

// WithConfigFlag designates the config-file flag.
func (b *Builder) WithConfigFlag(name string, short byte, desc string) *Builder {
	b.fs.Config(name, short, desc)
	return b
}

// WithIgnoreUnknown makes the parse skip unknown flags and config keys.
func (b *Builder) WithIgnoreUnknown() *Builder {
	b.fs.IgnoreUnknown(true)
	return b
}

// WithArgs sets the argument vector to parse. The first token is treated as
// the program name and discarded, as in Parse.
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithFlags registers flags directly on the underlying set, for options
// that have no home in the defaults struct.
func (b *Builder) WithFlags(register func(fs *FlagSet)) *Builder {
	register(b.fs)
	return b
}

// WithValidator adds a validation function that runs after a successful
// parse. Multiple validators execute in the order added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build registers, parses and validates. On a parse failure the set is
// returned alongside the error so the caller can still render usage and
// the recorded diagnostic from it.
func (b *Builder) Build() (*FlagSet, error) {
	if b.defaults != nil {
		if err := b.fs.RegisterStruct(b.defaults); err != nil {
			return nil, fmt.Errorf("failed to register defaults: %w", err)
		}
	}

	if err := b.fs.Parse(b.args); err != nil {
		return b.fs, err
	}

	for _, validator := range b.validators {
		if err := validator(b.fs); err != nil {
			return b.fs, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return b.fs, nil
}

// MustBuild is like Build but panics on error. A help request is not
// treated as an error: the set is returned and the caller decides whether
// to render usage.
func (b *Builder) MustBuild() *FlagSet {
	fs, err := b.Build()
	if err != nil && !errors.Is(err, ErrHelp) {
		panic(fmt.Sprintf("flag build failed: %v", err))
	}
	return fs
}

// BuildAndScan builds, then decodes the resolved values into target.
func (b *Builder) BuildAndScan(target any) error {
	fs, err := b.Build()
	if err != nil {
		return err
	}
	if err := fs.Scan(target); err != nil {
		return fmt.Errorf("failed to scan resolved flags into target: %w", err)
	}
	return nil
}

// FILE: flagini/flagini.go
package flagini

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// MaxFlags bounds the number of specs a single FlagSet holds. Exceeding it
// is a caller programming error and panics at registration.
const MaxFlags = 256

// Kind discriminates the typed storage behind a flag destination.
type Kind uint8

const (
	KindBool Kind = iota
	KindString
	KindInt
	KindFloat32
	KindFloat64
	KindTime
)

// String returns the kind's type name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindTime:
		return "time"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Flag is one registered option: its kind, names, description, and the
// destination the parser writes through. Specs are immutable after
// registration except through the destination they point to.
type Flag struct {
	Kind  Kind
	Name  string
	Short byte // 0 when the flag has no short name
	Desc  string

	ptr any // *bool, *string, *int, *float32, *float64 or *time.Time
	def any // default of the pointee type, written at registration
}

// DefaultValue returns the value written through the destination at
// registration time.
func (f *Flag) DefaultValue() any { return f.def }

// Value returns the destination's current value.
func (f *Flag) Value() any {
	switch p := f.ptr.(type) {
	case *bool:
		return *p
	case *string:
		return *p
	case *int:
		return *p
	case *float32:
		return *p
	case *float64:
		return *p
	case *time.Time:
		return *p
	}
	return nil
}

// set writes v through the destination pointer. v must already have the
// pointee type for the flag's kind.
func (f *Flag) set(v any) {
	switch p := f.ptr.(type) {
	case *bool:
		*p = v.(bool)
	case *string:
		*p = v.(string)
	case *int:
		*p = v.(int)
	case *float32:
		*p = v.(float32)
	case *float64:
		*p = v.(float64)
	case *time.Time:
		*p = v.(time.Time)
	}
}

// assign coerces a raw text value for the flag's kind and writes it through
// the destination. Booleans here follow the config-file literal rule;
// command-line booleans are presence-only and never reach assign.
func (f *Flag) assign(value string) *ParseError {
	invalid := func(cause error) *ParseError {
		return &ParseError{
			Code: CodeInvalidValue,
			Name: f.Name,
			Err:  errors.Join(ErrInvalidValue, cause),
		}
	}

	switch f.Kind {
	case KindBool:
		v, err := coerceBool(value)
		if err != nil {
			return invalid(err)
		}
		f.set(v)
	case KindString:
		f.set(value)
	case KindInt:
		v, err := coerceInt(value)
		if err != nil {
			return invalid(err)
		}
		f.set(v)
	case KindFloat32:
		v, err := coerceFloat32(value)
		if err != nil {
			return invalid(err)
		}
		f.set(v)
	case KindFloat64:
		v, err := coerceFloat64(value)
		if err != nil {
			return invalid(err)
		}
		f.set(v)
	case KindTime:
		v, err := coerceTime(value)
		if err != nil {
			return invalid(err)
		}
		f.set(v)
	}
	return nil
}

// FlagSet is an ordered, capacity-bounded collection of flags together with
// the scanning policy and the error state of the most recent parse. The
// zero value is an empty, usable set; New allocates one. A set belongs to a
// single parsing session (or, for the package-level Default, to the whole
// process) and must not be shared across goroutines.
type FlagSet struct {
	flags []*Flag

	ignoreUnknown bool

	configName  string
	configShort byte
	configDesc  string

	err *ParseError
}

// New returns an empty FlagSet.
func New() *FlagSet {
	return &FlagSet{}
}

// Err returns the diagnostic recorded by the most recent parsing operation,
// or nil when it succeeded. Each failure overwrites the previous state;
// starting a new parse clears it.
func (fs *FlagSet) Err() *ParseError { return fs.err }

// Config designates the config-file flag. When the argument scanner meets
// this flag — matched exactly, unlike ordinary prefix lookup — the
// following token names an INI file resolved in place; a config key equal
// to name triggers recursive inclusion. The config flag is not itself a
// registered spec and has no destination.
func (fs *FlagSet) Config(name string, short byte, desc string) {
	fs.configName = name
	fs.configShort = short
	fs.configDesc = desc
}

// IgnoreUnknown controls whether unknown command-line flags and unknown
// config keys are skipped silently instead of failing the parse.
func (fs *FlagSet) IgnoreUnknown(ignore bool) {
	fs.ignoreUnknown = ignore
}

// Flags returns the registered specs in insertion order.
func (fs *FlagSet) Flags() []*Flag {
	out := make([]*Flag, len(fs.flags))
	copy(out, fs.flags)
	return out
}

// add appends a spec and writes its default through the destination.
// Registration is initialization: the destination holds the default from
// this point until a parse overwrites it.
func (fs *FlagSet) add(kind Kind, ptr any, name string, short byte, def any, desc string) {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		panic(fmt.Sprintf("flagini: nil destination registering flag %q", name))
	}
	if len(fs.flags) >= MaxFlags {
		panic(fmt.Sprintf("flagini: flag capacity %d exceeded registering %q", MaxFlags, name))
	}

	f := &Flag{Kind: kind, Name: name, Short: short, Desc: desc, ptr: ptr, def: def}
	f.set(def)
	fs.flags = append(fs.flags, f)
}

// BoolVar registers a presence flag. The destination is set to false now
// and to true when the flag appears on the command line; only a config file
// can write false explicitly, through the "false" literal.
func (fs *FlagSet) BoolVar(p *bool, name string, short byte, desc string) {
	fs.add(KindBool, p, name, short, false, desc)
}

// Bool registers a presence flag and returns its destination.
func (fs *FlagSet) Bool(name string, short byte, desc string) *bool {
	p := new(bool)
	fs.BoolVar(p, name, short, desc)
	return p
}

// StringVar registers a string flag.
func (fs *FlagSet) StringVar(p *string, name string, short byte, def, desc string) {
	fs.add(KindString, p, name, short, def, desc)
}

// String registers a string flag and returns its destination.
func (fs *FlagSet) String(name string, short byte, def, desc string) *string {
	p := new(string)
	fs.StringVar(p, name, short, def, desc)
	return p
}

// IntVar registers an integer flag. Values are parsed base-10 and must fit
// the signed 32-bit range on every platform.
func (fs *FlagSet) IntVar(p *int, name string, short byte, def int, desc string) {
	fs.add(KindInt, p, name, short, def, desc)
}

// Int registers an integer flag and returns its destination.
func (fs *FlagSet) Int(name string, short byte, def int, desc string) *int {
	p := new(int)
	fs.IntVar(p, name, short, def, desc)
	return p
}

// Float32Var registers a single-precision float flag.
func (fs *FlagSet) Float32Var(p *float32, name string, short byte, def float32, desc string) {
	fs.add(KindFloat32, p, name, short, def, desc)
}

// Float32 registers a single-precision float flag and returns its
// destination.
func (fs *FlagSet) Float32(name string, short byte, def float32, desc string) *float32 {
	p := new(float32)
	fs.Float32Var(p, name, short, def, desc)
	return p
}

// Float64Var registers a double-precision float flag.
func (fs *FlagSet) Float64Var(p *float64, name string, short byte, def float64, desc string) {
	fs.add(KindFloat64, p, name, short, def, desc)
}

// Float64 registers a double-precision float flag and returns its
// destination.
func (fs *FlagSet) Float64(name string, short byte, def float64, desc string) *float64 {
	p := new(float64)
	fs.Float64Var(p, name, short, def, desc)
	return p
}

// TimeVar registers a timestamp flag parsed with the process-wide
// TimeLayout.
func (fs *FlagSet) TimeVar(p *time.Time, name string, short byte, def time.Time, desc string) {
	fs.add(KindTime, p, name, short, def, desc)
}

// Time registers a timestamp flag and returns its destination.
func (fs *FlagSet) Time(name string, short byte, def time.Time, desc string) *time.Time {
	p := new(time.Time)
	fs.TimeVar(p, name, short, def, desc)
	return p
}

// Lookup resolves a command-line token to a registered spec. A two-dash
// token matches when the text past the dashes is a prefix of a registered
// long name; the first registered match wins. This allows abbreviation
// (--ver finds "verbose") and carries a deliberate ambiguity: when one
// registered name is a prefix of another, the earlier registration shadows
// the later one for every token that prefixes both. A one-dash token must
// be exactly one character past the dash and matches short names by
// equality. Returns nil when nothing matches.
func (fs *FlagSet) Lookup(token string) *Flag {
	if len(token) < 2 || token[0] != '-' {
		return nil
	}

	if token[1] == '-' {
		name := token[2:]
		for _, f := range fs.flags {
			if strings.HasPrefix(f.Name, name) {
				return f
			}
		}
		return nil
	}

	if len(token) == 2 {
		for _, f := range fs.flags {
			if f.Short != 0 && f.Short == token[1] {
				return f
			}
		}
	}
	return nil
}

// lookupKey resolves a config key by the same prefix, first-match rule as
// long command-line flags.
func (fs *FlagSet) lookupKey(key string) *Flag {
	for _, f := range fs.flags {
		if strings.HasPrefix(f.Name, key) {
			return f
		}
	}
	return nil
}

// fail records the first failure of the session and returns it. The
// sentinel for the code is attached when the error carries no cause yet.
func (fs *FlagSet) fail(e *ParseError) error {
	if e.Err == nil {
		e.Err = e.Code.sentinel()
	}
	fs.err = e
	return e
}

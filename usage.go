// FILE: flagini/usage.go
package flagini

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// PrintUsage writes the FLAGS block: the config-file flag first when one is
// configured, every registered flag in insertion order, then the built-in
// help row. Long names are left-justified in a column sized to the longest
// name plus five. Defaults render per kind: booleans never, strings only
// when non-empty, numbers always, times only when non-zero.
func (fs *FlagSet) PrintUsage(w io.Writer) {
	width := len(fs.configName)
	for _, f := range fs.flags {
		if len(f.Name) > width {
			width = len(f.Name)
		}
	}
	width += 5

	nameFmt := fmt.Sprintf("--%%-%ds %%s", width)

	fmt.Fprint(w, "FLAGS\n")

	if fs.configName != "" {
		writeShort(w, fs.configShort)
		fmt.Fprintf(w, nameFmt, fs.configName, fs.configDesc)
		fmt.Fprint(w, "\n")
	}

	for _, f := range fs.flags {
		writeShort(w, f.Short)
		fmt.Fprintf(w, nameFmt, f.Name, f.Desc)
		writeDefault(w, f)
		fmt.Fprint(w, "\n")
	}

	writeShort(w, 'h')
	fmt.Fprintf(w, nameFmt, "help", "Show this help message")
	fmt.Fprint(w, "\n\n")
}

// writeShort writes the short-name column: "  -c, " or six spaces.
func writeShort(w io.Writer, short byte) {
	if short != 0 {
		fmt.Fprintf(w, "  -%c, ", short)
	} else {
		fmt.Fprint(w, "      ")
	}
}

// writeDefault appends the "(default: ...)" suffix for the flag's kind.
func writeDefault(w io.Writer, f *Flag) {
	switch f.Kind {
	case KindBool:
	case KindString:
		if s := f.def.(string); s != "" {
			fmt.Fprintf(w, " (default: %s)", s)
		}
	case KindInt:
		fmt.Fprintf(w, " (default: %d)", f.def.(int))
	case KindFloat32:
		fmt.Fprintf(w, " (default: %f)", f.def.(float32))
	case KindFloat64:
		fmt.Fprintf(w, " (default: %f)", f.def.(float64))
	case KindTime:
		if t := f.def.(time.Time); !t.IsZero() {
			fmt.Fprintf(w, " (default: %s)", t.Format(TimeLayout))
		}
	}
}

// PrintError reports the recorded parse failure: the specific message, a
// blank line, then usage. A help request prints usage alone; no recorded
// failure prints nothing. PrintError never terminates the process — the
// caller maps the result to a status with ExitCode and exits itself.
func (fs *FlagSet) PrintError(w io.Writer) {
	switch {
	case fs.err == nil || fs.err.Code == CodeNone:
		return
	case fs.err.Code == CodeHelp:
		fs.PrintUsage(w)
		return
	}

	fmt.Fprintf(w, "ERROR: %s\n\n", fs.err.Error())
	fs.PrintUsage(w)
}

// ExitCode maps a parse result to the conventional process status: zero
// for success or an explicit help request, one for any other failure.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, ErrHelp) {
		return 0
	}
	return 1
}

// File: flagini/doc.go

// Package flagini is an embeddable option-parsing engine that resolves a
// program's runtime configuration from command-line tokens and INI-formatted
// files into a single set of typed destinations.
//
// Features:
//   - Typed destinations: bool, string, int, float32, float64, time.Time
//   - Registration writes defaults immediately; parsing overwrites in strict
//     token order, last write wins
//   - Long-flag abbreviation through prefix matching (--ver finds "verbose")
//   - A designated config-file flag pulls in an INI file at its position in
//     the argument order, so later flags override file values
//   - INI dialect with ';' and '#' comments, backslash line continuation and
//     recursive file inclusion with cycle detection
//   - Struct registration with tag support and mapstructure-based Scan
//   - Builder pattern and a process-wide Default set for easy initialization
//
// Quick Start:
//
//	type Options struct {
//	    Verbose bool   `flag:"verbose" short:"v" desc:"Enable verbose output"`
//	    Name    string `flag:"name" desc:"Name to greet"`
//	    Count   int    `flag:"count" short:"n" desc:"Number of greetings"`
//	}
//
//	opts := Options{Name: "world", Count: 1}
//	fs, err := flagini.NewBuilder().
//	    WithStruct(&opts).
//	    WithConfigFlag("config", 'c', "Path to an INI config file").
//	    Build()
//	if err != nil {
//	    fs.PrintError(os.Stderr)
//	    os.Exit(flagini.ExitCode(err))
//	}
//
// Token grammar:
//
//	--name          set a bool flag
//	--name value    set a typed flag (the value is always the next token)
//	-n value        short form
//	--help, -h      request usage output
//
// There is no --name=value form. A config-file occurrence is resolved at
// its position: "--config app.ini --port 99" lets the command line win,
// "--port 99 --config app.ini" lets the file win.
//
// INI grammar:
//
//	; comment
//	# comment
//	key = value
//	key = first part \
//	      continued part
//
// Keys must be at least two characters. A value ending in a backslash
// continues on the next record line; segments join with a single space. A
// key equal to the config-flag name includes another file at that point.
//
// Concurrency:
// The engine is fully synchronous and a FlagSet is not safe for concurrent
// use; give each goroutine its own set or confine one set to one goroutine.
package flagini

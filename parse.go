// FILE: flagini/parse.go
package flagini

// isHelpToken reports whether token is the exact help request. Help is
// recognized only after ordinary lookup fails, so a registered flag can
// shadow it.
func isHelpToken(token string) bool {
	return token == "--help" || token == "-h"
}

// isConfigToken reports whether token names the config-file flag. Unlike
// ordinary lookup this comparison is exact: an abbreviation of the config
// flag's name falls through to prefix lookup like any other token.
func (fs *FlagSet) isConfigToken(token string) bool {
	if fs.configName == "" || len(token) < 2 || token[0] != '-' {
		return false
	}
	if token[1] == '-' {
		return token[2:] == fs.configName
	}
	return len(token) == 2 && fs.configShort != 0 && token[1] == fs.configShort
}

// Parse scans the full argument vector, resolving flags and config-file
// inclusions strictly in token order. The first token is the program name
// and is discarded; an empty vector is a no-op success.
//
// A config-file occurrence resolves the named INI file at its position, so
// a later token overrides whatever the file wrote and an earlier token is
// overridden by it. Repeated flags are last-write-wins. The first failure
// stops the scan; the returned error is the *ParseError also available
// from Err until the next parse begins.
func (fs *FlagSet) Parse(args []string) error {
	fs.err = nil

	if len(args) > 0 {
		args = args[1:]
	}

	for len(args) > 0 {
		token := args[0]
		args = args[1:]

		if fs.isConfigToken(token) {
			if len(args) == 0 {
				return fs.fail(&ParseError{Code: CodeMissingValue, Name: token})
			}
			filename := args[0]
			args = args[1:]

			if perr := fs.resolveFile(filename, make(map[string]bool)); perr != nil {
				return fs.fail(perr)
			}
			continue
		}

		f := fs.Lookup(token)
		if f == nil {
			if fs.ignoreUnknown {
				continue
			}
			if isHelpToken(token) {
				return fs.fail(&ParseError{Code: CodeHelp, Name: token})
			}
			return fs.fail(&ParseError{Code: CodeUnknownFlag, Name: token})
		}

		if f.Kind == KindBool {
			f.set(true)
			continue
		}

		if len(args) == 0 {
			return fs.fail(&ParseError{Code: CodeMissingValue, Name: f.Name})
		}
		value := args[0]
		args = args[1:]

		if perr := f.assign(value); perr != nil {
			return fs.fail(perr)
		}
	}
	return nil
}

// FILE: flagini/ini.go
package flagini

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Buffer bounds for config-file scanning. A physical line, a key, or a
// fully-joined value that exceeds its bound fails with ErrOverflow; nothing
// is silently truncated.
const (
	MaxLineLen  = 512
	MaxKeyLen   = 64
	MaxValueLen = 512
)

// trimCutset is the whitespace stripped from line ends and around keys and
// values.
const trimCutset = " \t\n\v\f\r"

// IniParser reads key/value records from an INI-formatted source one
// physical line at a time through a fixed-capacity buffer. Records are read
// by alternating NextKey and Value.
//
// The source is either borrowed or owned. NewIniParser borrows: the caller
// keeps ownership of the reader and the parser never closes it.
// OpenIniParser owns: it opened the file itself and Close releases it.
// Exactly one ownership mode applies to a parser for its whole lifetime.
type IniParser struct {
	r      *bufio.Reader
	closer io.Closer // non-nil only for owned sources

	line   []byte // current line, right-trimmed; valid until the next read
	cursor int    // offset of the unconsumed remainder of line
	lineno int
}

// NewIniParser returns a parser over a borrowed source. The caller remains
// responsible for r and must keep it open for the parser's lifetime; Close
// on the parser is a no-op.
func NewIniParser(r io.Reader) *IniParser {
	return &IniParser{r: bufio.NewReaderSize(r, MaxLineLen)}
}

// OpenIniParser opens path for reading and returns a parser owning the
// file.
func OpenIniParser(path string) (*IniParser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	p := NewIniParser(f)
	p.closer = f
	return p, nil
}

// Close releases an owned source. It is idempotent and a no-op for
// borrowed sources.
func (p *IniParser) Close() error {
	if p.closer == nil {
		return nil
	}
	err := p.closer.Close()
	p.closer = nil
	return err
}

// Line returns the 1-based number of the most recently read line.
func (p *IniParser) Line() int { return p.lineno }

// consume reads the next physical line into the buffer and right-trims it.
// Returns io.EOF when the source is exhausted and ErrOverflow when the
// line exceeds MaxLineLen.
func (p *IniParser) consume() error {
	p.line = nil
	p.cursor = 0

	raw, err := p.r.ReadSlice('\n')
	if len(raw) > 0 {
		p.lineno++
	}
	switch {
	case err == nil:
	case errors.Is(err, bufio.ErrBufferFull):
		return fmt.Errorf("line %d longer than %d bytes: %w", p.lineno, MaxLineLen, ErrOverflow)
	case errors.Is(err, io.EOF):
		if len(raw) == 0 {
			return io.EOF
		}
	default:
		return err
	}

	p.line = bytes.TrimRight(raw, trimCutset)
	return nil
}

// rest returns the unconsumed remainder of the current line with leading
// whitespace dropped; the cursor advances past whatever it skipped.
func (p *IniParser) rest() []byte {
	s := p.line[p.cursor:]
	trimmed := bytes.TrimLeft(s, trimCutset)
	p.cursor += len(s) - len(trimmed)
	return trimmed
}

// skippable reports whether the line is blank or a comment. Comments start
// with ';' or '#' as the first non-blank byte.
func skippable(line []byte) bool {
	return len(line) == 0 || line[0] == ';' || line[0] == '#'
}

// NextKey scans forward to the next record's key, skipping blank and
// comment lines. On success the cursor sits just past the separator, ready
// for Value. Returns io.EOF at end of input, ErrSyntax when a record line
// has no '=' or has it closer than two bytes from the line's first
// non-blank byte, and ErrOverflow for keys longer than MaxKeyLen.
//
// The two-byte rule is checked before the key is right-trimmed, so "a =1"
// passes (key "a") while "a=1" fails — a preserved quirk of the format.
func (p *IniParser) NextKey() (string, error) {
	for {
		if err := p.consume(); err != nil {
			return "", err
		}
		line := p.rest()
		if skippable(line) {
			continue
		}

		sep := bytes.IndexByte(line, '=')
		if sep < 2 {
			return "", fmt.Errorf("line %d: missing or misplaced separator: %w", p.lineno, ErrSyntax)
		}
		p.cursor += sep + 1

		key := bytes.TrimRight(line[:sep], trimCutset)
		if len(key) > MaxKeyLen {
			return "", fmt.Errorf("line %d: key longer than %d bytes: %w", p.lineno, MaxKeyLen, ErrOverflow)
		}
		return string(key), nil
	}
}

// Value extracts the value for the key NextKey just produced. A segment
// ending in a backslash continues on the next record line: the backslash is
// stripped, the segment right-trimmed, and segments are joined with exactly
// one space. Blank and comment lines between segments are skipped without
// contributing text. The joined result is bounded by MaxValueLen; input
// ending mid-continuation yields the text joined so far.
func (p *IniParser) Value() (string, error) {
	var b strings.Builder
	seg := p.rest()
	for {
		cont := len(seg) > 0 && seg[len(seg)-1] == '\\'
		if cont {
			seg = bytes.TrimRight(seg[:len(seg)-1], trimCutset)
		}
		if len(seg) > 0 {
			need := len(seg)
			if b.Len() > 0 {
				need++
			}
			if b.Len()+need > MaxValueLen {
				return "", fmt.Errorf("line %d: value longer than %d bytes: %w", p.lineno, MaxValueLen, ErrOverflow)
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.Write(seg)
		}
		if !cont {
			return b.String(), nil
		}

		var err error
		seg, err = p.nextSegment()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return b.String(), nil
			}
			return "", err
		}
	}
}

// nextSegment advances to the next continuation segment, skipping blank and
// comment lines.
func (p *IniParser) nextSegment() ([]byte, error) {
	for {
		if err := p.consume(); err != nil {
			return nil, err
		}
		line := p.rest()
		if skippable(line) {
			continue
		}
		return line, nil
	}
}

// ParseIni resolves the named config file against the set. Keys are matched
// by the same prefix rule as long command-line flags, values are coerced
// per kind (booleans by the "true"/"false" literals), and a key equal to
// the configured config-flag name includes another file at that point in
// the scan. The error state behaves as in Parse.
func (fs *FlagSet) ParseIni(path string) error {
	fs.err = nil
	if perr := fs.resolveFile(path, make(map[string]bool)); perr != nil {
		return fs.fail(perr)
	}
	return nil
}

// ParseIniReader resolves config records from a borrowed reader, which is
// never closed. Files included through config keys are still opened from
// the filesystem and tracked for cycles.
func (fs *FlagSet) ParseIniReader(r io.Reader) error {
	fs.err = nil
	if perr := fs.resolveIni(NewIniParser(r), "", make(map[string]bool)); perr != nil {
		return fs.fail(perr)
	}
	return nil
}

// resolveFile opens path and resolves it. seen holds the canonical paths
// already opened during this resolution: re-opening any of them — a
// self-include, an indirect cycle, or a diamond — fails with CodeCycle
// instead of recursing unguarded, so a file is included at most once per
// resolution.
func (fs *FlagSet) resolveFile(path string, seen map[string]bool) *ParseError {
	canon := filepath.Clean(path)
	if abs, err := filepath.Abs(canon); err == nil {
		canon = abs
	}
	if seen[canon] {
		return &ParseError{Code: CodeCycle, Name: path, Err: ErrCycle}
	}
	seen[canon] = true

	p, err := OpenIniParser(path)
	if err != nil {
		return &ParseError{Code: CodeOpenConfig, Name: path, Err: errors.Join(ErrOpenConfig, err)}
	}
	defer p.Close()

	return fs.resolveIni(p, path, seen)
}

// resolveIni runs the key/value scan of one parser against the registry.
func (fs *FlagSet) resolveIni(p *IniParser, path string, seen map[string]bool) *ParseError {
	for {
		key, err := p.NextKey()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return iniError(err, path, p.Line())
		}

		if fs.configName != "" && key == fs.configName {
			filename, err := p.Value()
			if err != nil {
				return iniError(err, path, p.Line())
			}
			if filename == "" {
				return &ParseError{Code: CodeMissingValue, Name: key, File: path, Line: p.Line(), Err: ErrMissingValue}
			}
			if perr := fs.resolveFile(filename, seen); perr != nil {
				return perr
			}
			continue
		}

		f := fs.lookupKey(key)
		if f == nil {
			if fs.ignoreUnknown {
				// The skipped key's value still has to be consumed, or its
				// continuation lines would be misread as records.
				if _, err := p.Value(); err != nil {
					return iniError(err, path, p.Line())
				}
				continue
			}
			return &ParseError{Code: CodeUnknownFlag, Name: key, File: path, Line: p.Line(), Err: ErrUnknownFlag}
		}

		value, err := p.Value()
		if err != nil {
			return iniError(err, path, p.Line())
		}
		if value == "" {
			return &ParseError{Code: CodeMissingValue, Name: f.Name, File: path, Line: p.Line(), Err: ErrMissingValue}
		}
		if perr := f.assign(value); perr != nil {
			perr.File = path
			perr.Line = p.Line()
			return perr
		}
	}
}

// iniError classifies a scanner failure. Read errors on an already-open
// source are grouped with open failures; syntax and overflow keep their own
// codes.
func iniError(err error, path string, line int) *ParseError {
	code := CodeOpenConfig
	name := path
	switch {
	case errors.Is(err, ErrSyntax):
		code, name = CodeSyntax, ""
	case errors.Is(err, ErrOverflow):
		code, name = CodeOverflow, ""
	default:
		err = errors.Join(ErrOpenConfig, err)
	}
	return &ParseError{Code: code, Name: name, File: path, Line: line, Err: err}
}

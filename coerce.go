// FILE: flagini/coerce.go
package flagini

import (
	"fmt"
	"strconv"
	"time"
)

// TimeLayout is the process-wide layout for Time flag values, both for
// parsing tokens and for rendering defaults in usage output. Programs that
// need a different layout set it before registering or parsing.
var TimeLayout = "2006-01-02T15:04:05"

// coerceInt parses a base-10 integer with an optional sign. The result is
// constrained to the signed 32-bit range regardless of the platform word
// size; trailing unparsed characters fail.
func coerceInt(s string) (int, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func coerceFloat32(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}

func coerceFloat64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// coerceBool matches the config-file boolean literals, exactly and
// case-sensitively. Command-line booleans are presence-only and never pass
// through here.
func coerceBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean literal: %q", s)
}

// coerceTime parses s with TimeLayout in the local time zone. The layout
// must consume the whole token from its first character.
func coerceTime(s string) (time.Time, error) {
	return time.ParseInLocation(TimeLayout, s, time.Local)
}

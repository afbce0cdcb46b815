// FILE: flagini/decode.go
package flagini

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Values returns the current destination values keyed by flag name, with
// dotted names expanded into nested maps: flags "server.host" and
// "server.port" come back under a "server" map. Later registrations win on
// a name collision, matching last-write-wins elsewhere.
func (fs *FlagSet) Values() map[string]any {
	nested := make(map[string]any)
	for _, f := range fs.flags {
		setNestedValue(nested, f.Name, f.Value())
	}
	return nested
}

// Scan decodes the current destination values into target, which must be a
// non-nil pointer to a struct or map. Fields map through the same "flag"
// tag RegisterStruct reads, with dotted names as nesting, so a struct
// registered with RegisterStruct scans back into a value of the same type.
func (fs *FlagSet) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "flag",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(TimeLayout),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(fs.Values()); err != nil {
		return fmt.Errorf("failed to decode into %T: %w", target, err)
	}
	return nil
}

// setNestedValue sets a value in a nested map using a dot-notation path,
// creating intermediate maps as needed. A non-map value sitting where an
// intermediate map belongs is overwritten.
func setNestedValue(nested map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	current := nested

	for i := 0; i < len(segments)-1; i++ {
		segment := segments[i]
		if next, ok := current[segment].(map[string]any); ok {
			current = next
			continue
		}
		next := make(map[string]any)
		current[segment] = next
		current = next
	}

	current[segments[len(segments)-1]] = value
}

// Values returns the Default set's current values as a nested map.
func Values() map[string]any {
	return Default.Values()
}

// Scan decodes the Default set's current values into target.
func Scan(target any) error {
	return Default.Scan(target)
}

// FILE: flagini/register.go
package flagini

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// RegisterStruct registers one flag per tagged field of a struct. v must be
// a non-nil pointer to a struct: field addresses become the destinations,
// so after a parse the struct holds the resolved configuration, and the
// field values at registration time become the defaults.
//
// Field tags:
//
//	flag:"name"   long name; defaults to the lowercased field name; "-" skips
//	short:"c"     one-character short name
//	desc:"..."    usage description
//
// Nested structs (and non-nil pointers to structs) flatten into dotted
// names: a field Port inside a field Server registers as "server.port".
// Supported field types are bool, string, int, float32, float64 and
// time.Time; any other exported, non-skipped field is an error.
func (fs *FlagSet) RegisterStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("RegisterStruct requires a non-nil struct pointer, got %T", v)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("RegisterStruct requires a pointer to struct, got %T", v)
	}

	var errs []string
	fs.registerFields(rv, "", &errs)
	if len(errs) > 0 {
		return fmt.Errorf("failed to register %d field(s): %s", len(errs), strings.Join(errs, "; "))
	}
	return nil
}

var timeType = reflect.TypeOf(time.Time{})

// registerFields walks the struct's exported fields, recursing into nested
// structs with a dotted prefix. time.Time is a struct but registers as a
// leaf.
func (fs *FlagSet) registerFields(v reflect.Value, prefix string, errs *[]string) {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("flag")
		if tag == "-" {
			continue
		}

		name := strings.ToLower(field.Name)
		if tag != "" {
			name = tag
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		var short byte
		if s := field.Tag.Get("short"); s != "" {
			if len(s) != 1 {
				*errs = append(*errs, fmt.Sprintf("field %s: short name %q must be one character", field.Name, s))
				continue
			}
			short = s[0]
		}
		desc := field.Tag.Get("desc")

		if fieldValue.Type() != timeType {
			isStruct := fieldValue.Kind() == reflect.Struct
			isPtrToStruct := fieldValue.Kind() == reflect.Ptr && field.Type.Elem().Kind() == reflect.Struct
			if isStruct || isPtrToStruct {
				nested := fieldValue
				if isPtrToStruct {
					if fieldValue.IsNil() {
						continue
					}
					nested = fieldValue.Elem()
				}
				fs.registerFields(nested, name, errs)
				continue
			}
		}

		if !fieldValue.CanAddr() {
			*errs = append(*errs, fmt.Sprintf("field %s: not addressable", field.Name))
			continue
		}

		switch p := fieldValue.Addr().Interface().(type) {
		case *bool:
			fs.add(KindBool, p, name, short, *p, desc)
		case *string:
			fs.add(KindString, p, name, short, *p, desc)
		case *int:
			fs.add(KindInt, p, name, short, *p, desc)
		case *float32:
			fs.add(KindFloat32, p, name, short, *p, desc)
		case *float64:
			fs.add(KindFloat64, p, name, short, *p, desc)
		case *time.Time:
			fs.add(KindTime, p, name, short, *p, desc)
		default:
			*errs = append(*errs, fmt.Sprintf("field %s: unsupported type %s", field.Name, field.Type))
		}
	}
}

// RegisterStruct registers tagged struct fields on the Default set.
func RegisterStruct(v any) error {
	return Default.RegisterStruct(v)
}

/*
Copyright © 2025 The dyncmd Authors
SPDX-License-Identifier: Apache-2.0
*/

package synth

import (
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/dyncmd/dyncmd/pkg/argspec"
	dcerrors "github.com/dyncmd/dyncmd/pkg/errors"
)

// Bind assigns resolved parameter values onto the exported fields of a
// Runner struct. A field matches the parameter whose name equals its
// `arg` tag, or the snake_case form of the field name when untagged.
//
// Every key in vals must match a known field; an unmatched key is an
// UNKNOWN_PARAMETER error. Parameters absent from vals fall back to
// the resolved spec default, so a Runner bound with no values still
// carries every declared default.
func Bind(target any, specs argspec.Specs, vals Values) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return dcerrors.Newf(dcerrors.ErrCodeInvalidSpec,
			"bind target must be a non-nil struct pointer, got %T", target)
	}

	fields := fieldIndex(rv.Elem())

	unknown := make([]string, 0)
	for key := range vals {
		if _, ok := fields[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		msg := "unknown parameter: " + unknown[0]
		if suggestion := argspec.Closest(unknown[0], names); suggestion != "" {
			msg += " (did you mean \"" + suggestion + "\"?)"
		}
		return dcerrors.New(dcerrors.ErrCodeUnknownParameter, msg)
	}

	for _, s := range specs {
		field, ok := fields[s.Name]
		if !ok {
			continue
		}

		raw, ok := vals[s.Name]
		if !ok {
			if s.Default == nil {
				continue
			}
			raw = s.Default
		}
		if err := setField(field, raw, s.Name); err != nil {
			return err
		}
	}
	return nil
}

// fieldIndex maps parameter names to settable struct fields.
func fieldIndex(structValue reflect.Value) map[string]reflect.Value {
	t := structValue.Type()
	fields := make(map[string]reflect.Value, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Tag.Get("arg")
		if name == "-" {
			continue
		}
		if name == "" {
			name = snakeCase(sf.Name)
		}
		fields[name] = structValue.Field(i)
	}
	return fields
}

func setField(field reflect.Value, raw any, name string) error {
	switch field.Kind() {
	case reflect.String:
		if s, ok := raw.(string); ok {
			field.SetString(s)
			return nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if i, ok := toInt(raw); ok {
			field.SetInt(int64(i))
			return nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if i, ok := toInt(raw); ok && i >= 0 {
			field.SetUint(uint64(i))
			return nil
		}
	case reflect.Float32, reflect.Float64:
		if f, ok := toFloat(raw); ok {
			field.SetFloat(f)
			return nil
		}
	case reflect.Bool:
		if b, ok := toBool(raw); ok {
			field.SetBool(b)
			return nil
		}
	case reflect.Slice:
		if field.Type().Elem().Kind() == reflect.String {
			if s, ok := toStringSlice(raw); ok {
				field.Set(reflect.ValueOf(s))
				return nil
			}
		}
	}
	return dcerrors.Newf(dcerrors.ErrCodeInvalidSpec,
		"cannot assign %v (%T) to parameter %s", raw, raw, name)
}

// snakeCase converts an exported field name to its parameter form:
// ConfFile becomes conf_file, HTTPAddr becomes http_addr.
func snakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

/*
Copyright © 2025 The dyncmd Authors
SPDX-License-Identifier: Apache-2.0
*/

package synth

import (
	"reflect"

	"github.com/dyncmd/dyncmd/pkg/argspec"
)

// ParamsOf derives the declared parameter list of a Runner from its
// exported struct fields, in field order. The field value at
// construction time is the parameter's declared default, and the field
// type decides the declared kind. Fields of unsupported types and
// fields tagged `arg:"-"` are skipped.
func ParamsOf(r Runner) []argspec.Param {
	rv := reflect.ValueOf(r)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil
	}
	structValue := rv.Elem()
	t := structValue.Type()

	params := make([]argspec.Param, 0, t.NumField())
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
		kind := kindOfType(sf.Type)
		if kind == argspec.KindUnknown {
			continue
		}
		params = append(params, argspec.Param{
			Name:    name,
			Type:    kind,
			Default: structValue.Field(i).Interface(),
			Help:    sf.Tag.Get("help"),
		})
	}
	return params
}

func kindOfType(t reflect.Type) argspec.Kind {
	switch t.Kind() {
	case reflect.String:
		return argspec.KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return argspec.KindInt
	case reflect.Float32, reflect.Float64:
		return argspec.KindFloat
	case reflect.Bool:
		return argspec.KindBool
	case reflect.Slice:
		if t.Elem().Kind() == reflect.String {
			return argspec.KindStringSlice
		}
	}
	return argspec.KindUnknown
}

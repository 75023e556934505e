/*
Copyright © 2025 The dyncmd Authors
SPDX-License-Identifier: Apache-2.0
*/

package synth

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dyncmd/dyncmd/pkg/argspec"
	dcerrors "github.com/dyncmd/dyncmd/pkg/errors"
)

// Coerce normalizes a raw value (from a configuration decoder or the
// dispatcher) to the canonical Go type of the given kind. TOML yields
// int64, JSON yields float64 for every number, and a configuration
// author may quote a number; all of those land on the declared kind.
func Coerce(v any, kind argspec.Kind) (any, error) {
	switch kind {
	case argspec.KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case argspec.KindInt:
		if i, ok := toInt(v); ok {
			return i, nil
		}
	case argspec.KindFloat:
		if f, ok := toFloat(v); ok {
			return f, nil
		}
	case argspec.KindBool:
		if b, ok := toBool(v); ok {
			return b, nil
		}
	case argspec.KindStringSlice:
		if s, ok := toStringSlice(v); ok {
			return s, nil
		}
	}
	return nil, dcerrors.Newf(dcerrors.ErrCodeInvalidSpec,
		"cannot use value %v (%T) as %s", v, v, kind)
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	case float32:
		if float64(n) == math.Trunc(float64(n)) {
			return int(n), true
		}
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i, true
		}
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f, true
		}
	default:
		if i, ok := toInt(v); ok {
			return float64(i), true
		}
	}
	return 0, false
}

func toBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		if parsed, err := strconv.ParseBool(b); err == nil {
			return parsed, true
		}
	}
	return false, false
}

func toStringSlice(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		return s, true
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				str = fmt.Sprint(item)
			}
			out = append(out, str)
		}
		return out, true
	case string:
		return []string{s}, true
	}
	return nil, false
}

/*
Copyright © 2025 The dyncmd Authors
SPDX-License-Identifier: Apache-2.0
*/

package argspec

// Kind is the type tag attached to a command parameter. It decides
// which flag type the dispatcher exposes for the parameter.
type Kind string

const (
	// KindUnknown is the zero value: no type has been resolved yet.
	KindUnknown Kind = ""
	// KindString is the generic text type and the final fallback.
	KindString Kind = "string"
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindBool   Kind = "bool"
	// KindStringSlice covers repeatable string parameters.
	KindStringSlice Kind = "[]string"
)

// KindOf classifies a default value. Values that do not map to a
// supported flag type report KindUnknown.
func KindOf(v any) Kind {
	switch v.(type) {
	case string:
		return KindString
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt
	case float32, float64:
		return KindFloat
	case bool:
		return KindBool
	case []string:
		return KindStringSlice
	}
	return KindUnknown
}

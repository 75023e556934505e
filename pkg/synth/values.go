/*
Copyright © 2025 The dyncmd Authors
SPDX-License-Identifier: Apache-2.0
*/

package synth

// Values carries the resolved parameter values a synthesized command
// forwards to its handler, keyed by parameter name. Values are
// normalized to the canonical Go type of their kind before insertion:
// string, int, float64, bool, or []string.
type Values map[string]any

// Get returns the raw value for name.
func (v Values) Get(name string) any {
	return v[name]
}

// Has reports whether name carries a value.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// String returns the string value for name, or empty when absent or
// not a string.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Int returns the int value for name, or zero.
func (v Values) Int(name string) int {
	i, _ := toInt(v[name])
	return i
}

// Float returns the float value for name, or zero.
func (v Values) Float(name string) float64 {
	f, _ := toFloat(v[name])
	return f
}

// Bool returns the bool value for name, or false.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// StringSlice returns the string slice value for name, or nil.
func (v Values) StringSlice(name string) []string {
	s, _ := toStringSlice(v[name])
	return s
}

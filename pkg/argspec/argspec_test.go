/*
Copyright © 2025 The dyncmd Authors
SPDX-License-Identifier: Apache-2.0
*/

package argspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dcerrors "github.com/dyncmd/dyncmd/pkg/errors"
)

func TestBuildDefaultPrecedence(t *testing.T) {
	params := []Param{{Name: "key", Type: KindString, Default: "handler"}}

	tests := []struct {
		name      string
		overrides map[string]ArgSpec
		conf      map[string]any
		want      any
		required  bool
	}{
		{
			name: "configuration wins over everything",
			overrides: map[string]ArgSpec{
				"key": {Default: "override"},
			},
			conf: map[string]any{"key": "config"},
			want: "config",
		},
		{
			name: "override wins over handler default",
			overrides: map[string]ArgSpec{
				"key": {Default: "override"},
			},
			want: "override",
		},
		{
			name: "handler default as last value source",
			want: "handler",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs, err := Build(params, tt.overrides, tt.conf)
			require.NoError(t, err)
			require.Len(t, specs, 1)
			assert.Equal(t, tt.want, specs[0].Default)
			assert.Equal(t, tt.required, specs[0].Required)
		})
	}
}

func TestBuildNoDefaultMeansRequired(t *testing.T) {
	specs, err := Build([]Param{{Name: "token", Type: KindString}}, nil, nil)
	require.NoError(t, err)
	assert.True(t, specs[0].Required)
	assert.Nil(t, specs[0].Default)
}

func TestBuildTypeResolution(t *testing.T) {
	tests := []struct {
		name      string
		param     Param
		overrides map[string]ArgSpec
		conf      map[string]any
		want      Kind
	}{
		{
			name:      "override type wins",
			param:     Param{Name: "n", Type: KindString, Default: "x"},
			overrides: map[string]ArgSpec{"n": {Type: KindInt, Default: 3}},
			want:      KindInt,
		},
		{
			name:  "handler declared type",
			param: Param{Name: "n", Type: KindBool, Default: false},
			want:  KindBool,
		},
		{
			name:  "inferred from default",
			param: Param{Name: "n", Default: 42},
			want:  KindInt,
		},
		{
			name: "inferred from configuration value",
			param: Param{Name: "n"},
			conf: map[string]any{"n": 1.5},
			want: KindFloat,
		},
		{
			name:  "falls back to string",
			param: Param{Name: "n"},
			want:  KindString,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs, err := Build([]Param{tt.param}, tt.overrides, tt.conf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, specs[0].Type)
		})
	}
}

func TestBuildHelpResolution(t *testing.T) {
	params := []Param{
		{Name: "first", Help: "Handler help."},
		{Name: "second"},
	}
	overrides := map[string]ArgSpec{
		"first": {Opt: &Opt{Help: "Override help."}},
	}

	specs, err := Build(params, overrides, nil)
	require.NoError(t, err)
	assert.Equal(t, "Override help.", specs[0].Help)
	assert.Equal(t, "Set second.", specs[1].Help)
}

func TestBuildPreservesDeclarationOrder(t *testing.T) {
	params := []Param{
		{Name: "alpha", Default: "a"},
		{Name: "beta", Default: "b"},
		{Name: "gamma", Default: "c"},
	}
	// A configuration value must not reorder parameters.
	conf := map[string]any{"gamma": "from-conf"}

	specs, err := Build(params, nil, conf)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, specs.Names())
}

func TestBuildUnknownOverrideKey(t *testing.T) {
	params := []Param{{Name: "verbose", Type: KindBool, Default: false}}

	_, err := Build(params, map[string]ArgSpec{"verbse": {Default: true}}, nil)
	require.Error(t, err)
	assert.True(t, dcerrors.IsCode(err, dcerrors.ErrCodeUnknownParameter))
	assert.Contains(t, err.Error(), "verbse")
	assert.Contains(t, err.Error(), `"verbose"`)
}

func TestBuildUnknownOverrideKeyNoSuggestion(t *testing.T) {
	params := []Param{{Name: "host", Default: "localhost"}}

	_, err := Build(params, map[string]ArgSpec{"completely_different": {}}, nil)
	require.Error(t, err)
	assert.True(t, dcerrors.IsCode(err, dcerrors.ErrCodeUnknownParameter))
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want Kind
	}{
		{name: "string", v: "x", want: KindString},
		{name: "int", v: 7, want: KindInt},
		{name: "int64", v: int64(7), want: KindInt},
		{name: "float64", v: 1.5, want: KindFloat},
		{name: "bool", v: true, want: KindBool},
		{name: "string slice", v: []string{"a"}, want: KindStringSlice},
		{name: "nil", v: nil, want: KindUnknown},
		{name: "map", v: map[string]any{}, want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.v))
		})
	}
}

func TestFlagName(t *testing.T) {
	assert.Equal(t, "conf-file", Spec{Name: "conf_file"}.FlagName())
	assert.Equal(t, "plain", Spec{Name: "plain"}.FlagName())
}

func TestSpecsLookup(t *testing.T) {
	specs := Specs{{Name: "a"}, {Name: "b"}}

	got, ok := specs.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, "b", got.Name)

	_, ok = specs.Lookup("missing")
	assert.False(t, ok)
}

/*
Copyright © 2025 The dyncmd Authors
SPDX-License-Identifier: Apache-2.0
*/

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := New(ErrCodeUnsupportedFormat, `unsupported file extension: "xml"`)
	assert.Equal(t, `UNSUPPORTED_FORMAT: unsupported file extension: "xml"`, err.Error())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("read failed")
	err := Wrap(ErrCodeInternal, "loading configuration", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "read failed")
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		want bool
	}{
		{
			name: "direct match",
			err:  New(ErrCodeUnknownParameter, "unknown parameter: foo"),
			code: ErrCodeUnknownParameter,
			want: true,
		},
		{
			name: "wrapped match",
			err:  fmt.Errorf("register: %w", New(ErrCodeUnknownParameter, "unknown parameter: foo")),
			code: ErrCodeUnknownParameter,
			want: true,
		},
		{
			name: "code mismatch",
			err:  New(ErrCodeInternal, "boom"),
			code: ErrCodeUnknownParameter,
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			code: ErrCodeInternal,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCode(tt.err, tt.code))
		})
	}
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeInvalidSpec, CodeOf(New(ErrCodeInvalidSpec, "bad handler")))
	assert.Equal(t, "", CodeOf(errors.New("plain")))
}

func TestErrorsIsMatchesByCode(t *testing.T) {
	sentinel := New(ErrCodeUnsupportedFormat, "")
	err := Newf(ErrCodeUnsupportedFormat, "unsupported file extension: %q", "ini")
	assert.True(t, errors.Is(err, sentinel))
}

/*
Copyright © 2025 The dyncmd Authors
SPDX-License-Identifier: Apache-2.0
*/

package conf

import (
	"path/filepath"
	"strings"

	dcerrors "github.com/dyncmd/dyncmd/pkg/errors"
)

// Format identifies the on-disk configuration encoding. The format is
// selected by file extension; FormatYAML and FormatYML differ only in
// the extension used during discovery.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatYML  Format = "yml"
	FormatJSON Format = "json"
)

// IsUnknown reports whether the format is not one of the recognized encodings.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatTOML, FormatYAML, FormatYML, FormatJSON:
		return false
	}
	return true
}

// Ext returns the file extension for the format, without the leading dot.
func (f Format) Ext() string {
	return string(f)
}

// FormatForPath derives the format from the file extension of path.
// An empty extension falls back to fallback; any other unrecognized
// extension is an UNSUPPORTED_FORMAT error naming the extension.
func FormatForPath(path string, fallback Format) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return fallback, nil
	}
	f := Format(ext)
	if f.IsUnknown() {
		return "", dcerrors.Newf(dcerrors.ErrCodeUnsupportedFormat,
			"unsupported file extension: %q", ext)
	}
	return f, nil
}

// Scope controls where configuration discovery looks for a file: a
// bare per-application file, a per-application directory, or either.
type Scope string

const (
	ScopeFile Scope = "file"
	ScopeDir  Scope = "dir"
	ScopeBoth Scope = "both"
)

// IsValid reports whether the scope is one of the supported values.
func (s Scope) IsValid() bool {
	switch s {
	case ScopeFile, ScopeDir, ScopeBoth:
		return true
	}
	return false
}

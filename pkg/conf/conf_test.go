/*
Copyright © 2025 The dyncmd Authors
SPDX-License-Identifier: Apache-2.0
*/

package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dcerrors "github.com/dyncmd/dyncmd/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFileFormats(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		format  Format
		content string
	}{
		{
			name:   "toml",
			file:   "app.toml",
			format: FormatTOML,
			content: `[global]
key1 = "value1"

[cmd]
key2 = "value2"
`,
		},
		{
			name:   "yaml",
			file:   "app.yaml",
			format: FormatYAML,
			content: `global:
  key1: value1
cmd:
  key2: value2
`,
		},
		{
			name:    "json",
			file:    "app.json",
			format:  FormatJSON,
			content: `{"global": {"key1": "value1"}, "cmd": {"key2": "value2"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)

			raw, err := ReadFile(path, tt.format)
			require.NoError(t, err)

			merged := MergeCommand(raw, "cmd")
			assert.Equal(t, map[string]any{"key1": "value1", "key2": "value2"}, merged)
		})
	}
}

func TestReadFileUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.xml", "<conf/>")

	_, err := ReadFile(path, Format("xml"))
	require.Error(t, err)
	assert.True(t, dcerrors.IsCode(err, dcerrors.ErrCodeUnsupportedFormat))
	assert.Contains(t, err.Error(), `"xml"`)
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		fallback Format
		want     Format
		wantErr  bool
	}{
		{name: "toml extension", path: "conf.toml", want: FormatTOML},
		{name: "yml extension", path: "conf.yml", want: FormatYML},
		{name: "json extension", path: "a/b/conf.json", want: FormatJSON},
		{name: "no extension falls back", path: "conf", fallback: FormatYAML, want: FormatYAML},
		{name: "unknown extension", path: "conf.xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatForPath(tt.path, tt.fallback)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dcerrors.IsCode(err, dcerrors.ErrCodeUnsupportedFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergeCommandPrefersCommandSection(t *testing.T) {
	raw := map[string]any{
		"global": map[string]any{"key": "global", "only_global": 1},
		"cmd":    map[string]any{"key": "cmd"},
	}

	merged := MergeCommand(raw, "cmd")
	assert.Equal(t, "cmd", merged["key"])
	assert.Equal(t, 1, merged["only_global"])
}

func TestMergeCommandMissingSections(t *testing.T) {
	assert.Empty(t, MergeCommand(map[string]any{}, "cmd"))
	assert.Equal(t,
		map[string]any{"key": "v"},
		MergeCommand(map[string]any{"global": map[string]any{"key": "v"}}, "cmd"))
}

func TestResolveExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.toml", `[global]
key1 = "value1"

[cmd]
key2 = "value2"
`)

	r := Resolver{AppName: "testapp"}
	got, err := r.Resolve("cmd", path)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"key1": "value1", "key2": "value2"}, got)
}

func TestResolveMissingFileIsEmpty(t *testing.T) {
	r := Resolver{AppName: "testapp", Finder: DefaultFinder{WorkDir: t.TempDir(), ConfigDir: t.TempDir()}}

	got, err := r.Resolve("cmd", "")
	require.NoError(t, err)
	assert.Empty(t, got)

	// Explicit path to a nonexistent file behaves the same.
	got, err = r.Resolve("cmd", filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolveDiscovery(t *testing.T) {
	workDir := t.TempDir()
	writeFile(t, workDir, ".testapp.toml", `[cmd]
key = "discovered"
`)

	r := Resolver{
		AppName: "testapp",
		Finder:  DefaultFinder{WorkDir: workDir, ConfigDir: t.TempDir()},
	}
	got, err := r.Resolve("cmd", "")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"key": "discovered"}, got)
}

func TestResolveUnsupportedExplicitExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "conf.ini", "key=value")

	r := Resolver{AppName: "testapp"}
	_, err := r.Resolve("cmd", path)
	require.Error(t, err)
	assert.True(t, dcerrors.IsCode(err, dcerrors.ErrCodeUnsupportedFormat))
}

func TestDefaultFinderScopes(t *testing.T) {
	workDir := t.TempDir()
	configDir := t.TempDir()

	filePath := writeFile(t, workDir, ".app.toml", "")
	dirPath := writeFile(t, workDir, filepath.Join(".app", "app.toml"), "")
	configPath := writeFile(t, configDir, "app.toml", "")

	tests := []struct {
		name     string
		finder   DefaultFinder
		scope    Scope
		want     string
		wantSome bool
	}{
		{
			name:     "file scope finds dot file",
			finder:   DefaultFinder{WorkDir: workDir, ConfigDir: configDir},
			scope:    ScopeFile,
			want:     filePath,
			wantSome: true,
		},
		{
			name:     "dir scope finds dot directory",
			finder:   DefaultFinder{WorkDir: workDir, ConfigDir: configDir},
			scope:    ScopeDir,
			want:     dirPath,
			wantSome: true,
		},
		{
			name:     "both prefers working directory file",
			finder:   DefaultFinder{WorkDir: workDir, ConfigDir: configDir},
			scope:    ScopeBoth,
			want:     filePath,
			wantSome: true,
		},
		{
			name:     "config dir fallback",
			finder:   DefaultFinder{WorkDir: t.TempDir(), ConfigDir: configDir},
			scope:    ScopeFile,
			want:     configPath,
			wantSome: true,
		},
		{
			name:   "nothing found",
			finder: DefaultFinder{WorkDir: t.TempDir(), ConfigDir: t.TempDir()},
			scope:  ScopeBoth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.finder.Find("app", FormatTOML, tt.scope)
			assert.Equal(t, tt.wantSome, ok)
			if tt.wantSome {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

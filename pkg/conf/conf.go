/*
Copyright © 2025 The dyncmd Authors
SPDX-License-Identifier: Apache-2.0
*/

package conf

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	dcerrors "github.com/dyncmd/dyncmd/pkg/errors"
)

// GlobalSection is the configuration section applied to every command
// of an application. Command-specific sections overlay it.
const GlobalSection = "global"

// ReadFile reads and parses a configuration file with the given format.
// The file is opened, read, and closed in one shot; there is no retry.
func ReadFile(path string, format Format) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	out := map[string]any{}
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to parse toml configuration %q: %w", path, err)
		}
	case FormatYAML, FormatYML:
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to parse yaml configuration %q: %w", path, err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to parse json configuration %q: %w", path, err)
		}
	default:
		return nil, dcerrors.Newf(dcerrors.ErrCodeUnsupportedFormat,
			"unsupported file extension: %q", string(format))
	}
	return out, nil
}

// Resolver loads the layered configuration for one application and
// exposes the merged mapping for a single named command.
type Resolver struct {
	// AppName names the application; discovery derives candidate file
	// names from it.
	AppName string
	// Format selects the encoding used during discovery. Defaults to TOML.
	Format Format
	// Scope controls discovery placement. Defaults to ScopeBoth.
	Scope Scope
	// Finder performs discovery. Defaults to DefaultFinder.
	Finder Finder
}

// Resolve returns the merged configuration mapping for commandName:
// the global section overlaid by the command-named section, command
// keys winning on conflict. When explicitPath is non-empty it is used
// verbatim and discovery is skipped. A missing file yields an empty
// mapping, never an error.
func (r Resolver) Resolve(commandName, explicitPath string) (map[string]any, error) {
	format := r.Format
	if format == "" {
		format = FormatTOML
	}
	scope := r.Scope
	if scope == "" {
		scope = ScopeBoth
	}

	path := explicitPath
	if path == "" {
		finder := r.Finder
		if finder == nil {
			finder = DefaultFinder{}
		}
		p, ok := finder.Find(r.AppName, format, scope)
		if !ok {
			return map[string]any{}, nil
		}
		path = p
	}

	parseFormat, err := FormatForPath(path, format)
	if err != nil {
		return nil, err
	}

	if info, err := os.Stat(path); err != nil || !info.Mode().IsRegular() {
		return map[string]any{}, nil
	}

	raw, err := ReadFile(path, parseFormat)
	if err != nil {
		return nil, err
	}

	return MergeCommand(raw, commandName), nil
}

// MergeCommand merges the global section of a raw configuration with
// the section named after the command. Keys present in both sections
// resolve to the command-section value.
func MergeCommand(raw map[string]any, commandName string) map[string]any {
	merged := map[string]any{}
	for k, v := range section(raw, GlobalSection) {
		merged[k] = v
	}
	for k, v := range section(raw, commandName) {
		merged[k] = v
	}
	return merged
}

// section extracts a nested mapping by key, tolerating the map key
// types produced by the different decoders.
func section(raw map[string]any, key string) map[string]any {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	switch m := v.(type) {
	case map[string]any:
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out
	}
	return nil
}

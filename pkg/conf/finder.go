/*
Copyright © 2025 The dyncmd Authors
SPDX-License-Identifier: Apache-2.0
*/

package conf

import (
	"os"
	"path/filepath"
)

// Finder locates a candidate configuration file for an application.
// The core only requests discovery; implementations decide the search
// strategy. Find returns false when no candidate exists.
type Finder interface {
	Find(appName string, format Format, scope Scope) (string, bool)
}

// DefaultFinder searches the working directory and the user
// configuration directory for a file matching the application name.
//
// File-scoped candidates:
//
//	<workdir>/.<app>.<ext>
//	<configdir>/<app>.<ext>
//
// Directory-scoped candidates:
//
//	<workdir>/.<app>/<app>.<ext>
//	<configdir>/<app>/<app>.<ext>
//
// ScopeBoth checks all four, working directory first. The zero value
// uses the current directory and os.UserConfigDir.
type DefaultFinder struct {
	// WorkDir overrides the working directory used for relative candidates.
	WorkDir string
	// ConfigDir overrides the user configuration directory.
	ConfigDir string
}

// Find returns the first existing candidate for the given scope.
func (f DefaultFinder) Find(appName string, format Format, scope Scope) (string, bool) {
	if !scope.IsValid() {
		scope = ScopeBoth
	}

	workDir := f.WorkDir
	if workDir == "" {
		workDir = "."
	}
	configDir := f.ConfigDir
	if configDir == "" {
		if d, err := os.UserConfigDir(); err == nil {
			configDir = d
		}
	}

	ext := format.Ext()
	var candidates []string
	if scope == ScopeFile || scope == ScopeBoth {
		candidates = append(candidates, filepath.Join(workDir, "."+appName+"."+ext))
	}
	if scope == ScopeDir || scope == ScopeBoth {
		candidates = append(candidates, filepath.Join(workDir, "."+appName, appName+"."+ext))
	}
	if configDir != "" {
		if scope == ScopeFile || scope == ScopeBoth {
			candidates = append(candidates, filepath.Join(configDir, appName+"."+ext))
		}
		if scope == ScopeDir || scope == ScopeBoth {
			candidates = append(candidates, filepath.Join(configDir, appName, appName+"."+ext))
		}
	}

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.Mode().IsRegular() {
			return c, true
		}
	}
	return "", false
}

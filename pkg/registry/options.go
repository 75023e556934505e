/*
Copyright © 2025 The dyncmd Authors
SPDX-License-Identifier: Apache-2.0
*/

package registry

import (
	"github.com/dyncmd/dyncmd/pkg/argspec"
	"github.com/dyncmd/dyncmd/pkg/conf"
)

// Option configures a Registry.
type Option func(*Registry)

// WithFormat sets the configuration file format used for discovery.
func WithFormat(format conf.Format) Option {
	return func(r *Registry) {
		r.format = format
	}
}

// WithScope sets the configuration discovery scope.
func WithScope(scope conf.Scope) Option {
	return func(r *Registry) {
		r.scope = scope
	}
}

// WithFinder sets the configuration discovery collaborator.
func WithFinder(finder conf.Finder) Option {
	return func(r *Registry) {
		r.finder = finder
	}
}

// WithDefaults sets application-level argument overrides applied to
// every registered command. A per-command override for the same
// parameter name fully replaces the application-level one.
func WithDefaults(defaults map[string]argspec.ArgSpec) Option {
	return func(r *Registry) {
		for k, v := range defaults {
			r.defaults[k] = v
		}
	}
}

type registerConfig struct {
	params      []argspec.Param
	args        map[string]argspec.ArgSpec
	help        string
	description string
	useConf     bool
	confFile    string
}

// RegisterOption configures one Register call.
type RegisterOption func(*registerConfig)

// WithParams declares the handler's formal parameters. Function
// handlers need this; Runner handlers may rely on field derivation.
func WithParams(params []argspec.Param) RegisterOption {
	return func(c *registerConfig) {
		c.params = params
	}
}

// WithArgs supplies per-command argument overrides keyed by parameter name.
func WithArgs(args map[string]argspec.ArgSpec) RegisterOption {
	return func(c *registerConfig) {
		c.args = args
	}
}

// WithHelp sets the command's one-line help text.
func WithHelp(help string) RegisterOption {
	return func(c *registerConfig) {
		c.help = help
	}
}

// WithDescription sets pre-existing long documentation for the
// command; the generated parameter block is appended to it.
func WithDescription(description string) RegisterOption {
	return func(c *registerConfig) {
		c.description = description
	}
}

// WithConfig toggles configuration file lookup for the command.
func WithConfig(useConf bool) RegisterOption {
	return func(c *registerConfig) {
		c.useConf = useConf
	}
}

// WithConfigFile points the command at an explicit configuration file,
// implying configuration use.
func WithConfigFile(path string) RegisterOption {
	return func(c *registerConfig) {
		c.confFile = path
	}
}

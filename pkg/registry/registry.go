/*
Copyright © 2025 The dyncmd Authors
SPDX-License-Identifier: Apache-2.0
*/

package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/dyncmd/dyncmd/pkg/argspec"
	"github.com/dyncmd/dyncmd/pkg/conf"
	"github.com/dyncmd/dyncmd/pkg/synth"
)

// Entry records one registered command. Entries are created during
// registration and immutable afterward; re-registering the same name
// replaces the prior entry.
type Entry struct {
	ID      uuid.UUID
	Name    string
	Handler any
	Specs   argspec.Specs
	Help    string
}

// Registry resolves configuration, builds parameter specs, and
// synthesizes dispatcher commands for one application.
type Registry struct {
	app      *cli.Command
	appName  string
	defaults map[string]argspec.ArgSpec
	format   conf.Format
	scope    conf.Scope
	finder   conf.Finder
	entries  map[string]*Entry
}

// New creates a registry attached to a root dispatcher command.
func New(app *cli.Command, appName string, opts ...Option) *Registry {
	r := &Registry{
		app:      app,
		appName:  appName,
		defaults: map[string]argspec.ArgSpec{},
		format:   conf.FormatTOML,
		scope:    conf.ScopeBoth,
		entries:  map[string]*Entry{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register resolves configuration (when enabled), builds the parameter
// specs for one command, synthesizes the dispatcher command, and
// attaches it to the application. All work happens here, at
// registration time; invocation only forwards values.
func (r *Registry) Register(name string, handler any, opts ...RegisterOption) error {
	cfg := registerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	params := cfg.params
	if params == nil {
		if factory, ok := runnerFactory(handler); ok {
			params = synth.ParamsOf(factory())
		}
	}

	overrides := make(map[string]argspec.ArgSpec, len(r.defaults)+len(cfg.args))
	for k, v := range r.defaults {
		overrides[k] = v
	}
	// A per-command override fully replaces an application-level one
	// for the same parameter, it is not merged field by field.
	for k, v := range cfg.args {
		overrides[k] = v
	}

	resolver := conf.Resolver{
		AppName: r.appName,
		Format:  r.format,
		Scope:   r.scope,
		Finder:  r.finder,
	}

	useConf := cfg.useConf || cfg.confFile != ""
	confMap := map[string]any{}
	if useConf {
		m, err := resolver.Resolve(name, cfg.confFile)
		if err != nil {
			return fmt.Errorf("resolving configuration for command %q: %w", name, err)
		}
		confMap = m
	}

	specs, err := argspec.Build(params, overrides, confMap)
	if err != nil {
		return fmt.Errorf("building argument specs for command %q: %w", name, err)
	}

	cmd, err := synth.Command(name, specs, handler, synth.Options{
		AppName:     r.appName,
		UseConf:     useConf,
		Resolver:    resolver,
		Help:        cfg.help,
		Description: cfg.description,
	})
	if err != nil {
		return err
	}

	entry := &Entry{ID: uuid.New(), Name: name, Handler: handler, Specs: specs, Help: cfg.help}
	r.entries[name] = entry
	r.attach(cmd)

	slog.Debug("registered command",
		"app", r.appName,
		"command", name,
		"entry", entry.ID.String(),
		"params", len(specs),
		"use_conf", useConf,
	)
	return nil
}

// Command describes one entry of a batch registration.
type Command struct {
	Handler any
	// Params declares the handler's formal parameters. May be omitted
	// for Runner handlers, whose parameters derive from struct fields.
	Params []argspec.Param
	// Args holds per-command overrides keyed by parameter name.
	Args map[string]argspec.ArgSpec
	Help string
	// UseConf enables configuration file lookup for this command.
	UseConf bool
}

// RegisterMany registers every command in the map, in sorted name
// order. Entries are independent: the first failure aborts the
// remaining batch but already-registered commands stay registered.
func (r *Registry) RegisterMany(cmds map[string]Command) error {
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		c := cmds[name]
		opts := []RegisterOption{
			WithParams(c.Params),
			WithArgs(c.Args),
			WithHelp(c.Help),
			WithConfig(c.UseConf),
		}
		if err := r.Register(name, c.Handler, opts...); err != nil {
			return fmt.Errorf("registering command %q: %w", name, err)
		}
	}
	return nil
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// attach adds the synthesized command to the dispatcher, replacing a
// previously registered command with the same name.
func (r *Registry) attach(cmd *cli.Command) {
	for i, existing := range r.app.Commands {
		if existing.Name == cmd.Name {
			r.app.Commands[i] = cmd
			return
		}
	}
	r.app.Commands = append(r.app.Commands, cmd)
}

func runnerFactory(handler any) (func() synth.Runner, bool) {
	switch h := handler.(type) {
	case synth.RunnerFactory:
		return h, true
	case func() synth.Runner:
		return h, true
	}
	return nil, false
}

/*
Copyright © 2025 The dyncmd Authors
SPDX-License-Identifier: Apache-2.0
*/

package synth

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dyncmd/dyncmd/pkg/argspec"
	"github.com/dyncmd/dyncmd/pkg/conf"
)

// ConfFileParam is the reserved parameter added to every command that
// uses a configuration file. It lets the end user point the command at
// a different file at invocation time and is consumed by the command
// itself, never forwarded to the handler.
const ConfFileParam = "conf_file"

// Options controls how a command is synthesized.
type Options struct {
	// AppName is the owning application name, used for configuration
	// resolution triggered by the conf_file parameter.
	AppName string
	// UseConf appends the reserved conf_file parameter and enables
	// invocation-time configuration overrides.
	UseConf bool
	// Resolver resolves configuration when conf_file is supplied.
	Resolver conf.Resolver
	// Help is the one-line command usage text.
	Help string
	// Description is pre-existing long documentation; the generated
	// parameter block is merged after it.
	Description string
}

// Command synthesizes a dispatcher command whose flag list mirrors the
// resolved specs in order. At invocation the command collects the
// final value of every parameter and forwards them to the handler.
func Command(name string, specs argspec.Specs, handler any, opts Options) (*cli.Command, error) {
	if opts.UseConf {
		specs = append(specs.Clone(), argspec.Spec{
			Name:    ConfFileParam,
			Type:    argspec.KindString,
			Default: "",
			Help:    "Path to the configuration file.",
		})
	}

	invoke, err := resolveHandler(handler, specs)
	if err != nil {
		return nil, fmt.Errorf("command %q: %w", name, err)
	}

	flags, err := Flags(specs)
	if err != nil {
		return nil, fmt.Errorf("command %q: %w", name, err)
	}

	return &cli.Command{
		Name:        name,
		Usage:       opts.Help,
		Description: MergeDoc(opts.Description, specs),
		Flags:       flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			overlay := map[string]any{}
			if opts.UseConf {
				if path, _ := cmd.Value("conf-file").(string); path != "" {
					m, err := opts.Resolver.Resolve(name, path)
					if err != nil {
						return err
					}
					overlay = m
				}
			}

			vals := Values{}
			for _, s := range specs {
				if s.Name == ConfFileParam {
					continue
				}
				// A flag the user set explicitly beats the overlay;
				// otherwise a conf_file-sourced value beats the default
				// baked into the flag at registration time.
				if !cmd.IsSet(s.FlagName()) {
					if raw, ok := overlay[s.Name]; ok {
						v, err := Coerce(raw, s.Type)
						if err != nil {
							return fmt.Errorf("parameter %s: %w", s.Name, err)
						}
						vals[s.Name] = v
						continue
					}
				}
				v, err := Coerce(cmd.Value(s.FlagName()), s.Type)
				if err != nil {
					return fmt.Errorf("parameter %s: %w", s.Name, err)
				}
				vals[s.Name] = v
			}
			return invoke(ctx, vals)
		},
	}, nil
}

// Flags maps resolved specs onto dispatcher flag definitions, one per
// parameter, in spec order.
func Flags(specs argspec.Specs) ([]cli.Flag, error) {
	flags := make([]cli.Flag, 0, len(specs))
	for _, s := range specs {
		flag, err := flagFor(s)
		if err != nil {
			return nil, err
		}
		flags = append(flags, flag)
	}
	return flags, nil
}

func flagFor(s argspec.Spec) (cli.Flag, error) {
	name := s.FlagName()

	var def any
	if !s.Required {
		v, err := Coerce(s.Default, s.Type)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", s.Name, err)
		}
		def = v
	}

	switch s.Type {
	case argspec.KindString:
		f := &cli.StringFlag{Name: name, Aliases: s.Aliases, Usage: s.Help, Required: s.Required}
		if def != nil {
			f.Value = def.(string)
		}
		return f, nil
	case argspec.KindInt:
		f := &cli.IntFlag{Name: name, Aliases: s.Aliases, Usage: s.Help, Required: s.Required}
		if def != nil {
			f.Value = def.(int)
		}
		return f, nil
	case argspec.KindFloat:
		f := &cli.FloatFlag{Name: name, Aliases: s.Aliases, Usage: s.Help, Required: s.Required}
		if def != nil {
			f.Value = def.(float64)
		}
		return f, nil
	case argspec.KindBool:
		f := &cli.BoolFlag{Name: name, Aliases: s.Aliases, Usage: s.Help, Required: s.Required}
		if def != nil {
			f.Value = def.(bool)
		}
		return f, nil
	case argspec.KindStringSlice:
		f := &cli.StringSliceFlag{Name: name, Aliases: s.Aliases, Usage: s.Help, Required: s.Required}
		if def != nil {
			f.Value = def.([]string)
		}
		return f, nil
	}
	return nil, fmt.Errorf("parameter %s: unsupported kind %q", s.Name, s.Type)
}

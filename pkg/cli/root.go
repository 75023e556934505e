/*
Copyright © 2025 The dyncmd Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"github.com/urfave/cli/v3"

	"github.com/dyncmd/dyncmd/pkg/conf"
	"github.com/dyncmd/dyncmd/pkg/registry"
)

const (
	// appName is used for configuration discovery: dynctl looks for
	// .dynctl.toml in the working directory or dynctl.toml under the
	// user configuration directory.
	appName = "dynctl"

	version = "0.1.0"
)

// New builds the dynctl demo application: a root dispatcher command
// with every subcommand registered through the dynamic registry.
func New() (*cli.Command, error) {
	app := &cli.Command{
		Name:    appName,
		Usage:   "Demo CLI with dynamically registered commands",
		Version: version,
	}

	reg := registry.New(app, appName,
		registry.WithFormat(conf.FormatTOML),
		registry.WithScope(conf.ScopeBoth),
	)

	if err := reg.RegisterMany(map[string]registry.Command{
		"greet": greetCommand(),
		"serve": serveCommand(),
	}); err != nil {
		return nil, err
	}
	return app, nil
}

/*
Copyright © 2025 The dyncmd Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"

	"github.com/dyncmd/dyncmd/pkg/registry"
	"github.com/dyncmd/dyncmd/pkg/synth"
)

// serveOptions is a Runner-handler demo: its exported fields are the
// command parameters, with field values as declared defaults.
type serveOptions struct {
	Host string `help:"Interface to bind."`
	Port int    `help:"Port to bind."`
}

func (s *serveOptions) Run(_ context.Context) error {
	addr := net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
	slog.Info("would listen", "addr", addr)
	fmt.Printf("serving on %s\n", addr)
	return nil
}

func serveCommand() registry.Command {
	return registry.Command{
		Handler: synth.RunnerFactory(func() synth.Runner {
			return &serveOptions{Host: "localhost", Port: 8080}
		}),
		Help:    "Pretend to start a server",
		UseConf: true,
	}
}

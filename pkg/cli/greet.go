/*
Copyright © 2025 The dyncmd Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dyncmd/dyncmd/pkg/argspec"
	"github.com/dyncmd/dyncmd/pkg/registry"
	"github.com/dyncmd/dyncmd/pkg/synth"
)

// greetCommand is a function-handler demo. Defaults may be overridden
// from the [greet] section of the dynctl configuration file.
func greetCommand() registry.Command {
	return registry.Command{
		Handler: synth.HandlerFunc(greet),
		Params: []argspec.Param{
			{Name: "name", Type: argspec.KindString, Default: "world", Help: "Who to greet."},
			{Name: "shout", Type: argspec.KindBool, Default: false, Help: "Print the greeting in upper case."},
			{Name: "repeat", Type: argspec.KindInt, Default: 1, Help: "How many times to greet."},
		},
		Help:    "Print a greeting",
		UseConf: true,
	}
}

func greet(_ context.Context, vals synth.Values) error {
	name := cases.Title(language.English).String(vals.String("name"))

	line := fmt.Sprintf("Hello, %s!", name)
	if vals.Bool("shout") {
		line = strings.ToUpper(line)
	}
	for i := 0; i < vals.Int("repeat"); i++ {
		fmt.Println(line)
	}
	return nil
}

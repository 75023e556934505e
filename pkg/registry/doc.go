// Package registry wires the full registration pipeline: resolve
// configuration for a command, build its argument specs, synthesize a
// dispatcher command, and attach it to the application.
//
// # Overview
//
// A Registry belongs to one application (a root dispatcher command and
// an application name used for configuration discovery). Each call to
// Register runs the whole pipeline for one command name:
//
//  1. Resolve the layered configuration file, if configuration use is
//     enabled; otherwise no filesystem access happens at all.
//  2. Merge application-level argument overrides with per-command
//     ones; a per-command override fully replaces the application
//     override for that parameter.
//  3. Resolve each parameter's final type, default, and help text.
//  4. Synthesize the dispatcher command and attach it, replacing any
//     command previously registered under the same name.
//
// # Usage
//
//	app := &cli.Command{Name: "mytool"}
//	reg := registry.New(app, "mytool",
//	    registry.WithFormat(conf.FormatTOML),
//	)
//
//	err := reg.Register("greet", synth.HandlerFunc(greet),
//	    registry.WithParams([]argspec.Param{
//	        {Name: "name", Type: argspec.KindString, Default: "World"},
//	    }),
//	    registry.WithHelp("Greet someone"),
//	    registry.WithConfig(true),
//	)
//
// Batch registration takes a map of command descriptions and applies
// Register per entry in sorted name order; the first failure aborts
// the rest without rolling back earlier registrations.
//
// Registration is strictly single-threaded and happens once during
// application start-up. Entries are written once and read-only
// afterward.
package registry

// Package synth builds dispatcher commands from resolved parameter
// specifications.
//
// A synthesized command exposes one flag per parameter, in declaration
// order, with the resolved default, type, and help text attached. Its
// action collects the final value of every parameter and forwards the
// set to the handler: either a HandlerFunc receiving the values by
// name, or a Runner struct whose fields are populated by Bind before
// Run is called.
//
// Commands that use a configuration file gain a reserved conf_file
// parameter. Supplying it at invocation time re-resolves configuration
// from that path and overlays the result onto every flag the user did
// not set explicitly.
package synth

// Package argspec resolves the final type, default value, and help
// text of every command parameter.
//
// Three inputs feed the resolution: the handler's declared parameters,
// caller-supplied overrides, and the merged configuration mapping for
// the command. Configuration wins on defaults, overrides win on types
// and help, and a parameter that ends up with no default at all
// becomes required. A parameter never leaves resolution untyped: the
// fallback is the generic string kind.
package argspec

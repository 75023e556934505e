/*
Copyright © 2025 The dyncmd Authors
SPDX-License-Identifier: Apache-2.0
*/

package argspec

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	dcerrors "github.com/dyncmd/dyncmd/pkg/errors"
)

// Param is a formal parameter declared by a command handler. Order of
// declaration is the order the synthesized command exposes.
type Param struct {
	Name string
	// Type may be left KindUnknown; resolution then falls back to the
	// type of the resolved default, then to KindString.
	Type Kind
	// Default of nil means the parameter has no declared default.
	Default any
	Help    string
}

// Opt carries flag metadata supplied alongside an override type, the
// way an annotated type wraps its option info.
type Opt struct {
	Help    string
	Aliases []string
}

// ArgSpec is a caller-supplied override for one named parameter. Any
// field left at its zero value defers to the handler declaration.
type ArgSpec struct {
	Type    Kind
	Opt     *Opt
	Default any
}

// Spec is the fully resolved specification of one command parameter.
// Type is never KindUnknown after resolution.
type Spec struct {
	Name     string
	Type     Kind
	Default  any
	Required bool
	Help     string
	Aliases  []string
}

// FlagName derives the dispatcher flag name: underscores become hyphens.
func (s Spec) FlagName() string {
	return strings.ReplaceAll(s.Name, "_", "-")
}

// Specs is an ordered list of resolved parameter specifications.
type Specs []Spec

// Lookup returns the spec with the given parameter name.
func (s Specs) Lookup(name string) (Spec, bool) {
	for _, spec := range s {
		if spec.Name == name {
			return spec, true
		}
	}
	return Spec{}, false
}

// Clone returns a shallow copy of the spec list.
func (s Specs) Clone() Specs {
	out := make(Specs, len(s))
	copy(out, s)
	return out
}

// Names returns the parameter names in declaration order.
func (s Specs) Names() []string {
	names := make([]string, len(s))
	for i, spec := range s {
		names[i] = spec.Name
	}
	return names
}

// Build resolves the final specification for each handler parameter.
//
// Defaults resolve as: configuration value, then override default,
// then handler default, then none (the parameter becomes required).
// Types resolve as: override type, then handler type, then the type of
// the resolved default, then KindString. Help resolves as: override
// option help, then handler help, then a generated "Set <name>." line.
//
// Override keys naming no declared parameter are rejected with an
// UNKNOWN_PARAMETER error.
func Build(params []Param, overrides map[string]ArgSpec, conf map[string]any) (Specs, error) {
	if err := checkOverrideKeys(params, overrides); err != nil {
		return nil, err
	}

	specs := make(Specs, 0, len(params))
	for _, param := range params {
		override := overrides[param.Name]

		spec := Spec{Name: param.Name}

		if v, ok := conf[param.Name]; ok {
			spec.Default = v
		} else if override.Default != nil {
			spec.Default = override.Default
		} else if param.Default != nil {
			spec.Default = param.Default
		} else {
			spec.Required = true
		}

		switch {
		case override.Type != KindUnknown:
			spec.Type = override.Type
		case param.Type != KindUnknown:
			spec.Type = param.Type
		case KindOf(spec.Default) != KindUnknown:
			spec.Type = KindOf(spec.Default)
		default:
			spec.Type = KindString
		}

		switch {
		case override.Opt != nil && override.Opt.Help != "":
			spec.Help = override.Opt.Help
		case param.Help != "":
			spec.Help = param.Help
		default:
			spec.Help = fmt.Sprintf("Set %s.", param.Name)
		}

		if override.Opt != nil {
			spec.Aliases = override.Opt.Aliases
		}

		specs = append(specs, spec)
	}
	return specs, nil
}

// checkOverrideKeys rejects override keys that match no declared
// parameter, suggesting the closest declared name when one is near.
func checkOverrideKeys(params []Param, overrides map[string]ArgSpec) error {
	declared := make(map[string]struct{}, len(params))
	names := make([]string, 0, len(params))
	for _, p := range params {
		declared[p.Name] = struct{}{}
		names = append(names, p.Name)
	}

	unknown := make([]string, 0)
	for key := range overrides {
		if _, ok := declared[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)

	key := unknown[0]
	msg := fmt.Sprintf("unknown parameter: %s", key)
	if suggestion := Closest(key, names); suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return dcerrors.New(dcerrors.ErrCodeUnknownParameter, msg)
}

// Closest returns the candidate within a small edit distance of name,
// or empty when nothing is close enough to be a plausible typo.
func Closest(name string, candidates []string) string {
	const maxDistance = 3

	best := ""
	bestDistance := maxDistance + 1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(name, c); d < bestDistance {
			best = c
			bestDistance = d
		}
	}
	return best
}

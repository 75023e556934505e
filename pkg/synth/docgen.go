/*
Copyright © 2025 The dyncmd Authors
SPDX-License-Identifier: Apache-2.0
*/

package synth

import (
	"fmt"
	"strings"

	"github.com/dyncmd/dyncmd/pkg/argspec"
)

const docIndent = "   "

// ParamDoc renders the human-readable parameter block: one entry per
// parameter with its name, type tag, help text, and default. String
// defaults are rendered quoted.
func ParamDoc(specs argspec.Specs) string {
	var b strings.Builder
	for _, s := range specs {
		fmt.Fprintf(&b, "%s%s : %s\n", docIndent, s.Name, s.Type)
		fmt.Fprintf(&b, "%s%s%s %s\n", docIndent, docIndent, s.Help, renderDefault(s))
	}
	return b.String()
}

// MergeDoc appends the generated parameter block to a command's
// existing description, preserving any pre-existing text.
func MergeDoc(existing string, specs argspec.Specs) string {
	if len(specs) == 0 {
		return existing
	}
	block := "Parameters:\n" + strings.TrimRight(ParamDoc(specs), "\n")
	if existing == "" {
		return block
	}
	return strings.TrimRight(existing, "\n") + "\n\n" + block
}

func renderDefault(s argspec.Spec) string {
	if s.Required {
		return "(required)"
	}
	if str, ok := s.Default.(string); ok {
		return fmt.Sprintf("(default: %q)", str)
	}
	return fmt.Sprintf("(default: %v)", s.Default)
}

/*
Copyright © 2025 The dyncmd Authors
SPDX-License-Identifier: Apache-2.0
*/

package synth

import (
	"context"

	"github.com/dyncmd/dyncmd/pkg/argspec"
	dcerrors "github.com/dyncmd/dyncmd/pkg/errors"
)

// HandlerFunc is the function-shaped command handler. The synthesized
// command forwards every resolved parameter value by name.
type HandlerFunc func(ctx context.Context, vals Values) error

// Runner is the object-shaped command handler: a struct whose exported
// fields are the command parameters and whose Run method is the
// command body. The synthesized command constructs a fresh instance,
// binds the resolved values onto its fields, then calls Run.
type Runner interface {
	Run(ctx context.Context) error
}

// RunnerFactory constructs a fresh Runner per invocation.
type RunnerFactory func() Runner

// resolveHandler normalizes the accepted handler shapes into a single
// invocation function. Anything else is an INVALID_SPEC error.
func resolveHandler(handler any, specs argspec.Specs) (func(context.Context, Values) error, error) {
	switch h := handler.(type) {
	case HandlerFunc:
		return h, nil
	case func(context.Context, Values) error:
		return h, nil
	case RunnerFactory:
		return runnerInvoker(h, specs), nil
	case func() Runner:
		return runnerInvoker(h, specs), nil
	}
	return nil, dcerrors.Newf(dcerrors.ErrCodeInvalidSpec,
		"unsupported handler type %T: want HandlerFunc or RunnerFactory", handler)
}

func runnerInvoker(factory func() Runner, specs argspec.Specs) func(context.Context, Values) error {
	return func(ctx context.Context, vals Values) error {
		r := factory()
		if err := Bind(r, specs, vals); err != nil {
			return err
		}
		return r.Run(ctx)
	}
}

// SPDX-License-Identifier: MIT
// Package: sfaboss/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with %w via builderErrorf.
//   • Generators never panic; validation panics live in option constructors.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates invalid sizes for generators or dataset fixtures
// (n < 1, length below the minimum, zero instances per class).
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrClassCount indicates a class count the labeled fixture cannot render.
var ErrClassCount = errors.New("builder: unsupported class count")

// Method tokens used as error context.
const (
	MethodLabeled      = "BuildLabeled"
	MethodConstant     = "BuildConstant"
	MethodMultivariate = "BuildMultivariate"
)

// builderErrorf prefixes err with the method name and a formatted detail,
// keeping err reachable through errors.Is.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

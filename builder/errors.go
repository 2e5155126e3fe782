// SPDX-License-Identifier: MIT
// Package: lvbayes/builder
//
// errors.go — sentinel errors for the builder package.
// Callers branch with errors.Is; constructors attach context with %w.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrConstructFailed indicates a nil constructor or a failed mutation.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrUnknownFixture indicates a name not known to GraphByName/NetworkByName.
	ErrUnknownFixture = errors.New("builder: unknown fixture")
)

// SPDX-License-Identifier: MIT
// Package factor: sentinel error set.
// All constructors and operations return these sentinels (possibly wrapped
// with %w for context); tests match them via errors.Is.

package factor

import "errors"

var (
	// ErrScopeMismatch indicates an assignment or argument that does not
	// cover the factor's scope.
	ErrScopeMismatch = errors.New("factor: scope mismatch")

	// ErrUnknownOutcome indicates an outcome label outside a variable's domain.
	ErrUnknownOutcome = errors.New("factor: unknown outcome")

	// ErrShape indicates an invalid scope (empty name, duplicates, empty
	// domain) or a table whose length differs from the product of domain sizes.
	ErrShape = errors.New("factor: invalid shape")

	// ErrNegativeValue indicates a negative, NaN or infinite potential.
	ErrNegativeValue = errors.New("factor: negative or non-finite value")

	// ErrDomainMismatch indicates that two factors disagree on the outcomes
	// of a shared variable.
	ErrDomainMismatch = errors.New("factor: domain mismatch")

	// ErrZeroMass indicates normalisation of a factor whose entries sum to 0.
	ErrZeroMass = errors.New("factor: zero total mass")

	// ErrNilFactor indicates that a nil *Factor was passed in.
	ErrNilFactor = errors.New("factor: nil factor")
)

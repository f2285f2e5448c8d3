// SPDX-License-Identifier: MIT
// Package: wlkernel/builder
//
// errors.go: sentinels returned by constructors and label schemes, always
// wrapped with the constructor name ("Cycle: n=2 < min=3: ...").

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor or label scheme
// requires a seeded RNG (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the fixture could not be built, e.g. a nil
// constructor was passed or a label could not be assigned.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownShape indicates that ByName was given a shape it does not know.
var ErrUnknownShape = errors.New("builder: unknown shape")

// ErrEmptyAlphabet indicates that a label scheme was built with no labels.
var ErrEmptyAlphabet = errors.New("builder: empty label alphabet")

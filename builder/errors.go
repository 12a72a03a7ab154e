// SPDX-License-Identifier: MIT
// Package: patterns/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w, never by editing sentinels.
//   • Operations never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrNilItem indicates that a nil Item was passed to AddItem/AddItems.
var ErrNilItem = errors.New("builder: item is nil")

// ErrBadPrice indicates an Item whose price is negative or NaN.
var ErrBadPrice = errors.New("builder: invalid item price")

// ErrTooManyItems indicates that a constructor would push the Meal past the
// cap configured with WithMaxItems.
var ErrTooManyItems = errors.New("builder: too many items")

// ErrNilConstructor indicates a nil Constructor in BuildMeal.
var ErrNilConstructor = errors.New("builder: constructor is nil")

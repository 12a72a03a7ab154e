// SPDX-License-Identifier: MIT
// Package: patterns/builder
//
// options.go — functional options for BuildMeal.
//
// Contract:
//   • Options are functional (type Option func(*mealConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Later options override earlier ones.

package builder

// Option customizes BuildMeal by mutating a mealConfig before any
// constructor runs.
type Option func(*mealConfig)

// WithName sets the Meal name. Panics on an empty name.
func WithName(name string) Option {
	if name == "" {
		panic("builder: WithName(\"\")")
	}
	return func(c *mealConfig) {
		c.name = name
	}
}

// WithMaxItems caps the number of items a built Meal may hold.
// Panics if n < 1; pass no option (or Unlimited via config) for no cap.
func WithMaxItems(n int) Option {
	if n < 1 {
		panic("builder: WithMaxItems(n<1)")
	}
	return func(c *mealConfig) {
		c.maxItems = n
	}
}

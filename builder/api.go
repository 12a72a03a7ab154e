// SPDX-License-Identifier: MIT
// Package: patterns/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMeal(opts, cons...). Creates the Meal, resolves
//     the config, runs cons in order.
//   - Fixed recipes (PrepareVegMeal, PrepareNonVegMeal) never fail.
//   - Same inputs and constructor order ⇒ identical meals.

package builder

import (
	"fmt"
)

// Constructor applies one deterministic step to a Meal under the resolved
// mealConfig. Constructors validate early and return sentinel errors.
type Constructor func(m *Meal, cfg mealConfig) error

// BuildMeal creates a new Meal, resolves the configuration from opts and
// applies all constructors in order. The first constructor error is wrapped
// with "BuildMeal: %w" and returned; the partial Meal is discarded.
func BuildMeal(opts []Option, cons ...Constructor) (*Meal, error) {
	cfg := newMealConfig(opts...)
	m := NewMeal(cfg.name)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: index %d: %w", MethodBuildMeal, i, ErrNilConstructor)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildMeal, err)
		}
	}

	return m, nil
}

// AddItem returns a Constructor appending item.
func AddItem(item Item) Constructor {
	return func(m *Meal, cfg mealConfig) error {
		if err := validateItem(MethodAddItem, item); err != nil {
			return err
		}
		if err := validateCapacity(MethodAddItem, m, cfg, 1); err != nil {
			return err
		}
		m.Add(item)

		return nil
	}
}

// AddItems returns a Constructor appending items in order. Either all items
// are added or none.
func AddItems(items ...Item) Constructor {
	return func(m *Meal, cfg mealConfig) error {
		for _, it := range items {
			if err := validateItem(MethodAddItem, it); err != nil {
				return err
			}
		}
		if err := validateCapacity(MethodAddItem, m, cfg, len(items)); err != nil {
			return err
		}
		for _, it := range items {
			m.Add(it)
		}

		return nil
	}
}

// PrepareVegMeal returns a Veg Burger with a Coke (cost 55.0).
func PrepareVegMeal() *Meal {
	m := NewMeal(VegMealName)
	m.Add(VegBurger())
	m.Add(Coke())

	return m
}

// PrepareNonVegMeal returns a Chicken burger with a Pepsi (cost 85.0).
func PrepareNonVegMeal() *Meal {
	m := NewMeal(NonVegMealName)
	m.Add(ChickenBurger())
	m.Add(Pepsi())

	return m
}

// Package builder implements the Builder pattern: a Meal aggregate is
// assembled step by step from Items, each with its own Packing.
//
// The package offers the following key components:
//
//   - Parts:
//     – Item:        named, priced part with a Packing.
//     – Burger:      Item packed in a Wrapper.
//     – ColdDrink:   Item packed in a Bottle.
//     – VegBurger, ChickenBurger, Coke, Pepsi: the fixed menu.
//   - Aggregate:
//     – Meal:        ordered list of Items; Cost is the sum of prices.
//   - Builders:
//     – PrepareVegMeal, PrepareNonVegMeal: fixed recipes.
//     – BuildMeal:   orchestrator applying Constructors in order under
//     functional Options (WithName, WithMaxItems).
//
// Guarantees:
//
//   - Cost is order-independent: the sum of the item prices.
//   - Items keep insertion order; Meal offers no removal.
//   - Option constructors panic on meaningless values; BuildMeal and the
//     constructors return sentinel errors and never panic.
package builder

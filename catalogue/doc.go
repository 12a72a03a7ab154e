// Package catalogue lists the pattern demos in their canonical order and
// runs them one after another.
//
// The order is fixed: factory, abstract-factory, builder, adapter, bridge,
// decorator, facade, composite, criteria. A Runner writes a banner line
// before each demo, runs demos strictly sequentially on the calling
// goroutine and stops at the first demo that fails.
//
// Errors:
//
//   - ErrUnknownDemo  Select received a slug that names no demo
//   - demo errors     wrapped as "<slug>: %w" by Runner.Run
package catalogue

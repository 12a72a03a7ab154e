// Package patterns is a catalogue of classic object-oriented design
// patterns written as small, independent Go packages. Each package builds a
// handful of objects, lets them interact and writes the result to an
// io.Writer.
//
// What's inside:
//
//	shape/      — Shape (Rectangle, Square, Circle) and Color primitives
//	factory/    — Factory and Abstract Factory
//	builder/    — Builder: a Meal assembled from Items, cost aggregation
//	adapter/    — Adapter: MediaPlayer over AdvancedMediaPlayer
//	bridge/     — Bridge: Circle abstraction over an injected DrawAPI
//	decorator/  — Decorator: border colour around any Shape
//	facade/     — Facade: ShapeMaker, one entry point for three draws
//	composite/  — Composite: Employee tree with recursive Walk
//	criteria/   — Filter: Person criteria with And/Or combinators
//	catalogue/  — ordered demo list and sequential Runner
//	cmd/patterns — command-line harness (run, list)
//
// Every demo is deterministic and runs on the calling goroutine; no package
// starts goroutines or holds global mutable state.
//
//	go run ./cmd/patterns run
//	go run ./cmd/patterns run adapter criteria
//	go run ./cmd/patterns list -o yaml
package patterns

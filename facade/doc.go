// Package facade implements the Facade pattern: ShapeMaker is a single entry
// point over three shape subsystems. DrawAll runs every draw in order and
// never short-circuits; failures are joined and returned at the end.
package facade

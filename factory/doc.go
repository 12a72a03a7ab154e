// Package factory implements the Factory and Abstract Factory patterns over
// the shape primitives.
//
// What:
//
//   - ShapeFactory maps a shape.Kind to a fresh shape.Shape.
//   - AbstractFactory groups two product families (colours and shapes).
//     ShapeFactory and ColorFactory each serve one family and answer nil for
//     the other.
//   - Producer selects a concrete AbstractFactory by Choice.
//
// Unmapped discriminators never raise an error: the factories return nil and
// the caller decides what "nothing" means. The demos skip nil products.
//
// Functions:
//
//   - Producer(choice Choice) AbstractFactory
//   - FactoryDemo(w io.Writer) error
//   - AbstractDemo(w io.Writer) error
package factory

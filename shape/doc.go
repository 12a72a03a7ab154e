// Package shape defines the drawable and fillable primitives shared by the
// creational and structural pattern packages (factory, decorator, facade).
//
// What:
//
//   - Shape: a drawable variant. Rectangle, Square and Circle each write
//     "<Name>.draw()" to the supplied writer.
//   - Color: a fillable variant. Red, Green and Blue each write
//     "<Name>Color.fill()".
//   - Kind: the discriminator used by factories to select a Shape variant.
//
// Every variant reports a static Name; nothing in this package inspects
// runtime types to produce output.
//
// Errors:
//
//   - ErrUnknownKind  ParseKind received a tag that names no Kind
//   - writer errors   propagated unchanged from Draw and Fill
package shape

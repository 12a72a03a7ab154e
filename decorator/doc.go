// Package decorator implements the Decorator pattern over shape.Shape.
//
// A ShapeDecorator wraps a Shape and adds a coloured border. Draw always
// completes the wrapped Shape's Draw before the border line is written;
// if the inner draw fails the border is not applied. A ShapeDecorator is a
// shape.Shape itself, so decorators stack.
package decorator

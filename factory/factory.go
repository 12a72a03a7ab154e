package factory

import (
	"github.com/katalvlaran/patterns/shape"
)

// ShapeFactory builds shapes by Kind. It is also the shape-family
// AbstractFactory and therefore builds no colours.
type ShapeFactory struct{}

// MakeShape returns a new Shape for kind, or nil when kind is not mapped.
func (ShapeFactory) MakeShape(kind shape.Kind) shape.Shape {
	switch kind {
	case shape.KindRectangle:
		return shape.Rectangle{}
	case shape.KindSquare:
		return shape.Square{}
	case shape.KindCircle:
		return shape.Circle{}
	default:
		return nil
	}
}

// Shape is MakeShape under the AbstractFactory contract.
func (f ShapeFactory) Shape(kind shape.Kind) shape.Shape {
	return f.MakeShape(kind)
}

// Color always returns nil: the shape family has no colours.
func (ShapeFactory) Color(string) shape.Color {
	return nil
}

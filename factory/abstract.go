package factory

import (
	"github.com/katalvlaran/patterns/shape"
)

// Colour names understood by ColorFactory. Matching is exact.
const (
	ColorRed   = "Red"
	ColorGreen = "Green"
	ColorBlue  = "Blue"
)

// AbstractFactory produces members of the colour and shape families.
// A concrete factory answers nil for products outside its family.
type AbstractFactory interface {
	Color(name string) shape.Color
	Shape(kind shape.Kind) shape.Shape
}

// ColorFactory is the colour-family AbstractFactory.
type ColorFactory struct{}

// Color returns the colour named name, or nil when the name is not mapped.
func (ColorFactory) Color(name string) shape.Color {
	switch name {
	case ColorRed:
		return shape.Red{}
	case ColorGreen:
		return shape.Green{}
	case ColorBlue:
		return shape.Blue{}
	default:
		return nil
	}
}

// Shape always returns nil: the colour family has no shapes.
func (ColorFactory) Shape(shape.Kind) shape.Shape {
	return nil
}

// Choice selects a product family in Producer.
type Choice int

const (
	// ChoiceShape selects ShapeFactory.
	ChoiceShape Choice = iota
	// ChoiceColor selects ColorFactory.
	ChoiceColor
)

// String implements fmt.Stringer.
func (c Choice) String() string {
	if c == ChoiceColor {
		return "color"
	}

	return "shape"
}

// Producer returns the AbstractFactory for choice. Every choice other than
// ChoiceColor yields the shape factory.
func Producer(choice Choice) AbstractFactory {
	if choice == ChoiceColor {
		return ColorFactory{}
	}

	return ShapeFactory{}
}

var (
	_ AbstractFactory = ShapeFactory{}
	_ AbstractFactory = ColorFactory{}
)

package factory

import (
	"io"

	"github.com/katalvlaran/patterns/shape"
)

// FactoryDemo draws a rectangle, a square and a circle obtained from a
// ShapeFactory.
func FactoryDemo(w io.Writer) error {
	f := ShapeFactory{}
	for _, k := range []shape.Kind{shape.KindRectangle, shape.KindSquare, shape.KindCircle} {
		if s := f.MakeShape(k); s != nil {
			if err := s.Draw(w); err != nil {
				return err
			}
		}
	}

	return nil
}

// AbstractDemo fills red, green and blue from the colour factory, then draws
// a rectangle, a circle and a square from the shape factory.
func AbstractDemo(w io.Writer) error {
	colors := Producer(ChoiceColor)
	for _, name := range []string{ColorRed, ColorGreen, ColorBlue} {
		if c := colors.Color(name); c != nil {
			if err := c.Fill(w); err != nil {
				return err
			}
		}
	}

	shapes := Producer(ChoiceShape)
	for _, k := range []shape.Kind{shape.KindRectangle, shape.KindCircle, shape.KindSquare} {
		if s := shapes.Shape(k); s != nil {
			if err := s.Draw(w); err != nil {
				return err
			}
		}
	}

	return nil
}

package decorator

import (
	"fmt"
	"io"

	"github.com/katalvlaran/patterns/shape"
)

// ShapeDecorator adds a border colour to a wrapped Shape.
type ShapeDecorator struct {
	inner  shape.Shape
	border shape.Color
}

// New wraps s with a border of colour border.
func New(s shape.Shape, border shape.Color) *ShapeDecorator {
	return &ShapeDecorator{inner: s, border: border}
}

// NewRedShapeDecorator wraps s with a red border.
func NewRedShapeDecorator(s shape.Shape) *ShapeDecorator {
	return New(s, shape.Red{})
}

// Name reports the wrapped shape's name.
func (d *ShapeDecorator) Name() string {
	return d.inner.Name()
}

// Unwrap returns the decorated shape.
func (d *ShapeDecorator) Unwrap() shape.Shape {
	return d.inner
}

// Draw draws the wrapped shape, then sets the border colour.
func (d *ShapeDecorator) Draw(w io.Writer) error {
	if err := d.inner.Draw(w); err != nil {
		return err
	}

	return d.setBorderColor(w)
}

func (d *ShapeDecorator) setBorderColor(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Set border color of %s: %s\n", d.inner.Name(), d.border.Name())

	return err
}

var _ shape.Shape = (*ShapeDecorator)(nil)

// Decorator wraps a Shape, adding behaviour around its Draw.
type Decorator interface {
	Decorate(s shape.Shape) shape.Shape
}

// DecoratorFunc adapts an ordinary function to Decorator.
type DecoratorFunc func(s shape.Shape) shape.Shape

// Decorate calls f(s).
func (f DecoratorFunc) Decorate(s shape.Shape) shape.Shape {
	return f(s)
}

// Border returns a Decorator adding a border of colour c.
func Border(c shape.Color) Decorator {
	return DecoratorFunc(func(s shape.Shape) shape.Shape { return New(s, c) })
}

// Chain wraps s with every decorator so that ds[0] is outermost: its
// border is written last.
func Chain(s shape.Shape, ds ...Decorator) shape.Shape {
	for i := len(ds) - 1; i >= 0; i-- {
		s = ds[i].Decorate(s)
	}

	return s
}

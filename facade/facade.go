package facade

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/patterns/shape"
)

// ShapeMaker hides the individual shapes behind one type.
type ShapeMaker struct {
	w         io.Writer
	rectangle shape.Shape
	square    shape.Shape
	circle    shape.Shape
}

// NewShapeMaker returns a ShapeMaker drawing to w.
func NewShapeMaker(w io.Writer) *ShapeMaker {
	return &ShapeMaker{
		w:         w,
		rectangle: shape.Rectangle{},
		square:    shape.Square{},
		circle:    shape.Circle{},
	}
}

// DrawRectangle draws the rectangle.
func (m *ShapeMaker) DrawRectangle() error { return m.rectangle.Draw(m.w) }

// DrawSquare draws the square.
func (m *ShapeMaker) DrawSquare() error { return m.square.Draw(m.w) }

// DrawCircle draws the circle.
func (m *ShapeMaker) DrawCircle() error { return m.circle.Draw(m.w) }

// DrawAll draws the rectangle, the square and the circle in that order.
// Every draw is attempted; the returned error joins all failures.
func (m *ShapeMaker) DrawAll() error {
	var errs []error
	for _, step := range []struct {
		name string
		fn   func() error
	}{
		{"DrawRectangle", m.DrawRectangle},
		{"DrawSquare", m.DrawSquare},
		{"DrawCircle", m.DrawCircle},
	} {
		if err := step.fn(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", step.name, err))
		}
	}

	return errors.Join(errs...)
}

// Demo draws every shape through a ShapeMaker.
func Demo(w io.Writer) error {
	return NewShapeMaker(w).DrawAll()
}

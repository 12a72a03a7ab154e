package shape

import (
	"fmt"
	"io"
)

// Rectangle is the rectangle variant of Shape.
type Rectangle struct{}

// Square is the square variant of Shape.
type Square struct{}

// Circle is the circle variant of Shape.
type Circle struct{}

// Name returns "Rectangle".
func (Rectangle) Name() string { return "Rectangle" }

// Draw writes "Rectangle.draw()".
func (r Rectangle) Draw(w io.Writer) error { return drawLine(w, r.Name()) }

// Name returns "Square".
func (Square) Name() string { return "Square" }

// Draw writes "Square.draw()".
func (s Square) Draw(w io.Writer) error { return drawLine(w, s.Name()) }

// Name returns "Circle".
func (Circle) Name() string { return "Circle" }

// Draw writes "Circle.draw()".
func (c Circle) Draw(w io.Writer) error { return drawLine(w, c.Name()) }

func drawLine(w io.Writer, name string) error {
	_, err := fmt.Fprintf(w, "%s.draw()\n", name)

	return err
}

// compile-time checks
var (
	_ Shape = Rectangle{}
	_ Shape = Square{}
	_ Shape = Circle{}
)

package decorator

import (
	"fmt"
	"io"

	"github.com/katalvlaran/patterns/shape"
)

// Demo draws a plain circle, then a red-bordered circle and rectangle.
func Demo(w io.Writer) error {
	steps := []struct {
		title string
		s     shape.Shape
	}{
		{"Circle with normal border", shape.Circle{}},
		{"Circle of red border", NewRedShapeDecorator(shape.Circle{})},
		{"Rectangle of red border", NewRedShapeDecorator(shape.Rectangle{})},
	}
	for _, st := range steps {
		if _, err := fmt.Fprintln(w, st.title); err != nil {
			return err
		}
		if err := st.s.Draw(w); err != nil {
			return err
		}
	}

	return nil
}

package bridge

import "io"

// Demo draws a red and a green circle.
func Demo(w io.Writer) error {
	red, err := NewCircle(100, 50, 60, NewRedCircle(w))
	if err != nil {
		return err
	}
	green, err := NewCircle(200, 200, 100, NewGreenCircle(w))
	if err != nil {
		return err
	}

	for _, s := range []Shape{red, green} {
		if err = s.Draw(); err != nil {
			return err
		}
	}

	return nil
}

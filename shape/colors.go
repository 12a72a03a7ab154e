package shape

import (
	"fmt"
	"io"
)

// Red is the red variant of Color.
type Red struct{}

// Green is the green variant of Color.
type Green struct{}

// Blue is the blue variant of Color.
type Blue struct{}

// Name returns "Red".
func (Red) Name() string { return "Red" }

// Fill writes "RedColor.fill()".
func (c Red) Fill(w io.Writer) error { return fillLine(w, c.Name()) }

// Name returns "Green".
func (Green) Name() string { return "Green" }

// Fill writes "GreenColor.fill()".
func (c Green) Fill(w io.Writer) error { return fillLine(w, c.Name()) }

// Name returns "Blue".
func (Blue) Name() string { return "Blue" }

// Fill writes "BlueColor.fill()".
func (c Blue) Fill(w io.Writer) error { return fillLine(w, c.Name()) }

func fillLine(w io.Writer, name string) error {
	_, err := fmt.Fprintf(w, "%sColor.fill()\n", name)

	return err
}

var (
	_ Color = Red{}
	_ Color = Green{}
	_ Color = Blue{}
)

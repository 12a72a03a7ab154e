package bridge

import (
	"errors"
	"fmt"
	"io"
)

// ErrNilDrawAPI indicates that a Circle was constructed without a DrawAPI.
var ErrNilDrawAPI = errors.New("bridge: draw API is nil")

// DrawAPI is the implementation side of the bridge.
type DrawAPI interface {
	DrawCircle(x, y, radius int) error
}

// ColorCircle is a DrawAPI that renders circles in a fixed colour.
type ColorCircle struct {
	w     io.Writer
	color string
}

// NewRedCircle returns a DrawAPI drawing red circles to w.
func NewRedCircle(w io.Writer) *ColorCircle {
	return &ColorCircle{w: w, color: "red"}
}

// NewGreenCircle returns a DrawAPI drawing green circles to w.
func NewGreenCircle(w io.Writer) *ColorCircle {
	return &ColorCircle{w: w, color: "green"}
}

// DrawCircle writes "Drawing circle [color: c, point: (x, y), radius: r]".
func (c *ColorCircle) DrawCircle(x, y, radius int) error {
	_, err := fmt.Fprintf(c.w, "Drawing circle [color: %s, point: (%d, %d), radius: %d]\n", c.color, x, y, radius)

	return err
}

// Shape is the abstraction side of the bridge.
type Shape interface {
	Draw() error
}

// Circle is a Shape delegating its rendering to a DrawAPI.
type Circle struct {
	x, y, radius int
	api          DrawAPI
}

// NewCircle returns a Circle at (x, y) rendered by api. The api is shared,
// not owned: several shapes may use the same DrawAPI.
func NewCircle(x, y, radius int, api DrawAPI) (*Circle, error) {
	if api == nil {
		return nil, fmt.Errorf("NewCircle: %w", ErrNilDrawAPI)
	}

	return &Circle{x: x, y: y, radius: radius, api: api}, nil
}

// Draw renders the circle through its DrawAPI.
func (c *Circle) Draw() error {
	return c.api.DrawCircle(c.x, c.y, c.radius)
}

var (
	_ DrawAPI = (*ColorCircle)(nil)
	_ Shape   = (*Circle)(nil)
)

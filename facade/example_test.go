package facade_test

import (
	"os"

	"github.com/katalvlaran/patterns/facade"
)

// ExampleDemo draws every shape through the facade.
func ExampleDemo() {
	_ = facade.Demo(os.Stdout)

	// Output:
	// Rectangle.draw()
	// Square.draw()
	// Circle.draw()
}

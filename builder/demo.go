package builder

import (
	"fmt"
	"io"
)

// Demo prepares both fixed meals and prints their items and total cost.
func Demo(w io.Writer) error {
	for _, m := range []*Meal{PrepareVegMeal(), PrepareNonVegMeal()} {
		if _, err := fmt.Fprintf(w, "%s:\n", m); err != nil {
			return err
		}
		if err := m.Show(w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Total cost: %.1f\n", m.Cost()); err != nil {
			return err
		}
	}

	return nil
}

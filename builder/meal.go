package builder

import (
	"fmt"
	"io"
)

// Meal is an ordered collection of Items.
type Meal struct {
	// Name labels the meal in printed output.
	Name string

	items []Item
}

// NewMeal returns an empty Meal called name.
func NewMeal(name string) *Meal {
	return &Meal{Name: name}
}

// Add appends item. Nil items are ignored.
func (m *Meal) Add(item Item) {
	if item == nil {
		return
	}
	m.items = append(m.items, item)
}

// Items returns a copy of the items in insertion order.
func (m *Meal) Items() []Item {
	out := make([]Item, len(m.items))
	copy(out, m.items)

	return out
}

// Len returns the number of items.
func (m *Meal) Len() int {
	return len(m.items)
}

// Cost returns the sum of the item prices.
func (m *Meal) Cost() float64 {
	var total float64
	for _, it := range m.items {
		total += it.Price()
	}

	return total
}

// Show writes one "name=..., price=..., pack=..." line per item.
func (m *Meal) Show(w io.Writer) error {
	for _, it := range m.items {
		if _, err := fmt.Fprintf(w, "name=%s, price=%.1f, pack=%s\n", it.Name(), it.Price(), it.Packing().Pack()); err != nil {
			return err
		}
	}

	return nil
}

// String implements fmt.Stringer.
func (m *Meal) String() string {
	return m.Name
}

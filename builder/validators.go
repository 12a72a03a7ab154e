package builder

import (
	"fmt"
	"math"
)

// validateItem rejects nil items and items with a negative or NaN price.
func validateItem(method string, item Item) error {
	if item == nil {
		return fmt.Errorf("%s: %w", method, ErrNilItem)
	}
	if p := item.Price(); p < 0 || math.IsNaN(p) {
		return fmt.Errorf("%s: %q price=%g: %w", method, item.Name(), p, ErrBadPrice)
	}

	return nil
}

// validateCapacity checks that adding extra items keeps m within cfg.maxItems.
func validateCapacity(method string, m *Meal, cfg mealConfig, extra int) error {
	if cfg.maxItems == Unlimited {
		return nil
	}
	if got := m.Len() + extra; got > cfg.maxItems {
		return fmt.Errorf("%s: %d items > max=%d: %w", method, got, cfg.maxItems, ErrTooManyItems)
	}

	return nil
}

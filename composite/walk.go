package composite

import (
	"fmt"
	"io"
	"time"
)

// WalkOption configures optional behavior of Walk.
type WalkOption func(*WalkOptions)

// WalkOptions holds configurable parameters for Walk.
type WalkOptions struct {
	// OnVisit, if non-nil, is invoked when an employee is reached (pre-order)
	// with its depth below the root. Returning an error aborts the walk.
	OnVisit func(e *Employee, depth int) error

	// MaxDepth, if non-negative, stops descending below the given depth.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns WalkOptions with no hook and no depth limit.
func DefaultOptions() WalkOptions {
	return WalkOptions{
		OnVisit:  nil,
		MaxDepth: -1,
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(e *Employee, depth int) error) WalkOption {
	return func(o *WalkOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) WalkOption {
	return func(o *WalkOptions) {
		o.MaxDepth = limit
	}
}

// WalkResult captures the outcome of a walk.
type WalkResult struct {
	// Order records employee IDs in visiting order.
	Order []string

	// Depths records the depth below the root of each entry in Order.
	Depths []int
}

// Walk visits root and its subordinates recursively in pre-order.
func Walk(root *Employee, opts ...WalkOption) (*WalkResult, error) {
	if root == nil {
		return nil, fmt.Errorf("Walk: %w", ErrNilEmployee)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := &WalkResult{}
	if err := walk(root, 0, &o, res); err != nil {
		return nil, err
	}

	return res, nil
}

func walk(e *Employee, depth int, o *WalkOptions, res *WalkResult) error {
	if o.OnVisit != nil {
		if err := o.OnVisit(e, depth); err != nil {
			return err
		}
	}
	res.Order = append(res.Order, e.ID)
	res.Depths = append(res.Depths, depth)

	if o.MaxDepth >= 0 && depth >= o.MaxDepth {
		return nil
	}
	for _, s := range e.subordinates {
		if err := walk(s, depth+1, o, res); err != nil {
			return err
		}
	}

	return nil
}

// PrintHierarchy writes root, its direct reports and their reports, one
// Describe(now()) line each.
func PrintHierarchy(w io.Writer, root *Employee, now func() time.Time) error {
	if now == nil {
		now = time.Now
	}
	_, err := Walk(root,
		WithMaxDepth(2),
		WithOnVisit(func(e *Employee, _ int) error {
			_, err := fmt.Fprintln(w, e.Describe(now()))
			return err
		}),
	)

	return err
}

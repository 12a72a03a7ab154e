package composite

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNilEmployee is returned when a nil *Employee is passed to Add, Walk
	// or PrintHierarchy.
	ErrNilEmployee = errors.New("composite: employee is nil")

	// ErrCycle is returned when Add would make an employee report to itself,
	// directly or through its subordinates.
	ErrCycle = errors.New("composite: cycle detected")

	// ErrAlreadyOwned is returned when Add is given an employee that already
	// reports to someone. Remove it from its manager first.
	ErrAlreadyOwned = errors.New("composite: employee already has a manager")
)

// TimestampLayout formats the prefix of Describe.
const TimestampLayout = "2006:01:02 15:04:05"

// Employee is a node of the organisation tree.
type Employee struct {
	ID     string
	Name   string
	Dept   string
	Salary int

	manager      *Employee
	subordinates []*Employee
}

// New returns an Employee without subordinates.
func New(id, name, dept string, salary int) *Employee {
	return &Employee{ID: id, Name: name, Dept: dept, Salary: salary}
}

// Add appends e to the direct subordinates. An employee has at most one
// manager, so e must not already be owned by m or anyone else.
func (m *Employee) Add(e *Employee) error {
	if e == nil {
		return fmt.Errorf("Add: %w", ErrNilEmployee)
	}
	// e must not already contain m, or m would become its own ancestor.
	if e == m || e.contains(m) {
		return fmt.Errorf("Add(%s under %s): %w", e.ID, m.ID, ErrCycle)
	}
	if e.manager != nil {
		return fmt.Errorf("Add(%s under %s): owned by %s: %w", e.ID, m.ID, e.manager.ID, ErrAlreadyOwned)
	}
	e.manager = m
	m.subordinates = append(m.subordinates, e)

	return nil
}

// Remove drops every direct subordinate whose ID equals e.ID.
// It reports whether anything was removed.
func (m *Employee) Remove(e *Employee) bool {
	if e == nil {
		return false
	}
	kept := m.subordinates[:0]
	for _, s := range m.subordinates {
		if s.ID != e.ID {
			kept = append(kept, s)
			continue
		}
		s.manager = nil
	}
	removed := len(kept) != len(m.subordinates)
	// clear the tail so removed employees are not retained
	for i := len(kept); i < len(m.subordinates); i++ {
		m.subordinates[i] = nil
	}
	m.subordinates = kept

	return removed
}

// Manager returns the employee m reports to, or nil for a root.
func (m *Employee) Manager() *Employee {
	return m.manager
}

// Subordinates returns a copy of the direct subordinates in insertion order.
func (m *Employee) Subordinates() []*Employee {
	out := make([]*Employee, len(m.subordinates))
	copy(out, m.subordinates)

	return out
}

// Count returns the number of employees in the subtree rooted at m.
func (m *Employee) Count() int {
	n := 1
	for _, s := range m.subordinates {
		n += s.Count()
	}

	return n
}

// Find returns the first employee with the given ID in pre-order, or nil.
func (m *Employee) Find(id string) *Employee {
	if m.ID == id {
		return m
	}
	for _, s := range m.subordinates {
		if found := s.Find(id); found != nil {
			return found
		}
	}

	return nil
}

// contains reports whether target is m or lies below m.
func (m *Employee) contains(target *Employee) bool {
	if m == target {
		return true
	}
	for _, s := range m.subordinates {
		if s.contains(target) {
			return true
		}
	}

	return false
}

// String implements fmt.Stringer.
func (m *Employee) String() string {
	return fmt.Sprintf("Employee: [id: %s name: %s dept: %s salary: %d]", m.ID, m.Name, m.Dept, m.Salary)
}

// Describe prefixes String with at, formatted with TimestampLayout.
func (m *Employee) Describe(at time.Time) string {
	return at.Format(TimestampLayout) + " " + m.String()
}

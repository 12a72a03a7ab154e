// Package composite implements the Composite pattern with an employee
// hierarchy: every Employee owns an ordered list of subordinate Employees,
// and the whole organisation is handled through the root.
//
// What:
//
//   - Employee: id, name, department, salary and owned subordinates.
//     Add rejects nil employees, additions that would create a cycle and
//     employees that already have a manager; Remove drops every direct
//     subordinate with a matching ID and releases it.
//   - Walk: pre-order traversal (node, then its subordinates in insertion
//     order) with pre-order hook and depth limiting.
//   - PrintHierarchy: the classic two-level report (root, direct reports,
//     their reports), one timestamped line per employee.
//
// Key Types:
//
//   - WalkOption: functional options for Walk
//   - WalkOptions: holds OnVisit and MaxDepth
//   - WalkResult: collects visit order and the depth of each visit
//
// Complexity:
//
//   - Walk:   Time O(N), Memory O(N + H) (H = tree height)
//   - Add:    Time O(N) for the cycle check
//   - Remove: Time O(K) (K = direct subordinates)
//
// Errors:
//
//   - ErrNilEmployee   nil root or nil subordinate
//   - ErrCycle         Add would make an employee its own ancestor
//   - ErrAlreadyOwned  Add was given an employee that has a manager
//   - hook errors      propagated from OnVisit
package composite

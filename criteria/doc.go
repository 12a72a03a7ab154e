// Package criteria implements the Filter (Criteria) pattern: small filter
// objects over a list of Persons, combined with And and Or.
//
// Every Criteria is a pure function from a slice of persons to the subset
// that matches, in the original relative order. Attribute comparisons are
// case-insensitive.
//
// Combinators:
//
//   - And(a, b) feeds a's result into b (sequential narrowing).
//   - Or(a, b) evaluates both criteria but returns only a's result. The
//     persons matched by b alone are dropped. This is the established
//     behaviour of Or and is kept as is; callers wanting a union must build
//     it themselves.
package criteria

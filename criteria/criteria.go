package criteria

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Attribute values matched by the built-in criteria.
const (
	GenderMale    = "MALE"
	GenderFemale  = "FEMALE"
	StatusSingle  = "SINGLE"
	StatusMarried = "MARRIED"
)

// Person is an immutable record.
type Person struct {
	Name          string
	Gender        string
	MaritalStatus string
}

// Criteria filters a list of persons.
type Criteria interface {
	MeetCriteria(persons []Person) []Person
}

// Func adapts a per-person predicate to Criteria.
type Func func(p Person) bool

// MeetCriteria returns the persons for which f is true, in order.
func (f Func) MeetCriteria(persons []Person) []Person {
	out := make([]Person, 0, len(persons))
	for _, p := range persons {
		if f(p) {
			out = append(out, p)
		}
	}

	return out
}

// upper folds s to upper case for comparisons.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Male matches persons whose gender is "male" in any case.
func Male() Criteria {
	return Func(func(p Person) bool { return upper(p.Gender) == GenderMale })
}

// Female matches persons whose gender is "female" in any case.
func Female() Criteria {
	return Func(func(p Person) bool { return upper(p.Gender) == GenderFemale })
}

// Single matches persons whose marital status is "single" in any case.
func Single() Criteria {
	return Func(func(p Person) bool { return upper(p.MaritalStatus) == StatusSingle })
}

type and struct {
	criteria, other Criteria
}

// And returns a Criteria applying other to the result of c.
func And(c, other Criteria) Criteria {
	return and{criteria: c, other: other}
}

func (a and) MeetCriteria(persons []Person) []Person {
	return a.other.MeetCriteria(a.criteria.MeetCriteria(persons))
}

type or struct {
	criteria, other Criteria
}

// Or returns a Criteria that evaluates both c and other over the same input
// and yields c's result only; other's matches are discarded.
func Or(c, other Criteria) Criteria {
	return or{criteria: c, other: other}
}

func (o or) MeetCriteria(persons []Person) []Person {
	first := o.criteria.MeetCriteria(persons)
	// other is still evaluated; its matches are not merged (see package doc)
	_ = o.other.MeetCriteria(persons)

	return first
}

package criteria

import (
	"fmt"
	"io"
)

// SamplePeople returns the fixed list used by Demo.
func SamplePeople() []Person {
	return []Person{
		{Name: "Robert", Gender: "Male", MaritalStatus: "Single"},
		{Name: "John", Gender: "Male", MaritalStatus: "Married"},
		{Name: "Laura", Gender: "Female", MaritalStatus: "Married"},
		{Name: "Diana", Gender: "Female", MaritalStatus: "Single"},
		{Name: "Mike", Gender: "Male", MaritalStatus: "Single"},
		{Name: "Bobby", Gender: "Male", MaritalStatus: "Single"},
	}
}

// Demo prints the result of every built-in criteria and combinator over
// SamplePeople.
func Demo(w io.Writer) error {
	people := SamplePeople()
	sections := []struct {
		title string
		c     Criteria
	}{
		{"Males", Male()},
		{"Females", Female()},
		{"Single Males", And(Single(), Male())},
		{"Single Or Females", Or(Single(), Female())},
	}
	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "%s:\n", s.title); err != nil {
			return err
		}
		if err := printPersons(w, s.c.MeetCriteria(people)); err != nil {
			return err
		}
	}

	return nil
}

func printPersons(w io.Writer, persons []Person) error {
	for _, p := range persons {
		if _, err := fmt.Fprintf(w, "Person : [ Name : %s, Gender : %s, Marital Status : %s ]\n", p.Name, p.Gender, p.MaritalStatus); err != nil {
			return err
		}
	}

	return nil
}

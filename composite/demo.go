package composite

import "io"

// SampleOrganization builds the seven-person CEO / Head Sales /
// Head Marketing organisation.
func SampleOrganization() *Employee {
	ceo := New("001", "John", "CEO", 30000)

	headSales := New("100", "Robert", "Head Sales", 20000)
	_ = headSales.Add(New("101", "Richard", "Sales", 10000))
	_ = headSales.Add(New("102", "Rob", "Sales", 10000))
	_ = ceo.Add(headSales)

	headMarketing := New("200", "Michel", "Head Marketing", 2000)
	_ = headMarketing.Add(New("201", "Michel", "Marketing", 10000))
	_ = headMarketing.Add(New("202", "Bob", "Marketing", 10000))
	_ = ceo.Add(headMarketing)

	return ceo
}

// Demo prints the sample organisation stamped with the current time.
func Demo(w io.Writer) error {
	return PrintHierarchy(w, SampleOrganization(), nil)
}

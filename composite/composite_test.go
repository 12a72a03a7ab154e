package composite_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patterns/composite"
)

// fixedClock always returns the same instant.
func fixedClock() time.Time {
	return time.Date(2023, time.July, 20, 17, 29, 39, 0, time.UTC)
}

func TestWalk_SampleOrganization(t *testing.T) {
	res, err := composite.Walk(composite.SampleOrganization())
	require.NoError(t, err)
	assert.Equal(t, []string{"001", "100", "101", "102", "200", "201", "202"}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 2, 1, 2, 2}, res.Depths)
}

func TestWalk_MaxDepth(t *testing.T) {
	root := composite.SampleOrganization()

	res, err := composite.Walk(root, composite.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"001"}, res.Order)

	res, err = composite.Walk(root, composite.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"001", "100", "200"}, res.Order)
}

func TestWalk_DeepTreeIsRecursive(t *testing.T) {
	root := composite.New("0", "a", "x", 1)
	cur := root
	for _, id := range []string{"1", "2", "3", "4"} {
		next := composite.New(id, "n", "x", 1)
		require.NoError(t, cur.Add(next))
		cur = next
	}

	res, err := composite.Walk(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Depths)
	assert.Equal(t, 5, root.Count())
}

func TestWalk_HookError(t *testing.T) {
	stop := errors.New("stop")
	var seen []string
	res, err := composite.Walk(composite.SampleOrganization(),
		composite.WithOnVisit(func(e *composite.Employee, _ int) error {
			seen = append(seen, e.ID)
			if e.ID == "101" {
				return stop
			}
			return nil
		}))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"001", "100", "101"}, seen)
}

func TestWalk_NilRoot(t *testing.T) {
	res, err := composite.Walk(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, composite.ErrNilEmployee)
}

func TestEmployee_AddErrors(t *testing.T) {
	a := composite.New("a", "A", "x", 1)
	b := composite.New("b", "B", "x", 1)
	require.NoError(t, a.Add(b))

	assert.ErrorIs(t, a.Add(nil), composite.ErrNilEmployee)
	assert.ErrorIs(t, a.Add(a), composite.ErrCycle)
	assert.ErrorIs(t, b.Add(a), composite.ErrCycle)
	assert.Len(t, b.Subordinates(), 0)
}

func TestEmployee_AddSingleManager(t *testing.T) {
	root := composite.New("r", "R", "x", 1)
	a := composite.New("a", "A", "x", 1)
	b := composite.New("b", "B", "x", 1)
	x := composite.New("x", "X", "x", 1)

	require.NoError(t, a.Add(x))
	assert.ErrorIs(t, b.Add(x), composite.ErrAlreadyOwned)
	assert.ErrorIs(t, a.Add(x), composite.ErrAlreadyOwned)
	require.NoError(t, root.Add(a))
	require.NoError(t, root.Add(b))
	assert.Same(t, a, x.Manager())
	assert.Nil(t, root.Manager())

	res, err := composite.Walk(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"r", "a", "x", "b"}, res.Order)
	assert.Equal(t, 4, root.Count())

	// once released, x may move to another manager
	require.True(t, a.Remove(x))
	assert.Nil(t, x.Manager())
	require.NoError(t, b.Add(x))
	assert.Same(t, b, x.Manager())
}

func TestWalk_DuplicateIDsKeepTheirDepths(t *testing.T) {
	root := composite.New("dup", "R", "x", 1)
	mid := composite.New("mid", "M", "x", 1)
	require.NoError(t, root.Add(mid))
	require.NoError(t, mid.Add(composite.New("dup", "L", "x", 1)))

	res, err := composite.Walk(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"dup", "mid", "dup"}, res.Order)
	assert.Equal(t, []int{0, 1, 2}, res.Depths)
}

func TestEmployee_Remove(t *testing.T) {
	root := composite.SampleOrganization()
	assert.Equal(t, 7, root.Count())

	// match is by ID, not identity
	removed := root.Remove(composite.New("100", "someone else", "", 0))
	assert.True(t, removed)
	assert.Equal(t, 4, root.Count())
	require.Len(t, root.Subordinates(), 1)
	assert.Equal(t, "200", root.Subordinates()[0].ID)

	assert.False(t, root.Remove(composite.New("999", "", "", 0)))
	assert.False(t, root.Remove(nil))
}

func TestEmployee_RemoveAllMatches(t *testing.T) {
	root := composite.New("r", "R", "x", 1)
	require.NoError(t, root.Add(composite.New("dup", "1", "x", 1)))
	require.NoError(t, root.Add(composite.New("keep", "2", "x", 1)))
	require.NoError(t, root.Add(composite.New("dup", "3", "x", 1)))

	assert.True(t, root.Remove(composite.New("dup", "", "", 0)))
	subs := root.Subordinates()
	require.Len(t, subs, 1)
	assert.Equal(t, "keep", subs[0].ID)
}

func TestEmployee_Find(t *testing.T) {
	root := composite.SampleOrganization()
	e := root.Find("202")
	require.NotNil(t, e)
	assert.Equal(t, "Bob", e.Name)
	assert.Nil(t, root.Find("nope"))
}

func TestEmployee_Describe(t *testing.T) {
	e := composite.New("001", "John", "CEO", 30000)
	assert.Equal(t, "2023:07:20 17:29:39 Employee: [id: 001 name: John dept: CEO salary: 30000]", e.Describe(fixedClock()))
}

func TestPrintHierarchy(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, composite.PrintHierarchy(&buf, composite.SampleOrganization(), fixedClock))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "2023:07:20 17:29:39 Employee: [id: 001 name: John dept: CEO salary: 30000]", lines[0])
	assert.Equal(t, "2023:07:20 17:29:39 Employee: [id: 202 name: Bob dept: Marketing salary: 10000]", lines[6])
}

func TestPrintHierarchy_StopsAtTwoLevels(t *testing.T) {
	root := composite.SampleOrganization()
	require.NoError(t, root.Find("101").Add(composite.New("999", "Intern", "Sales", 100)))

	var buf bytes.Buffer
	require.NoError(t, composite.PrintHierarchy(&buf, root, fixedClock))
	assert.NotContains(t, buf.String(), "Intern")
	assert.Equal(t, 7, strings.Count(buf.String(), "\n"))
}

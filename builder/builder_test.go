package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patterns/builder"
)

func TestPrepareMeals_Cost(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 55.0, builder.PrepareVegMeal().Cost())
	assert.Equal(t, 85.0, builder.PrepareNonVegMeal().Cost())
}

func TestPrepareMeals_Items(t *testing.T) {
	veg := builder.PrepareVegMeal().Items()
	require.Len(t, veg, 2)
	assert.Equal(t, builder.NameVegBurger, veg[0].Name())
	assert.Equal(t, "Wrapper", veg[0].Packing().Pack())
	assert.Equal(t, builder.NameCoke, veg[1].Name())
	assert.Equal(t, "Bottle", veg[1].Packing().Pack())

	nonVeg := builder.PrepareNonVegMeal().Items()
	require.Len(t, nonVeg, 2)
	assert.Equal(t, builder.NameChickenBurger, nonVeg[0].Name())
	assert.Equal(t, builder.NamePepsi, nonVeg[1].Name())
}

func TestMeal_CostOrderIndependent(t *testing.T) {
	items := []builder.Item{builder.Pepsi(), builder.VegBurger(), builder.Coke(), builder.ChickenBurger()}

	forward := builder.NewMeal("f")
	backward := builder.NewMeal("b")
	for i := range items {
		forward.Add(items[i])
		backward.Add(items[len(items)-1-i])
	}
	assert.Equal(t, forward.Cost(), backward.Cost())
	assert.Equal(t, 140.0, forward.Cost())
}

func TestMeal_EmptyAndNil(t *testing.T) {
	m := builder.NewMeal("empty")
	m.Add(nil)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0.0, m.Cost())
	assert.Empty(t, m.Items())
}

func TestMeal_ItemsIsCopy(t *testing.T) {
	m := builder.PrepareVegMeal()
	items := m.Items()
	items[0] = builder.Pepsi()
	assert.Equal(t, builder.NameVegBurger, m.Items()[0].Name())
}

func TestBuildMeal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []builder.Option
		cons    []builder.Constructor
		wantErr error
		want    float64
		wantLen int
	}{
		{
			name: "default",
			cons: []builder.Constructor{builder.AddItem(builder.VegBurger()), builder.AddItem(builder.Coke())},
			want: 55, wantLen: 2,
		},
		{
			name: "batch",
			opts: []builder.Option{builder.WithMaxItems(2)},
			cons: []builder.Constructor{builder.AddItems(builder.ChickenBurger(), builder.Pepsi())},
			want: 85, wantLen: 2,
		},
		{
			name:    "nil item",
			cons:    []builder.Constructor{builder.AddItem(nil)},
			wantErr: builder.ErrNilItem,
		},
		{
			name:    "negative price",
			cons:    []builder.Constructor{builder.AddItem(builder.NewBurger("debt", -1))},
			wantErr: builder.ErrBadPrice,
		},
		{
			name:    "NaN price",
			cons:    []builder.Constructor{builder.AddItems(builder.Coke(), builder.NewColdDrink("void", math.NaN()))},
			wantErr: builder.ErrBadPrice,
		},
		{
			name:    "cap exceeded",
			opts:    []builder.Option{builder.WithMaxItems(1)},
			cons:    []builder.Constructor{builder.AddItem(builder.Coke()), builder.AddItem(builder.Pepsi())},
			wantErr: builder.ErrTooManyItems,
		},
		{
			name:    "nil constructor",
			cons:    []builder.Constructor{nil},
			wantErr: builder.ErrNilConstructor,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.BuildMeal(tc.opts, tc.cons...)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.Cost())
			assert.Equal(t, tc.wantLen, m.Len())
		})
	}
}

func TestBuildMeal_Name(t *testing.T) {
	m, err := builder.BuildMeal(nil)
	require.NoError(t, err)
	assert.Equal(t, builder.DefaultMealName, m.Name)

	m, err = builder.BuildMeal([]builder.Option{builder.WithName("Kids Meal")})
	require.NoError(t, err)
	assert.Equal(t, "Kids Meal", m.String())
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithName("") })
	assert.Panics(t, func() { builder.WithMaxItems(0) })
}

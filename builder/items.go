package builder

// Packing describes how an Item is packed.
type Packing interface {
	Pack() string
}

// Wrapper packs burgers.
type Wrapper struct{}

// Pack returns "Wrapper".
func (Wrapper) Pack() string { return "Wrapper" }

// Bottle packs cold drinks.
type Bottle struct{}

// Pack returns "Bottle".
func (Bottle) Pack() string { return "Bottle" }

// Item is a named, priced part of a Meal.
type Item interface {
	Name() string
	Packing() Packing
	Price() float64
}

// Burger is an Item packed in a Wrapper.
type Burger struct {
	name  string
	price float64
}

// NewBurger returns a Burger with the given name and price.
func NewBurger(name string, price float64) Burger {
	return Burger{name: name, price: price}
}

// Name returns the burger name.
func (b Burger) Name() string { return b.name }

// Packing returns Wrapper.
func (Burger) Packing() Packing { return Wrapper{} }

// Price returns the burger price.
func (b Burger) Price() float64 { return b.price }

// ColdDrink is an Item packed in a Bottle.
type ColdDrink struct {
	name  string
	price float64
}

// NewColdDrink returns a ColdDrink with the given name and price.
func NewColdDrink(name string, price float64) ColdDrink {
	return ColdDrink{name: name, price: price}
}

// Name returns the drink name.
func (d ColdDrink) Name() string { return d.name }

// Packing returns Bottle.
func (ColdDrink) Packing() Packing { return Bottle{} }

// Price returns the drink price.
func (d ColdDrink) Price() float64 { return d.price }

// VegBurger is the 25.0 vegetarian burger.
func VegBurger() Item { return NewBurger(NameVegBurger, PriceVegBurger) }

// ChickenBurger is the 50.0 chicken burger.
func ChickenBurger() Item { return NewBurger(NameChickenBurger, PriceChickenBurger) }

// Coke is the 30.0 coke.
func Coke() Item { return NewColdDrink(NameCoke, PriceCoke) }

// Pepsi is the 35.0 pepsi.
func Pepsi() Item { return NewColdDrink(NamePepsi, PricePepsi) }

var (
	_ Item = Burger{}
	_ Item = ColdDrink{}
)

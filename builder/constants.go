package builder

//-----------------------------------------------------------------------------
// Method name constants
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildMeal is the canonical name for the BuildMeal orchestrator.
	MethodBuildMeal = "BuildMeal"
	// MethodAddItem is the canonical name for the AddItem constructor.
	MethodAddItem = "AddItem"
)

//-----------------------------------------------------------------------------
// Menu
//-----------------------------------------------------------------------------

// Item names as printed on the bill.
const (
	NameVegBurger     = "Veg Burger"
	NameChickenBurger = "Chicken burger"
	NameCoke          = "Coke"
	NamePepsi         = "Pepsi"
)

// Item prices.
const (
	PriceVegBurger     = 25.0
	PriceChickenBurger = 50.0
	PriceCoke          = 30.0
	PricePepsi         = 35.0
)

// Meal names used by the fixed recipes.
const (
	VegMealName    = "Veg Meal"
	NonVegMealName = "Non-Veg Meal"
)

// DefaultMealName is used by BuildMeal when WithName is not given.
const DefaultMealName = "Meal"

// Unlimited disables the item cap in BuildMeal.
const Unlimited = 0

package builder

// mealConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type mealConfig struct {
	// name of the Meal being built.
	name string
	// maxItems caps the item count; Unlimited means no cap.
	maxItems int
}

// newMealConfig applies opts in order over deterministic defaults.
func newMealConfig(opts ...Option) mealConfig {
	cfg := mealConfig{
		name:     DefaultMealName,
		maxItems: Unlimited,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

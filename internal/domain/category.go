package domain

// Category classifies a plan. The set is closed.
type Category string

const (
	CategoryLearning Category = "learning"
	CategoryExercise Category = "exercise"
	CategoryHobby    Category = "hobby"
	CategoryGoal     Category = "goal"
	CategoryOther    Category = "other"
)

// DefaultCategory is used whenever a category cannot be resolved.
const DefaultCategory = CategoryLearning

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryLearning,
	CategoryExercise,
	CategoryHobby,
	CategoryGoal,
	CategoryOther,
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

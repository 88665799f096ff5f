package metrics

import "dietlog-be/internal/entities"

// Summary holds the per-user diet metrics.
type Summary struct {
	TotalMeals         int `json:"totalMeals"`
	TotalMealsOnDiet   int `json:"totalMealsOnDiet"`
	TotalMealsOffDiet  int `json:"totalMealsOffDiet"`
	BestOnDietSequence int `json:"bestOnDietSequence"`
}

// Summarize computes totals and the longest run of consecutive on-diet
// meals over a single left-to-right pass. The slice must already be in
// creation order; the streak is order-sensitive and resets on every
// off-diet meal.
func Summarize(meals []*entities.Meal) Summary {
	var s Summary
	current := 0

	for _, meal := range meals {
		s.TotalMeals++
		if meal.IsOnDiet {
			s.TotalMealsOnDiet++
			current++
			if current > s.BestOnDietSequence {
				s.BestOnDietSequence = current
			}
		} else {
			s.TotalMealsOffDiet++
			current = 0
		}
	}

	return s
}

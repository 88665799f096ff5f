package models

import "dietlog-be/internal/entities"

// MealResponse wraps a single meal; Meal is null when no row matched.
type MealResponse struct {
	Meal *entities.Meal `json:"meal"`
}

// MealsResponse wraps the current user's meal list.
type MealsResponse struct {
	Meals []*entities.Meal `json:"meals"`
}

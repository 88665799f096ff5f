package models

import "time"

// MealRequest represents the request body for creating or replacing a meal.
// Updates are full replacements, so every field is required; description,
// the boolean, and the date use pointers so that "", `false`, and a
// missing field stay distinct.
type MealRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description *string    `json:"description" binding:"required"`
	IsOnDiet    *bool      `json:"isOnDiet" binding:"required"`
	Date        *time.Time `json:"date" binding:"required"` // RFC 3339
}

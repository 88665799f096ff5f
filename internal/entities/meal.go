package entities

import "time"

// Meal represents a meal entity in the database.
// Date is the user-supplied moment the meal was eaten, stored as epoch
// milliseconds; CreatedAt is row-creation time and drives ordering.
type Meal struct {
	ID          string    `json:"id"`      // UUID
	UserID      string    `json:"user_id"` // UUID of the owning user
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsOnDiet    bool      `json:"is_on_diet"`
	Date        int64     `json:"date"` // Epoch milliseconds
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

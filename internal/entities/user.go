package entities

import "time"

// User represents a user entity in the database
type User struct {
	ID        string    `json:"id"` // UUID
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	SessionID string    `json:"session_id"` // Opaque token correlating cookies to this row
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

// SignupRequest represents the request body for user signup
type SignupRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

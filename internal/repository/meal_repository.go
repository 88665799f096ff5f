package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"dietlog-be/internal/entities"
)

// ErrMealNotFound is returned when no meal row matches id + owner.
var ErrMealNotFound = errors.New("meal not found")

// MealRepository defines the interface for meal database operations.
// Every operation is scoped to the owning user.
type MealRepository interface {
	Create(id, userID, name, description string, isOnDiet bool, date int64) (*entities.Meal, error)
	FindByID(id, userID string) (*entities.Meal, error)
	ListByUser(userID string) ([]*entities.Meal, error)
	Update(id, userID, name, description string, isOnDiet bool, date int64) error
	Delete(id, userID string) error
}

type mealRepository struct {
	db *sql.DB
}

// NewMealRepository creates a new meal repository
func NewMealRepository(db *sql.DB) MealRepository {
	return &mealRepository{db: db}
}

// Create inserts a new meal into the database
func (r *mealRepository) Create(id, userID, name, description string, isOnDiet bool, date int64) (*entities.Meal, error) {
	query := `
		INSERT INTO meals (id, user_id, name, description, is_on_diet, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, name, description, is_on_diet, date, created_at, updated_at
	`

	var meal entities.Meal
	err := r.db.QueryRow(query, id, userID, name, description, isOnDiet, date).Scan(
		&meal.ID,
		&meal.UserID,
		&meal.Name,
		&meal.Description,
		&meal.IsOnDiet,
		&meal.Date,
		&meal.CreatedAt,
		&meal.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create meal: %w", err)
	}

	return &meal, nil
}

// FindByID finds a meal by id, scoped to the owning user
func (r *mealRepository) FindByID(id, userID string) (*entities.Meal, error) {
	query := `
		SELECT id, user_id, name, description, is_on_diet, date, created_at, updated_at
		FROM meals
		WHERE id = $1 AND user_id = $2
	`

	var meal entities.Meal
	err := r.db.QueryRow(query, id, userID).Scan(
		&meal.ID,
		&meal.UserID,
		&meal.Name,
		&meal.Description,
		&meal.IsOnDiet,
		&meal.Date,
		&meal.CreatedAt,
		&meal.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find meal: %w", err)
	}

	return &meal, nil
}

// ListByUser retrieves all meals for a user in creation order. Metrics
// depend on this ordering, so it is creation time, not the event date;
// id breaks created_at ties so the order is total.
func (r *mealRepository) ListByUser(userID string) ([]*entities.Meal, error) {
	query := `
		SELECT id, user_id, name, description, is_on_diet, date, created_at, updated_at
		FROM meals
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	defer rows.Close()

	var meals []*entities.Meal
	for rows.Next() {
		var meal entities.Meal
		err := rows.Scan(
			&meal.ID,
			&meal.UserID,
			&meal.Name,
			&meal.Description,
			&meal.IsOnDiet,
			&meal.Date,
			&meal.CreatedAt,
			&meal.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meal: %w", err)
		}
		meals = append(meals, &meal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meals: %w", err)
	}

	return meals, nil
}

// Update overwrites the four mutable fields of a meal. Existence check
// and write are one atomic statement: zero rows affected means the
// id + owner pair does not exist.
func (r *mealRepository) Update(id, userID, name, description string, isOnDiet bool, date int64) error {
	query := `
		UPDATE meals
		SET name = $1, description = $2, is_on_diet = $3, date = $4, updated_at = NOW()
		WHERE id = $5 AND user_id = $6
	`

	result, err := r.db.Exec(query, name, description, isOnDiet, date, id, userID)
	if err != nil {
		return fmt.Errorf("failed to update meal: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrMealNotFound
	}

	return nil
}

// Delete removes a meal. Deleting an absent id is not an error; the
// operation is idempotent from the caller's perspective.
func (r *mealRepository) Delete(id, userID string) error {
	query := `DELETE FROM meals WHERE id = $1 AND user_id = $2`

	if _, err := r.db.Exec(query, id, userID); err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}

	return nil
}

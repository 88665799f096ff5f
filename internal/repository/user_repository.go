package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"dietlog-be/internal/entities"
)

// ErrEmailTaken is returned when a signup collides with an existing email.
var ErrEmailTaken = errors.New("user with this email already exists")

// ErrUserNotFound is returned when no user row matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(id, name, email, sessionID string) (*entities.User, error)
	FindBySessionID(sessionID string) (*entities.User, error)
	List() ([]*entities.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database. The users.email unique
// index makes the duplicate check and the insert a single atomic
// statement; a collision surfaces as ErrEmailTaken.
func (r *userRepository) Create(id, name, email, sessionID string) (*entities.User, error) {
	query := `
		INSERT INTO users (id, name, email, session_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, session_id, created_at, updated_at
	`

	var user entities.User
	err := r.db.QueryRow(query, id, name, email, sessionID).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.SessionID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// FindBySessionID finds the user owning a session token
func (r *userRepository) FindBySessionID(sessionID string) (*entities.User, error) {
	query := `
		SELECT id, name, email, session_id, created_at, updated_at
		FROM users
		WHERE session_id = $1
	`

	var user entities.User
	err := r.db.QueryRow(query, sessionID).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.SessionID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// List retrieves every user row
func (r *userRepository) List() ([]*entities.User, error) {
	query := `
		SELECT id, name, email, session_id, created_at, updated_at
		FROM users
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*entities.User
	for rows.Next() {
		var user entities.User
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.SessionID,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

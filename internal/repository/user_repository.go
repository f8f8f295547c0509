package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"daily-diet-be/internal/entities"
)

// ErrUserNotFound is returned when a lookup matches no user row.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(user *entities.User) error
	FindAll() ([]*entities.User, error)
	FindBySessionID(sessionID string) (*entities.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(user *entities.User) error {
	query := `
		INSERT INTO users (id, email, password, name, session_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(query, user.ID, user.Email, user.Password, user.Name, user.SessionID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// FindAll returns every user row
func (r *userRepository) FindAll() ([]*entities.User, error) {
	query := `
		SELECT id, email, password, name, session_id
		FROM users
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
			&user.Email,
			&user.Password,
			&user.Name,
			&user.SessionID,
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

// FindBySessionID finds the user owning a session token
func (r *userRepository) FindBySessionID(sessionID string) (*entities.User, error) {
	query := `
		SELECT id, email, password, name, session_id
		FROM users
		WHERE session_id = $1
	`

	var user entities.User
	err := r.db.QueryRow(query, sessionID).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Name,
		&user.SessionID,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

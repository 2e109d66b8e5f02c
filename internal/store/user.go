package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateUserParams represents parameters for creating a user
type CreateUserParams struct {
	Email        *string
	Wallet       *string
	PasswordHash string
	LoginType    string
}

const sqlCreateUser = `
INSERT INTO users (email, wallet, password_hash, login_type)
VALUES ($1, $2, $3, $4)
RETURNING id, email, wallet, password_hash, login_type, created_at
`

// CreateUser creates a new user account
func (s *Store) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlCreateUser,
		params.Email,
		params.Wallet,
		params.PasswordHash,
		params.LoginType)
	if err != nil {
		s.logger.Error(ctx, "failed to create user", err)
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

const sqlGetUserByEmail = `
SELECT id, email, wallet, password_hash, login_type, created_at
FROM users
WHERE email = $1
`

// GetUserByEmail retrieves a user by email
func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user by email", err)
		return User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

const sqlGetUserByID = `
SELECT id, email, wallet, password_hash, login_type, created_at
FROM users
WHERE id = $1
`

// GetUserByID retrieves a user by ID
func (s *Store) GetUserByID(ctx context.Context, userID uuid.UUID) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user by id", err)
		return User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

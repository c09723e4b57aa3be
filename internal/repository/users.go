package repository

import (
	"context"
	"fmt"

	"github.com/jayadityadev/social-media-api/internal/models"
)

const userColumns = `id, email, password_hash, created_at`

// CreateUser creates a new user in the database
func (t *Tx) CreateUser(ctx context.Context, user *models.User) error {
	createdAt := now()
	query := t.tx.Rebind(`
		INSERT INTO users (email, password_hash, created_at)
		VALUES (?, ?, ?)
		RETURNING id`)
	err := t.tx.QueryRowxContext(ctx, query, user.Email, user.PasswordHash, createdAt).Scan(&user.ID)
	if err != nil {
		return classify(fmt.Errorf("failed to create user: %w", err), "email already registered")
	}
	user.CreatedAt = createdAt
	return nil
}

// UserByID retrieves a user by id
func (t *Tx) UserByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	query := t.tx.Rebind(`SELECT ` + userColumns + ` FROM users WHERE id = ?`)
	if err := t.tx.GetContext(ctx, user, query, id); err != nil {
		return nil, notFound(err, "user with id %d not found", id)
	}
	return user, nil
}

// UserByEmail retrieves a user by email
func (t *Tx) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := t.tx.Rebind(`SELECT ` + userColumns + ` FROM users WHERE email = ?`)
	if err := t.tx.GetContext(ctx, user, query, email); err != nil {
		return nil, notFound(err, "user with email %s not found", email)
	}
	return user, nil
}

// ListUsers returns every user ordered by id
func (t *Tx) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := t.tx.SelectContext(ctx, &users, `SELECT `+userColumns+` FROM users ORDER BY id ASC`); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUser overwrites the email and password hash of user.ID
func (t *Tx) UpdateUser(ctx context.Context, user *models.User) error {
	query := t.tx.Rebind(`UPDATE users SET email = ?, password_hash = ? WHERE id = ?`)
	res, err := t.tx.ExecContext(ctx, query, user.Email, user.PasswordHash, user.ID)
	if err != nil {
		return classify(fmt.Errorf("failed to update user: %w", err), "email already registered")
	}
	return expectRow(res, "user with id %d not found", user.ID)
}

// DeleteUser removes a user. Posts and votes go with it through the
// ON DELETE CASCADE foreign keys.
func (t *Tx) DeleteUser(ctx context.Context, id int64) error {
	res, err := t.tx.ExecContext(ctx, t.tx.Rebind(`DELETE FROM users WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return expectRow(res, "user with id %d not found", id)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jayadityadev/social-media-api/internal/access"
	"github.com/jayadityadev/social-media-api/internal/models"
	"github.com/jayadityadev/social-media-api/internal/repository"
	"github.com/jayadityadev/social-media-api/internal/utils"
)

// ListUsers returns every registered user
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.repo.WithTx(ctx, "list users", func(tx *repository.Tx) error {
		var err error
		users, err = tx.ListUsers(ctx)
		return err
	})
	return users, err
}

// GetUser returns a single user
func (s *Service) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user *models.User
	err := s.repo.WithTx(ctx, "get user", func(tx *repository.Tx) error {
		var err error
		user, err = tx.UserByID(ctx, id)
		return err
	})
	return user, err
}

// UpdateUser replaces the caller's email and password. pathID must be the
// caller's own id.
func (s *Service) UpdateUser(ctx context.Context, caller access.Caller, pathID int64, email, password string) (*models.User, error) {
	target, err := access.UserTarget(caller, pathID)
	if err != nil {
		return nil, err
	}
	email, err = validateCredentials(email, password)
	if err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, err
	}

	var user *models.User
	err = s.repo.WithTx(ctx, "update user", func(tx *repository.Tx) error {
		var err error
		if user, err = tx.UserByID(ctx, target); err != nil {
			return err
		}
		user.Email = email
		user.PasswordHash = hash
		return tx.UpdateUser(ctx, user)
	})
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, fmt.Errorf("%w: email %s is already registered", models.ErrConflict, email)
		}
		return nil, err
	}

	s.log.Infof("User updated: %d", user.ID)
	return user, nil
}

// DeleteUser removes the caller's account together with its posts and votes.
// pathID must be the caller's own id.
func (s *Service) DeleteUser(ctx context.Context, caller access.Caller, pathID int64) (*models.User, error) {
	target, err := access.UserTarget(caller, pathID)
	if err != nil {
		return nil, err
	}

	var user *models.User
	err = s.repo.WithTx(ctx, "delete user", func(tx *repository.Tx) error {
		var err error
		if user, err = tx.UserByID(ctx, target); err != nil {
			return err
		}
		return tx.DeleteUser(ctx, target)
	})
	if err != nil {
		return nil, err
	}

	s.log.Infof("User deleted: %d", user.ID)
	return user, nil
}

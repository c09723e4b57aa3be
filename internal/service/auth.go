package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jayadityadev/social-media-api/internal/access"
	"github.com/jayadityadev/social-media-api/internal/models"
	"github.com/jayadityadev/social-media-api/internal/repository"
	"github.com/jayadityadev/social-media-api/internal/utils"
)

// Register creates a new user with hashed password
func (s *Service) Register(ctx context.Context, email, password string) (*models.User, error) {
	email, err := validateCredentials(email, password)
	if err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{Email: email, PasswordHash: hash}
	err = s.repo.WithTx(ctx, "register user", func(tx *repository.Tx) error {
		return tx.CreateUser(ctx, user)
	})
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, fmt.Errorf("%w: email %s is already registered", models.ErrConflict, email)
		}
		return nil, err
	}

	s.log.Infof("User registered: %d", user.ID)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	// An address that does not normalize cannot be registered, so the
	// lookup below simply misses.
	if normalized, err := normalizeEmail(email); err == nil {
		email = normalized
	}

	var user *models.User
	err := s.repo.WithTx(ctx, "login", func(tx *repository.Tx) error {
		var err error
		user, err = tx.UserByEmail(ctx, email)
		return err
	})
	if errors.Is(err, models.ErrNotFound) {
		return "", fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
	}
	if err != nil {
		return "", err
	}

	ok, err := utils.VerifyPassword(user.PasswordHash, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
	}

	token, err := s.issueToken(user.ID, time.Now())
	if err != nil {
		return "", err
	}

	s.log.Infof("User logged in: %d", user.ID)
	return token, nil
}

// Authenticate validates a bearer token and resolves the caller it names.
// Bad signatures, expired tokens, non numeric subjects and subjects that no
// longer exist all fail with models.ErrUnauthorized.
func (s *Service) Authenticate(ctx context.Context, tokenString string) (access.Caller, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(s.config.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return access.Caller{}, fmt.Errorf("%w: could not validate credentials: %v", models.ErrUnauthorized, err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return access.Caller{}, fmt.Errorf("%w: could not validate credentials", models.ErrUnauthorized)
	}

	err = s.repo.WithTx(ctx, "authenticate", func(tx *repository.Tx) error {
		_, err := tx.UserByID(ctx, userID)
		return err
	})
	if errors.Is(err, models.ErrNotFound) {
		return access.Caller{}, fmt.Errorf("%w: could not validate credentials", models.ErrUnauthorized)
	}
	if err != nil {
		return access.Caller{}, err
	}

	return access.Caller{ID: userID}, nil
}

func (s *Service) issueToken(userID int64, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.JWTExpiry)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

package service

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/jayadityadev/social-media-api/internal/config"
	"github.com/jayadityadev/social-media-api/internal/models"
	"github.com/jayadityadev/social-media-api/internal/repository"
	"github.com/jayadityadev/social-media-api/internal/utils"
	"github.com/sirupsen/logrus"
)

// Service handles business logic
type Service struct {
	repo   *repository.Repository
	log    logrus.FieldLogger
	config *config.Config
}

// NewService initializes a new service
func NewService(repo *repository.Repository, log logrus.FieldLogger, cfg *config.Config) *Service {
	return &Service{repo: repo, log: log, config: cfg}
}

func validateCredentials(email, password string) (string, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", fmt.Errorf("%w: password is required", models.ErrValidation)
	}
	if len(password) > utils.MaxPasswordBytes {
		return "", fmt.Errorf("%w: password must be at most %d bytes", models.ErrValidation, utils.MaxPasswordBytes)
	}
	return email, nil
}

// normalizeEmail trims the address and lowercases its domain. The local
// part is kept as given.
func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: value is not a valid email address", models.ErrValidation)
	}
	at := strings.LastIndex(email, "@")
	return email[:at] + "@" + strings.ToLower(email[at+1:]), nil
}

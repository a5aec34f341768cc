// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/javajoker/atelier-backend/internal/config"
	"github.com/javajoker/atelier-backend/internal/models"
	"github.com/javajoker/atelier-backend/internal/store"
	"github.com/javajoker/atelier-backend/internal/utils"
)

// ErrInvalidCredentials is returned by Login for a wrong password.
var ErrInvalidCredentials = errors.New("invalid password")

// AuthService checks the shared admin password stored in the admin
// document and issues admin session tokens.
type AuthService struct {
	docs   *store.DocumentStore
	config *config.Config
}

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string    `json:"token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func NewAuthService(docs *store.DocumentStore, config *config.Config) *AuthService {
	return &AuthService{
		docs:   docs,
		config: config,
	}
}

// Verify reports whether candidate matches the stored admin password.
// Plaintext secrets use exact, case-sensitive equality.
func (s *AuthService) Verify(candidate string) (bool, error) {
	var credential models.AdminCredential
	if err := s.docs.Load(models.CollectionAdmin, &credential); err != nil {
		return false, fmt.Errorf("%w: %w", store.ErrAuthUnavailable, err)
	}

	return utils.CheckPassword(credential.Password, candidate), nil
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	ok, err := s.Verify(req.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateAdminToken(s.config.Session.TTLHours)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// SetPassword rewrites the admin document. It is only reachable from the
// CLI; no HTTP route changes the password.
func (s *AuthService) SetPassword(password string, hash bool) error {
	if password == "" {
		return fmt.Errorf("%w: password is empty", store.ErrValidation)
	}

	stored := password
	if hash {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		stored = hashed
	}

	return s.docs.Mutate(models.CollectionAdmin, func() error {
		return s.docs.Store(models.CollectionAdmin, models.AdminCredential{Password: stored})
	})
}

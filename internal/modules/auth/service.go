package auth

import (
	"crypto/subtle"

	"github.com/harborview/realty-core/internal/config"
	"github.com/harborview/realty-core/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Service issues admin credentials against the single shared secret.
type Service struct {
	password     string
	passwordHash string
}

func NewService(cfg *config.AppConfig) *Service {
	return &Service{
		password:     cfg.AdminPassword,
		passwordHash: cfg.AdminPasswordBcrypt,
	}
}

// Login checks the supplied password and, on match, signs a 7-day admin
// token. The plain-secret path uses a constant-time comparison.
func (s *Service) Login(password string) (string, error) {
	if !s.checkPassword(password) {
		return "", errInvalidPassword
	}
	return jwt.Sign()
}

func (s *Service) checkPassword(password string) bool {
	if s.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) == nil
	}
	if s.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) == 1
}

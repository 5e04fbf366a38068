package service

import (
	"cms_backend/internal/model"
	"cms_backend/internal/repository"
	"cms_backend/internal/util"
	"cms_backend/pkg/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthService completes the federated handshake: the identity provider hands
// back an email, which must match an existing local account. Accounts are
// never created here - the provider's nickname attribute is logged and
// otherwise ignored.
type AuthService struct {
	Users *repository.UserRepository
}

func NewAuthService(users *repository.UserRepository) *AuthService {
	return &AuthService{Users: users}
}

// LoginByEmail matches the provider-returned email against local users.
// An empty email or an unmatched one yields ErrInvalidLogin.
func (s *AuthService) LoginByEmail(email, providerNickname string) (*model.User, error) {
	if email == "" {
		return nil, util.ErrInvalidLogin
	}
	user, err := s.Users.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Log.Info("login attempt for unknown account",
			zap.String("email", email),
			zap.String("provider_nickname", providerNickname))
		return nil, util.ErrInvalidLogin
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

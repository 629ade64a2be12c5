package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"communityhub-backend/internal/domain"
	"communityhub-backend/internal/repository"
	"communityhub-backend/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, email, password string, orgID int32) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	var roles []string
	if uo, err := s.userRepo.GetUserOrg(ctx, user.ID, orgID); err == nil && uo.Status == domain.UserOrgStatusActive {
		roles = append(roles, string(uo.Role))
	}

	return s.tokens.GenerateAccessToken(user.ID, user.Email, roles)
}

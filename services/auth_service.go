package services

import (
	"context"
	"log"

	"github.com/Dosada05/tournament-engine/utils"
)

// RoleOrganizer is the only role allowed to change tournament state.
const RoleOrganizer = "organizer"

type LoginInput struct {
	Password string `json:"password"`
}

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (role string, err error)
}

type authService struct {
	organizerPasswordHash string
}

// NewAuthService checks organizer logins against a bcrypt hash. An empty hash rejects every login.
func NewAuthService(organizerPasswordHash string) AuthService {
	return &authService{
		organizerPasswordHash: organizerPasswordHash,
	}
}

func (s *authService) Login(ctx context.Context, input LoginInput) (string, error) {
	if s.organizerPasswordHash == "" {
		log.Printf("Organizer login attempted but ORGANIZER_PASSWORD_HASH is not configured")
		return "", ErrInvalidCredentials
	}
	if input.Password == "" || !utils.CheckPasswordHash(input.Password, s.organizerPasswordHash) {
		return "", ErrInvalidCredentials
	}
	return RoleOrganizer, nil
}

package services

import (
	"log"
	"time"

	"workwithme/pkg/config"
	"workwithme/pkg/utils"
)

const sessionTokenTTL = 60 * time.Minute

type AuthServiceInterface interface {
	// Authenticate checks the admin password and mints a session token.
	Authenticate(password string) (string, error)
	VerifyPassword(password string) bool
	VerifySessionToken(token string) bool
}

type AuthService struct {
	passwordHash string
	jwtSecret    string
}

func NewAuthService(cfg config.Config) AuthServiceInterface {
	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		// bcrypt only fails on oversized input; refuse to start without a credential.
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	return &AuthService{
		passwordHash: hash,
		jwtSecret:    cfg.JWTSecret,
	}
}

func (s *AuthService) Authenticate(password string) (string, error) {
	if !s.VerifyPassword(password) {
		return "", utils.ErrInvalidCredentials
	}
	token, err := utils.CreateSessionToken(s.jwtSecret, sessionTokenTTL)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *AuthService) VerifyPassword(password string) bool {
	return utils.ComparePasswords(s.passwordHash, password) == nil
}

func (s *AuthService) VerifySessionToken(token string) bool {
	_, err := utils.ValidateSessionToken(s.jwtSecret, token)
	return err == nil
}

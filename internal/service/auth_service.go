package service

import (
	"context"
	"time"

	"brand-chatbot-be/internal/config"
	"brand-chatbot-be/internal/dto"
	"brand-chatbot-be/internal/pkg/serverutils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
}

type authService struct {
	cfg config.AdminConfig
}

func NewAuthService(cfg config.AdminConfig) IAuthService {
	return &authService{
		cfg: cfg,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	if req.Username != s.cfg.Username {
		return nil, serverutils.NewUnauthorizedError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.NewUnauthorizedError("invalid credentials")
	}

	expiresAt := time.Now().Add(24 * time.Hour)
	claims := jwt.MapClaims{
		"sub": req.Username,
		"iat": time.Now().Unix(),
		"exp": expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &dto.AdminLoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

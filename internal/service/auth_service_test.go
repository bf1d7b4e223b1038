package service

import (
	"context"
	"testing"

	"brand-chatbot-be/internal/config"
	"brand-chatbot-be/internal/dto"
	"brand-chatbot-be/internal/pkg/serverutils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func testAdminConfig(t *testing.T, password string) config.AdminConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt hash: %v", err)
	}
	return config.AdminConfig{
		Username:     "admin",
		PasswordHash: string(hash),
		JWTSecret:    "test-secret",
	}
}

func TestAdminLoginIssuesValidToken(t *testing.T) {
	cfg := testAdminConfig(t, "hunter2")
	svc := NewAuthService(cfg)

	res, err := svc.Login(context.Background(), &dto.AdminLoginRequest{
		Username: "admin",
		Password: "hunter2",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["sub"])
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(testAdminConfig(t, "hunter2"))

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "wrong"},
		{name: "wrong username", username: "root", password: "hunter2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &dto.AdminLoginRequest{
				Username: tt.username,
				Password: tt.password,
			})

			var appErr *serverutils.AppError
			assert.ErrorAs(t, err, &appErr)
			assert.Equal(t, 401, appErr.Code)
		})
	}
}

package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/Shazil-Web3/Hanzala-agnecy/internal/auth"
)

func TestAuthService_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("super-secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected bcrypt error: %v", err)
	}
	manager := auth.NewJWTManager("secret", 0)
	svc := NewAuthService("Admin@Example.com", string(hashed), manager)

	tests := map[string]struct {
		email     string
		password  string
		expectErr error
	}{
		"empty credentials": {expectErr: errors.New("empty")},
		"wrong email":       {email: "other@example.com", password: "super-secret", expectErr: ErrInvalidCredentials},
		"wrong password":    {email: "admin@example.com", password: "nope", expectErr: ErrInvalidCredentials},
		"success":           {email: " ADMIN@example.com ", password: "super-secret"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			token, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.expectErr != nil {
				if err == nil {
					t.Fatalf("expected error")
				}
				if errors.Is(tt.expectErr, ErrInvalidCredentials) && !errors.Is(err, ErrInvalidCredentials) {
					t.Fatalf("expected ErrInvalidCredentials, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			claims, err := manager.ParseToken(token)
			if err != nil {
				t.Fatalf("token should parse: %v", err)
			}
			if claims.Role != RoleAdmin || claims.Email != "admin@example.com" {
				t.Fatalf("unexpected claims: %+v", claims)
			}
		})
	}
}

func TestAuthService_LoginUnconfigured(t *testing.T) {
	svc := NewAuthService("", "", nil)
	if _, err := svc.Login(context.Background(), "a@example.com", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

package service

import (
	"errors"
	"testing"

	"watch-store-backend/internal/config"
)

func TestAuthLoginAndValidate(t *testing.T) {
	svc := NewAuthService("signing-secret", &config.Admin{Password: "hunter2", TokenTTL: "1h"})

	token, err := svc.Login("hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	if err := svc.ValidateToken(token); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestAuthLoginWrongPassword(t *testing.T) {
	svc := NewAuthService("signing-secret", &config.Admin{Password: "hunter2", TokenTTL: "1h"})

	if _, err := svc.Login("wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthDisabledWithoutPassword(t *testing.T) {
	svc := NewAuthService("signing-secret", &config.Admin{TokenTTL: "1h"})

	if _, err := svc.Login(""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected login to be disabled, got %v", err)
	}
}

func TestAuthRejectsForeignToken(t *testing.T) {
	issuer := NewAuthService("secret-a", &config.Admin{Password: "hunter2", TokenTTL: "1h"})
	validator := NewAuthService("secret-b", &config.Admin{Password: "hunter2", TokenTTL: "1h"})

	token, err := issuer.Login("hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := validator.ValidateToken(token); err == nil {
		t.Fatal("expected token signed with another key to be rejected")
	}
}

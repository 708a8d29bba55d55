package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"watch-store-backend/internal/config"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService issues and validates the bearer tokens guarding the admin
// surface (order listing). When no admin password is configured, login always
// fails and the admin endpoints stay closed.
type AuthService interface {
	Login(password string) (string, error)
	ValidateToken(token string) error
}

type authServiceImpl struct {
	secretKey []byte
	password  string
	tokenTTL  time.Duration
}

func NewAuthService(secretKey string, cfg *config.Admin) AuthService {
	ttl, err := time.ParseDuration(cfg.TokenTTL)
	if err != nil || ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &authServiceImpl{
		secretKey: []byte(secretKey),
		password:  cfg.Password,
		tokenTTL:  ttl,
	}
}

func (s *authServiceImpl) Login(password string) (string, error) {
	if s.password == "" {
		return "", ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	})

	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign admin token: %w", err)
	}

	return signed, nil
}

func (s *authServiceImpl) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return fmt.Errorf("parse admin token: %w", err)
	}
	if !token.Valid {
		return ErrInvalidCredentials
	}

	return nil
}

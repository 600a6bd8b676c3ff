package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/Vovarama1992/salesacademy/internal/ports"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid session token")

type jwtTokens struct {
	secret []byte
}

// NewJWTTokens signs session cookies as HS256 tokens carrying the session id.
func NewJWTTokens(secret string) ports.SessionTokens {
	return &jwtTokens{secret: []byte(secret)}
}

func (t *jwtTokens) Sign(sessionID string, expires time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionID,
		"exp": expires.Unix(),
	})
	return token.SignedString(t.secret)
}

func (t *jwtTokens) Verify(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", ErrInvalidToken
	}
	return sid, nil
}

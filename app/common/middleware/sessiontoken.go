package middleware

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type sessionClaims struct {
	SessionId string `json:"sid"`
	jwt.RegisteredClaims
}

func signSessionToken(secret []byte, ttl time.Duration, sessionId string) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("session secret is empty")
	}
	if ttl <= 0 {
		return "", errors.New("session ttl must be positive")
	}

	now := time.Now()
	claims := sessionClaims{
		SessionId: sessionId,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func parseSessionToken(tokenStr string, secret []byte) (string, error) {
	if tokenStr == "" {
		return "", errors.New("session token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.SessionId == "" {
		return "", errors.New("invalid session claims")
	}
	return claims.SessionId, nil
}

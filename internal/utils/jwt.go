package utils

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidAuthHeader is returned when an Authorization header value
	// is not a well-formed bearer token.
	ErrInvalidAuthHeader = errors.New("invalid authorization header")
	// ErrEmptyTokenSubject is returned when a token carries no subject
	// claim.
	ErrEmptyTokenSubject = errors.New("empty token subject")
)

// ParseBearerHeader extracts the token string from an Authorization header
// of the form "Bearer <token>". The scheme is matched case-insensitively.
func ParseBearerHeader(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrInvalidAuthHeader
	}
	return parts[1], nil
}

// SubjectFromUnverifiedToken reads the subject claim of a JWT without
// verifying its signature. Callers must only use the result for
// display/bookkeeping, never for authorization decisions.
func SubjectFromUnverifiedToken(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", ErrEmptyTokenSubject
	}
	return sub, nil
}

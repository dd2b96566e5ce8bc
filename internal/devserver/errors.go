package devserver

import "errors"

var (
	ErrEmptyAuthorizationHeader = errors.New("empty Authorization header")
	ErrEmptyToken               = errors.New("empty token")
	ErrTokenRevoked             = errors.New("token has been revoked")
	ErrUnexpectedSigningMethod  = errors.New("unexpected token signing method")
)

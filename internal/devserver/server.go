// Package devserver implements an in-memory identity provider speaking the
// cashbook identity HTTP API. It exists for local development and
// integration testing: accounts live only as long as the process, tokens are
// HS256 JWTs signed with a per-instance random key, and no mail is ever
// sent. It is not hardened for production use.
package devserver

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/moneytrackultra/go-cashbook/internal/crypto"
	"github.com/moneytrackultra/go-cashbook/internal/logger"
)

const tokenTTL = 24 * time.Hour

type account struct {
	ID          string
	Email       string
	DisplayName string
	AvatarRef   string
	SaltB64     string
	HashB64     string
	CreatedAt   time.Time
}

// Server is the in-memory identity provider. The zero value is not usable;
// construct it with [NewServer].
type Server struct {
	hasher     crypto.CredentialHasher
	logger     *logger.Logger
	signingKey []byte

	mu       sync.RWMutex
	accounts map[string]*account // keyed by lowercase email
	revoked  map[string]struct{} // signed-out token strings
}

// NewServer creates a Server with an empty account table and a random
// signing key.
func NewServer(log *logger.Logger) (*Server, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}

	return &Server{
		hasher:     crypto.NewCredentialHasher(),
		logger:     log,
		signingKey: key,
		accounts:   make(map[string]*account),
		revoked:    make(map[string]struct{}),
	}, nil
}

// Routes builds the chi router exposing the identity API.
func (s *Server) Routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/api/health", s.health)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", s.register)
		r.Post("/api/auth/login", s.login)
		r.Post("/api/auth/reset", s.passwordReset)
	})

	// routes behind bearer authentication
	router.Group(func(r chi.Router) {
		r.Use(s.auth)
		r.Post("/api/auth/reauth", s.reauth)
		r.Post("/api/auth/signout", s.signout)
		r.Patch("/api/profile/email", s.updateEmail)
		r.Patch("/api/profile/name", s.updateDisplayName)
		r.Patch("/api/profile/password", s.updatePassword)
	})

	return router
}

// issueToken signs a JWT whose subject is the account id.
func (s *Server) issueToken(accountID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   accountID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		ID:        uuid.NewString(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
}

// parseToken validates signature and expiry and returns the account id from
// the subject claim. Revoked tokens fail validation.
func (s *Server) parseToken(tokenString string) (string, error) {
	s.mu.RLock()
	_, isRevoked := s.revoked[tokenString]
	s.mu.RUnlock()
	if isRevoked {
		return "", ErrTokenRevoked
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedSigningMethod
		}
		return s.signingKey, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrEmptyToken
	}
	return claims.Subject, nil
}

// findByEmail returns the account for email, matching case-insensitively.
// Callers must hold s.mu.
func (s *Server) findByEmail(email string) *account {
	return s.accounts[strings.ToLower(email)]
}

// findByID scans for the account with the given id. Callers must hold s.mu.
func (s *Server) findByID(id string) *account {
	for _, acc := range s.accounts {
		if acc.ID == id {
			return acc
		}
	}
	return nil
}

package devserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moneytrackultra/go-cashbook/internal/app"
	"github.com/moneytrackultra/go-cashbook/internal/utils"
	"github.com/moneytrackultra/go-cashbook/internal/validators"
	"github.com/moneytrackultra/go-cashbook/models"
)

type credentialsRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

type profilePatchRequest struct {
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Password    string `json:"password,omitempty"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := validators.ValidateEmail(req.Email); err != nil {
		http.Error(w, app.MsgInvalidEmail, http.StatusBadRequest)
		return
	}
	if err := validators.ValidatePassword(req.Password); err != nil {
		http.Error(w, app.MsgWeakPassword, http.StatusBadRequest)
		return
	}
	if err := validators.ValidateDisplayName(req.DisplayName); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	salt, err := s.hasher.NewSalt()
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	hash, err := s.hasher.Hash([]byte(req.Password), salt)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	acc := &account{
		ID:          uuid.NewString(),
		Email:       req.Email,
		DisplayName: req.DisplayName,
		SaltB64:     salt,
		HashB64:     hash,
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	if s.findByEmail(req.Email) != nil {
		s.mu.Unlock()
		s.logger.Warn().Msg("registration rejected, email already registered")
		http.Error(w, app.MsgEmailAlreadyRegistered, http.StatusConflict)
		return
	}
	s.accounts[strings.ToLower(req.Email)] = acc
	s.mu.Unlock()

	s.logger.Info().Str("account_id", acc.ID).Msg("account registered")
	s.writeSession(w, acc)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	s.mu.RLock()
	acc := s.findByEmail(req.Email)
	s.mu.RUnlock()
	if acc == nil || !s.verifyPassword(acc, req.Password) {
		http.Error(w, app.MsgInvalidEmailPassword, http.StatusUnauthorized)
		return
	}

	s.logger.Info().Str("account_id", acc.ID).Msg("account logged in")
	s.writeSession(w, acc)
}

func (s *Server) reauth(w http.ResponseWriter, r *http.Request) {
	acc := s.accountFromContext(r.Context())
	if acc == nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if !strings.EqualFold(req.Email, acc.Email) || !s.verifyPassword(acc, req.Password) {
		http.Error(w, app.MsgInvalidEmailPassword, http.StatusUnauthorized)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) passwordReset(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	// No mail is sent, and unknown emails get the same answer as known
	// ones: reset requests must not leak which accounts exist.
	s.logger.Info().Msg("password reset requested")
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) signout(w http.ResponseWriter, r *http.Request) {
	tokenString, err := utils.ParseBearerHeader(r.Header.Get("Authorization"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	s.mu.Lock()
	s.revoked[tokenString] = struct{}{}
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) updateEmail(w http.ResponseWriter, r *http.Request) {
	acc := s.accountFromContext(r.Context())
	if acc == nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req profilePatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	newEmail := strings.TrimSpace(req.Email)
	if err := validators.ValidateEmail(newEmail); err != nil {
		http.Error(w, app.MsgInvalidEmail, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if other := s.findByEmail(newEmail); other != nil && other.ID != acc.ID {
		http.Error(w, app.MsgEmailAlreadyRegistered, http.StatusConflict)
		return
	}

	delete(s.accounts, strings.ToLower(acc.Email))
	acc.Email = newEmail
	s.accounts[strings.ToLower(newEmail)] = acc

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) updateDisplayName(w http.ResponseWriter, r *http.Request) {
	acc := s.accountFromContext(r.Context())
	if acc == nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req profilePatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	if err := validators.ValidateDisplayName(req.DisplayName); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	acc.DisplayName = req.DisplayName
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) updatePassword(w http.ResponseWriter, r *http.Request) {
	acc := s.accountFromContext(r.Context())
	if acc == nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req profilePatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	if err := validators.ValidatePassword(req.Password); err != nil {
		http.Error(w, app.MsgWeakPassword, http.StatusBadRequest)
		return
	}

	salt, err := s.hasher.NewSalt()
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	hash, err := s.hasher.Hash([]byte(req.Password), salt)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	acc.SaltB64 = salt
	acc.HashB64 = hash
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

// auth is the bearer-token middleware guarding profile and session routes.
// The authenticated account id lands in the request context.
func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerHeader(authHeader)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		accountID, err := s.parseToken(tokenString)
		if err != nil {
			s.logger.Err(err).Msg("token validation failed")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.AccountIDCtxKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// writeSession issues a token for acc and writes the session response:
// bearer token in the Authorization header, identity JSON in the body.
func (s *Server) writeSession(w http.ResponseWriter, acc *account) {
	token, err := s.issueToken(acc.ID)
	if err != nil {
		s.logger.Err(err).Msg("token issuance failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	s.mu.RLock()
	identity := models.RemoteIdentity{
		ID:          acc.ID,
		Email:       acc.Email,
		DisplayName: acc.DisplayName,
		AvatarRef:   acc.AvatarRef,
	}
	s.mu.RUnlock()

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(identity); err != nil {
		s.logger.Err(err).Msg("identity response encoding failed")
	}
}

func (s *Server) verifyPassword(acc *account, password string) bool {
	s.mu.RLock()
	salt, hash := acc.SaltB64, acc.HashB64
	s.mu.RUnlock()

	ok, err := s.hasher.Verify([]byte(password), salt, hash)
	if err != nil {
		s.logger.Err(err).Msg("stored credential is malformed")
		return false
	}
	return ok
}

func (s *Server) accountFromContext(ctx context.Context) *account {
	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok || accountID == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findByID(accountID)
}

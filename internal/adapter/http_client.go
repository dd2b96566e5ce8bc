package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/moneytrackultra/go-cashbook/internal/app"
	"github.com/moneytrackultra/go-cashbook/internal/utils"
	"github.com/moneytrackultra/go-cashbook/models"
)

// HTTPClientConfig configures the HTTP identity provider adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpIdentityProvider struct {
	client *resty.Client

	mu     sync.RWMutex
	token  string
	remote *models.RemoteIdentity
}

// NewHTTPIdentityProvider builds an [IdentityProvider] speaking the cashbook
// identity HTTP API.
func NewHTTPIdentityProvider(cfg HTTPClientConfig) IdentityProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpIdentityProvider{client: cli}
}

type credentialsRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

func (h *httpIdentityProvider) CreateAccount(ctx context.Context, email, secret string) (models.RemoteIdentity, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentialsRequest{Email: email, Password: secret}).
		Post("/api/auth/register")
	if err != nil {
		return models.RemoteIdentity{}, fmt.Errorf("%w: register request: %v", ErrRemote, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteIdentity{}, err
	}

	return h.bindSession(resp)
}

func (h *httpIdentityProvider) VerifyCredentials(ctx context.Context, email, secret string) (models.RemoteIdentity, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentialsRequest{Email: email, Password: secret}).
		Post("/api/auth/login")
	if err != nil {
		return models.RemoteIdentity{}, fmt.Errorf("%w: login request: %v", ErrRemote, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteIdentity{}, err
	}

	return h.bindSession(resp)
}

func (h *httpIdentityProvider) Reauthenticate(ctx context.Context, email, secret string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentialsRequest{Email: email, Password: secret}).
		Post("/api/auth/reauth")
	if err != nil {
		return fmt.Errorf("%w: reauth request: %v", ErrRemote, err)
	}

	return mapHTTPError(resp)
}

func (h *httpIdentityProvider) UpdateEmail(ctx context.Context, newEmail string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": newEmail}).
		Patch("/api/profile/email")
	if err != nil {
		return fmt.Errorf("%w: update email request: %v", ErrRemote, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.mu.Lock()
	if h.remote != nil {
		h.remote.Email = newEmail
	}
	h.mu.Unlock()
	return nil
}

func (h *httpIdentityProvider) UpdateDisplayName(ctx context.Context, newName string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"display_name": newName}).
		Patch("/api/profile/name")
	if err != nil {
		return fmt.Errorf("%w: update display name request: %v", ErrRemote, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.mu.Lock()
	if h.remote != nil {
		h.remote.DisplayName = newName
	}
	h.mu.Unlock()
	return nil
}

func (h *httpIdentityProvider) UpdatePassword(ctx context.Context, newSecret string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"password": newSecret}).
		Patch("/api/profile/password")
	if err != nil {
		return fmt.Errorf("%w: update password request: %v", ErrRemote, err)
	}

	return mapHTTPError(resp)
}

func (h *httpIdentityProvider) SendPasswordReset(ctx context.Context, email string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email}).
		Post("/api/auth/reset")
	if err != nil {
		return fmt.Errorf("%w: password reset request: %v", ErrRemote, err)
	}

	return mapHTTPError(resp)
}

func (h *httpIdentityProvider) SignOut(ctx context.Context) error {
	req := h.authedRequest(ctx)

	// The local session drops regardless of what the provider says.
	h.mu.Lock()
	hadToken := h.token != ""
	h.token = ""
	h.remote = nil
	h.mu.Unlock()

	if !hadToken {
		return nil
	}

	resp, err := req.Post("/api/auth/signout")
	if err != nil {
		return fmt.Errorf("%w: signout request: %v", ErrRemote, err)
	}

	return mapHTTPError(resp)
}

func (h *httpIdentityProvider) CurrentRemoteIdentity() *models.RemoteIdentity {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.token == "" || h.remote == nil {
		return nil
	}
	remote := *h.remote
	return &remote
}

// bindSession extracts the bearer token and remote identity from a
// register/login response and stores them for subsequent authed requests.
func (h *httpIdentityProvider) bindSession(resp *resty.Response) (models.RemoteIdentity, error) {
	token, err := utils.ParseBearerHeader(resp.Header().Get("Authorization"))
	if err != nil {
		return models.RemoteIdentity{}, fmt.Errorf("%w: parse bearer token: %v", ErrRemote, err)
	}

	var remote models.RemoteIdentity
	if err = json.Unmarshal(resp.Body(), &remote); err != nil {
		return models.RemoteIdentity{}, fmt.Errorf("%w: decode identity response: %v", ErrRemote, err)
	}
	if remote.ID == "" {
		// Some deployments return a bare token; the subject claim is the
		// fallback source for the remote id.
		if id, claimErr := utils.SubjectFromUnverifiedToken(token); claimErr == nil {
			remote.ID = id
		}
	}

	h.mu.Lock()
	h.token = token
	stored := remote
	h.remote = &stored
	h.mu.Unlock()

	return remote, nil
}

func (h *httpIdentityProvider) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	bodyLower := strings.ToLower(body)

	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, http.StatusText(resp.StatusCode()))
	case resp.StatusCode() == http.StatusConflict,
		strings.Contains(bodyLower, app.MsgEmailAlreadyRegistered):
		return fmt.Errorf("%w", ErrDuplicateEmail)
	case strings.Contains(bodyLower, app.MsgWeakPassword):
		return fmt.Errorf("%w", ErrWeakPassword)
	}

	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrRemote, resp.StatusCode(), body)
}

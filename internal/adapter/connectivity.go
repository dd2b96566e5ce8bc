package adapter

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type httpConnectivityOracle struct {
	client *resty.Client
}

// NewHTTPConnectivityOracle builds a [ConnectivityOracle] that probes the
// provider's health endpoint with a short deadline. The answer is a
// point-in-time guess; callers must tolerate it being wrong by the time they
// act on it.
func NewHTTPConnectivityOracle(baseURL string, timeout time.Duration) ConnectivityOracle {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	return &httpConnectivityOracle{client: cli}
}

func (o *httpConnectivityOracle) IsOnline(ctx context.Context) bool {
	resp, err := o.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return false
	}
	return resp.StatusCode() >= 200 && resp.StatusCode() < 300
}

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig carries the transport settings for the HTTP backend.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpRemoteBackend struct {
	client *resty.Client
}

// NewHTTPRemoteBackend constructs a [RemoteBackend] speaking HTTP/JSON to the
// account backend at cfg.BaseURL.
func NewHTTPRemoteBackend(cfg HTTPClientConfig) RemoteBackend {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpRemoteBackend{client: cli}
}

func (h *httpRemoteBackend) CheckStatus(ctx context.Context, accessToken string) (AccountStatus, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+accessToken).
		Get("/api/session/status")
	if err != nil {
		return AccountStatus{}, fmt.Errorf("%w: status request: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return AccountStatus{}, err
	}

	var status AccountStatus
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return AccountStatus{}, fmt.Errorf("decode status response: %w", err)
	}

	return status, nil
}

func (h *httpRemoteBackend) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"refresh_token": refreshToken}).
		Post("/api/session/refresh")
	if err != nil {
		return TokenPair{}, fmt.Errorf("%w: refresh request: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return TokenPair{}, err
	}

	var pair TokenPair
	if err = json.Unmarshal(resp.Body(), &pair); err != nil {
		return TokenPair{}, fmt.Errorf("decode refresh response: %w", err)
	}

	// The backend does not echo the expiry; it lives in the token itself.
	expiry, err := TokenExpiry(pair.AccessToken)
	if err == nil {
		pair.Expiry = expiry
	}

	return pair, nil
}

func (h *httpRemoteBackend) PerformSync(ctx context.Context, accessToken string, req SyncRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+accessToken).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/sync/run")
	if err != nil {
		return fmt.Errorf("%w: sync request: %v", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

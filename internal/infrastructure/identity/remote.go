package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/nhutty0402/quanly-nhatro/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// RemoteConfig captures the settings for the external identity backend.
type RemoteConfig struct {
	// URL is the backend's login endpoint. Never exposed to browsers; the
	// gateway is the only caller.
	URL string
	// SuccessMessage is the exact message the backend sends alongside a token
	// on accepted credentials.
	SuccessMessage string
	// Timeout bounds the single outbound call. Defaults to 10s.
	Timeout time.Duration
}

// RemoteAuthority proxies credential checks to the external identity backend
// over HTTPS. One outbound call per Authenticate, no retries.
type RemoteAuthority struct {
	cfg    RemoteConfig
	client *http.Client
	log    zerolog.Logger
}

func NewRemoteAuthority(cfg RemoteConfig, log zerolog.Logger) *RemoteAuthority {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &RemoteAuthority{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}
}

// loginUpstreamRequest maps the credential pair to the backend's field names.
type loginUpstreamRequest struct {
	Phone    string `json:"SoDienThoai"`
	Password string `json:"MatKhau"`
}

// loginUpstreamResponse is the backend's contract: a message, plus a token
// when the credentials are accepted. No other fields are assumed.
type loginUpstreamResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// Authenticate forwards the pair and interprets the reply. Success requires
// the configured success message co-occurring with a non-empty token; any
// other combination is a credential rejection. Transport failures map to
// ErrUpstreamUnavailable so the gateway fails closed.
func (a *RemoteAuthority) Authenticate(ctx context.Context, phone, password string) (string, error) {
	payload, err := json.Marshal(loginUpstreamRequest{Phone: phone, Password: password})
	if err != nil {
		return "", fmt.Errorf("encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		a.log.Warn().Err(err).Msg("identity backend unreachable")
		return "", domain.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		a.log.Warn().Int("status", resp.StatusCode).Msg("identity backend error")
		return "", domain.ErrUpstreamUnavailable
	}

	var body loginUpstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		a.log.Warn().Err(err).Msg("identity backend sent malformed response")
		return "", domain.ErrUpstreamUnavailable
	}

	if resp.StatusCode != http.StatusOK || body.Message != a.cfg.SuccessMessage || !domain.ValidToken(body.Token) {
		return "", domain.ErrInvalidCredentials
	}

	return body.Token, nil
}

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Generic user-facing messages. Backend internals never reach the UI: every
// failed login renders the same notice regardless of cause.
const (
	noticeLoginSuccess = "Đăng nhập thành công"
	noticeLoginFailed  = "Đăng nhập thất bại, vui lòng thử lại"
)

// ErrMissingField is returned before any network call when a credential
// field is empty.
var ErrMissingField = errors.New("phone and password are required")

// ErrLoginFailed is the single generic error for any rejected or failed
// submission.
var ErrLoginFailed = errors.New("login failed")

// Client submits credentials to the login gateway and maintains the local
// session slot. One submission per Login call; no retries.
type Client struct {
	baseURL  string
	http     *http.Client
	store    *TokenStore
	notifier Notifier
	tokenTTL time.Duration
}

// Config parameterises the client.
type Config struct {
	// BaseURL is the gateway origin (e.g. http://localhost:8080).
	BaseURL string
	// TokenTTL is how long a stored token is trusted locally. Defaults to 7 days.
	TokenTTL time.Duration
	// Timeout bounds each HTTP call. Defaults to 10s.
	Timeout time.Duration
}

func New(cfg Config, store *TokenStore, notifier Notifier) *Client {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 7 * 24 * time.Hour
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		baseURL:  cfg.BaseURL,
		http:     &http.Client{Timeout: cfg.Timeout},
		store:    store,
		notifier: notifier,
		tokenTTL: cfg.TokenTTL,
	}
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Login validates the pair locally, submits it once, and on success persists
// the session token and notifies the user. On any failure nothing is
// persisted and a single generic notice is shown. The credential pair lives
// only for the duration of the call.
func (c *Client) Login(ctx context.Context, phone, password string) error {
	if phone == "" || password == "" {
		c.notifier.Notify("Vui lòng nhập đủ số điện thoại và mật khẩu", SeverityError)
		return ErrMissingField
	}

	payload, err := json.Marshal(loginRequest{Phone: phone, Password: password})
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/login", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.notifier.Notify(noticeLoginFailed, SeverityError)
		return ErrLoginFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.notifier.Notify(noticeLoginFailed, SeverityError)
		return ErrLoginFailed
	}

	token := sessionTokenFromCookies(resp.Cookies())
	if token == "" {
		c.notifier.Notify(noticeLoginFailed, SeverityError)
		return ErrLoginFailed
	}

	if err := c.store.Save(token, c.tokenTTL); err != nil {
		c.notifier.Notify(noticeLoginFailed, SeverityError)
		return fmt.Errorf("persist session: %w", err)
	}

	c.notifier.Notify(noticeLoginSuccess, SeveritySuccess)
	return nil
}

// Logout tells the gateway to revoke the session and clears the local slot.
func (c *Client) Logout(ctx context.Context) error {
	token, err := c.store.Load()
	if err != nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/logout", nil)
	if err != nil {
		return fmt.Errorf("build logout request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: "token", Value: token})

	if resp, doErr := c.http.Do(req); doErr == nil {
		resp.Body.Close()
	}

	return c.store.Clear()
}

func sessionTokenFromCookies(cookies []*http.Cookie) string {
	for _, cookie := range cookies {
		if cookie.Name == "token" {
			return cookie.Value
		}
	}
	return ""
}

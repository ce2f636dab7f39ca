package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nhutty0402/quanly-nhatro/internal/core/domain"
	"github.com/nhutty0402/quanly-nhatro/internal/core/ports"
	"github.com/nhutty0402/quanly-nhatro/internal/session"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, input ports.LoginInput) (*ports.LoginResult, error)
	logoutFn func(ctx context.Context, token, remoteIP string) error
	calls    int
}

func (s *stubAuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.LoginResult, error) {
	s.calls++
	return s.loginFn(ctx, input)
}

func (s *stubAuthService) Logout(ctx context.Context, token, remoteIP string) error {
	return s.logoutFn(ctx, token, remoteIP)
}

func newLoginContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, input ports.LoginInput) (*ports.LoginResult, error) {
			if input.Phone != "0901234567" || input.Password != "correct" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.LoginResult{Token: "abc123", TTL: 24 * time.Hour, Message: "Đăng nhập thành công"}, nil
		},
	}
	handler := NewAuthHandler(stub, nil, session.CookieOptions{Name: "token"})

	c, rec := newLoginContext(e, `{"phone":"0901234567","password":"correct"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected exactly one cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != "token" || cookie.Value != "abc123" {
		t.Fatalf("unexpected cookie: %s=%s", cookie.Name, cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
	if cookie.MaxAge <= 0 {
		t.Fatalf("session cookie must carry a finite positive Max-Age, got %d", cookie.MaxAge)
	}
	if cookie.Path != "/" {
		t.Fatalf("session cookie must be scoped to /, got %q", cookie.Path)
	}

	// The raw token never appears in a script-readable body.
	if strings.Contains(rec.Body.String(), "abc123") {
		t.Fatalf("response body leaks the token: %s", rec.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Đăng nhập thành công" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestAuthHandler_Login_Rejected(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, input ports.LoginInput) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, nil, session.CookieOptions{Name: "token"})

	c, rec := newLoginContext(e, `{"phone":"0901234567","password":"wrong"}`)
	err := handler.Login(c)
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	// Failure never sets cookie material.
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("no cookie may be set on rejection")
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, input ports.LoginInput) (*ports.LoginResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, nil, session.CookieOptions{Name: "token"})

	for _, body := range []string{`{"phone":"","password":"x"}`, `{"phone":"0901234567"}`, `{}`} {
		c, _ := newLoginContext(e, body)
		err := handler.Login(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400 HTTPError, got %v", body, err)
		}
	}
	if stub.calls != 0 {
		t.Fatalf("validation failures must not reach the service, got %d calls", stub.calls)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, input ports.LoginInput) (*ports.LoginResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, nil, session.CookieOptions{Name: "token"})

	c, _ := newLoginContext(e, "not-json")
	err := handler.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	e := echo.New()
	var revoked string
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, token, remoteIP string) error {
			revoked = token
			return nil
		},
	}
	handler := NewAuthHandler(stub, nil, session.CookieOptions{Name: "token"})

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "abc123"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if revoked != "abc123" {
		t.Fatalf("expected token to be revoked, got %q", revoked)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Fatalf("expected an expiring cookie, got %+v", cookies)
	}
}

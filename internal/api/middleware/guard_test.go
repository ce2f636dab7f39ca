package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nhutty0402/quanly-nhatro/internal/core/domain"
)

type stubRevocations struct {
	revoked map[string]bool
}

func (s *stubRevocations) IsRevoked(ctx context.Context, token string) (bool, error) {
	return s.revoked[token], nil
}

func guardPolicy() domain.AccessPolicy {
	return domain.AccessPolicy{
		LoginPath: "/login",
		HomePath:  "/",
		Public:    []string{"/api", "/health"},
		Protected: []string{"/"},
	}
}

func runGuard(t *testing.T, policy domain.AccessPolicy, opts GuardOptions, path string, cookie *http.Cookie) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	served := false
	mw := SessionGuard(policy, opts)
	err := mw(func(c echo.Context) error {
		served = true
		return c.String(http.StatusOK, "protected content")
	})(c)
	if err != nil {
		t.Fatalf("guard error: %v", err)
	}
	return rec, served
}

func TestSessionGuard_NoCookieRedirectsToLogin(t *testing.T) {
	rec, served := runGuard(t, guardPolicy(), GuardOptions{Log: zerolog.Nop()}, "/rooms", nil)

	if served {
		t.Fatalf("protected handler must not run without a session")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
	// No protected content ever leaks alongside the redirect.
	if body := rec.Body.String(); body != "" && body != http.StatusText(http.StatusFound) {
		t.Fatalf("unexpected body on redirect: %q", body)
	}
}

func TestSessionGuard_PlaceholderCookieTreatedAsAbsent(t *testing.T) {
	for _, value := range []string{"null", "undefined", "   "} {
		rec, served := runGuard(t, guardPolicy(), GuardOptions{Log: zerolog.Nop()}, "/rooms",
			&http.Cookie{Name: "token", Value: value})

		if served {
			t.Fatalf("placeholder %q must not authenticate", value)
		}
		if loc := rec.Header().Get("Location"); loc != "/login" {
			t.Fatalf("placeholder %q: expected redirect to /login, got %q", value, loc)
		}
	}
}

func TestSessionGuard_ValidCookieAllowsProtectedPath(t *testing.T) {
	_, served := runGuard(t, guardPolicy(), GuardOptions{Log: zerolog.Nop()}, "/rooms",
		&http.Cookie{Name: "token", Value: "abc123"})

	if !served {
		t.Fatalf("valid session should reach the handler")
	}
}

func TestSessionGuard_AuthenticatedLoginRedirectsHome(t *testing.T) {
	rec, served := runGuard(t, guardPolicy(), GuardOptions{Log: zerolog.Nop()}, "/login",
		&http.Cookie{Name: "token", Value: "abc123"})

	if served {
		t.Fatalf("authenticated visitor must not see the login page")
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
}

func TestSessionGuard_PublicPathNeedsNoSession(t *testing.T) {
	_, served := runGuard(t, guardPolicy(), GuardOptions{Log: zerolog.Nop()}, "/api/login", nil)

	if !served {
		t.Fatalf("public paths must be served without a session")
	}
}

func TestSessionGuard_RevokedTokenRedirects(t *testing.T) {
	opts := GuardOptions{
		Denylist: &stubRevocations{revoked: map[string]bool{"abc123": true}},
		Log:      zerolog.Nop(),
	}
	rec, served := runGuard(t, guardPolicy(), opts, "/rooms",
		&http.Cookie{Name: "token", Value: "abc123"})

	if served {
		t.Fatalf("revoked token must not authenticate")
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestSessionGuard_StatelessAcrossRequests(t *testing.T) {
	policy := guardPolicy()
	opts := GuardOptions{Log: zerolog.Nop()}

	// Alternating sessions against the same middleware never influence each
	// other: each request is decided from its own cookie alone.
	_, first := runGuard(t, policy, opts, "/rooms", &http.Cookie{Name: "token", Value: "abc123"})
	_, second := runGuard(t, policy, opts, "/rooms", nil)
	_, third := runGuard(t, policy, opts, "/rooms", &http.Cookie{Name: "token", Value: "abc123"})

	if !first || second || !third {
		t.Fatalf("guard decisions leaked state across requests: %v %v %v", first, second, third)
	}
}

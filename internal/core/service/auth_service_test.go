package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/nhutty0402/quanly-nhatro/internal/core/domain"
	"github.com/nhutty0402/quanly-nhatro/internal/core/ports"
)

type stubAuthority struct {
	authenticateFn func(ctx context.Context, phone, password string) (string, error)
	calls          int
}

func (s *stubAuthority) Authenticate(ctx context.Context, phone, password string) (string, error) {
	s.calls++
	return s.authenticateFn(ctx, phone, password)
}

type stubThrottle struct {
	blocked  bool
	failures int
	resets   int
}

func (s *stubThrottle) Blocked(ctx context.Context, phone string) (bool, error) {
	return s.blocked, nil
}

func (s *stubThrottle) RecordFailure(ctx context.Context, phone string) error {
	s.failures++
	return nil
}

func (s *stubThrottle) Reset(ctx context.Context, phone string) error {
	s.resets++
	return nil
}

type stubDenylist struct {
	revoked map[string]time.Duration
}

func (s *stubDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if s.revoked == nil {
		s.revoked = make(map[string]time.Duration)
	}
	s.revoked[token] = ttl
	return nil
}

func (s *stubDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	_, ok := s.revoked[token]
	return ok, nil
}

type stubRecorder struct {
	events []domain.AuthEvent
}

func (s *stubRecorder) Record(event domain.AuthEvent) {
	s.events = append(s.events, event)
}

func newTestAuthService(authority *stubAuthority, throttle *stubThrottle, denylist *stubDenylist, recorder *stubRecorder) *AuthService {
	return NewAuthService(authority, throttle, denylist, recorder, time.Hour, zerolog.Nop())
}

func TestAuthService_Login_Success(t *testing.T) {
	authority := &stubAuthority{
		authenticateFn: func(ctx context.Context, phone, password string) (string, error) {
			if phone != "0901234567" || password != "correct" {
				t.Fatalf("unexpected credentials forwarded: %s %s", phone, password)
			}
			return "abc123", nil
		},
	}
	throttle := &stubThrottle{}
	recorder := &stubRecorder{}
	svc := newTestAuthService(authority, throttle, &stubDenylist{}, recorder)

	result, err := svc.Login(context.Background(), ports.LoginInput{Phone: "0901234567", Password: "correct"})
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if result.Token != "abc123" {
		t.Fatalf("unexpected token: %q", result.Token)
	}
	if result.TTL != time.Hour {
		t.Fatalf("unexpected ttl: %v", result.TTL)
	}
	if result.Message != "Đăng nhập thành công" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
	if throttle.resets != 1 {
		t.Fatalf("expected one throttle reset, got %d", throttle.resets)
	}
	if len(recorder.events) != 1 || recorder.events[0].Kind != domain.AuthLoginSuccess {
		t.Fatalf("expected one login_success event, got %+v", recorder.events)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	authority := &stubAuthority{
		authenticateFn: func(ctx context.Context, phone, password string) (string, error) {
			return "abc123", nil
		},
	}
	svc := newTestAuthService(authority, &stubThrottle{}, &stubDenylist{}, &stubRecorder{})

	for _, input := range []ports.LoginInput{
		{Phone: "", Password: "secret"},
		{Phone: "0901234567", Password: ""},
	} {
		if _, err := svc.Login(context.Background(), input); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	}
	// No network call happens for a locally invalid pair.
	if authority.calls != 0 {
		t.Fatalf("authority should not be called, got %d calls", authority.calls)
	}
}

func TestAuthService_Login_Rejected(t *testing.T) {
	authority := &stubAuthority{
		authenticateFn: func(ctx context.Context, phone, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	throttle := &stubThrottle{}
	recorder := &stubRecorder{}
	svc := newTestAuthService(authority, throttle, &stubDenylist{}, recorder)

	_, err := svc.Login(context.Background(), ports.LoginInput{Phone: "0901234567", Password: "wrong"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if throttle.failures != 1 {
		t.Fatalf("expected one recorded failure, got %d", throttle.failures)
	}
	if len(recorder.events) != 1 || recorder.events[0].Kind != domain.AuthLoginFailure {
		t.Fatalf("expected one login_failure event, got %+v", recorder.events)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	authority := &stubAuthority{
		authenticateFn: func(ctx context.Context, phone, password string) (string, error) {
			return "abc123", nil
		},
	}
	recorder := &stubRecorder{}
	svc := newTestAuthService(authority, &stubThrottle{blocked: true}, &stubDenylist{}, recorder)

	_, err := svc.Login(context.Background(), ports.LoginInput{Phone: "0901234567", Password: "correct"})
	if !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
	if authority.calls != 0 {
		t.Fatalf("blocked login must not reach the authority, got %d calls", authority.calls)
	}
	if len(recorder.events) != 1 || recorder.events[0].Kind != domain.AuthLoginBlocked {
		t.Fatalf("expected one login_blocked event, got %+v", recorder.events)
	}
}

func TestAuthService_Login_UpstreamUnavailable(t *testing.T) {
	authority := &stubAuthority{
		authenticateFn: func(ctx context.Context, phone, password string) (string, error) {
			return "", domain.ErrUpstreamUnavailable
		},
	}
	throttle := &stubThrottle{}
	svc := newTestAuthService(authority, throttle, &stubDenylist{}, &stubRecorder{})

	_, err := svc.Login(context.Background(), ports.LoginInput{Phone: "0901234567", Password: "correct"})
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
	// An unreachable backend is not the caller's fault; no throttle penalty.
	if throttle.failures != 0 {
		t.Fatalf("expected no throttle failures, got %d", throttle.failures)
	}
}

func TestAuthService_Login_PlaceholderTokenFromAuthority(t *testing.T) {
	for _, token := range []string{"", "null", "undefined", "   "} {
		authority := &stubAuthority{
			authenticateFn: func(ctx context.Context, phone, password string) (string, error) {
				return token, nil
			},
		}
		svc := newTestAuthService(authority, &stubThrottle{}, &stubDenylist{}, &stubRecorder{})

		_, err := svc.Login(context.Background(), ports.LoginInput{Phone: "0901234567", Password: "correct"})
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("token %q: expected ErrInvalidCredentials, got %v", token, err)
		}
	}
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	denylist := &stubDenylist{}
	recorder := &stubRecorder{}
	svc := newTestAuthService(&stubAuthority{}, &stubThrottle{}, denylist, recorder)

	if err := svc.Logout(context.Background(), "abc123", "10.0.0.1"); err != nil {
		t.Fatalf("logout error: %v", err)
	}
	if _, ok := denylist.revoked["abc123"]; !ok {
		t.Fatalf("token was not revoked")
	}
	if len(recorder.events) != 1 || recorder.events[0].Kind != domain.AuthLogout {
		t.Fatalf("expected one logout event, got %+v", recorder.events)
	}
}

func TestAuthService_Logout_PlaceholderNoop(t *testing.T) {
	denylist := &stubDenylist{}
	svc := newTestAuthService(&stubAuthority{}, &stubThrottle{}, denylist, &stubRecorder{})

	for _, token := range []string{"", "null", "undefined", "  "} {
		if err := svc.Logout(context.Background(), token, ""); err != nil {
			t.Fatalf("logout of %q should be a no-op, got %v", token, err)
		}
	}
	if len(denylist.revoked) != 0 {
		t.Fatalf("placeholder tokens must never reach the denylist: %+v", denylist.revoked)
	}
}

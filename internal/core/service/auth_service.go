package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/nhutty0402/quanly-nhatro/internal/core/domain"
	"github.com/nhutty0402/quanly-nhatro/internal/core/ports"
)

// loginSuccessMessage is the canonical success body relayed to the client.
// The raw token never travels in a response body, only in the cookie.
const loginSuccessMessage = "Đăng nhập thành công"

// LoginThrottle abstracts the per-phone failure counter (Redis).
type LoginThrottle interface {
	Blocked(ctx context.Context, phone string) (bool, error)
	RecordFailure(ctx context.Context, phone string) error
	Reset(ctx context.Context, phone string) error
}

// TokenDenylist abstracts revoked-token storage (Redis). Revoked tokens stay
// listed until their natural cookie expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// AuditRecorder enqueues an audit event; delivery is asynchronous and
// fire-and-forget.
type AuditRecorder interface {
	Record(event domain.AuthEvent)
}

// AuthService implements the login gateway core. It holds no per-session
// state: every call is decided from its arguments and the throttle/denylist
// stores alone.
type AuthService struct {
	authority ports.IdentityAuthority
	throttle  LoginThrottle
	denylist  TokenDenylist
	recorder  AuditRecorder
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	authority ports.IdentityAuthority,
	throttle LoginThrottle,
	denylist TokenDenylist,
	recorder AuditRecorder,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &AuthService{
		authority: authority,
		throttle:  throttle,
		denylist:  denylist,
		recorder:  recorder,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Login forwards the credential pair to the identity authority exactly once.
// No cookie material is produced on any failure path.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.LoginResult, error) {
	if input.Phone == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	blocked, err := s.throttle.Blocked(ctx, input.Phone)
	if err != nil {
		s.log.Warn().Err(err).Str("phone", input.Phone).Msg("throttle check failed, processing anyway")
	} else if blocked {
		s.record(input, domain.AuthLoginBlocked, "throttled")
		return nil, domain.ErrTooManyAttempts
	}

	token, message, err := s.authenticate(ctx, input.Phone, input.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			if thErr := s.throttle.RecordFailure(ctx, input.Phone); thErr != nil {
				s.log.Warn().Err(thErr).Str("phone", input.Phone).Msg("failed to record throttle failure")
			}
			s.record(input, domain.AuthLoginFailure, "rejected")
		} else {
			s.record(input, domain.AuthLoginFailure, "upstream_unavailable")
		}
		return nil, err
	}

	if rsErr := s.throttle.Reset(ctx, input.Phone); rsErr != nil {
		s.log.Warn().Err(rsErr).Str("phone", input.Phone).Msg("failed to reset throttle")
	}
	s.record(input, domain.AuthLoginSuccess, "")

	s.log.Info().Str("phone", input.Phone).Msg("login accepted")

	return &ports.LoginResult{Token: token, TTL: s.tokenTTL, Message: message}, nil
}

// Logout revokes the presented token for its remaining lifetime and clears
// nothing else: absent or placeholder tokens are a no-op success.
func (s *AuthService) Logout(ctx context.Context, token, remoteIP string) error {
	if !domain.ValidToken(token) {
		return nil
	}
	if err := s.denylist.Revoke(ctx, token, s.tokenTTL); err != nil {
		return err
	}
	s.recorder.Record(domain.AuthEvent{
		Kind:      domain.AuthLogout,
		RemoteIP:  remoteIP,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

// authenticate wraps the authority call and enforces the token-presence
// invariant: a "success" with an absent or placeholder token is a rejection.
func (s *AuthService) authenticate(ctx context.Context, phone, password string) (string, string, error) {
	token, err := s.authority.Authenticate(ctx, phone, password)
	if err != nil {
		return "", "", err
	}
	if !domain.ValidToken(token) {
		return "", "", domain.ErrInvalidCredentials
	}
	return token, loginSuccessMessage, nil
}

func (s *AuthService) record(input ports.LoginInput, kind domain.AuthEventKind, reason string) {
	s.recorder.Record(domain.AuthEvent{
		Phone:     input.Phone,
		Kind:      kind,
		Reason:    reason,
		RemoteIP:  input.RemoteIP,
		Timestamp: time.Now().UTC(),
	})
}

package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nhutty0402/quanly-nhatro/internal/api/metrics"
	"github.com/nhutty0402/quanly-nhatro/internal/core/domain"
	"github.com/nhutty0402/quanly-nhatro/internal/session"
)

// RevocationChecker reports whether a token has been denylisted by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// GuardOptions parameterises the session guard.
type GuardOptions struct {
	// CookieName is the session cookie slot. Defaults to session.DefaultCookieName.
	CookieName string
	// Denylist is optional; nil skips revocation checks.
	Denylist RevocationChecker
	Log      zerolog.Logger
}

// SessionGuard enforces the access policy on every request. It is stateless:
// each evaluation reads only the request cookie and the policy table, and the
// sole possible interventions are the two redirects. A token rejected further
// downstream is not the guard's concern.
func SessionGuard(policy domain.AccessPolicy, opts GuardOptions) echo.MiddlewareFunc {
	cookieName := opts.CookieName
	if cookieName == "" {
		cookieName = session.DefaultCookieName
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := session.ReadToken(c.Request(), cookieName)
			authenticated := domain.ValidToken(token)

			if authenticated && opts.Denylist != nil {
				revoked, err := opts.Denylist.IsRevoked(c.Request().Context(), token)
				if err != nil {
					opts.Log.Warn().Err(err).Msg("revocation check failed, treating token as live")
				} else if revoked {
					authenticated = false
				}
			}

			decision := policy.Decide(c.Request().URL.Path, authenticated)
			metrics.GuardDecisionsTotal.WithLabelValues(decision.String()).Inc()

			switch decision {
			case domain.RedirectToLogin:
				return c.Redirect(http.StatusFound, policy.LoginPath)
			case domain.RedirectToHome:
				return c.Redirect(http.StatusFound, policy.HomePath)
			default:
				return next(c)
			}
		}
	}
}

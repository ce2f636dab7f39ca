// Package session owns issuance and clearing of the HttpOnly session cookie.
// The gateway's login handler is the only writer; the route guard is the only
// reader. Page scripts never see the token.
package session

import (
	"net/http"
	"time"
)

// DefaultCookieName matches the slot the web client historically read.
const DefaultCookieName = "token"

// CookieOptions defines how session cookies are issued.
type CookieOptions struct {
	Name     string
	TTL      time.Duration
	Secure   bool
	Path     string
	SameSite http.SameSite
}

// normalize applies safe defaults without breaking callers.
func (o CookieOptions) normalize() CookieOptions {
	if o.Name == "" {
		o.Name = DefaultCookieName
	}
	if o.Path == "" {
		o.Path = "/"
	}
	if o.SameSite == 0 {
		o.SameSite = http.SameSiteLaxMode
	}
	return o
}

// SetCookie issues the session cookie to the client. HttpOnly is
// unconditional; TTL must be finite and positive.
func SetCookie(w http.ResponseWriter, token string, opts CookieOptions) {
	opts = opts.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    token,
		Path:     opts.Path,
		MaxAge:   int(opts.TTL.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

// ClearCookie removes the session cookie from the client.
func ClearCookie(w http.ResponseWriter, opts CookieOptions) {
	opts = opts.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    "",
		Path:     opts.Path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

// ReadToken returns the raw cookie value, or "" when the cookie is absent.
// Validity (placeholders, whitespace) is the caller's concern.
func ReadToken(r *http.Request, name string) string {
	if name == "" {
		name = DefaultCookieName
	}
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

package domain

import "strings"

// Decision is the outcome of evaluating a navigation request against the
// access policy.
type Decision int

const (
	// Allow serves the route as requested.
	Allow Decision = iota
	// RedirectToLogin sends an unauthenticated visitor to the login page.
	RedirectToLogin
	// RedirectToHome sends an authenticated visitor away from the login page.
	RedirectToHome
)

func (d Decision) String() string {
	switch d {
	case RedirectToLogin:
		return "redirect_login"
	case RedirectToHome:
		return "redirect_home"
	default:
		return "allow"
	}
}

// AccessPolicy is the explicit allow/deny table for route protection.
// Membership is plain prefix matching over ordered lists; public prefixes are
// checked first, then the login path, then protected prefixes.
type AccessPolicy struct {
	// LoginPath is where unauthenticated visitors are sent.
	LoginPath string
	// HomePath is the default authenticated landing path.
	HomePath string
	// Public prefixes are always served, regardless of session state.
	Public []string
	// Protected prefixes require a valid session token.
	Protected []string
}

// Decide evaluates a single navigation request. It is pure: the same
// (path, authenticated) pair always yields the same decision.
func (p AccessPolicy) Decide(path string, authenticated bool) Decision {
	for _, prefix := range p.Public {
		if hasPathPrefix(path, prefix) {
			return Allow
		}
	}

	if path == p.LoginPath {
		if authenticated {
			return RedirectToHome
		}
		return Allow
	}

	for _, prefix := range p.Protected {
		if hasPathPrefix(path, prefix) {
			if authenticated {
				return Allow
			}
			return RedirectToLogin
		}
	}

	return Allow
}

// hasPathPrefix matches on path segment boundaries: "/rooms" covers "/rooms"
// and "/rooms/12" but not "/roomsy". The bare "/" prefix covers everything.
func hasPathPrefix(path, prefix string) bool {
	if prefix == "" {
		return false
	}
	if prefix == "/" {
		return true
	}
	prefix = strings.TrimSuffix(prefix, "/")
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}

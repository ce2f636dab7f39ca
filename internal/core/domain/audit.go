package domain

import "time"

// AuthEventKind classifies an entry in the authentication audit trail.
type AuthEventKind string

const (
	AuthLoginSuccess AuthEventKind = "login_success"
	AuthLoginFailure AuthEventKind = "login_failure"
	AuthLoginBlocked AuthEventKind = "login_blocked"
	AuthLogout       AuthEventKind = "logout"
)

// AuthEvent records a single authentication outcome. Credentials never appear
// here; Phone identifies the account, Reason is a short machine-readable tag.
type AuthEvent struct {
	Phone     string        `json:"phone" bson:"phone"`
	Kind      AuthEventKind `json:"kind" bson:"kind"`
	Reason    string        `json:"reason,omitempty" bson:"reason,omitempty"`
	RemoteIP  string        `json:"remote_ip,omitempty" bson:"remote_ip,omitempty"`
	Timestamp time.Time     `json:"timestamp" bson:"timestamp"`
}

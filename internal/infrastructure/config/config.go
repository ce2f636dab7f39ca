package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Identity IdentityConfig
	Session  SessionConfig
	Guard    GuardConfig
	Throttle ThrottleConfig
	Audit    AuditConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

// IdentityConfig selects and parameterises the identity authority.
// Mode "remote" proxies the external backend; mode "local" authenticates
// against the service's own user collection.
type IdentityConfig struct {
	Mode           string        `env:"IDENTITY_MODE,            default=remote"`
	URL            string        `env:"IDENTITY_URL"`
	SuccessMessage string        `env:"IDENTITY_SUCCESS_MESSAGE, default=Đăng nhập thành công"`
	Timeout        time.Duration `env:"IDENTITY_TIMEOUT,         default=10s"`
	JWTSecret      string        `env:"JWT_SECRET"`
	JWTTokenTTL    time.Duration `env:"JWT_TOKEN_TTL,            default=24h"`
}

// SessionConfig controls the session cookie the gateway issues.
type SessionConfig struct {
	CookieName   string        `env:"SESSION_COOKIE_NAME,   default=token"`
	TokenTTL     time.Duration `env:"SESSION_TOKEN_TTL,     default=168h"`
	CookieSecure bool          `env:"SESSION_COOKIE_SECURE, default=false"`
}

// GuardConfig is the route guard's explicit path table. The path lists are
// comma-separated prefixes; parsing happens in ProtectedPrefixes and
// PublicPrefixes so deployments stay auditable from the environment alone.
type GuardConfig struct {
	LoginPath      string `env:"GUARD_LOGIN_PATH,      default=/login"`
	HomePath       string `env:"GUARD_HOME_PATH,       default=/"`
	ProtectedPaths string `env:"GUARD_PROTECTED_PATHS, default=/"`
	PublicPaths    string `env:"GUARD_PUBLIC_PATHS"`
}

// defaultPublicPaths are the service's own unauthenticated surfaces.
var defaultPublicPaths = []string{"/api", "/health", "/metrics", "/swagger"}

func (g GuardConfig) ProtectedPrefixes() []string {
	return splitPaths(g.ProtectedPaths, []string{"/"})
}

func (g GuardConfig) PublicPrefixes() []string {
	return splitPaths(g.PublicPaths, defaultPublicPaths)
}

func splitPaths(raw string, fallback []string) []string {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	parts := strings.Split(raw, ",")
	paths := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// ThrottleConfig bounds consecutive login failures per phone number.
type ThrottleConfig struct {
	MaxFailures int           `env:"THROTTLE_MAX_FAILURES, default=5"`
	Window      time.Duration `env:"THROTTLE_WINDOW,       default=15m"`
}

// AuditConfig sizes the audit dispatcher.
type AuditConfig struct {
	Workers int `env:"AUDIT_WORKERS, default=4"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=nhatro"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

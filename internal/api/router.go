package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/nhutty0402/quanly-nhatro/docs"
	"github.com/nhutty0402/quanly-nhatro/internal/api/handler"
	"github.com/nhutty0402/quanly-nhatro/internal/api/middleware"
	"github.com/nhutty0402/quanly-nhatro/internal/core/domain"
	"github.com/nhutty0402/quanly-nhatro/internal/core/ports"
	"github.com/nhutty0402/quanly-nhatro/internal/core/service"
	"github.com/nhutty0402/quanly-nhatro/internal/infrastructure/config"
	mongodb "github.com/nhutty0402/quanly-nhatro/internal/infrastructure/db/mongo"
	redisdb "github.com/nhutty0402/quanly-nhatro/internal/infrastructure/db/redis"
	"github.com/nhutty0402/quanly-nhatro/internal/infrastructure/identity"
	"github.com/nhutty0402/quanly-nhatro/internal/session"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// recorder is the audit dispatcher started by main; auditSvc serves history
// lookups from the same trail the dispatcher feeds.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, recorder service.AuditRecorder, auditSvc ports.AuditService, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("nhatro"))

	// --- Dependencies ---
	denylist := redisdb.NewTokenDenylist(rdb)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Throttle.MaxFailures, cfg.Throttle.Window)

	var authority ports.IdentityAuthority
	var registrar ports.Registrar
	if cfg.Identity.Mode == "local" {
		local := identity.NewLocalAuthority(mongodb.NewUserRepository(db), cfg.Identity.JWTSecret, cfg.Identity.JWTTokenTTL)
		authority = local
		registrar = local
	} else {
		authority = identity.NewRemoteAuthority(identity.RemoteConfig{
			URL:            cfg.Identity.URL,
			SuccessMessage: cfg.Identity.SuccessMessage,
			Timeout:        cfg.Identity.Timeout,
		}, log)
	}

	authService := service.NewAuthService(authority, throttle, denylist, recorder, cfg.Session.TokenTTL, log)
	authHandler := handler.NewAuthHandler(authService, registrar, session.CookieOptions{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TokenTTL,
		Secure: cfg.Session.CookieSecure,
	})

	roomService := service.NewRoomService(mongodb.NewRoomRepository(db), log)
	roomHandler := handler.NewRoomHandler(roomService)

	// --- Route guard ---
	policy := domain.AccessPolicy{
		LoginPath: cfg.Guard.LoginPath,
		HomePath:  cfg.Guard.HomePath,
		Public:    cfg.Guard.PublicPrefixes(),
		Protected: cfg.Guard.ProtectedPrefixes(),
	}
	e.Use(middleware.SessionGuard(policy, middleware.GuardOptions{
		CookieName: cfg.Session.CookieName,
		Denylist:   denylist,
		Log:        log,
	}))

	// --- Auth gateway ---
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/logout", authHandler.Logout)
	if registrar != nil {
		e.POST("/api/register", authHandler.Register)
	}

	// --- Pages ---
	e.GET(cfg.Guard.HomePath, handler.Home)
	e.GET(cfg.Guard.LoginPath, handler.LoginPage)

	// --- Rooms (guarded) ---
	rooms := e.Group("/rooms")
	rooms.GET("", roomHandler.List)
	rooms.POST("", roomHandler.Create)
	rooms.GET("/:id", roomHandler.Get)
	rooms.PATCH("/:id/status", roomHandler.UpdateStatus)

	// --- Auth history (guarded) ---
	auditHandler := handler.NewAuditHandler(auditSvc)
	e.GET("/audit", auditHandler.Recent)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nhutty0402/quanly-nhatro/internal/api/metrics"
	"github.com/nhutty0402/quanly-nhatro/internal/core/domain"
	"github.com/nhutty0402/quanly-nhatro/internal/core/ports"
	"github.com/nhutty0402/quanly-nhatro/internal/session"
)

// AuthHandler is the HTTP surface of the login gateway.
type AuthHandler struct {
	authService ports.AuthService
	registrar   ports.Registrar
	cookie      session.CookieOptions
}

// NewAuthHandler creates an AuthHandler. registrar may be nil when the
// service runs against the remote identity backend; the register route is
// only mounted in local mode.
func NewAuthHandler(authService ports.AuthService, registrar ports.Registrar, cookie session.CookieOptions) *AuthHandler {
	return &AuthHandler{authService: authService, registrar: registrar, cookie: cookie}
}

// Login authenticates a credential pair and establishes the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Phone:    req.Phone,
		Password: req.Password,
		RemoteIP: c.RealIP(),
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResultLabel(err)).Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	opts := h.cookie
	opts.TTL = result.TTL
	opts.Secure = opts.Secure || c.IsTLS()
	session.SetCookie(c.Response(), result.Token, opts)

	return c.JSON(http.StatusOK, messageResponse{Message: result.Message})
}

// Logout revokes the presented session and clears the cookie. Idempotent:
// callers without a live session still get a 200.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := session.ReadToken(c.Request(), h.cookie.Name)
	if err := h.authService.Logout(c.Request().Context(), token, c.RealIP()); err != nil {
		return err
	}

	opts := h.cookie
	opts.Secure = opts.Secure || c.IsTLS()
	session.ClearCookie(c.Response(), opts)

	return c.JSON(http.StatusOK, messageResponse{Message: "Đã đăng xuất"})
}

// Register creates a local account. Mounted only in local identity mode.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.registrar.Register(c.Request().Context(), req.Phone, req.Password, req.FullName)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

func loginResultLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "throttled"
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return "upstream_error"
	default:
		return "rejected"
	}
}

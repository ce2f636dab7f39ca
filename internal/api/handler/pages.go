package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Home serves the authenticated landing path. The SPA shell owns the real
// UI; this endpoint exists so the guard's home redirect lands somewhere.
func Home(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"app":     "Quản lý Nhà trọ",
		"message": "Xin chào",
	})
}

// LoginPage serves the login path for unauthenticated visitors.
func LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Vui lòng đăng nhập",
	})
}

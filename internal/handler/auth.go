// Package handler implements the HTTP surface of the workshop tracker:
// login/logout for the five role accounts, the vehicle mutation API and the
// option-list management endpoints.
package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/vehicle-workshop/internal/config"
	"github.com/iliyamo/vehicle-workshop/internal/repository"
	"github.com/iliyamo/vehicle-workshop/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Accounts *repository.AccountRepo
}

func NewAuthHandler(cfg config.Config, accounts *repository.AccountRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Accounts: accounts}
}

type loginReq struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Login verifies a username/password pair against the static account table
// and, on success, sets the session cookie carrying the signed role token.
// The login page posts a form; curl and the tests post JSON - Bind accepts
// both.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}
	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)
	if username == "" || password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "username/password required"})
	}

	role, err := h.Accounts.Verify(username, password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Invalid username or password"})
	}

	token, err := utils.NewSessionToken(h.Cfg.SessionSecret, role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "issue session failed"})
	}
	c.SetCookie(&http.Cookie{
		Name:     utils.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"success": true, "role": role})
}

// Logout clears the session cookie unconditionally and sends the client
// back to the login surface. There is no server-side state to revoke.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     utils.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusFound, "/")
}

// Me reports the role of the current session; the pages use it to decide
// which surface to render after a reload.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"role": c.Get("role")})
}

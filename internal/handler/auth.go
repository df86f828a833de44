package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skalette/reservations/internal/config"
	"github.com/skalette/reservations/internal/utils"
)

// AuthHandler implements the admin login. There is a single shared
// password for the restaurant staff; a successful check issues a
// short-lived session token for the management endpoints.
type AuthHandler struct {
	Cfg config.Config
}

func NewAuthHandler(cfg config.Config) *AuthHandler {
	return &AuthHandler{Cfg: cfg}
}

type loginReq struct {
	Password string `json:"password"`
}

// Login handles POST /v1/auth/login. It verifies the admin password
// and returns {success, token}; a wrong password gets a 401 with
// success set to false.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}
	if req.Password == "" || !utils.CheckAdminPassword(h.Cfg.AdminPassword, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "password errata"})
	}
	tok, err := utils.NewAdminToken(h.Cfg.JWTSecret, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "token issue failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"token":   tok.Token,
		"expires": tok.Exp,
	})
}

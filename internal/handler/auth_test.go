package handler

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skalette/reservations/internal/config"
)

func testAuthHandler() *AuthHandler {
	return NewAuthHandler(config.Config{
		JWTSecret:     "test-secret",
		AccessTTLMin:  15,
		AdminPassword: "skalette2026",
	})
}

func TestLoginSuccess(t *testing.T) {
	h := testAuthHandler()
	e := echo.New()

	rec, c := doJSON(t, e, http.MethodPost, "/v1/auth/login", `{"password": "skalette2026"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	h := testAuthHandler()
	e := echo.New()

	rec, c := doJSON(t, e, http.MethodPost, "/v1/auth/login", `{"password": "guess"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "password errata", body["message"])
}

func TestLoginEmptyPassword(t *testing.T) {
	h := testAuthHandler()
	e := echo.New()

	rec, c := doJSON(t, e, http.MethodPost, "/v1/auth/login", `{}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

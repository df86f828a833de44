package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skalette/reservations/internal/model"
)

// GetTables handles GET /v1/tables. It serves the static floor plan so
// the booking form can filter tables by party size. Seat limits are
// informational only; the server does not enforce them.
func GetTables(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"tables": model.Tables})
}

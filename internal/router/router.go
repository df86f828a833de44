// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/skalette/reservations/internal/handler"
	"github.com/skalette/reservations/internal/middleware"
	"github.com/skalette/reservations/internal/utils"
)

// RegisterRoutes registers routes that carry no dependencies. Currently
// it exposes only the health check used by load balancers and uptime
// monitors.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the guest-facing endpoints: the static
// table catalogue, the availability read behind the response cache,
// the booking submission behind the rate limiter, and the admin login.
// None of these require a session.
func RegisterPublic(e *echo.Echo, a *handler.AuthHandler, r *handler.ReservationHandler, av *handler.AvailabilityHandler, cache, limiter echo.MiddlewareFunc) {
	e.GET("/v1/tables", handler.GetTables)
	e.GET("/v1/availability", av.Get, cache)
	e.POST("/v1/reservations", r.Create, limiter)
	e.POST("/v1/auth/login", a.Login)
}

// RegisterAdmin registers the staff endpoints under the same /v1
// prefix, guarded by JWT validation and the ADMIN role: the full
// reservation list, status transitions, and both forms of availability
// editing.
func RegisterAdmin(e *echo.Echo, r *handler.ReservationHandler, av *handler.AvailabilityHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(utils.AdminRole))

	g.GET("/reservations", r.List)
	g.PATCH("/reservations/:id", r.Update)
	g.POST("/availability/slots", av.Mutate)
	g.PUT("/availability", av.Replace)
}

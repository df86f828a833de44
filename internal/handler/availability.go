package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skalette/reservations/internal/booking"
	"github.com/skalette/reservations/internal/model"
)

// AvailabilityHandler exposes the blocked-slot set: the public read the
// booking form polls, and the admin's targeted and whole-grid edits.
type AvailabilityHandler struct {
	Avail *booking.Availability
	Log   zerolog.Logger
}

func NewAvailabilityHandler(avail *booking.Availability, log zerolog.Logger) *AvailabilityHandler {
	if avail == nil {
		panic("nil availability passed to NewAvailabilityHandler")
	}
	return &AvailabilityHandler{
		Avail: avail,
		Log:   log.With().Str("handler", "availability").Logger(),
	}
}

// Get handles GET /v1/availability. The booking form renders occupied
// cells from this set; a backend failure degrades to an empty list so
// the form stays usable rather than erroring the whole page.
func (h *AvailabilityHandler) Get(c echo.Context) error {
	slots, err := h.Avail.ListAll(c.Request().Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("read blocked slots failed")
		slots = []model.BlockedSlot{}
	}
	return c.JSON(http.StatusOK, echo.Map{"blockedSlots": slots})
}

type mutateSlotReq struct {
	Action  string `json:"action"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	TableID string `json:"tableId"`
}

// Mutate handles POST /v1/availability/slots, the targeted block or
// unblock an admin performs for phone bookings and walk-ins. Both
// directions are idempotent.
func (h *AvailabilityHandler) Mutate(c echo.Context) error {
	var req mutateSlotReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Date == "" || req.Time == "" || req.TableID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date, time and tableId are required"})
	}

	ctx := c.Request().Context()
	var err error
	switch req.Action {
	case "block":
		err = h.Avail.Block(ctx, req.Date, req.Time, req.TableID)
	case "unblock":
		err = h.Avail.Unblock(ctx, req.Date, req.Time, req.TableID)
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "action must be block or unblock"})
	}
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": verr.Error()})
		}
		h.Log.Error().Err(err).Str("action", req.Action).Msg("mutate slot failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save availability"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

type replaceReq struct {
	BlockedSlots []model.BlockedSlot `json:"blockedSlots"`
}

// Replace handles PUT /v1/availability, the whole-grid admin edit.
// After the call the blocked-slot set reflects exactly the submitted
// grid.
func (h *AvailabilityHandler) Replace(c echo.Context) error {
	var req replaceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.BlockedSlots == nil {
		req.BlockedSlots = []model.BlockedSlot{}
	}
	if err := h.Avail.Replace(c.Request().Context(), req.BlockedSlots); err != nil {
		h.Log.Error().Err(err).Msg("replace availability failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save availability"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

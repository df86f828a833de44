package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skalette/reservations/internal/booking"
	"github.com/skalette/reservations/internal/model"
	"github.com/skalette/reservations/internal/queue"
	"github.com/skalette/reservations/internal/repository"
	"github.com/skalette/reservations/internal/service"
)

// ReservationHandler exposes the ledger over HTTP: guest-facing
// creation and the admin's list/transition endpoints. Confirmations
// additionally publish an event to the broker; a publish failure is
// logged and never fails the transition.
type ReservationHandler struct {
	Ledger    *booking.Ledger
	Publisher *service.Publisher
	Log       zerolog.Logger
}

// NewReservationHandler constructs the handler. Publisher may be nil
// when no broker is configured.
func NewReservationHandler(ledger *booking.Ledger, pub *service.Publisher, log zerolog.Logger) *ReservationHandler {
	if ledger == nil {
		panic("nil ledger passed to NewReservationHandler")
	}
	return &ReservationHandler{
		Ledger:    ledger,
		Publisher: pub,
		Log:       log.With().Str("handler", "reservation").Logger(),
	}
}

// List handles GET /v1/reservations. It returns every reservation in
// storage order; the admin panel sorts by timestamp client-side. A
// backend read failure degrades to an empty list so the panel still
// renders.
func (h *ReservationHandler) List(c echo.Context) error {
	all, err := h.Ledger.ListAll(c.Request().Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("list reservations failed")
		all = []model.Reservation{}
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": all})
}

// Create handles POST /v1/reservations. Outcomes:
//
//	400 – required fields missing, with the field list.
//	200 – the requested slot overlaps an active reservation and the
//	      guest has not acknowledged it; body carries the warning.
//	201 – reservation stored in pending status.
func (h *ReservationHandler) Create(c echo.Context) error {
	var in booking.CreateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	res, conflict, err := h.Ledger.Create(c.Request().Context(), in)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error":  "campi obbligatori mancanti",
				"fields": verr.Fields,
			})
		}
		h.Log.Error().Err(err).Msg("create reservation failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create reservation"})
	}
	if conflict != nil {
		return c.JSON(http.StatusOK, echo.Map{
			"warning":        true,
			"availableUntil": conflict.AvailableUntil,
			"message":        fmt.Sprintf("Questo tavolo è disponibile fino alle %s. Vuoi procedere comunque?", conflict.AvailableUntil),
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success":     true,
		"reservation": res,
	})
}

type updateReq struct {
	Status string `json:"status"`
	Action string `json:"action"`
}

// Update handles PATCH /v1/reservations/:id. The body names either an
// action (confirm, reject, cancel, complete) or a target status; both
// are dispatched through the same transition command, with action
// taking precedence. Responds 404 for an unknown id and 409 for a
// transition that is not legal from the current status.
func (h *ReservationHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	var req updateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	var cmd booking.Command
	var err error
	switch {
	case req.Action != "":
		cmd, err = booking.ParseCommand(req.Action)
	case req.Status != "":
		cmd, err = booking.CommandForStatus(model.Status(req.Status))
	default:
		err = errors.New("one of action or status is required")
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	res, err := h.Ledger.Apply(c.Request().Context(), id, cmd)
	if err != nil {
		var serr *booking.StateError
		switch {
		case errors.Is(err, repository.ErrReservationNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "prenotazione non trovata"})
		case errors.As(err, &serr):
			return c.JSON(http.StatusConflict, echo.Map{"error": serr.Error()})
		}
		h.Log.Error().Err(err).Str("id", id).Msg("update reservation failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update reservation"})
	}

	if cmd == booking.CommandConfirm && h.Publisher != nil {
		ev := queue.ReservationConfirmedEvent{
			ReservationID: res.ID,
			Date:          res.Date,
			Time:          res.Time,
			TableID:       res.TableID,
			Guests:        res.Guests,
			GuestName:     res.FirstName + " " + res.LastName,
			Phone:         res.Phone,
			ServiceType:   string(res.ServiceType),
			DurationHours: res.Duration,
			ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
		}
		if t, ok := model.TableByID(res.TableID); ok {
			ev.TableName = t.Name
		}
		_ = h.Publisher.PublishReservationConfirmed(c.Request().Context(), ev)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"reservation": res,
	})
}

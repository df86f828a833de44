package handler

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skalette/reservations/internal/booking"
	"github.com/skalette/reservations/internal/repository"
)

func newTestAvailabilityHandler(t *testing.T) *AvailabilityHandler {
	t.Helper()
	store, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewAvailabilityHandler(booking.NewAvailability(store, zerolog.Nop()), zerolog.Nop())
}

func TestAvailabilityGetEmpty(t *testing.T) {
	h := newTestAvailabilityHandler(t)
	e := echo.New()

	rec, c := doJSON(t, e, http.MethodGet, "/v1/availability", "")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody(t, rec)["blockedSlots"])
}

func TestAvailabilityBlockThenGet(t *testing.T) {
	h := newTestAvailabilityHandler(t)
	e := echo.New()

	rec, c := doJSON(t, e, http.MethodPost, "/v1/availability/slots",
		`{"action": "block", "date": "2026-09-12", "time": "20:00", "tableId": "S1"}`)
	require.NoError(t, h.Mutate(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, c = doJSON(t, e, http.MethodGet, "/v1/availability", "")
	require.NoError(t, h.Get(c))
	slots := decodeBody(t, rec)["blockedSlots"].([]any)
	require.Len(t, slots, 1)
	slot := slots[0].(map[string]any)
	assert.Equal(t, "S1", slot["tableId"])
	// A manual block carries no reservation tag.
	assert.NotContains(t, slot, "reservationId")
}

func TestAvailabilityUnblock(t *testing.T) {
	h := newTestAvailabilityHandler(t)
	e := echo.New()

	rec, c := doJSON(t, e, http.MethodPost, "/v1/availability/slots",
		`{"action": "block", "date": "2026-09-12", "time": "20:00", "tableId": "S1"}`)
	require.NoError(t, h.Mutate(c))
	require.Equal(t, http.StatusOK, rec.Code)

	rec, c = doJSON(t, e, http.MethodPost, "/v1/availability/slots",
		`{"action": "unblock", "date": "2026-09-12", "time": "20:00", "tableId": "S1"}`)
	require.NoError(t, h.Mutate(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, c = doJSON(t, e, http.MethodGet, "/v1/availability", "")
	require.NoError(t, h.Get(c))
	assert.Empty(t, decodeBody(t, rec)["blockedSlots"])
}

func TestAvailabilityMutateValidation(t *testing.T) {
	h := newTestAvailabilityHandler(t)
	e := echo.New()

	// Missing triple fields.
	rec, c := doJSON(t, e, http.MethodPost, "/v1/availability/slots",
		`{"action": "block", "date": "2026-09-12"}`)
	require.NoError(t, h.Mutate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown action.
	rec, c = doJSON(t, e, http.MethodPost, "/v1/availability/slots",
		`{"action": "toggle", "date": "2026-09-12", "time": "20:00", "tableId": "S1"}`)
	require.NoError(t, h.Mutate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Malformed time.
	rec, c = doJSON(t, e, http.MethodPost, "/v1/availability/slots",
		`{"action": "block", "date": "2026-09-12", "time": "25:00", "tableId": "S1"}`)
	require.NoError(t, h.Mutate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAvailabilityReplace(t *testing.T) {
	h := newTestAvailabilityHandler(t)
	e := echo.New()

	rec, c := doJSON(t, e, http.MethodPut, "/v1/availability",
		`{"blockedSlots": [
			{"date": "2026-09-12", "time": "20:00", "tableId": "S1"},
			{"date": "2026-09-12", "time": "20:30", "tableId": "S1"}
		]}`)
	require.NoError(t, h.Replace(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, c = doJSON(t, e, http.MethodGet, "/v1/availability", "")
	require.NoError(t, h.Get(c))
	assert.Len(t, decodeBody(t, rec)["blockedSlots"], 2)

	// A null grid clears everything.
	rec, c = doJSON(t, e, http.MethodPut, "/v1/availability", `{"blockedSlots": null}`)
	require.NoError(t, h.Replace(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, c = doJSON(t, e, http.MethodGet, "/v1/availability", "")
	require.NoError(t, h.Get(c))
	assert.Empty(t, decodeBody(t, rec)["blockedSlots"])
}

func TestGetTables(t *testing.T) {
	e := echo.New()
	rec, c := doJSON(t, e, http.MethodGet, "/v1/tables", "")
	require.NoError(t, GetTables(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["tables"], 11)
}

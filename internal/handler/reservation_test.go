package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skalette/reservations/internal/booking"
	"github.com/skalette/reservations/internal/repository"
)

func newTestReservationHandler(t *testing.T) *ReservationHandler {
	t.Helper()
	store, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	ledger := booking.NewLedger(store, zerolog.Nop())
	return NewReservationHandler(ledger, nil, zerolog.Nop())
}

func doJSON(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

const createBody = `{
	"date": "2026-09-12", "time": "20:00", "tableId": "S1", "guests": 2,
	"firstName": "Giulia", "lastName": "Rossi", "phone": "+39 333 1234567",
	"serviceType": "cena"
}`

func TestReservationCreate(t *testing.T) {
	h := newTestReservationHandler(t)
	e := echo.New()

	rec, c := doJSON(t, e, http.MethodPost, "/v1/reservations", createBody)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	res := body["reservation"].(map[string]any)
	assert.Equal(t, "pending", res["status"])
	assert.True(t, strings.HasPrefix(res["id"].(string), "RES-"))
}

func TestReservationCreateMissingFields(t *testing.T) {
	h := newTestReservationHandler(t)
	e := echo.New()

	rec, c := doJSON(t, e, http.MethodPost, "/v1/reservations",
		`{"date": "2026-09-12", "time": "20:00"}`)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "campi obbligatori mancanti", body["error"])
	fields := body["fields"].([]any)
	assert.Contains(t, fields, "tableId")
	assert.Contains(t, fields, "phone")
}

func TestReservationCreateConflictWarning(t *testing.T) {
	h := newTestReservationHandler(t)
	e := echo.New()

	rec, c := doJSON(t, e, http.MethodPost, "/v1/reservations", createBody)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// Same table, overlapping window: the guest gets a warning, not a
	// reservation.
	overlapping := strings.Replace(createBody, `"time": "20:00"`, `"time": "21:00"`, 1)
	rec, c = doJSON(t, e, http.MethodPost, "/v1/reservations", overlapping)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["warning"])
	assert.Equal(t, "20:00", body["availableUntil"])
	assert.Contains(t, body["message"], "20:00")

	// Acknowledging the warning stores the reservation.
	override := strings.Replace(overlapping, `"serviceType": "cena"`,
		`"serviceType": "cena", "confirmOverlap": true`, 1)
	rec, c = doJSON(t, e, http.MethodPost, "/v1/reservations", override)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestReservationList(t *testing.T) {
	h := newTestReservationHandler(t)
	e := echo.New()

	rec, c := doJSON(t, e, http.MethodGet, "/v1/reservations", "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Empty(t, body["reservations"])

	rec, c = doJSON(t, e, http.MethodPost, "/v1/reservations", createBody)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, c = doJSON(t, e, http.MethodGet, "/v1/reservations", "")
	require.NoError(t, h.List(c))
	body = decodeBody(t, rec)
	assert.Len(t, body["reservations"], 1)
}

func createOne(t *testing.T, h *ReservationHandler, e *echo.Echo) string {
	t.Helper()
	rec, c := doJSON(t, e, http.MethodPost, "/v1/reservations", createBody)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	res := decodeBody(t, rec)["reservation"].(map[string]any)
	return res["id"].(string)
}

func TestReservationUpdateConfirm(t *testing.T) {
	h := newTestReservationHandler(t)
	e := echo.New()
	id := createOne(t, h, e)

	rec, c := doJSON(t, e, http.MethodPatch, "/v1/reservations/"+id, `{"action": "confirm"}`)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	res := decodeBody(t, rec)["reservation"].(map[string]any)
	assert.Equal(t, "confirmed", res["status"])
}

func TestReservationUpdateByTargetStatus(t *testing.T) {
	h := newTestReservationHandler(t)
	e := echo.New()
	id := createOne(t, h, e)

	// Legacy clients send the target status instead of an action.
	rec, c := doJSON(t, e, http.MethodPatch, "/v1/reservations/"+id, `{"status": "rejected"}`)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	res := decodeBody(t, rec)["reservation"].(map[string]any)
	assert.Equal(t, "rejected", res["status"])
}

func TestReservationUpdateUnknownID(t *testing.T) {
	h := newTestReservationHandler(t)
	e := echo.New()

	rec, c := doJSON(t, e, http.MethodPatch, "/v1/reservations/RES-missing", `{"action": "confirm"}`)
	c.SetParamNames("id")
	c.SetParamValues("RES-missing")
	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "prenotazione non trovata", decodeBody(t, rec)["error"])
}

func TestReservationUpdateIllegalTransition(t *testing.T) {
	h := newTestReservationHandler(t)
	e := echo.New()
	id := createOne(t, h, e)

	// Completing a pending reservation is not a legal edge.
	rec, c := doJSON(t, e, http.MethodPatch, "/v1/reservations/"+id, `{"action": "complete"}`)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestReservationUpdateBadAction(t *testing.T) {
	h := newTestReservationHandler(t)
	e := echo.New()
	id := createOne(t, h, e)

	rec, c := doJSON(t, e, http.MethodPatch, "/v1/reservations/"+id, `{"action": "approve"}`)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, c = doJSON(t, e, http.MethodPatch, "/v1/reservations/"+id, `{}`)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

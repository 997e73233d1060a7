package start_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CourtEase-BookingService/internal/api/handlers"
	"github.com/m04kA/CourtEase-BookingService/internal/api/middleware"
	midtransClient "github.com/m04kA/CourtEase-BookingService/internal/integrations/midtrans"
	startBooking "github.com/m04kA/CourtEase-BookingService/internal/usecase/start_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp    *startBooking.Response
	err     error
	lastReq *startBooking.Request
}

func (u *fakeUseCase) Execute(_ context.Context, req *startBooking.Request) (*startBooking.Response, error) {
	u.lastReq = req
	if u.err != nil {
		return nil, u.err
	}
	return u.resp, nil
}

func newAuthedRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set(middleware.HeaderUserID, "7")
	req.Header.Set(middleware.HeaderUserEmail, "user@example.com")
	return req
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	wrapped := middleware.Auth(nopLogger{})(http.HandlerFunc(h.Handle))
	wrapped.ServeHTTP(rec, req)
	return rec
}

func validBody() string {
	return `{"courtId":3,"startTime":"2026-09-15T10:00:00Z","endTime":"2026-09-15T12:00:00Z"}`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handlers.ErrorResponse {
	t.Helper()
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandler_Success(t *testing.T) {
	expiresAt := time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &startBooking.Response{
		BookingID:     42,
		CourtID:       3,
		StartTime:     time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC),
		PriceTotal:    400000,
		Status:        "pending",
		PaymentStatus: "pending",
		Payment: startBooking.Payment{
			Token:     "snap-token",
			ExpiresAt: expiresAt,
		},
	}}

	h := NewHandler(uc, nopLogger{})
	rec := serve(h, newAuthedRequest(validBody()))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "snap-token", resp.Payment.Token)

	// Идентификатор пользователя берётся из заголовков, а не из тела
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(7), uc.lastReq.UserID)
	assert.Equal(t, "user@example.com", uc.lastReq.UserEmail)
}

func TestHandler_MissingAuthHeader(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody()))
	rec := serve(h, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, handlers.CodeUnauthorized, decodeError(t, rec).Code)
}

func TestHandler_InvalidBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})
	rec := serve(h, newAuthedRequest(`{not json`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, handlers.CodeInvalidRequest, decodeError(t, rec).Code)
}

func TestHandler_InvalidTimeFormat(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})
	rec := serve(h, newAuthedRequest(`{"courtId":3,"startTime":"2026-09-15","endTime":"2026-09-15T12:00:00Z"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, handlers.CodeInvalidDate, decodeError(t, rec).Code)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"slot conflict", startBooking.ErrSlotNotAvailable, http.StatusConflict, handlers.CodeSlotConflict},
		{"court not found", startBooking.ErrCourtNotFound, http.StatusNotFound, handlers.CodeCourtNotFound},
		{"past date", startBooking.ErrPastDate, http.StatusBadRequest, handlers.CodePastDate},
		{"future date limit", startBooking.ErrFutureDateLimit, http.StatusBadRequest, handlers.CodeFutureDateLimit},
		{"invalid date range", startBooking.ErrInvalidDateRange, http.StatusBadRequest, handlers.CodeInvalidDateRange},
		{"duration limit", startBooking.ErrDurationLimit, http.StatusBadRequest, handlers.CodeDurationLimit},
		{"price not configured", startBooking.ErrPriceNotConfigured, http.StatusBadRequest, handlers.CodePriceNotConfigured},
		{"booking creation failed", startBooking.ErrBookingCreationFailed, http.StatusInternalServerError, handlers.CodeBookingCreationFailed},
		{"payment initiation failed", startBooking.ErrPaymentInitiationFailed, http.StatusBadGateway, handlers.CodePaymentInitiationFailed},
		{"unknown error", fmt.Errorf("boom"), http.StatusInternalServerError, handlers.CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})
			rec := serve(h, newAuthedRequest(validBody()))

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestHandler_GatewayMessagePreferred(t *testing.T) {
	gatewayErr := &midtransClient.GatewayError{StatusCode: 402, Message: "insufficient merchant balance"}
	wrapped := fmt.Errorf("%w: %w", startBooking.ErrPaymentInitiationFailed, gatewayErr)

	h := NewHandler(&fakeUseCase{err: wrapped}, nopLogger{})
	rec := serve(h, newAuthedRequest(validBody()))

	require.Equal(t, http.StatusBadGateway, rec.Code)

	resp := decodeError(t, rec)
	assert.Equal(t, handlers.CodePaymentInitiationFailed, resp.Code)
	assert.Equal(t, "insufficient merchant balance", resp.Error)
}

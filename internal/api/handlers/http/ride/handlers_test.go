package ride_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"

	"github.com/Availableperson/nexa/internal/api/handlers/http/ride"
	mock_ride "github.com/Availableperson/nexa/internal/api/handlers/http/ride/mocks"
	"github.com/Availableperson/nexa/internal/domain"
	"github.com/Availableperson/nexa/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func f64(v float64) *float64 { return &v }

func TestSubmitRide_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_ride.NewMockRideSubmitter(ctrl)
	h := ride.NewHandler(newTestLogger(), svc)

	reqBody := `{"destination":"Invalid Street","latitude":55.75,"longitude":37.61}`
	req := httptest.NewRequest(http.MethodPost, "/ride", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	wantReq := domain.RideRequest{
		Destination: "Invalid Street",
		Latitude:    f64(55.75),
		Longitude:   f64(37.61),
	}
	wantResp := domain.RideAccepted{
		Status:    "ok",
		Message:   "✅ Заявка принята",
		RequestID: "11111111-1111-1111-1111-111111111111",
	}

	svc.EXPECT().
		SubmitRide(gomock.Any(), wantReq).
		Return(wantResp, nil).
		Times(1)

	h.SubmitRide(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.RideAccepted](t, rr)
	if got != wantResp {
		t.Fatalf("unexpected response: got=%+v want=%+v", got, wantResp)
	}
}

func TestSubmitRide_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_ride.NewMockRideSubmitter(ctrl)
	h := ride.NewHandler(newTestLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/ride", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.SubmitRide(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.ErrorResponse](t, rr)
	if got.Status != "error" {
		t.Fatalf("expected error status, got %+v", got)
	}
}

func TestSubmitRide_EmptyBody_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_ride.NewMockRideSubmitter(ctrl)
	h := ride.NewHandler(newTestLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/ride", nil)
	rr := httptest.NewRecorder()

	h.SubmitRide(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestSubmitRide_NullLatitude_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_ride.NewMockRideSubmitter(ctrl)
	h := ride.NewHandler(newTestLogger(), svc)

	reqBody := `{"destination":"X","latitude":null,"longitude":37.61}`
	req := httptest.NewRequest(http.MethodPost, "/ride", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	wantReq := domain.RideRequest{
		Destination: "X",
		Longitude:   f64(37.61),
	}

	svc.EXPECT().
		SubmitRide(gomock.Any(), wantReq).
		Return(domain.RideAccepted{}, e.ErrMissingCoordinates).
		Times(1)

	h.SubmitRide(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.ErrorResponse](t, rr)
	if got.Status != "error" {
		t.Fatalf("expected error status, got %+v", got)
	}
}

func TestSubmitRide_EmptyDestination_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_ride.NewMockRideSubmitter(ctrl)
	h := ride.NewHandler(newTestLogger(), svc)

	reqBody := `{"destination":"","latitude":55.75,"longitude":37.61}`
	req := httptest.NewRequest(http.MethodPost, "/ride", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	wantReq := domain.RideRequest{
		Destination: "",
		Latitude:    f64(55.75),
		Longitude:   f64(37.61),
	}

	svc.EXPECT().
		SubmitRide(gomock.Any(), wantReq).
		Return(domain.RideAccepted{}, e.ErrEmptyDestination).
		Times(1)

	h.SubmitRide(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestSubmitRide_DispatchFailure_500_GenericMessage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_ride.NewMockRideSubmitter(ctrl)
	h := ride.NewHandler(newTestLogger(), svc)

	reqBody := `{"destination":"X","latitude":55.75,"longitude":37.61}`
	req := httptest.NewRequest(http.MethodPost, "/ride", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	svc.EXPECT().
		SubmitRide(gomock.Any(), gomock.Any()).
		Return(domain.RideAccepted{}, errors.New("telegram: 502 Bad Gateway")).
		Times(1)

	h.SubmitRide(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d body=%s", http.StatusInternalServerError, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.ErrorResponse](t, rr)
	if got.Status != "error" {
		t.Fatalf("expected error status, got %+v", got)
	}
	if strings.Contains(got.Message, "502") || strings.Contains(got.Message, "telegram") {
		t.Fatalf("raw downstream error leaked to caller: %q", got.Message)
	}
}

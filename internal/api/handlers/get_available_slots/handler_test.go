package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	availableSlots "github.com/m04kA/Salon-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

type stubUseCase struct {
	resp *availableSlots.Response
	err  error
	got  *availableSlots.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *availableSlots.Request) (*availableSlots.Response, error) {
	s.got = req
	return s.resp, s.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newRouter(uc *stubUseCase) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/sub-services/{id}/available-slots", NewHandler(uc, noopLogger{}).Handle).Methods(http.MethodGet)
	return router
}

func TestHandle_ReturnsSlots(t *testing.T) {
	subID := uuid.New()
	uc := &stubUseCase{
		resp: &availableSlots.Response{
			SubServiceID:    subID,
			SubServiceName:  "Box Braids",
			DurationMinutes: 45,
			Date:            time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
			Slots:           []types.TimeString{"07:00", "07:30"},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sub-services/"+subID.String()+"/available-slots?date=2026-09-03", nil)
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, subID, body.SubServiceID)
	assert.Equal(t, "2026-09-03", body.Date)
	assert.Equal(t, []string{"07:00", "07:30"}, body.Slots)

	require.NotNil(t, uc.got)
	assert.Equal(t, subID, uc.got.SubServiceID)
}

func TestHandle_InvalidSubServiceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sub-services/not-a-uuid/available-slots?date=2026-09-03", nil)
	rec := httptest.NewRecorder()
	newRouter(&stubUseCase{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MissingDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sub-services/"+uuid.NewString()+"/available-slots", nil)
	rec := httptest.NewRecorder()
	newRouter(&stubUseCase{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_SubServiceNotFound(t *testing.T) {
	uc := &stubUseCase{err: availableSlots.ErrSubServiceNotFound}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sub-services/"+uuid.NewString()+"/available-slots?date=2026-09-03", nil)
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"medibook/models"
	"medibook/services/booking"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionService struct {
	session      *models.BookingSession
	updateErr    error
	confirmErr   error
	availability models.AvailabilityResult
}

func (f *fakeSessionService) StartSession(ctx context.Context, patient models.PatientDetails) (*models.BookingSession, error) {
	return f.session, nil
}

func (f *fakeSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	if f.session == nil || f.session.SessionID != sessionID {
		return nil, booking.ErrSessionNotFound
	}
	return f.session, nil
}

func (f *fakeSessionService) UpdateSelection(ctx context.Context, sessionID string, sel models.BookingSelection) (*models.BookingSession, error) {
	return f.session, f.updateErr
}

func (f *fakeSessionService) SelectTime(ctx context.Context, sessionID, timeText string) (*models.BookingSession, error) {
	return f.session, nil
}

func (f *fakeSessionService) ConfirmBooking(ctx context.Context, sessionID string, patient models.PatientDetails) (*models.BookingSession, error) {
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	return f.session, nil
}

func (f *fakeSessionService) CancelSession(ctx context.Context, sessionID string) error {
	return nil
}

func (f *fakeSessionService) ComputeAvailability(ctx context.Context, sel models.BookingSelection) (models.AvailabilityResult, error) {
	return f.availability, nil
}

func (f *fakeSessionService) VerifyPayment(ctx context.Context, v models.PaymentVerification) error {
	return nil
}

type fakeDoctors struct{}

func (fakeDoctors) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return []models.Doctor{{ID: "doc1", Name: "Dr. Rao"}}, nil
}

type fakePolicies struct{}

func (fakePolicies) ListPolicies(ctx context.Context) ([]models.PolicySection, error) {
	return []models.PolicySection{{ID: "sec1", Title: "Data we collect"}}, nil
}

func newTestRouter(svc booking.SessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc, fakeDoctors{}, fakePolicies{}, utils.GetLogger())
	r.GET("/api/booking/doctors", h.ListDoctors)
	r.GET("/api/booking/policies", h.GetPolicies)
	r.GET("/api/booking/session/:sessionID", h.GetSession)
	r.PUT("/api/booking/session/:sessionID/selection", h.UpdateSelection)
	r.POST("/api/booking/session/:sessionID/confirm", h.Confirm)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reader).Encode(body))
	}
	req := httptest.NewRequest(method, path, &reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionFixture() *models.BookingSession {
	return &models.BookingSession{
		SessionID: "sess1",
		State:     models.StateAvailabilityLoaded,
		Availability: &models.AvailabilityResult{
			Intervals: []models.CandidateInterval{{Time: "09:00", Available: true, SlotID: "s1"}},
		},
	}
}

func TestListDoctorsEndpoint(t *testing.T) {
	r := newTestRouter(&fakeSessionService{})
	w := doJSON(t, r, http.MethodGet, "/api/booking/doctors", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dr. Rao")
}

// The policy page is public; no admin token involved.
func TestGetPoliciesEndpoint(t *testing.T) {
	r := newTestRouter(&fakeSessionService{})
	w := doJSON(t, r, http.MethodGet, "/api/booking/policies", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Data we collect")
}

func TestGetSessionNotFound(t *testing.T) {
	r := newTestRouter(&fakeSessionService{})
	w := doJSON(t, r, http.MethodGet, "/api/booking/session/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateSelectionReturnsAvailability(t *testing.T) {
	r := newTestRouter(&fakeSessionService{session: sessionFixture()})
	w := doJSON(t, r, http.MethodPut, "/api/booking/session/sess1/selection", models.BookingSelection{
		DoctorID: "doc1", Date: "2026-09-02", SlotType: models.SlotTypeOffline,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"09:00"`)
}

// A stale computation is not an HTTP failure; the client gets the session as
// the newer request left it.
func TestUpdateSelectionStaleIsOK(t *testing.T) {
	r := newTestRouter(&fakeSessionService{
		session:   sessionFixture(),
		updateErr: booking.ErrStaleResponse,
	})
	w := doJSON(t, r, http.MethodPut, "/api/booking/session/sess1/selection", models.BookingSelection{
		DoctorID: "doc1", Date: "2026-09-02", SlotType: models.SlotTypeOffline,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateSelectionInvalidIsBadRequest(t *testing.T) {
	r := newTestRouter(&fakeSessionService{
		session:   sessionFixture(),
		updateErr: booking.ErrInvalidSelection,
	})
	w := doJSON(t, r, http.MethodPut, "/api/booking/session/sess1/selection", models.BookingSelection{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmDoubleSubmitIsConflict(t *testing.T) {
	r := newTestRouter(&fakeSessionService{
		session:    sessionFixture(),
		confirmErr: booking.ErrSubmissionInFlight,
	})
	w := doJSON(t, r, http.MethodPost, "/api/booking/session/sess1/confirm", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

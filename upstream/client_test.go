package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSlotsDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/slotbooking/doc1", r.URL.Path)
		assert.Equal(t, "2026-09-02", r.URL.Query().Get("date"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error":false,"data":[{"_id":"s1","doctorid":"doc1","date":"2026-09-02","starttime":"09:00","endtime":"09:30","slottype":"offline","slottimerange":"10"}]}`))
	}))
	defer srv.Close()

	client := NewClientWith(srv.URL, nil)
	slots, err := client.FetchSlots(context.Background(), "doc1", "2026-09-02")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "s1", slots[0].ID)
	assert.Equal(t, 10, slots[0].StepMinutes())
}

func TestFetchBookedUnwrapsAppointments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/appointment", r.URL.Path)
		assert.Equal(t, "doc1", r.URL.Query().Get("doctorid"))
		w.Write([]byte(`{"error":false,"data":{"appointments":[{"starttime":"09:10","endtime":"09:20"}]}}`))
	}))
	defer srv.Close()

	client := NewClientWith(srv.URL, nil)
	booked, err := client.FetchBooked(context.Background(), "doc1", "2026-09-02")
	require.NoError(t, err)
	require.Len(t, booked, 1)
	assert.Equal(t, "09:10", booked[0].StartTime)
}

func TestErrorEnvelopeBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":true,"message":"slot already booked"}`))
	}))
	defer srv.Close()

	client := NewClientWith(srv.URL, nil)
	_, err := client.CreateAppointment(context.Background(), models.CreateAppointmentRequest{})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Contains(t, apiErr.Error(), "slot already booked")
	assert.False(t, errors.Is(err, ErrNetwork))
}

// A proxy answering with an HTML error page is still an upstream answer, not
// a transport failure.
func TestNonJSONErrorStatusBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html><body>502 Bad Gateway</body></html>`))
	}))
	defer srv.Close()

	client := NewClientWith(srv.URL, nil)
	_, err := client.FetchSlots(context.Background(), "doc1", "2026-09-02")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Contains(t, apiErr.Error(), "Bad Gateway")
	assert.False(t, errors.Is(err, ErrNetwork))
}

func TestListPaymentsAdminUnwrapsPayments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/payment/getall", r.URL.Path)
		w.Write([]byte(`{"error":false,"data":{"payments":[{"_id":"pay1","amount":500,"paymentstatus":"paid"}]}}`))
	}))
	defer srv.Close()

	client := NewClientWith(srv.URL, nil)
	payments, err := client.ListPaymentsAdmin(context.Background(), models.SlotListQuery{PageNo: 1})
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "pay1", payments[0].ID)
	assert.Equal(t, int64(500), payments[0].Amount)
}

func TestDeletePaymentAdminSendsID(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/admin/payment/delete", r.URL.Path)
		buf := make([]byte, 256)
		n, _ := r.Body.Read(buf)
		gotBody = string(buf[:n])
		w.Write([]byte(`{"error":false}`))
	}))
	defer srv.Close()

	client := NewClientWith(srv.URL, nil)
	require.NoError(t, client.DeletePaymentAdmin(context.Background(), "pay1"))
	assert.JSONEq(t, `{"paymentid":"pay1"}`, gotBody)
}

func TestTransportFailureWrapsErrNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClientWith(srv.URL, nil)
	_, err := client.FetchSlots(context.Background(), "doc1", "2026-09-02")
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestMalformedBodyWrapsErrNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	client := NewClientWith(srv.URL, nil)
	_, err := client.ListDoctors(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestDeleteSlotSendsID(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/admin/slotbooking/delete", r.URL.Path)
		buf := make([]byte, 256)
		n, _ := r.Body.Read(buf)
		gotBody = string(buf[:n])
		w.Write([]byte(`{"error":false}`))
	}))
	defer srv.Close()

	client := NewClientWith(srv.URL, nil)
	require.NoError(t, client.DeleteSlot(context.Background(), "slot1"))
	assert.JSONEq(t, `{"_id":"slot1"}`, gotBody)
}

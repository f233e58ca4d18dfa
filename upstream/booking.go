package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"medibook/models"
)

// FetchSlots returns the slot definitions for one doctor and date, 24-hour
// times as stored.
func (c *Client) FetchSlots(ctx context.Context, doctorID, date string) ([]models.SlotDefinition, error) {
	path := fmt.Sprintf("/api/user/slotbooking/%s?date=%s", url.PathEscape(doctorID), url.QueryEscape(date))
	var slots []models.SlotDefinition
	if err := c.do(ctx, http.MethodGet, path, nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// FetchBooked returns the appointments already reserved for a doctor/date.
func (c *Client) FetchBooked(ctx context.Context, doctorID, date string) ([]models.BookedAppointment, error) {
	path := fmt.Sprintf("/api/user/appointment?doctorid=%s&date=%s", url.QueryEscape(doctorID), url.QueryEscape(date))
	var data struct {
		Appointments []models.BookedAppointment `json:"appointments"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &data); err != nil {
		return nil, err
	}
	return data.Appointments, nil
}

// CreateAppointment books one interval and returns the created record with
// the payment order opened for it.
func (c *Client) CreateAppointment(ctx context.Context, req models.CreateAppointmentRequest) (*models.CreateAppointmentResponse, error) {
	var created models.CreateAppointmentResponse
	if err := c.do(ctx, http.MethodPost, "/api/user/appointment/create", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListDoctors returns every doctor visible to the public booking form.
func (c *Client) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := c.do(ctx, http.MethodGet, "/api/user/doctor/getall", nil, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// VerifyPayment relays the gateway callback payload upstream.
func (c *Client) VerifyPayment(ctx context.Context, v models.PaymentVerification) error {
	return c.do(ctx, http.MethodPost, "/api/user/payment/verify", v, nil)
}

// ListPolicies returns the published privacy-policy sections.
func (c *Client) ListPolicies(ctx context.Context) ([]models.PolicySection, error) {
	var sections []models.PolicySection
	if err := c.do(ctx, http.MethodGet, "/api/user/policies", nil, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

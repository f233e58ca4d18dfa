package upstream

import (
	"context"
	"net/http"

	"medibook/models"
)

// ListSlots returns the admin slot listing.
func (c *Client) ListSlots(ctx context.Context, q models.SlotListQuery) ([]models.SlotDefinition, error) {
	var data struct {
		SlotBooking []models.SlotDefinition `json:"slotbooking"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/admin/slotbooking", q, &data); err != nil {
		return nil, err
	}
	return data.SlotBooking, nil
}

// CreateSlot stores a new slot definition (24-hour canonical times).
func (c *Client) CreateSlot(ctx context.Context, slot models.SlotDefinition) error {
	return c.do(ctx, http.MethodPost, "/api/admin/slotbooking/create", slot, nil)
}

// UpdateSlot rewrites an existing slot definition.
func (c *Client) UpdateSlot(ctx context.Context, slot models.SlotDefinition) error {
	return c.do(ctx, http.MethodPut, "/api/admin/slotbooking/update", slot, nil)
}

// DeleteSlot removes a slot definition by identifier.
func (c *Client) DeleteSlot(ctx context.Context, id string) error {
	body := map[string]string{"_id": id}
	return c.do(ctx, http.MethodDelete, "/api/admin/slotbooking/delete", body, nil)
}

// ListDoctorsAdmin returns the admin doctor listing.
func (c *Client) ListDoctorsAdmin(ctx context.Context, q models.SlotListQuery) ([]models.Doctor, error) {
	var data struct {
		Doctor []models.Doctor `json:"doctor"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/admin/doctor", q, &data); err != nil {
		return nil, err
	}
	return data.Doctor, nil
}

// ListPatientsAdmin returns the admin patient listing.
func (c *Client) ListPatientsAdmin(ctx context.Context, q models.SlotListQuery) ([]models.Patient, error) {
	var data struct {
		Patient []models.Patient `json:"patient"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/admin/patient", q, &data); err != nil {
		return nil, err
	}
	return data.Patient, nil
}

// ListAppointmentsAdmin returns the admin appointment listing.
func (c *Client) ListAppointmentsAdmin(ctx context.Context, q models.SlotListQuery) ([]models.BookedAppointment, error) {
	var data struct {
		Appointments []models.BookedAppointment `json:"appointments"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/admin/appointment", q, &data); err != nil {
		return nil, err
	}
	return data.Appointments, nil
}

// ListPaymentsAdmin returns the admin payment listing.
func (c *Client) ListPaymentsAdmin(ctx context.Context, q models.SlotListQuery) ([]models.PaymentRecord, error) {
	var data struct {
		Payments []models.PaymentRecord `json:"payments"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/admin/payment/getall", q, &data); err != nil {
		return nil, err
	}
	return data.Payments, nil
}

// DeletePaymentAdmin removes a payment record by identifier.
func (c *Client) DeletePaymentAdmin(ctx context.Context, paymentID string) error {
	body := map[string]string{"paymentid": paymentID}
	return c.do(ctx, http.MethodDelete, "/api/admin/payment/delete", body, nil)
}

// ReplacePolicies stores the full privacy-policy content.
func (c *Client) ReplacePolicies(ctx context.Context, sections []models.PolicySection) error {
	return c.do(ctx, http.MethodPut, "/api/admin/policies/update", sections, nil)
}

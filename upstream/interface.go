package upstream

import (
	"context"

	"medibook/models"
)

// SlotSource serves the public booking flow's read-only slot snapshots.
type SlotSource interface {
	FetchSlots(ctx context.Context, doctorID, date string) ([]models.SlotDefinition, error)
}

// AppointmentSource serves booked-appointment snapshots and creation.
type AppointmentSource interface {
	FetchBooked(ctx context.Context, doctorID, date string) ([]models.BookedAppointment, error)
	CreateAppointment(ctx context.Context, req models.CreateAppointmentRequest) (*models.CreateAppointmentResponse, error)
}

// DoctorSource lists doctors for the public booking form.
type DoctorSource interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
}

// PaymentAPI relays gateway callbacks upstream.
type PaymentAPI interface {
	VerifyPayment(ctx context.Context, v models.PaymentVerification) error
}

// SlotAdminAPI forwards admin slot edits upstream. Payloads carry canonical
// 24-hour times; the slotadmin service owns the 12-hour conversion.
type SlotAdminAPI interface {
	ListSlots(ctx context.Context, q models.SlotListQuery) ([]models.SlotDefinition, error)
	CreateSlot(ctx context.Context, slot models.SlotDefinition) error
	UpdateSlot(ctx context.Context, slot models.SlotDefinition) error
	DeleteSlot(ctx context.Context, id string) error
}

// AdminDirectory serves the admin back-office list views.
type AdminDirectory interface {
	ListDoctorsAdmin(ctx context.Context, q models.SlotListQuery) ([]models.Doctor, error)
	ListPatientsAdmin(ctx context.Context, q models.SlotListQuery) ([]models.Patient, error)
	ListAppointmentsAdmin(ctx context.Context, q models.SlotListQuery) ([]models.BookedAppointment, error)
	ListPaymentsAdmin(ctx context.Context, q models.SlotListQuery) ([]models.PaymentRecord, error)
	DeletePaymentAdmin(ctx context.Context, paymentID string) error
}

// PolicySource serves the published privacy-policy content to the public
// site.
type PolicySource interface {
	ListPolicies(ctx context.Context) ([]models.PolicySection, error)
}

// PolicyAPI adds the admin-side replacement on top of the public read.
type PolicyAPI interface {
	PolicySource
	ReplacePolicies(ctx context.Context, sections []models.PolicySection) error
}

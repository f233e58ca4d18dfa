package booking

import (
	"context"

	"medibook/models"
)

// SessionService drives the public booking flow:
// idle -> doctorAndDateChosen -> availabilityLoaded -> timeSelected ->
// submitting -> confirmed | failed. Changing the selection recomputes
// availability and discards any prior time selection.
type SessionService interface {
	StartSession(ctx context.Context, patient models.PatientDetails) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	UpdateSelection(ctx context.Context, sessionID string, sel models.BookingSelection) (*models.BookingSession, error)
	SelectTime(ctx context.Context, sessionID, timeText string) (*models.BookingSession, error)
	ConfirmBooking(ctx context.Context, sessionID string, patient models.PatientDetails) (*models.BookingSession, error)
	CancelSession(ctx context.Context, sessionID string) error

	// ComputeAvailability is the stateless variant used by the admin booking
	// dialog; same engine, no session.
	ComputeAvailability(ctx context.Context, sel models.BookingSelection) (models.AvailabilityResult, error)

	VerifyPayment(ctx context.Context, v models.PaymentVerification) error
}

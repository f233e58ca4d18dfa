package models

import "time"

// Booking session states. Any change to doctor, date or consultation type
// recomputes availability and discards a prior time selection.
const (
	StateIdle                = "idle"
	StateDoctorAndDateChosen = "doctorAndDateChosen"
	StateAvailabilityLoaded  = "availabilityLoaded"
	StateTimeSelected        = "timeSelected"
	StateSubmitting          = "submitting"
	StateConfirmed           = "confirmed"
	StateFailed              = "failed"
)

// PatientDetails is the contact information collected by the booking form.
type PatientDetails struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

// BookingSelection is the doctor/date/type triple that drives availability.
type BookingSelection struct {
	DoctorID string `json:"doctorid"`
	Date     string `json:"date"`
	SlotType string `json:"slottype"`
}

// SelectedTime is a chosen interval resolved against its originating slot.
type SelectedTime struct {
	SlotID    string `json:"slotId"`
	StartTime string `json:"starttime"` // 24-hour "HH:MM"
	EndTime   string `json:"endtime"`
}

// BookingSession holds one visitor's progress through the booking flow,
// cached in Redis with a TTL. Seq increases on every selection change; an
// availability computation that finishes after the selection moved on is
// discarded by comparing against it.
type BookingSession struct {
	SessionID     string              `json:"sessionId"`
	State         string              `json:"state"`
	Patient       PatientDetails      `json:"patient,omitempty"`
	Selection     BookingSelection    `json:"selection,omitempty"`
	Seq           int64               `json:"seq"`
	Availability  *AvailabilityResult `json:"availability,omitempty"`
	SelectedTime  *SelectedTime       `json:"selectedTime,omitempty"`
	AppointmentID string              `json:"appointmentId,omitempty"`
	Order         *PaymentOrder       `json:"order,omitempty"`
	FailureReason string              `json:"failureReason,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

package models

// BookedAppointment is a confirmed reservation as returned by the upstream
// appointment query. Times are 24-hour "HH:MM" text, though older records may
// still carry the 12-hour display form; consumers must normalize through
// ParseTimeOfDay before comparing.
type BookedAppointment struct {
	ID            string `json:"_id,omitempty"`
	DoctorID      string `json:"doctorid,omitempty"`
	Date          string `json:"date,omitempty"`
	StartTime     string `json:"starttime"`
	EndTime       string `json:"endtime"`
	SlotType      string `json:"slottype,omitempty"`
	PatientName   string `json:"patientname,omitempty"`
	PatientEmail  string `json:"patientemail,omitempty"`
	PatientMobile string `json:"patientmobile,omitempty"`
}

// CreateAppointmentRequest is the upstream appointment-creation payload.
type CreateAppointmentRequest struct {
	PatientName   string `json:"patientname"`
	PatientEmail  string `json:"patientemail"`
	PatientMobile string `json:"patientmobile"`
	DoctorID      string `json:"doctorid"`
	Date          string `json:"date"`
	SlotID        string `json:"slotid"`
	StartTime     string `json:"starttime"`
	EndTime       string `json:"endtime"`
	SlotType      string `json:"slottype"`
}

// CreateAppointmentResponse echoes the created record plus the payment order
// the upstream API opens for it.
type CreateAppointmentResponse struct {
	Appointment BookedAppointment `json:"appointment"`
	Order       *PaymentOrder     `json:"order,omitempty"`
}

package models

// PaymentOrder is the gateway order the upstream API opens when an
// appointment is created. The booking fee amount is in the gateway's
// smallest currency unit.
type PaymentOrder struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency,omitempty"`
}

// PaymentRecord is one gateway payment as listed in the admin back-office.
// The upstream API populates the appointment and doctor references.
type PaymentRecord struct {
	ID            string             `json:"_id"`
	Appointment   *BookedAppointment `json:"appointmentid,omitempty"`
	Doctor        *Doctor            `json:"doctorid,omitempty"`
	Amount        int64              `json:"amount"`
	PaymentStatus string             `json:"paymentstatus,omitempty"`
	Method        string             `json:"method,omitempty"`
}

// PaymentVerification relays the gateway callback back upstream.
type PaymentVerification struct {
	AppointmentID string `json:"appointmentid" binding:"required"`
	OrderID       string `json:"orderid" binding:"required"`
	PaymentID     string `json:"paymentid" binding:"required"`
	Signature     string `json:"signature" binding:"required"`
}

package models

// Doctor is the upstream doctor record consumed by the booking form and the
// admin back-office. Read-only here.
type Doctor struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization,omitempty"`
	Email          string `json:"email,omitempty"`
	Mobile         string `json:"mobile,omitempty"`
}

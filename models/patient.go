package models

// Patient is the upstream patient record shown in the admin back-office.
// Read-only here; registration happens on the upstream API.
type Patient struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Mobile string `json:"mobile,omitempty"`
}

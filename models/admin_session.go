package models

import "time"

// Admin session lifecycle. A session is either absent (no Redis entry) or
// active; business logic receives the session explicitly instead of reading
// ambient storage.
const AdminSessionActive = "active"

// AdminSession represents an authenticated back-office session.
type AdminSession struct {
	SessionID     string    `json:"sessionId"`
	Email         string    `json:"email"`
	Status        string    `json:"status"`
	TokenHash     string    `json:"tokenHash"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

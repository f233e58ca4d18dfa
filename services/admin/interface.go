package admin

import (
	"context"

	"medibook/models"
)

// AdminService backs the back-office: sign-in/out with an explicit
// Redis-backed session (no ambient auth flag), directory listings and
// privacy-policy editing.
type AdminService interface {
	SignIn(ctx context.Context, email, password string) (string, *models.AdminSession, error)
	SignOut(ctx context.Context, sessionID string) error
	ValidateToken(ctx context.Context, token string) (*models.AdminSession, error)

	GetPolicies(ctx context.Context) ([]models.PolicySection, error)
	ApplyPolicyEdit(ctx context.Context, edit models.PolicyEdit) ([]models.PolicySection, error)
}

package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medibook/config"
	"medibook/models"
	"medibook/upstream"
	"medibook/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials rejects a sign-in with a wrong email or password.
	ErrInvalidCredentials = errors.New("invalid admin credentials")
	// ErrSessionExpired covers missing, expired and revoked admin sessions.
	ErrSessionExpired = errors.New("admin session expired or revoked")
)

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Policies upstream.PolicyAPI
	Cache    *redis.Client
}

// SignIn checks the configured admin credentials and opens a session. The
// returned JWT carries the session ID as its subject; the session stores the
// token hash so a leaked session entry alone cannot be replayed.
func (a *DefaultAdminService) SignIn(ctx context.Context, email, password string) (string, *models.AdminSession, error) {
	if email == "" || email != config.AppConfig.AdminEmail {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(config.AppConfig.AdminPasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	sessionID := uuid.New().String()
	token, err := utils.GenerateToken(sessionID, email, utils.AdminSessionTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue admin token: %w", err)
	}

	session := &models.AdminSession{
		SessionID: sessionID,
		Email:     email,
		Status:    models.AdminSessionActive,
		TokenHash: utils.HashToken(token),
		CreatedAt: time.Now(),
	}
	if err := a.saveSession(ctx, session); err != nil {
		return "", nil, err
	}
	return token, session, nil
}

// SignOut revokes the session.
func (a *DefaultAdminService) SignOut(ctx context.Context, sessionID string) error {
	return a.Cache.Del(ctx, utils.AdminSessionPrefix+sessionID).Err()
}

// ValidateToken resolves a bearer token to its active session.
func (a *DefaultAdminService) ValidateToken(ctx context.Context, token string) (*models.AdminSession, error) {
	sessionID, err := utils.ExtractIDFromToken(token)
	if err != nil {
		return nil, ErrSessionExpired
	}

	data, err := a.Cache.Get(ctx, utils.AdminSessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionExpired
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load admin session: %w", err)
	}

	var session models.AdminSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal admin session: %w", err)
	}
	if session.Status != models.AdminSessionActive || session.TokenHash != utils.HashToken(token) {
		return nil, ErrSessionExpired
	}
	return &session, nil
}

func (a *DefaultAdminService) saveSession(ctx context.Context, session *models.AdminSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal admin session: %w", err)
	}
	key := utils.AdminSessionPrefix + session.SessionID
	if err := a.Cache.Set(ctx, key, data, utils.AdminSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save admin session: %w", err)
	}
	return nil
}

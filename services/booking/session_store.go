package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medibook/models"
	"medibook/utils"

	"github.com/go-redis/redis/v8"
)

func (s *DefaultSessionService) saveSession(ctx context.Context, session *models.BookingSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	key := utils.BookingSessionPrefix + session.SessionID
	if err := s.Cache.Set(ctx, key, data, s.ttl()).Err(); err != nil {
		return fmt.Errorf("failed to save booking session: %w", err)
	}
	return nil
}

func (s *DefaultSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, utils.BookingSessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultSessionService) deleteSession(ctx context.Context, sessionID string) error {
	return s.Cache.Del(ctx, utils.BookingSessionPrefix+sessionID).Err()
}

// File: services/flow/store.go
package flow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ticketbharat/models"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "chat:sess:"

// ErrSessionNotFound is returned when a session id is unknown or its
// TTL has lapsed.
var ErrSessionNotFound = errors.New("chat session not found or expired")

// SessionStore holds chat sessions for the duration of a conversation.
// Sessions are ephemeral; implementations are expected to expire them.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.ChatSession, error)
	Save(ctx context.Context, session *models.ChatSession) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions as JSON blobs with a TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	data, err := s.client.Get(ctx, sessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load chat session: %w", err)
	}
	var session models.ChatSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("parse chat session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.ChatSession) error {
	b, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal chat session: %w", err)
	}
	if err := s.client.Set(ctx, sessionPrefix+session.SessionID, b, s.ttl).Err(); err != nil {
		return fmt.Errorf("store chat session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionPrefix+sessionID).Err()
}

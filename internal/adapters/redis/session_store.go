package redis

// Package redis provides Redis-based adapters for the soil agent.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	domainauth "github.com/soilfarming/soil-agent/internal/domain/auth"
)

// SessionStore is a Redis-based session store for production use.
// It handles TTL semantics automatically based on session ExpiresAt.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
}

// NewSessionStore creates a new Redis-based session store.
func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "session:",
	}
}

// NewSessionStoreWithPrefix creates a Redis session store with a custom key prefix.
func NewSessionStoreWithPrefix(client redis.UniversalClient, prefix string) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: prefix,
	}
}

func (s *SessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	key := s.prefix + sess.ID
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		// Session is already expired, don't save it
		return errors.New("session is expired")
	}

	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}

	key := s.prefix + id
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Session{}, ErrNotFound
		}
		return domainauth.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var sess domainauth.Session
	if unmarshalErr := json.Unmarshal([]byte(data), &sess); unmarshalErr != nil {
		return domainauth.Session{}, fmt.Errorf("unmarshal session: %w", unmarshalErr)
	}

	// Double-check expiration (Redis TTL should handle this, but be defensive)
	if time.Now().After(sess.ExpiresAt) {
		// Clean up expired session; if cleanup fails bubble the error up.
		if deleteErr := s.Delete(ctx, id); deleteErr != nil {
			return domainauth.Session{}, fmt.Errorf("cleanup expired session: %w", deleteErr)
		}
		return domainauth.Session{}, ErrNotFound
	}

	return sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil // Nothing to delete
	}

	key := s.prefix + id
	return s.client.Del(ctx, key).Err()
}

// CompleteRoleResolution stamps a resolved role onto a stored session.
// The write only applies when the session still exists and still belongs
// to principalID; a session that was logged out and replaced by a
// different principal in the meantime is left untouched and the stored
// session is returned as-is. The check-and-set runs inside a Redis
// transaction so a concurrent Save or Delete retries rather than being
// clobbered.
func (s *SessionStore) CompleteRoleResolution(ctx context.Context, sessionID, principalID string, role domainauth.Role) (domainauth.Session, error) {
	if sessionID == "" {
		return domainauth.Session{}, ErrNotFound
	}

	key := s.prefix + sessionID
	var result domainauth.Session

	txn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrNotFound
			}
			return fmt.Errorf("redis get: %w", err)
		}

		var sess domainauth.Session
		if unmarshalErr := json.Unmarshal([]byte(data), &sess); unmarshalErr != nil {
			return fmt.Errorf("unmarshal session: %w", unmarshalErr)
		}

		if sess.PrincipalID != principalID {
			// Stale resolution: the session was reissued to someone else
			// while the lookup ran. Discard the result.
			result = sess
			return nil
		}

		sess.Role = role
		sess.RoleResolved = true

		ttl := time.Until(sess.ExpiresAt)
		if ttl <= 0 {
			return ErrNotFound
		}

		updated, marshalErr := json.Marshal(sess)
		if marshalErr != nil {
			return fmt.Errorf("marshal session: %w", marshalErr)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, ttl)
			return nil
		})
		if err != nil {
			return err
		}

		result = sess
		return nil
	}

	for i := 0; i < maxResolutionRetries; i++ {
		err := s.client.Watch(ctx, txn, key)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return domainauth.Session{}, err
	}

	return domainauth.Session{}, fmt.Errorf("complete role resolution: too many conflicts on session %s", sessionID)
}

const maxResolutionRetries = 5

// ErrNotFound is returned when a session is not found.
type notFoundError struct{}

func (notFoundError) Error() string { return "session not found" }

var ErrNotFound error = notFoundError{}

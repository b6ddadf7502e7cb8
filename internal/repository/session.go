package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/blinktactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/blinktactoe-backend/internal/entity"
)

const sessionKeyPrefix = "session:"

// SessionRepository keeps the current snapshot of each live session.
type SessionRepository interface {
	Save(ctx context.Context, id string, state entity.GameState) error
	GetByID(ctx context.Context, id string) (entity.GameState, error)
	DeleteByID(ctx context.Context, id string) error
}

type redisSession struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionRepository stores snapshots as JSON; every save refreshes the ttl.
// A zero ttl keeps keys until they are deleted.
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) SessionRepository {
	return &redisSession{
		client: client,
		ttl:    ttl,
	}
}

func (that *redisSession) Save(ctx context.Context, id string, state entity.GameState) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	err = that.client.Set(ctx, sessionKeyPrefix+id, stateJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

func (that *redisSession) GetByID(ctx context.Context, id string) (entity.GameState, error) {
	response, err := that.client.Get(ctx, sessionKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return entity.GameState{}, fmt.Errorf("session %s: %w", id, apperror.ErrNotFound)
	}

	if err != nil {
		return entity.GameState{}, fmt.Errorf("failed to get session by id: %w", err)
	}

	var state entity.GameState
	if err = json.Unmarshal([]byte(response), &state); err != nil {
		return entity.GameState{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return state, nil
}

func (that *redisSession) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session by id: %w", err)
	}

	if deleted == 0 {
		return fmt.Errorf("session %s: %w", id, apperror.ErrNotFound)
	}

	return nil
}

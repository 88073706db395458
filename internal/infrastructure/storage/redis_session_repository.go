package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"ai-diagnostics/internal/domain/entity"
	"ai-diagnostics/internal/domain/port"
)

const (
	sessionKeyPrefix = "ai-diagnostics:session:"
	sessionTTL       = 24 * time.Hour

	fieldCategory     = "category"
	fieldPresentation = "presentation"
)

// RedisSessionRepository хранит сессии чатов в Redis (hash на чат)
type RedisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository подключается к Redis по адресу addr
func NewRedisSessionRepository(addr string) *RedisSessionRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return NewRedisSessionRepositoryFromClient(rdb)
}

// NewRedisSessionRepositoryFromClient использует готовый клиент
func NewRedisSessionRepositoryFromClient(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

// Ping проверяет соединение
func (r *RedisSessionRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close закрывает клиент
func (r *RedisSessionRepository) Close() error {
	return r.client.Close()
}

// Get возвращает сессию чата; отсутствующая или битая запись даёт сессию по умолчанию
func (r *RedisSessionRepository) Get(ctx context.Context, chatID int64) (*entity.Session, error) {
	values, err := r.client.HGetAll(ctx, sessionKey(chatID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis hgetall: %w", err)
	}

	session := entity.NewSession(chatID)
	if c, err := entity.ParseCategory(values[fieldCategory]); err == nil {
		session.Category = c
	}
	if shown, err := strconv.ParseBool(values[fieldPresentation]); err == nil {
		session.ShowPresentation = shown
	}

	return session, nil
}

// Save сохраняет состояние сессии и продлевает TTL
func (r *RedisSessionRepository) Save(ctx context.Context, session *entity.Session) error {
	key := sessionKey(session.ChatID)

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key,
		fieldCategory, string(session.Category),
		fieldPresentation, strconv.FormatBool(session.ShowPresentation),
	)
	pipe.Expire(ctx, key, sessionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis save session: %w", err)
	}

	return nil
}

func sessionKey(chatID int64) string {
	return sessionKeyPrefix + strconv.FormatInt(chatID, 10)
}

var _ port.SessionRepository = (*RedisSessionRepository)(nil)

package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"ai-diagnostics/internal/domain/entity"
)

func newRedisRepo(t *testing.T) (*RedisSessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	repo := NewRedisSessionRepositoryFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = repo.Close() })
	return repo, mr
}

func TestRedisSessionRepository_MissingGivesDefault(t *testing.T) {
	repo, _ := newRedisRepo(t)

	s, err := repo.Get(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, entity.NewSession(5), s)
}

func TestRedisSessionRepository_RoundTrip(t *testing.T) {
	repo, mr := newRedisRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Ping(ctx))

	s := entity.NewSession(5)
	s.SetCategory(entity.CategorySkin)
	s.ShowPresentation = true
	require.NoError(t, repo.Save(ctx, s))

	require.Equal(t, "Skin", mr.HGet(sessionKey(5), fieldCategory))
	require.Equal(t, "true", mr.HGet(sessionKey(5), fieldPresentation))

	got, err := repo.Get(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, s, got)

	other, err := repo.Get(ctx, 6)
	require.NoError(t, err)
	require.Equal(t, entity.CategoryBrain, other.Category)
}

func TestRedisSessionRepository_SaveSetsTTL(t *testing.T) {
	repo, mr := newRedisRepo(t)

	require.NoError(t, repo.Save(context.Background(), entity.NewSession(9)))
	require.Equal(t, sessionTTL, mr.TTL(sessionKey(9)))

	mr.FastForward(sessionTTL)
	require.False(t, mr.Exists(sessionKey(9)))
}

func TestRedisSessionRepository_CorruptValuesFallBack(t *testing.T) {
	repo, mr := newRedisRepo(t)
	mr.HSet(sessionKey(3), fieldCategory, "Liver", fieldPresentation, "maybe")

	s, err := repo.Get(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, entity.CategoryBrain, s.Category)
	require.False(t, s.ShowPresentation)
}

func TestRedisSessionRepository_ServerDown(t *testing.T) {
	repo, mr := newRedisRepo(t)
	mr.Close()
	ctx := context.Background()

	_, err := repo.Get(ctx, 1)
	require.Error(t, err)
	require.Error(t, repo.Save(ctx, entity.NewSession(1)))
	require.Error(t, repo.Ping(ctx))
}

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"ai-diagnostics/internal/domain/entity"
)

func TestMemorySessionRepository_GetCreatesDefault(t *testing.T) {
	repo := NewMemorySessionRepository()

	s, err := repo.Get(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, int64(7), s.ChatID)
	require.Equal(t, entity.DefaultCategory, s.Category)
}

func TestMemorySessionRepository_SaveAndGet(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()

	s, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	s.SetCategory(entity.CategoryHeart)
	s.ShowPresentation = true

	// Без Save изменения не видны
	again, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, entity.CategoryBrain, again.Category)

	require.NoError(t, repo.Save(ctx, s))

	again, err = repo.Get(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, entity.CategoryHeart, again.Category)
	require.True(t, again.ShowPresentation)
}

func TestSessionKey(t *testing.T) {
	require.Equal(t, "ai-diagnostics:session:42", sessionKey(42))
	require.Equal(t, "ai-diagnostics:session:-100", sessionKey(-100))
}

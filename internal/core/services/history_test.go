package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wikiplain/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wikiplain/internal/core/domain"
)

func TestHistoryService_List(t *testing.T) {
	store := memory.NewRunStore()
	ctx := context.Background()
	base := time.Now()
	require.NoError(t, store.Save(ctx, domain.Run{ID: "old", StartedAt: base}))
	require.NoError(t, store.Save(ctx, domain.Run{ID: "new", StartedAt: base.Add(time.Hour)}))

	service := NewHistoryService(store)

	runs, err := service.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "new", runs[0].ID)

	runs, err = service.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestHistoryService_Get(t *testing.T) {
	store := memory.NewRunStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.Run{ID: "abc", Status: domain.RunSucceeded}))

	service := NewHistoryService(store)

	run, err := service.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, domain.RunSucceeded, run.Status)
}

func TestHistoryService_GetNotFound(t *testing.T) {
	service := NewHistoryService(memory.NewRunStore())

	_, err := service.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryService_GetEmptyID(t *testing.T) {
	service := NewHistoryService(memory.NewRunStore())

	_, err := service.Get(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

func TestSchedulerStore_GetTask_Missing(t *testing.T) {
	store := NewSchedulerStore()

	task, err := store.GetTask(context.Background(), domain.TaskIDPriceWatch)

	require.NoError(t, err)
	assert.Nil(t, task)
}

func TestSchedulerStore_SaveTask_RoundTrip(t *testing.T) {
	store := NewSchedulerStore()
	ctx := context.Background()

	task := &domain.ScheduledTask{
		ID:       domain.TaskIDPriceWatch,
		Name:     "Egg price watch",
		Interval: 24 * time.Hour,
		NextRun:  time.Now().Add(24 * time.Hour),
		Enabled:  true,
	}
	require.NoError(t, store.SaveTask(ctx, task))

	got, err := store.GetTask(ctx, domain.TaskIDPriceWatch)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, task.Name, got.Name)
	assert.Equal(t, task.Interval, got.Interval)

	task.Enabled = false
	require.NoError(t, store.SaveTask(ctx, task))

	got, err = store.GetTask(ctx, domain.TaskIDPriceWatch)
	require.NoError(t, err)
	assert.False(t, got.Enabled)
}

func TestSchedulerStore_ListTasks_Ordered(t *testing.T) {
	store := NewSchedulerStore()
	ctx := context.Background()

	_ = store.SaveTask(ctx, &domain.ScheduledTask{ID: "b-task"})
	_ = store.SaveTask(ctx, &domain.ScheduledTask{ID: "a-task"})

	tasks, err := store.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "a-task", tasks[0].ID)
	assert.Equal(t, "b-task", tasks[1].ID)
}

func TestSchedulerStore_DeleteTask(t *testing.T) {
	store := NewSchedulerStore()
	ctx := context.Background()

	_ = store.SaveTask(ctx, &domain.ScheduledTask{ID: domain.TaskIDPriceWatch})
	require.NoError(t, store.DeleteTask(ctx, domain.TaskIDPriceWatch))

	task, err := store.GetTask(ctx, domain.TaskIDPriceWatch)
	require.NoError(t, err)
	assert.Nil(t, task)
}

func TestSchedulerStore_TaskHistory(t *testing.T) {
	store := NewSchedulerStore()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		_ = store.RecordResult(ctx, &domain.TaskResult{
			TaskID:    domain.TaskIDPriceWatch,
			StartedAt: base.Add(time.Duration(i) * time.Minute),
			Success:   true,
		})
	}

	history, err := store.GetTaskHistory(ctx, domain.TaskIDPriceWatch, 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].StartedAt.After(history[1].StartedAt))

	all, err := store.GetTaskHistory(ctx, domain.TaskIDPriceWatch, 10)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	empty, err := store.GetTaskHistory(ctx, "other", 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestIndexMetaStore_RoundTrip(t *testing.T) {
	store := NewIndexMetaStore()
	ctx := context.Background()

	_, err := store.GetEmbeddingModel(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.SetEmbeddingModel(ctx, "nomic-embed-text"))

	model, err := store.GetEmbeddingModel(ctx)
	require.NoError(t, err)
	assert.Equal(t, "nomic-embed-text", model)
}

func TestMonitorStateStore_RoundTrip(t *testing.T) {
	store := NewMonitorStateStore()
	ctx := context.Background()

	_, err := store.GetHash(ctx, "egg-prices")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.SetHash(ctx, "egg-prices", "abc"))

	hash, err := store.GetHash(ctx, "egg-prices")
	require.NoError(t, err)
	assert.Equal(t, "abc", hash)
}

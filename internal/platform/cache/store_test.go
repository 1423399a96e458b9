package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.Equal(t, int32(1), calls.Load())
}

func TestStore_Expiry(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "players:list", []int{1})
	_, ok := store.Get(context.Background(), "players:list")
	require.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = store.Get(context.Background(), "players:list")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()
	store.Set(ctx, "players:list:a", 1)
	store.Set(ctx, "players:list:b", 2)
	store.Set(ctx, "players:id:1", 3)

	store.DeletePrefix(ctx, "players:list:")

	_, ok := store.Get(ctx, "players:list:a")
	assert.False(t, ok)
	_, ok = store.Get(ctx, "players:id:1")
	assert.True(t, ok)
}

func TestLoad_Typed(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()
	var calls atomic.Int32

	loader := func(context.Context) (int, error) {
		calls.Add(1)
		return 42, nil
	}

	got, err := Load(ctx, store, "answer", loader)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	got, err = Load(ctx, store, "answer", loader)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, int32(1), calls.Load())

	store.Set(ctx, "answer", "wrong type")
	got, err = Load(ctx, store, "answer", loader)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := Load(ctx, store, "k", func(context.Context) (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, store.Len())
}

var errUnexpectedValue = errors.New("unexpected loaded value")

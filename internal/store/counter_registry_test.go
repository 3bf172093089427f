package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/go-counters/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterRegistry_CreateThenGet(t *testing.T) {
	r := NewCounterRegistry()
	ctx := context.Background()

	created, err := r.CreateCounter(ctx, "foo")
	require.NoError(t, err)
	assert.Equal(t, models.Counter{Name: "foo", Value: 0}, created)

	got, err := r.GetCounter(ctx, "foo")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Value)
}

func TestCounterRegistry_CreateDuplicate_KeepsValue(t *testing.T) {
	r := NewCounterRegistry()
	ctx := context.Background()

	_, err := r.CreateCounter(ctx, "foo")
	require.NoError(t, err)
	_, err = r.IncrementCounter(ctx, "foo")
	require.NoError(t, err)

	_, err = r.CreateCounter(ctx, "foo")
	assert.ErrorIs(t, err, ErrCounterAlreadyExists)

	got, err := r.GetCounter(ctx, "foo")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Value, "duplicate create must not reset the counter")
}

func TestCounterRegistry_Increment(t *testing.T) {
	r := NewCounterRegistry()
	ctx := context.Background()

	_, err := r.CreateCounter(ctx, "foo")
	require.NoError(t, err)

	for want := int64(1); want <= 3; want++ {
		c, err := r.IncrementCounter(ctx, "foo")
		require.NoError(t, err)
		assert.Equal(t, want, c.Value)
	}

	got, err := r.GetCounter(ctx, "foo")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Value)
}

func TestCounterRegistry_MissingName(t *testing.T) {
	r := NewCounterRegistry()
	ctx := context.Background()

	_, err := r.GetCounter(ctx, "ghost")
	assert.ErrorIs(t, err, ErrCounterNotFound)

	_, err = r.IncrementCounter(ctx, "ghost")
	assert.ErrorIs(t, err, ErrCounterNotFound)

	assert.ErrorIs(t, r.DeleteCounter(ctx, "ghost"), ErrCounterNotFound)

	// increment must not create the counter implicitly
	_, err = r.GetCounter(ctx, "ghost")
	assert.ErrorIs(t, err, ErrCounterNotFound)
}

func TestCounterRegistry_DeleteThenRecreate(t *testing.T) {
	r := NewCounterRegistry()
	ctx := context.Background()

	_, err := r.CreateCounter(ctx, "foo")
	require.NoError(t, err)
	_, err = r.IncrementCounter(ctx, "foo")
	require.NoError(t, err)

	require.NoError(t, r.DeleteCounter(ctx, "foo"))

	_, err = r.GetCounter(ctx, "foo")
	assert.ErrorIs(t, err, ErrCounterNotFound)

	assert.ErrorIs(t, r.DeleteCounter(ctx, "foo"), ErrCounterNotFound, "second delete reports not found")

	created, err := r.CreateCounter(ctx, "foo")
	require.NoError(t, err)
	assert.Equal(t, int64(0), created.Value)
}

func TestCounterRegistry_NamesAreIndependent(t *testing.T) {
	r := NewCounterRegistry()
	ctx := context.Background()

	_, err := r.CreateCounter(ctx, "a")
	require.NoError(t, err)
	_, err = r.CreateCounter(ctx, "b")
	require.NoError(t, err)
	_, err = r.IncrementCounter(ctx, "a")
	require.NoError(t, err)

	b, err := r.GetCounter(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(0), b.Value)
}

func TestCounterRegistry_ConcurrentIncrements(t *testing.T) {
	r := NewCounterRegistry()
	ctx := context.Background()

	_, err := r.CreateCounter(ctx, "hits")
	require.NoError(t, err)

	const workers, perWorker = 16, 250
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				_, _ = r.IncrementCounter(ctx, "hits")
			}
		}()
	}
	wg.Wait()

	got, err := r.GetCounter(ctx, "hits")
	require.NoError(t, err)
	assert.Equal(t, int64(workers*perWorker), got.Value)
}

func TestCounterRegistry_ConcurrentCreate_OneWinner(t *testing.T) {
	r := NewCounterRegistry()
	ctx := context.Background()

	const attempts = 32
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for a := 0; a < attempts; a++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.CreateCounter(ctx, "race")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, conflicts int
	for err := range results {
		switch err {
		case nil:
			ok++
		case ErrCounterAlreadyExists:
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, attempts-1, conflicts)
}

func TestCounterRegistry_ManyNames(t *testing.T) {
	r := NewCounterRegistry()
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		_, err := r.CreateCounter(ctx, fmt.Sprintf("c-%d", i))
		require.NoError(t, err)
	}
	for i := 0; i < 100; i++ {
		c, err := r.GetCounter(ctx, fmt.Sprintf("c-%d", i))
		require.NoError(t, err)
		assert.Equal(t, int64(0), c.Value)
	}
}

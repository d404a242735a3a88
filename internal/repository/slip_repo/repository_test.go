package slip_repo

import (
	"context"
	"lotto_backend/internal/model"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlipRepo(t *testing.T) {
	ctx := context.Background()
	r := NewSlipRepository()

	require.NoError(t, r.Add(ctx, 1, model.Wager{ID: "a"}))
	require.NoError(t, r.Add(ctx, 1, model.Wager{ID: "b"}))
	require.NoError(t, r.Add(ctx, 2, model.Wager{ID: "c"}))

	slip, err := r.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, slip, 2)
	assert.Equal(t, "a", slip[0].ID)

	slip[0].ID = "mutated"
	slip, _ = r.List(ctx, 1)
	assert.Equal(t, "a", slip[0].ID, "List returns a copy")

	require.NoError(t, r.Remove(ctx, 1, "a"))
	err = r.Remove(ctx, 1, "a")
	require.ErrorIs(t, err, model.ErrBetNotFound)

	slip, _ = r.List(ctx, 1)
	require.Len(t, slip, 1)
	assert.Equal(t, "b", slip[0].ID)

	require.NoError(t, r.Clear(ctx, 1))
	slip, _ = r.List(ctx, 1)
	assert.Empty(t, slip)

	other, _ := r.List(ctx, 2)
	assert.Len(t, other, 1, "other players keep their slips")
}

func TestSlipRepoConcurrentAdd(t *testing.T) {
	ctx := context.Background()
	r := NewSlipRepository()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Add(ctx, i%3, model.Wager{})
		}()
	}
	wg.Wait()

	var total int
	for user := range 3 {
		slip, _ := r.List(ctx, user)
		total += len(slip)
	}
	assert.Equal(t, 50, total)
}

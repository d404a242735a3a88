package slip_repo

import (
	"context"
	"fmt"
	"lotto_backend/internal/model"
	"slices"
	"sync"
)

// SlipRepo keeps every player's wager list in memory. The lists live only as
// long as the process, like the session they belong to.
type SlipRepo struct {
	mtx   sync.RWMutex
	slips map[int][]model.Wager
}

func NewSlipRepository() *SlipRepo {
	return &SlipRepo{
		slips: make(map[int][]model.Wager),
	}
}

func (r *SlipRepo) Add(_ context.Context, userID int, wager model.Wager) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.slips[userID] = append(r.slips[userID], wager)
	return nil
}

// List returns a copy of the player's wagers in the order they were added.
func (r *SlipRepo) List(_ context.Context, userID int) ([]model.Wager, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return slices.Clone(r.slips[userID]), nil
}

func (r *SlipRepo) Remove(_ context.Context, userID int, wagerID string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	slip := r.slips[userID]
	i := slices.IndexFunc(slip, func(w model.Wager) bool { return w.ID == wagerID })
	if i < 0 {
		return fmt.Errorf("%w: %s", model.ErrBetNotFound, wagerID)
	}

	r.slips[userID] = slices.Delete(slip, i, i+1)
	return nil
}

func (r *SlipRepo) Clear(_ context.Context, userID int) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.slips, userID)
	return nil
}

package expense

import (
	"context"
	"sort"
	"sync"
)

// Repo holds the ledger. The ledger is in-memory only: nothing beyond the
// payer registry is persisted across restarts.
type Repo interface {
	Store(ctx context.Context, e Expense) error
	Update(ctx context.Context, e Expense) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Filter(ctx context.Context, payerFilter, dateStart, dateEnd string) ([]Expense, error)
}

type MemoryRepo struct {
	mu       sync.RWMutex
	expenses []Expense
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Store(ctx context.Context, e Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.expenses = append(r.expenses, e)
	r.sortLocked()
	return nil
}

func (r *MemoryRepo) Update(ctx context.Context, e Expense) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.expenses {
		if r.expenses[i].ID == e.ID {
			r.expenses[i] = e
			r.sortLocked()
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.expenses {
		if r.expenses[i].ID == id {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Filter returns records matching the payer (exact match unless the wildcard
// or empty) and the inclusive date range. Empty bounds leave that side open.
// The date key format makes lexicographic comparison equivalent to
// chronological comparison.
func (r *MemoryRepo) Filter(ctx context.Context, payerFilter, dateStart, dateEnd string) ([]Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matchAllPayers := payerFilter == "" || payerFilter == PayerWildcard

	result := make([]Expense, 0, len(r.expenses))
	for _, e := range r.expenses {
		if !matchAllPayers && e.Payer != payerFilter {
			continue
		}
		if dateStart != "" && e.Date < dateStart {
			continue
		}
		if dateEnd != "" && e.Date > dateEnd {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

// sortLocked keeps the ledger ordered by date descending. The sort is stable
// so records sharing a date stay in insertion order.
func (r *MemoryRepo) sortLocked() {
	sort.SliceStable(r.expenses, func(i, j int) bool {
		return r.expenses[i].Date > r.expenses[j].Date
	})
}

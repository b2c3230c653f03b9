package expense

import (
	"context"
	"fmt"

	"github.com/Minpi-0/traveler-app/pkg/currency"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service interface {
	Create(ctx context.Context, e Expense) (Expense, error)
	Update(ctx context.Context, e Expense) (Expense, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Filter(ctx context.Context, payerFilter, dateStart, dateEnd string) ([]Expense, decimal.Decimal, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

// Create stores a new record. The home amount is derived here from the input
// amount and currency; the ID is assigned and immutable from then on.
func (s *ServiceImpl) Create(ctx context.Context, e Expense) (Expense, error) {
	e.ID = uuid.New().String()
	e.HomeCurrency = currency.Home
	e.HomeAmount = currency.ToHome(e.InputAmount, e.InputCurrency)

	if err := s.repo.Store(ctx, e); err != nil {
		return Expense{}, fmt.Errorf("failed to store expense: %w", err)
	}
	return e, nil
}

// Update replaces the whole record by ID, re-deriving the home amount.
// The returned expense is the stored record including the derived fields.
func (s *ServiceImpl) Update(ctx context.Context, e Expense) (Expense, bool, error) {
	e.HomeCurrency = currency.Home
	e.HomeAmount = currency.ToHome(e.InputAmount, e.InputCurrency)

	updated, err := s.repo.Update(ctx, e)
	if err != nil {
		return Expense{}, false, fmt.Errorf("failed to update expense: %w", err)
	}
	if !updated {
		return Expense{}, false, nil
	}
	return e, true, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete expense: %w", err)
	}
	return deleted, nil
}

// Filter returns the matching records together with the derived total, the
// sum of home-currency amounts over the filtered set. Payer and category are
// not validated against the registry here.
func (s *ServiceImpl) Filter(ctx context.Context, payerFilter, dateStart, dateEnd string) ([]Expense, decimal.Decimal, error) {
	expenses, err := s.repo.Filter(ctx, payerFilter, dateStart, dateEnd)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to filter expenses: %w", err)
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.HomeAmount)
	}
	return expenses, total, nil
}

package payer

import (
	"context"
	"slices"
)

type StubRepo struct {
	names   []string
	loadErr error
}

func NewStubRepo() *StubRepo {
	return &StubRepo{loadErr: ErrNotStored}
}

func (s *StubRepo) Load(ctx context.Context) ([]string, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return slices.Clone(s.names), nil
}

func (s *StubRepo) Store(ctx context.Context, names []string) error {
	s.names = slices.Clone(names)
	s.loadErr = nil
	return nil
}

func (s *StubRepo) FailLoadWith(err error) {
	s.loadErr = err
}

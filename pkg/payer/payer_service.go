package payer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Service manages the ordered list of payer names. A payer has no identity
// beyond its name: renaming substitutes the value in the registry and
// removing a payer never touches expense records that reference it.
type Service interface {
	GetAll(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name string) ([]string, error)
	Rename(ctx context.Context, oldName, newName string) ([]string, error)
	Remove(ctx context.Context, name string) ([]string, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

// GetAll returns the persisted registry, falling back to the default list
// when nothing is stored yet or the stored value cannot be read.
func (s *ServiceImpl) GetAll(ctx context.Context) ([]string, error) {
	names, err := s.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotStored) {
			log.Warnf("falling back to default payers: %v", err)
		}
		return slices.Clone(DefaultNames), nil
	}
	return names, nil
}

// Add appends a new payer. Empty and duplicate names are a no-op.
func (s *ServiceImpl) Add(ctx context.Context, name string) ([]string, error) {
	name = strings.TrimSpace(name)

	names, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if name == "" || slices.Contains(names, name) {
		return names, nil
	}

	names = append(names, name)
	if err := s.repo.Store(ctx, names); err != nil {
		return nil, fmt.Errorf("failed to store payer registry: %w", err)
	}
	return names, nil
}

// Rename substitutes oldName with newName. It is a no-op when newName is
// empty, unchanged, already taken by a different entry, or oldName is absent.
func (s *ServiceImpl) Rename(ctx context.Context, oldName, newName string) ([]string, error) {
	newName = strings.TrimSpace(newName)

	names, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if newName == "" || newName == oldName {
		return names, nil
	}
	if slices.Contains(names, newName) {
		log.Debugf("payer rename rejected: %q is already taken", newName)
		return names, nil
	}
	idx := slices.Index(names, oldName)
	if idx == -1 {
		return names, nil
	}

	names[idx] = newName
	if err := s.repo.Store(ctx, names); err != nil {
		return nil, fmt.Errorf("failed to store payer registry: %w", err)
	}
	return names, nil
}

// Remove removes the payer unconditionally. Callers showing the removed name
// in a selector are expected to reset it to the first remaining entry.
func (s *ServiceImpl) Remove(ctx context.Context, name string) ([]string, error) {
	names, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	idx := slices.Index(names, name)
	if idx == -1 {
		return names, nil
	}

	names = slices.Delete(names, idx, idx+1)
	if err := s.repo.Store(ctx, names); err != nil {
		return nil, fmt.Errorf("failed to store payer registry: %w", err)
	}
	return names, nil
}

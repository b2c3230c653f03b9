package geocode

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
)

// Service wraps a Resolver with the caller-side retry policy: a fixed number
// of attempts with exponential backoff, short-circuiting on the first
// success. A lookup that misses on every attempt reports ErrNotFound.
type Service interface {
	Resolve(ctx context.Context, locationName string) (LatLng, error)
}

type ServiceImpl struct {
	resolver       Resolver
	maxAttempts    int
	initialBackoff time.Duration
}

func NewService(resolver Resolver, maxAttempts int, initialBackoff time.Duration) *ServiceImpl {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &ServiceImpl{
		resolver:       resolver,
		maxAttempts:    maxAttempts,
		initialBackoff: initialBackoff,
	}
}

func (s *ServiceImpl) Resolve(ctx context.Context, locationName string) (LatLng, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.initialBackoff
	b.Multiplier = 2
	// Deterministic intervals: 200ms, 400ms, 800ms... with the defaults.
	b.RandomizationFactor = 0
	b.MaxInterval = time.Minute

	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(s.maxAttempts-1)), ctx)

	attempt := 0
	coords, err := backoff.RetryWithData(func() (LatLng, error) {
		attempt++
		coords, err := s.resolver.Resolve(ctx, locationName)
		if err != nil {
			log.Debugf("geocode attempt %d/%d for %q failed: %v", attempt, s.maxAttempts, locationName, err)
			return LatLng{}, err
		}
		return coords, nil
	}, policy)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return LatLng{}, ErrNotFound
		}
		return LatLng{}, fmt.Errorf("failed to resolve %q: %w", locationName, err)
	}

	return coords, nil
}

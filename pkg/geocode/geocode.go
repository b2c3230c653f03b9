package geocode

import (
	"context"
	"errors"
)

// ErrNotFound signals that a location name has no known coordinates.
var ErrNotFound = errors.New("location not found")

// LatLng is a map coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Resolver resolves a human-readable place name to coordinates. Lookups are
// asynchronous from the caller's point of view and may take a while; the
// context bounds a single attempt.
type Resolver interface {
	Resolve(ctx context.Context, locationName string) (LatLng, error)
}

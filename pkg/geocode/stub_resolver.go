package geocode

import "context"

// StubResolver answers from a caller-provided table with no delay, counting
// attempts per name.
type StubResolver struct {
	Table    map[string]LatLng
	Attempts map[string]int
}

func NewStubResolver(table map[string]LatLng) *StubResolver {
	return &StubResolver{
		Table:    table,
		Attempts: map[string]int{},
	}
}

func (r *StubResolver) Resolve(ctx context.Context, locationName string) (LatLng, error) {
	r.Attempts[locationName]++
	if coords, ok := r.Table[locationName]; ok {
		return coords, nil
	}
	return LatLng{}, ErrNotFound
}

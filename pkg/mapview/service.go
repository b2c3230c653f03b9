package mapview

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Minpi-0/traveler-app/internal/event_bus"
	"github.com/Minpi-0/traveler-app/pkg/geocode"
	"github.com/Minpi-0/traveler-app/pkg/itinerary"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// geocodeConcurrency bounds parallel lookups during a refresh.
const geocodeConcurrency = 4

type Service interface {
	Markers(ctx context.Context) ([]Marker, error)
	RefreshCoordinates(ctx context.Context) (int, error)
}

type ServiceImpl struct {
	itinerary itinerary.Service
	geocoder  geocode.Service

	mu    sync.Mutex
	cache []Marker
	dirty bool
}

// NewService builds the map view service. When a bus is given, the marker
// cache is invalidated on every itinerary change.
func NewService(itineraryService itinerary.Service, geocoder geocode.Service, bus *event_bus.EventBus) *ServiceImpl {
	s := &ServiceImpl{
		itinerary: itineraryService,
		geocoder:  geocoder,
		dirty:     true,
	}
	if bus != nil {
		bus.Subscribe(event_bus.ItineraryChanged, func(event_bus.Event) error {
			s.invalidate()
			return nil
		})
	}
	return s
}

// Markers returns one marker per activity with coordinates. Activities
// without coordinates are excluded. The result is cached until the
// itinerary changes.
func (s *ServiceImpl) Markers(ctx context.Context) ([]Marker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return s.cache, nil
	}

	days, err := s.itinerary.Days(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read itinerary: %w", err)
	}

	markers := make([]Marker, 0)
	for _, day := range days {
		for _, a := range day.Activities {
			if a.Coordinates == nil {
				continue
			}
			markers = append(markers, markerFor(a))
		}
	}

	s.cache = markers
	s.dirty = false
	return markers, nil
}

// RefreshCoordinates geocodes every activity that has a location but no
// coordinates yet and stores the results back into the itinerary. Lookups
// run concurrently, bounded by geocodeConcurrency. Locations the geocoder
// cannot resolve are left without coordinates; that is not an error. The
// number of activities that received coordinates is returned.
func (s *ServiceImpl) RefreshCoordinates(ctx context.Context) (int, error) {
	days, err := s.itinerary.Days(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read itinerary: %w", err)
	}

	var pending []itinerary.Activity
	for _, day := range days {
		for _, a := range day.Activities {
			if a.Location != "" && a.Coordinates == nil {
				pending = append(pending, a)
			}
		}
	}

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(geocodeConcurrency)

	var resolvedMu sync.Mutex
	resolved := 0
	for _, activity := range pending {
		g.Go(func() error {
			coords, err := s.geocoder.Resolve(groupCtx, activity.Location)
			if err != nil {
				if errors.Is(err, geocode.ErrNotFound) {
					log.Infof("location %q not found, activity %s stays without coordinates", activity.Location, activity.ID)
					return nil
				}
				return err
			}

			set, err := s.itinerary.SetCoordinates(groupCtx, activity.ID, activity.Date, activity.Location, coords)
			if err != nil {
				return err
			}
			if set {
				resolvedMu.Lock()
				resolved++
				resolvedMu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return resolved, fmt.Errorf("failed to refresh coordinates: %w", err)
	}
	return resolved, nil
}

func (s *ServiceImpl) invalidate() {
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()
}

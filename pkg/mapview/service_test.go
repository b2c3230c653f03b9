package mapview

import (
	"context"
	"testing"
	"time"

	"github.com/Minpi-0/traveler-app/internal/event_bus"
	"github.com/Minpi-0/traveler-app/pkg/geocode"
	"github.com/Minpi-0/traveler-app/pkg/itinerary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServiceTest(table map[string]geocode.LatLng) (*ServiceImpl, *itinerary.ServiceImpl, context.Context) {
	bus := event_bus.NewEventBus()
	itineraryService := itinerary.NewService(itinerary.NewMemoryRepository(), bus)
	geocoder := geocode.NewService(geocode.NewStubResolver(table), 3, time.Millisecond)
	return NewService(itineraryService, geocoder, bus), itineraryService, context.Background()
}

func TestService_MarkersExcludeActivitiesWithoutCoordinates(t *testing.T) {
	s, itineraryService, ctx := setupServiceTest(nil)

	_, err := itineraryService.AddOrUpdate(ctx, itinerary.Activity{
		Date:        "2025-11-05",
		Time:        "12:00",
		Icon:        itinerary.IconFood,
		Description: "Lunch",
	}, false, "")
	require.NoError(t, err)

	located, err := itineraryService.AddOrUpdate(ctx, itinerary.Activity{
		Date:        "2025-11-05",
		Time:        "19:00",
		Icon:        itinerary.IconFood,
		Description: "night market",
		Location:    "士林夜市",
		Coordinates: &geocode.LatLng{Lat: 25.0878, Lng: 121.5241},
	}, false, "")
	require.NoError(t, err)

	markers, err := s.Markers(ctx)
	require.NoError(t, err)
	require.Len(t, markers, 1)
	assert.Equal(t, located.ID, markers[0].ID)
	assert.Equal(t, 25.0878, markers[0].Lat)
	assert.Equal(t, "night market 19:00 @ 士林夜市", markers[0].Label)
}

func TestService_MarkerCacheInvalidatedByItineraryChanges(t *testing.T) {
	s, itineraryService, ctx := setupServiceTest(nil)

	markers, err := s.Markers(ctx)
	require.NoError(t, err)
	assert.Empty(t, markers)

	_, err = itineraryService.AddOrUpdate(ctx, itinerary.Activity{
		Date:        "2025-11-05",
		Time:        "10:00",
		Icon:        itinerary.IconSight,
		Description: "tower",
		Location:    "台北101",
		Coordinates: &geocode.LatLng{Lat: 25.0340, Lng: 121.5645},
	}, false, "")
	require.NoError(t, err)

	markers, err = s.Markers(ctx)
	require.NoError(t, err)
	assert.Len(t, markers, 1)
}

func TestService_RefreshCoordinates(t *testing.T) {
	s, itineraryService, ctx := setupServiceTest(map[string]geocode.LatLng{
		"士林夜市": {Lat: 25.0878, Lng: 121.5241},
		"台北101": {Lat: 25.0340, Lng: 121.5645},
	})

	add := func(timeOfDay, description, location string) itinerary.Activity {
		a, err := itineraryService.AddOrUpdate(ctx, itinerary.Activity{
			Date:        "2025-11-05",
			Time:        timeOfDay,
			Icon:        itinerary.IconSight,
			Description: description,
			Location:    location,
		}, false, "")
		require.NoError(t, err)
		return a
	}

	add("10:00", "tower", "台北101")
	add("19:00", "night market", "士林夜市")
	add("21:00", "mystery stop", "XYZ")
	add("12:00", "lunch somewhere", "") // no location, not geocoded

	resolved, err := s.RefreshCoordinates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, resolved)

	markers, err := s.Markers(ctx)
	require.NoError(t, err)
	assert.Len(t, markers, 2)

	// The unknown location stays without coordinates and off the map.
	days, err := itineraryService.Days(ctx)
	require.NoError(t, err)
	for _, a := range days[0].Activities {
		if a.Description == "mystery stop" {
			assert.Nil(t, a.Coordinates)
		}
	}
}

func TestService_RefreshIsIdempotent(t *testing.T) {
	s, itineraryService, ctx := setupServiceTest(map[string]geocode.LatLng{
		"台北101": {Lat: 25.0340, Lng: 121.5645},
	})

	_, err := itineraryService.AddOrUpdate(ctx, itinerary.Activity{
		Date:        "2025-11-05",
		Time:        "10:00",
		Icon:        itinerary.IconSight,
		Description: "tower",
		Location:    "台北101",
	}, false, "")
	require.NoError(t, err)

	resolved, err := s.RefreshCoordinates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, resolved)

	// Everything already has coordinates, nothing left to do.
	resolved, err = s.RefreshCoordinates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, resolved)
}

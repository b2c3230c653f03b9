package itinerary

import (
	"context"
	"testing"

	"github.com/Minpi-0/traveler-app/internal/event_bus"
	"github.com/Minpi-0/traveler-app/pkg/geocode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServiceTest() (*ServiceImpl, *MemoryRepository, context.Context) {
	repo := NewMemoryRepository()
	return NewService(repo, event_bus.NewEventBus()), repo, context.Background()
}

func mustAdd(t *testing.T, s *ServiceImpl, ctx context.Context, date, timeOfDay, description string) Activity {
	t.Helper()
	created, err := s.AddOrUpdate(ctx, Activity{
		Date:        date,
		Time:        timeOfDay,
		Icon:        IconSight,
		Description: description,
	}, false, "")
	require.NoError(t, err)
	return created
}

func TestService_AddSortsWithinDay(t *testing.T) {
	s, _, ctx := setupServiceTest()

	mustAdd(t, s, ctx, "2025-11-05", "09:00", "breakfast walk")
	mustAdd(t, s, ctx, "2025-11-05", "19:00", "night market")
	mustAdd(t, s, ctx, "2025-11-05", "12:00", "Lunch")

	days, err := s.Days(ctx)
	require.NoError(t, err)
	require.Len(t, days, 1)

	got := make([]string, 0, 3)
	for _, a := range days[0].Activities {
		got = append(got, a.Time)
	}
	assert.Equal(t, []string{"09:00", "12:00", "19:00"}, got)
}

func TestService_DaysOrderedAscending(t *testing.T) {
	s, _, ctx := setupServiceTest()

	mustAdd(t, s, ctx, "2025-11-07", "10:00", "later day")
	mustAdd(t, s, ctx, "2025-11-05", "10:00", "earlier day")
	mustAdd(t, s, ctx, "2025-11-06", "10:00", "middle day")

	days, err := s.Days(ctx)
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, "2025-11-05", days[0].Date)
	assert.Equal(t, "2025-11-06", days[1].Date)
	assert.Equal(t, "2025-11-07", days[2].Date)
}

func TestService_EqualTimesKeepUpsertOrder(t *testing.T) {
	s, _, ctx := setupServiceTest()

	first := mustAdd(t, s, ctx, "2025-11-05", "12:00", "first at noon")
	second := mustAdd(t, s, ctx, "2025-11-05", "12:00", "second at noon")

	days, err := s.Days(ctx)
	require.NoError(t, err)
	require.Len(t, days[0].Activities, 2)
	assert.Equal(t, first.ID, days[0].Activities[0].ID)
	assert.Equal(t, second.ID, days[0].Activities[1].ID)
}

func TestService_EditReplacesById(t *testing.T) {
	s, _, ctx := setupServiceTest()

	created := mustAdd(t, s, ctx, "2025-11-05", "12:00", "Lunch")

	created.Time = "13:30"
	created.Description = "Late lunch"
	_, err := s.AddOrUpdate(ctx, created, true, "")
	require.NoError(t, err)

	days, err := s.Days(ctx)
	require.NoError(t, err)
	require.Len(t, days, 1)
	require.Len(t, days[0].Activities, 1)
	assert.Equal(t, "13:30", days[0].Activities[0].Time)
	assert.Equal(t, "Late lunch", days[0].Activities[0].Description)
}

func TestService_MoveAcrossDays(t *testing.T) {
	s, repo, ctx := setupServiceTest()

	moved := mustAdd(t, s, ctx, "2025-11-05", "12:00", "Lunch")
	mustAdd(t, s, ctx, "2025-11-05", "09:00", "morning stroll")
	mustAdd(t, s, ctx, "2025-11-06", "09:00", "museum")

	before, err := repo.TotalActivities(ctx)
	require.NoError(t, err)

	moved.Date = "2025-11-06"
	_, err = s.AddOrUpdate(ctx, moved, true, "2025-11-05")
	require.NoError(t, err)

	days, err := s.Days(ctx)
	require.NoError(t, err)
	require.Len(t, days, 2)

	// Origin day no longer lists the activity
	for _, a := range days[0].Activities {
		assert.NotEqual(t, moved.ID, a.ID)
	}
	// Destination lists exactly one activity with that id, in time order
	count := 0
	for _, a := range days[1].Activities {
		if a.ID == moved.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"09:00", "12:00"}, []string{days[1].Activities[0].Time, days[1].Activities[1].Time})

	// Total activity count across the store is unchanged
	after, err := repo.TotalActivities(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestService_MoveOutOfLastActivityPrunesDay(t *testing.T) {
	s, _, ctx := setupServiceTest()

	moved := mustAdd(t, s, ctx, "2025-11-05", "12:00", "only entry")
	mustAdd(t, s, ctx, "2025-11-06", "09:00", "museum")

	moved.Date = "2025-11-06"
	_, err := s.AddOrUpdate(ctx, moved, true, "2025-11-05")
	require.NoError(t, err)

	days, err := s.Days(ctx)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "2025-11-06", days[0].Date)
}

func TestService_MoveToNewDayCreatesBucketInOrder(t *testing.T) {
	s, _, ctx := setupServiceTest()

	moved := mustAdd(t, s, ctx, "2025-11-06", "12:00", "flexible plan")
	mustAdd(t, s, ctx, "2025-11-06", "09:00", "fixed plan")

	moved.Date = "2025-11-04"
	_, err := s.AddOrUpdate(ctx, moved, true, "2025-11-06")
	require.NoError(t, err)

	days, err := s.Days(ctx)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2025-11-04", days[0].Date)
	require.Len(t, days[0].Activities, 1)
	assert.Equal(t, moved.ID, days[0].Activities[0].ID)
}

func TestService_RemoveLastActivityPrunesDay(t *testing.T) {
	s, _, ctx := setupServiceTest()

	created := mustAdd(t, s, ctx, "2025-11-05", "12:00", "Lunch")

	removed, err := s.Remove(ctx, created.ID, "2025-11-05")
	require.NoError(t, err)
	assert.True(t, removed)

	days, err := s.Days(ctx)
	require.NoError(t, err)
	assert.Empty(t, days)

	removed, err = s.Remove(ctx, created.ID, "2025-11-05")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestService_Validation(t *testing.T) {
	s, _, ctx := setupServiceTest()

	_, err := s.AddOrUpdate(ctx, Activity{Date: "not-a-date", Time: "12:00", Icon: IconFood}, false, "")
	assert.Error(t, err)

	_, err = s.AddOrUpdate(ctx, Activity{Date: "2025-11-05", Time: "25:99", Icon: IconFood}, false, "")
	assert.Error(t, err)

	_, err = s.AddOrUpdate(ctx, Activity{Date: "2025-11-05", Time: "12:00", Icon: Icon("sparkles")}, false, "")
	assert.Error(t, err)

	_, err = s.AddOrUpdate(ctx, Activity{Date: "2025-11-05", Time: "12:00", Icon: IconFood, ID: ""}, true, "")
	assert.Error(t, err, "edit requires an id")
}

func TestService_SetCoordinatesGuardsStaleResults(t *testing.T) {
	s, _, ctx := setupServiceTest()

	created, err := s.AddOrUpdate(ctx, Activity{
		Date:        "2025-11-05",
		Time:        "19:00",
		Icon:        IconFood,
		Description: "night market",
		Location:    "士林夜市",
	}, false, "")
	require.NoError(t, err)

	// A result for the current location text is applied.
	set, err := s.SetCoordinates(ctx, created.ID, created.Date, "士林夜市", geocode.LatLng{Lat: 25.0878, Lng: 121.5241})
	require.NoError(t, err)
	assert.True(t, set)

	// A late result for a location the user has since changed is discarded.
	created.Location = "饒河街夜市"
	created.Coordinates = nil
	_, err = s.AddOrUpdate(ctx, created, true, "")
	require.NoError(t, err)

	set, err = s.SetCoordinates(ctx, created.ID, created.Date, "士林夜市", geocode.LatLng{Lat: 25.0878, Lng: 121.5241})
	require.NoError(t, err)
	assert.False(t, set)

	days, err := s.Days(ctx)
	require.NoError(t, err)
	assert.Nil(t, days[0].Activities[0].Coordinates)
}

package itinerary

import (
	"context"
	"sort"
	"sync"

	"github.com/Minpi-0/traveler-app/pkg/geocode"
)

// Repository holds the itinerary: day buckets ordered ascending by date,
// pruned of empty days after every mutation. Like the ledger, it lives in
// memory only.
type Repository interface {
	Days(ctx context.Context) ([]Day, error)
	AddOrUpdate(ctx context.Context, activity Activity, isEdit bool, movedFrom string) error
	Remove(ctx context.Context, id, date string) (bool, error)
	SetCoordinates(ctx context.Context, id, date, location string, coords geocode.LatLng) (bool, error)
	TotalActivities(ctx context.Context) (int, error)
}

type MemoryRepository struct {
	mu   sync.RWMutex
	days []Day
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Days returns a copy of the day buckets so callers cannot mutate the store.
func (r *MemoryRepository) Days(ctx context.Context) ([]Day, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	days := make([]Day, len(r.days))
	for i, day := range r.days {
		days[i] = Day{
			Date:       day.Date,
			Activities: append([]Activity(nil), day.Activities...),
		}
	}
	return days, nil
}

// AddOrUpdate upserts the activity into its day bucket. When movedFrom names
// a different date, the activity is relocated: removed from the origin bucket
// (pruning it if it becomes empty) and upserted into the destination. The
// whole relocation happens under one lock, so the activity is never visible
// in two buckets or in none.
func (r *MemoryRepository) AddOrUpdate(ctx context.Context, activity Activity, isEdit bool, movedFrom string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if movedFrom != "" && movedFrom != activity.Date {
		r.removeLocked(activity.ID, movedFrom)
	}

	day := r.dayLocked(activity.Date)
	if day == nil {
		day = r.insertDayLocked(activity.Date)
	}

	replaced := false
	if isEdit {
		for i := range day.Activities {
			if day.Activities[i].ID == activity.ID {
				day.Activities[i] = activity
				replaced = true
				break
			}
		}
	}
	if !replaced {
		day.Activities = append(day.Activities, activity)
	}

	sortActivities(day.Activities)
	return nil
}

// Remove removes the activity from the named day bucket and prunes the
// bucket if it becomes empty.
func (r *MemoryRepository) Remove(ctx context.Context, id, date string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.removeLocked(id, date), nil
}

// SetCoordinates stores geocoded coordinates on the activity, but only when
// the activity still exists with the same location text. A lookup that
// finishes after the location was edited (or the activity moved or deleted)
// is silently discarded instead of overwriting newer state.
func (r *MemoryRepository) SetCoordinates(ctx context.Context, id, date, location string, coords geocode.LatLng) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	day := r.dayLocked(date)
	if day == nil {
		return false, nil
	}
	for i := range day.Activities {
		if day.Activities[i].ID == id {
			if day.Activities[i].Location != location {
				return false, nil
			}
			c := coords
			day.Activities[i].Coordinates = &c
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) TotalActivities(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, day := range r.days {
		total += len(day.Activities)
	}
	return total, nil
}

func (r *MemoryRepository) removeLocked(id, date string) bool {
	for dayIdx := range r.days {
		if r.days[dayIdx].Date != date {
			continue
		}
		activities := r.days[dayIdx].Activities
		for i := range activities {
			if activities[i].ID == id {
				r.days[dayIdx].Activities = append(activities[:i], activities[i+1:]...)
				if len(r.days[dayIdx].Activities) == 0 {
					r.days = append(r.days[:dayIdx], r.days[dayIdx+1:]...)
				}
				return true
			}
		}
		return false
	}
	return false
}

func (r *MemoryRepository) dayLocked(date string) *Day {
	for i := range r.days {
		if r.days[i].Date == date {
			return &r.days[i]
		}
	}
	return nil
}

// insertDayLocked creates an empty bucket for date, keeping the day list
// ordered ascending by the date key.
func (r *MemoryRepository) insertDayLocked(date string) *Day {
	idx := sort.Search(len(r.days), func(i int) bool {
		return r.days[i].Date >= date
	})
	r.days = append(r.days, Day{})
	copy(r.days[idx+1:], r.days[idx:])
	r.days[idx] = Day{Date: date}
	return &r.days[idx]
}

// sortActivities orders a day's activities by time ascending. The sort is
// stable: activities sharing a time keep the order the upsert produced.
func sortActivities(activities []Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Time < activities[j].Time
	})
}

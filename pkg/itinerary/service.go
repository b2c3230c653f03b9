package itinerary

import (
	"context"
	"fmt"
	"time"

	"github.com/Minpi-0/traveler-app/internal/event_bus"
	"github.com/Minpi-0/traveler-app/pkg/calendar"
	"github.com/Minpi-0/traveler-app/pkg/geocode"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const timeLayout = "15:04"

type Service interface {
	Days(ctx context.Context) ([]Day, error)
	AddOrUpdate(ctx context.Context, activity Activity, isEdit bool, movedFrom string) (Activity, error)
	Remove(ctx context.Context, id, date string) (bool, error)
	SetCoordinates(ctx context.Context, id, date, location string, coords geocode.LatLng) (bool, error)
}

type ServiceImpl struct {
	repo Repository
	bus  *event_bus.EventBus
}

func NewService(repo Repository, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

func (s *ServiceImpl) Days(ctx context.Context) ([]Day, error) {
	return s.repo.Days(ctx)
}

// AddOrUpdate validates the activity, assigns an ID on first insert, and
// upserts it into the store. A movedFrom date different from the activity's
// date relocates it between day buckets in one step.
func (s *ServiceImpl) AddOrUpdate(ctx context.Context, activity Activity, isEdit bool, movedFrom string) (Activity, error) {
	if err := validate(activity); err != nil {
		return Activity{}, err
	}
	if movedFrom != "" {
		if _, err := calendar.ParseDateKey(movedFrom); err != nil {
			return Activity{}, fmt.Errorf("invalid movedFrom date %q: %w", movedFrom, err)
		}
	}
	if !isEdit {
		activity.ID = uuid.New().String()
	} else if activity.ID == "" {
		return Activity{}, fmt.Errorf("activity id is required for edits")
	}

	if err := s.repo.AddOrUpdate(ctx, activity, isEdit, movedFrom); err != nil {
		return Activity{}, fmt.Errorf("failed to store activity: %w", err)
	}

	s.publishChanged(ctx, activity.ID, activity.Date)
	return activity, nil
}

func (s *ServiceImpl) Remove(ctx context.Context, id, date string) (bool, error) {
	removed, err := s.repo.Remove(ctx, id, date)
	if err != nil {
		return false, fmt.Errorf("failed to remove activity: %w", err)
	}
	if removed {
		s.publishChanged(ctx, id, date)
	}
	return removed, nil
}

func (s *ServiceImpl) SetCoordinates(ctx context.Context, id, date, location string, coords geocode.LatLng) (bool, error) {
	set, err := s.repo.SetCoordinates(ctx, id, date, location, coords)
	if err != nil {
		return false, fmt.Errorf("failed to set coordinates: %w", err)
	}
	if set {
		s.publishChanged(ctx, id, date)
	}
	return set, nil
}

func (s *ServiceImpl) publishChanged(ctx context.Context, id, date string) {
	if s.bus == nil {
		return
	}
	err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.ItineraryChanged, event_bus.ItineraryChangedPayload{
		ActivityID: id,
		Date:       date,
	}))
	if err != nil {
		log.Errorf("failed to publish itinerary change: %v", err)
	}
}

func validate(activity Activity) error {
	if _, err := calendar.ParseDateKey(activity.Date); err != nil {
		return fmt.Errorf("invalid activity date %q: %w", activity.Date, err)
	}
	if _, err := time.Parse(timeLayout, activity.Time); err != nil {
		return fmt.Errorf("invalid activity time %q: %w", activity.Time, err)
	}
	if !activity.Icon.IsValid() {
		return fmt.Errorf("unknown icon %q", activity.Icon)
	}
	return nil
}

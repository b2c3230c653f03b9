package event_bus

const (
	// ItineraryChanged is published after any itinerary mutation
	// (activity added, edited, moved, removed, or coordinates set).
	ItineraryChanged EventType = "itinerary.changed"
)

type ItineraryChangedPayload struct {
	ActivityID string
	Date       string
}

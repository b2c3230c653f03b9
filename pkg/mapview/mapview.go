package mapview

import (
	"fmt"

	"github.com/Minpi-0/traveler-app/pkg/itinerary"
)

// Marker is one map point handed to the external map-rendering collaborator:
// one marker per itinerary activity with coordinates. Zoom and centering are
// the collaborator's business; it is expected to refit to the markers when
// the set changes.
type Marker struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Time        string  `json:"time"`
	Location    string  `json:"location"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Label       string  `json:"label"`
}

func markerFor(a itinerary.Activity) Marker {
	return Marker{
		ID:          a.ID,
		Description: a.Description,
		Time:        a.Time,
		Location:    a.Location,
		Lat:         a.Coordinates.Lat,
		Lng:         a.Coordinates.Lng,
		Label:       fmt.Sprintf("%s %s @ %s", a.Description, a.Time, a.Location),
	}
}

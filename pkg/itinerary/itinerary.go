package itinerary

import (
	"github.com/Minpi-0/traveler-app/pkg/geocode"
)

// Icon is the closed set of activity icon tags the UI can render.
type Icon string

const (
	IconFood      Icon = "food"
	IconSight     Icon = "sight"
	IconTransport Icon = "transport"
	IconHotel     Icon = "hotel"
	IconShopping  Icon = "shopping"
	IconOther     Icon = "other"
)

// IsValid reports whether i belongs to the known icon set.
func (i Icon) IsValid() bool {
	switch i {
	case IconFood, IconSight, IconTransport, IconHotel, IconShopping, IconOther:
		return true
	}
	return false
}

// Activity is a single itinerary entry. An activity belongs to exactly one
// day bucket at a time; Date identifies that bucket. Coordinates stay nil
// until the location has been geocoded.
type Activity struct {
	ID          string
	Date        string // canonical YYYY-MM-DD key of the owning day
	Time        string // HH:MM
	Icon        Icon
	Description string
	Location    string
	Coordinates *geocode.LatLng
}

// Day is the per-date bucket holding that day's activities ordered by
// time of day. Days with zero activities are pruned from the store.
type Day struct {
	Date       string
	Activities []Activity
}

package geocode

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// locations is the fixed lookup table the simulated geocoder answers from.
// Names match exactly after trimming surrounding whitespace.
var locations = map[string]LatLng{
	"士林夜市":    {Lat: 25.0878, Lng: 121.5241},
	"台北101":   {Lat: 25.0340, Lng: 121.5645},
	"西門町":     {Lat: 25.0421, Lng: 121.5074},
	"故宮博物院":   {Lat: 25.1024, Lng: 121.5485},
	"九份老街":    {Lat: 25.1097, Lng: 121.8442},
	"中正紀念堂":   {Lat: 25.0347, Lng: 121.5216},
	"龍山寺":     {Lat: 25.0372, Lng: 121.4999},
	"淡水老街":    {Lat: 25.1677, Lng: 121.4406},
	"象山步道":    {Lat: 25.0273, Lng: 121.5708},
	"饒河街夜市":   {Lat: 25.0509, Lng: 121.5775},
	"Taipei Main Station": {Lat: 25.0478, Lng: 121.5170},
}

// StaticResolver simulates a flaky external geocoding service: a fixed table
// behind an artificial delay.
type StaticResolver struct {
	delay time.Duration
}

func NewStaticResolver(delay time.Duration) *StaticResolver {
	return &StaticResolver{delay: delay}
}

// Resolve waits the simulated latency, then answers from the fixed table.
func (r *StaticResolver) Resolve(ctx context.Context, locationName string) (LatLng, error) {
	name := strings.TrimSpace(locationName)

	timer := time.NewTimer(r.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return LatLng{}, ctx.Err()
	case <-timer.C:
	}

	coords, ok := locations[name]
	if !ok {
		log.Debugf("geocode lookup missed for %q", name)
		return LatLng{}, ErrNotFound
	}
	return coords, nil
}

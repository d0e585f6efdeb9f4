package service

import (
	"context"

	"github.com/paulmach/orb"
)

// Geocoder resolves a road address to a coordinate.
type Geocoder interface {
	// Geocode returns the position of roadAddress with X = longitude and Y = latitude.
	// A rejected request returns ErrGeocodeLookupFailed, an unreadable payload ErrCoordinatesUnparsable.
	Geocode(ctx context.Context, roadAddress string) (orb.Point, error)
}

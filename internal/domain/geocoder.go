package domain

import (
	"context"
	"errors"
	"fmt"
)

// ErrLocationNotFound is returned when a place name does not resolve to coordinates.
var ErrLocationNotFound = errors.New("location not found")

// Location is a forecast point.
type Location struct {
	Name      string  `json:"name,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Key returns a stable cache key for the location, rounded to roughly 10 m.
func (l Location) Key() string {
	return fmt.Sprintf("%.4f,%.4f", l.Latitude, l.Longitude)
}

// GeocodingResult contains location data returned by a geocoding provider.
type GeocodingResult struct {
	Lat      float64
	Lon      float64
	Name     string
	Country  string
	Timezone string
}

// Empty reports whether the provider returned no match.
func (r GeocodingResult) Empty() bool {
	return r.Name == "" && r.Lat == 0 && r.Lon == 0
}

// Geocoder resolves place names to coordinates.
type Geocoder interface {
	ForwardGeocode(ctx context.Context, name string) (GeocodingResult, error)
}

// ResolveLocation geocodes name into a Location. An empty provider result
// yields ErrLocationNotFound.
func ResolveLocation(ctx context.Context, geocoder Geocoder, name string) (Location, error) {
	if geocoder == nil {
		return Location{}, errors.New("geocoding is not configured")
	}
	result, err := geocoder.ForwardGeocode(ctx, name)
	if err != nil {
		return Location{}, fmt.Errorf("geocode %q: %w", name, err)
	}
	if result.Empty() {
		return Location{}, fmt.Errorf("%w: %q", ErrLocationNotFound, name)
	}
	return Location{Name: result.Name, Latitude: result.Lat, Longitude: result.Lon}, nil
}

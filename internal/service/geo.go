package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-natours/models"
)

const (
	UnitMiles      = "mi"
	UnitKilometers = "km"

	earthRadiusMi = 3963.2
	earthRadiusKm = 6378.1
)

// ParseLatLng parses "lat,lng" as sent in the geo routes.
func ParseLatLng(s string) (models.Location, error) {
	latRaw, lngRaw, ok := strings.Cut(s, ",")
	if !ok {
		return models.Location{}, ErrInvalidLocation
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	if err != nil || lat < -90 || lat > 90 {
		return models.Location{}, fmt.Errorf("%w: latitude %q", ErrInvalidLocation, latRaw)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngRaw), 64)
	if err != nil || lng < -180 || lng > 180 {
		return models.Location{}, fmt.Errorf("%w: longitude %q", ErrInvalidLocation, lngRaw)
	}

	return models.Location{Lat: lat, Lng: lng}, nil
}

func earthRadius(unit string) (float64, error) {
	switch unit {
	case UnitMiles:
		return earthRadiusMi, nil
	case UnitKilometers:
		return earthRadiusKm, nil
	default:
		return 0, ErrInvalidUnit
	}
}

// haversine returns the central angle between a and b in radians.
func haversine(a, b models.Location) float64 {
	const rad = math.Pi / 180

	lat1, lat2 := a.Lat*rad, b.Lat*rad
	dLat := (b.Lat - a.Lat) * rad
	dLng := (b.Lng - a.Lng) * rad

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * math.Asin(math.Min(1, math.Sqrt(h)))
}

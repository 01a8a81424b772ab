package domain

import (
	"errors"
	"math"
	"strconv"
)

// ErrInvalidCoordinates is returned when a coordinate pair is missing,
// non-finite or outside the WGS84 degree ranges.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Immutable geographic coordinates (longitude, latitude).
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat] for map library compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Validate reports ErrInvalidCoordinates for NaN, infinite or out of range values.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Lon) || math.IsNaN(c.Lat) || math.IsInf(c.Lon, 0) || math.IsInf(c.Lat, 0) {
		return ErrInvalidCoordinates
	}
	if c.Lon < -180 || c.Lon > 180 || c.Lat < -90 || c.Lat > 90 {
		return ErrInvalidCoordinates
	}
	return nil
}

// Key returns the grouping key "lon,lat".
//
// Each component uses the shortest decimal form that round-trips, so
// numerically equal pairs always collide. Negative zero is folded into zero.
func (c Coordinates) Key() string {
	return formatDegree(c.Lon) + "," + formatDegree(c.Lat)
}

func formatDegree(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CoordinatesFromList builds Coordinates from a [lon, lat] slice.
func CoordinatesFromList(v []float64) (Coordinates, error) {
	if len(v) != 2 {
		return Coordinates{}, ErrInvalidCoordinates
	}
	c := Coordinates{Lon: v[0], Lat: v[1]}
	if err := c.Validate(); err != nil {
		return Coordinates{}, err
	}
	return c, nil
}

package geo

import (
	"errors"
	"fmt"
	"math"
)

// Flat-earth scale factors, valid for courses spanning a few hundred meters.
const (
	// LatDegreesPerMeter is treated as constant at every latitude.
	LatDegreesPerMeter = 0.0008983 / 100
	// MetersPerDegreeLon is the length of one degree of longitude at the equator.
	MetersPerDegreeLon = 111320.0
)

// ErrInvalidReference is returned when the reference latitude leaves no
// usable longitude scale (|lat| >= 90).
var ErrInvalidReference = errors.New("invalid reference coordinate")

// FlatEarth converts meters to degrees with fixed scale factors around a reference.
type FlatEarth struct {
	LatDegreesPerMeter float64
	MetersPerDegreeLon float64
}

// DefaultModel is the model used by Translate.
var DefaultModel = FlatEarth{
	LatDegreesPerMeter: LatDegreesPerMeter,
	MetersPerDegreeLon: MetersPerDegreeLon,
}

// Translate converts local points to geographic points with DefaultModel.
func Translate(ref GeoPoint, points []LocalPoint) ([]GeoPoint, error) {
	return DefaultModel.Translate(ref, points)
}

// Translate converts an ordered path of local points into geographic points.
//
// The first local point is the origin of the path and maps to ref itself.
// Every following point is placed by applying its displacement from the
// previous local point to the previous geographic point, so the result has
// the same length and order as points.
//
// The longitude scale is computed once from the reference latitude and
// reused for every step; paths that span a large latitude range accumulate
// a small error from that.
func (m FlatEarth) Translate(ref GeoPoint, points []LocalPoint) ([]GeoPoint, error) {
	if math.Abs(ref.Lat) >= 90 {
		return nil, fmt.Errorf("%w: latitude %v has no longitude scale", ErrInvalidReference, ref.Lat)
	}

	out := make([]GeoPoint, 0, len(points))
	if len(points) == 0 {
		return out, nil
	}

	lonScale := m.MetersPerDegreeLon * math.Cos(ref.Lat*math.Pi/180)

	out = append(out, ref)
	for i := 1; i < len(points); i++ {
		dx := points[i].X - points[i-1].X
		dy := points[i].Y - points[i-1].Y

		// Rounded before the sum so results do not depend on FMA fusion.
		dLat := float64(dy * m.LatDegreesPerMeter)
		dLon := dx / lonScale

		prev := out[i-1]
		out = append(out, GeoPoint{
			Lat: prev.Lat + dLat,
			Lon: prev.Lon + dLon,
		})
	}

	return out, nil
}

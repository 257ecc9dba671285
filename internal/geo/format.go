package geo

import (
	"strconv"
	"strings"
)

// FormatDegrees renders a coordinate with the shortest exact decimal form,
// always keeping a fractional part (50 becomes "50.0").
func FormatDegrees(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".IN") {
		s += ".0"
	}
	return s
}

// FormatMeters renders a planar offset without a trailing ".0".
func FormatMeters(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (p LocalPoint) String() string {
	return "(" + FormatMeters(p.X) + ", " + FormatMeters(p.Y) + ")"
}

func (p GeoPoint) String() string {
	return "(" + FormatDegrees(p.Lat) + ", " + FormatDegrees(p.Lon) + ")"
}

// StageName returns the waypoint label for the zero-based index i.
func StageName(i int) string {
	return "Stage " + strconv.Itoa(i+1)
}

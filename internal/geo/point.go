// Package geo handles local and geographic points and the conversion between them.
package geo

// LocalPoint is a planar position in meters, X to the east and Y to the north.
type LocalPoint struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// GeoPoint is a WGS84 position in decimal degrees.
type GeoPoint struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

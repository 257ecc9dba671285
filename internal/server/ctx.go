package server

import (
	"bytes"
	"encoding/json"

	"github.com/woozymasta/stagesmap/internal/config"
	"github.com/woozymasta/stagesmap/internal/geo"
	"github.com/woozymasta/stagesmap/internal/kml"
	"github.com/woozymasta/stagesmap/internal/preview"

	"github.com/rs/zerolog/log"
)

// Waypoint is one stage as served by the waypoints API.
type Waypoint struct {
	Stage int     `json:"stage"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// ServerContext holds the rendered course shared by all handlers.
// Everything is built once in NewServerContext and never modified.
type ServerContext struct {
	Plan      config.Plan
	Points    []geo.GeoPoint
	KMLPath   string
	KML       []byte
	GeoJSON   []byte
	Waypoints []byte
	Preview   []byte
}

// NewServerContext translates the plan and renders every representation
// served over HTTP. kmlPath is served from disk instead of the in-memory
// document when it exists.
func NewServerContext(plan config.Plan, kmlPath string, previewSize int) (*ServerContext, error) {
	log.Info().
		Str("name", plan.Name).
		Int("points", len(plan.Points)).
		Msg("Initializing server context")

	points, err := geo.Translate(plan.Reference, plan.Points)
	if err != nil {
		return nil, err
	}

	doc, err := kml.Marshal(kml.Document{Name: plan.Name, Points: points}, false)
	if err != nil {
		return nil, err
	}

	fc, err := json.Marshal(geo.FeatureCollectionFromPoints(points))
	if err != nil {
		return nil, err
	}

	wps := make([]Waypoint, 0, len(points))
	for i, p := range points {
		wps = append(wps, Waypoint{
			Stage: i + 1,
			Lat:   p.Lat,
			Lon:   p.Lon,
			X:     plan.Points[i].X,
			Y:     plan.Points[i].Y,
		})
	}
	wpsJSON, err := json.Marshal(wps)
	if err != nil {
		return nil, err
	}

	var img bytes.Buffer
	if err := preview.Encode(&img, preview.Render(points, previewSize)); err != nil {
		return nil, err
	}

	log.Debug().
		Int("kml_bytes", len(doc)).
		Int("geojson_bytes", len(fc)).
		Int("preview_bytes", img.Len()).
		Msg("Course rendered")

	return &ServerContext{
		Plan:      plan,
		Points:    points,
		KMLPath:   kmlPath,
		KML:       doc,
		GeoJSON:   fc,
		Waypoints: wpsJSON,
		Preview:   img.Bytes(),
	}, nil
}

// Package config holds the course plan: the reference coordinate and the
// local waypoints that are translated from it.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/woozymasta/stagesmap/internal/geo"
	"github.com/woozymasta/stagesmap/internal/kml"

	"gopkg.in/yaml.v3"
)

// ErrInvalidPlan is returned for plan files with malformed point entries.
var ErrInvalidPlan = errors.New("invalid plan")

// Plan is everything one run needs. The first point is the origin of the
// course and sits on Reference; every other point is in meters from it.
type Plan struct {
	Name      string
	Reference geo.GeoPoint
	Points    []geo.LocalPoint
}

// planFile is the YAML layout, with points written as [x, y] pairs.
type planFile struct {
	Name      string       `yaml:"name,omitempty"`
	Reference geo.GeoPoint `yaml:"reference"`
	Points    [][]float64  `yaml:"points"`
}

// Default returns the built-in flight-test course around the center of the field.
func Default() Plan {
	return Plan{
		Name:      kml.DefaultName,
		Reference: geo.GeoPoint{Lat: 50.10217575, Lon: -110.73922868478785},
		Points: []geo.LocalPoint{
			{X: 0, Y: 0},
			{X: 0, Y: 100},
			{X: -60, Y: 100},
			{X: -60, Y: -100},
			{X: 0, Y: -100},
			{X: 0, Y: 100},
			{X: 60, Y: 100},
			{X: 60, Y: -100},
		},
	}
}

// Load reads and parses the YAML plan file from the specified path.
func Load(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, err
	}

	return Parse(data)
}

// Parse decodes a YAML plan. A missing name falls back to kml.DefaultName.
func Parse(data []byte) (Plan, error) {
	var f planFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Plan{}, err
	}

	plan := Plan{
		Name:      f.Name,
		Reference: f.Reference,
		Points:    make([]geo.LocalPoint, 0, len(f.Points)),
	}
	if plan.Name == "" {
		plan.Name = kml.DefaultName
	}

	for i, p := range f.Points {
		if len(p) != 2 {
			return Plan{}, fmt.Errorf("%w: point %d has %d values, want [x, y]", ErrInvalidPlan, i+1, len(p))
		}
		plan.Points = append(plan.Points, geo.LocalPoint{X: p[0], Y: p[1]})
	}

	return plan, nil
}

// MarshalYAML writes the plan in the same layout Parse reads.
func (p Plan) MarshalYAML() (interface{}, error) {
	f := planFile{
		Name:      p.Name,
		Reference: p.Reference,
		Points:    make([][]float64, 0, len(p.Points)),
	}
	for _, lp := range p.Points {
		f.Points = append(f.Points, []float64{lp.X, lp.Y})
	}
	return f, nil
}

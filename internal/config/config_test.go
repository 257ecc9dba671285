package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/woozymasta/stagesmap/internal/geo"
	"github.com/woozymasta/stagesmap/internal/kml"

	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	data := []byte(`
name: North Field
reference: {lat: 50.0, lon: -110.0}
points:
  - [0, 0]
  - [0, 100]
  - [-60.5, 100]
`)
	plan, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}

	want := Plan{
		Name:      "North Field",
		Reference: geo.GeoPoint{Lat: 50, Lon: -110},
		Points:    []geo.LocalPoint{{X: 0, Y: 0}, {X: 0, Y: 100}, {X: -60.5, Y: 100}},
	}
	if !reflect.DeepEqual(plan, want) {
		t.Errorf("got %+v, want %+v", plan, want)
	}
}

func TestParseDefaultName(t *testing.T) {
	plan, err := Parse([]byte("reference: {lat: 1, lon: 2}\npoints: [[0, 0]]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if plan.Name != kml.DefaultName {
		t.Errorf("name == %q, want %q", plan.Name, kml.DefaultName)
	}
}

func TestParseInvalidPoint(t *testing.T) {
	_, err := Parse([]byte("reference: {lat: 1, lon: 2}\npoints: [[0, 0], [1, 2, 3]]\n"))
	if !errors.Is(err, ErrInvalidPlan) {
		t.Errorf("got %v, want ErrInvalidPlan", err)
	}
}

func TestDefaultRoundTrip(t *testing.T) {
	def := Default()
	data, err := yaml.Marshal(def)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	plan, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(plan, def) {
		t.Errorf("round trip changed the plan:\n%s", data)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want not-exist error", err)
	}
}

package course

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/woozymasta/stagesmap/internal/config"
	"github.com/woozymasta/stagesmap/internal/geo"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	plan := config.Plan{
		Name:      "Stages Map",
		Reference: geo.GeoPoint{Lat: 50.0, Lon: -110.0},
		Points:    []geo.LocalPoint{{X: 0, Y: 0}, {X: 0, Y: 100}},
	}

	var stdout bytes.Buffer
	if err := Run(plan, Options{Dir: dir}, &stdout); err != nil {
		t.Fatal(err)
	}

	wantOut := "(x, y)\n(0, 0)\n(0, 100)\n\n" +
		"lat (N/S), long (E/W)\n(50.0, -110.0)\n(50.0008983, -110.0)\n\n"
	if got := stdout.String(); got != wantOut {
		t.Errorf("stdout ==\n%s\nwant\n%s", got, wantOut)
	}

	data, err := os.ReadFile(filepath.Join(dir, OutputPath))
	if err != nil {
		t.Fatal(err)
	}
	doc := string(data)
	if strings.Count(doc, "<Placemark>") != 2 {
		t.Errorf("expected 2 placemarks:\n%s", doc)
	}
	if !strings.Contains(doc, "<coordinates>-110.0,50.0008983,0</coordinates>") {
		t.Errorf("missing second stage coordinates:\n%s", doc)
	}
}

func TestRunDefaultPlan(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer
	if err := Run(config.Default(), Options{Dir: dir, Compact: true}, &stdout); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, OutputPath))
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "<Placemark>"); n != 8 {
		t.Errorf("got %d placemarks, want 8", n)
	}
	if !strings.Contains(string(data), "<name>Stage 8</name>") {
		t.Errorf("last stage missing:\n%s", data)
	}
}

func TestRunInvalidReference(t *testing.T) {
	dir := t.TempDir()
	plan := config.Plan{
		Reference: geo.GeoPoint{Lat: 90},
		Points:    []geo.LocalPoint{{X: 0, Y: 0}, {X: 10, Y: 0}},
	}

	err := Run(plan, Options{Dir: dir}, &bytes.Buffer{})
	if !errors.Is(err, geo.ErrInvalidReference) {
		t.Fatalf("got %v, want ErrInvalidReference", err)
	}
	if _, err := os.Stat(filepath.Join(dir, OutputPath)); !os.IsNotExist(err) {
		t.Error("map written despite invalid reference")
	}
}

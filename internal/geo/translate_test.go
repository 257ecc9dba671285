package geo

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

var reference = GeoPoint{Lat: 50.0, Lon: -110.0}

func TestTranslate(t *testing.T) {
	eastStep := 100 / (111320 * math.Cos(50*math.Pi/180))

	cases := []struct {
		name   string
		points []LocalPoint
		want   []GeoPoint
	}{
		{"origin only", []LocalPoint{{0, 0}}, []GeoPoint{reference}},
		{"offset origin", []LocalPoint{{30, -40}}, []GeoPoint{reference}},
		{"north", []LocalPoint{{0, 0}, {0, 100}}, []GeoPoint{reference, {50.0008983, -110.0}}},
		{"east", []LocalPoint{{0, 0}, {100, 0}}, []GeoPoint{reference, {50.0, -110.0 + eastStep}}},
		{"relative to previous", []LocalPoint{{10, 10}, {10, 110}, {110, 110}}, []GeoPoint{
			reference,
			{50.0008983, -110.0},
			{50.0008983, -110.0 + eastStep},
		}},
	}

	for _, c := range cases {
		got, err := Translate(reference, c.points)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if len(got) != len(c.want) {
			t.Fatalf("%s: got %d points, want %d", c.name, len(got), len(c.want))
		}
		for i := range got {
			if math.Abs(got[i].Lat-c.want[i].Lat) > epsilon || math.Abs(got[i].Lon-c.want[i].Lon) > epsilon {
				t.Errorf("%s: point %d == %v, want %v", c.name, i, got[i], c.want[i])
			}
		}
	}
}

func TestTranslateOriginIsExact(t *testing.T) {
	got, err := Translate(reference, []LocalPoint{{0, 0}})
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != reference {
		t.Errorf("origin == %v, want exactly %v", got[0], reference)
	}
}

func TestTranslateLength(t *testing.T) {
	for n := 0; n < 20; n++ {
		points := make([]LocalPoint, n)
		for i := range points {
			points[i] = LocalPoint{X: float64(i * 7 % 5), Y: float64(i * 3)}
		}
		got, err := Translate(reference, points)
		if err != nil {
			t.Fatal(err)
		}
		if got == nil {
			t.Fatalf("n=%d: nil result", n)
		}
		if len(got) != n {
			t.Errorf("n=%d: got %d points", n, len(got))
		}
	}
}

func TestTranslateNorthIsMonotonic(t *testing.T) {
	points := []LocalPoint{{0, 0}, {0, 10}, {0, 25}, {0, 26}, {0, 100}, {0, 350}}
	got, err := Translate(reference, points)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Lat <= got[i-1].Lat {
			t.Errorf("latitude did not increase at %d: %v -> %v", i, got[i-1].Lat, got[i].Lat)
		}
		if got[i].Lon != reference.Lon {
			t.Errorf("longitude changed at %d: %v", i, got[i].Lon)
		}
	}
}

func TestTranslateSymmetry(t *testing.T) {
	points := []LocalPoint{{0, 0}, {40, 70}, {-25, 130}, {40, 70}}
	got, err := Translate(reference, points)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got[3].Lat-got[1].Lat) > epsilon || math.Abs(got[3].Lon-got[1].Lon) > epsilon {
		t.Errorf("step and its negation ended at %v, want %v", got[3], got[1])
	}
}

func TestTranslateUsesReferenceLatitude(t *testing.T) {
	// A long northward leg followed by an eastward one: the east step must
	// still use the reference latitude's longitude scale.
	points := []LocalPoint{{0, 0}, {0, 100000}, {100, 100000}}
	got, err := Translate(reference, points)
	if err != nil {
		t.Fatal(err)
	}
	want := 100 / (111320 * math.Cos(50*math.Pi/180))
	if d := got[2].Lon - got[1].Lon; math.Abs(d-want) > epsilon {
		t.Errorf("east step == %v degrees, want %v", d, want)
	}
}

func TestTranslateInvalidReference(t *testing.T) {
	for _, lat := range []float64{90, -90, 91} {
		_, err := Translate(GeoPoint{Lat: lat, Lon: 0}, []LocalPoint{{0, 0}, {1, 1}})
		if !errors.Is(err, ErrInvalidReference) {
			t.Errorf("lat %v: got %v, want ErrInvalidReference", lat, err)
		}
	}
}

func TestCustomModel(t *testing.T) {
	m := FlatEarth{LatDegreesPerMeter: 1, MetersPerDegreeLon: 1}
	got, err := m.Translate(GeoPoint{}, []LocalPoint{{0, 0}, {2, 3}})
	if err != nil {
		t.Fatal(err)
	}
	if got[1] != (GeoPoint{Lat: 3, Lon: 2}) {
		t.Errorf("got %v, want (3, 2)", got[1])
	}
}

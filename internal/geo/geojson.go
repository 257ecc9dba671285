package geo

// GeoJSONFeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type" yaml:"type"`
	Features []GeoJSONFeature `json:"features" yaml:"features"`
}

// GeoJSONFeature represents a single geographic feature with geometry and properties.
type GeoJSONFeature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   GeoJSONGeometry        `json:"geometry" yaml:"geometry"`
}

// GeoJSONGeometry represents the geometry of a feature (Point or LineString).
// Coordinates is [Lon, Lat] for a Point and [][Lon, Lat] for a LineString.
type GeoJSONGeometry struct {
	Type        string      `json:"type" yaml:"type"`
	Coordinates interface{} `json:"coordinates" yaml:"coordinates"`
}

// FeatureCollectionFromPoints builds one Point feature per stage, in order,
// followed by a "Course" LineString through all of them when there are at
// least two points.
func FeatureCollectionFromPoints(points []GeoPoint) GeoJSONFeatureCollection {
	fc := GeoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]GeoJSONFeature, 0, len(points)+1),
	}

	line := make([][]float64, 0, len(points))
	for i, p := range points {
		fc.Features = append(fc.Features, GeoJSONFeature{
			Type: "Feature",
			Geometry: GeoJSONGeometry{
				Type:        "Point",
				Coordinates: []float64{p.Lon, p.Lat},
			},
			Properties: map[string]interface{}{
				"name":  StageName(i),
				"index": i + 1,
			},
		})
		line = append(line, []float64{p.Lon, p.Lat})
	}

	if len(line) >= 2 {
		fc.Features = append(fc.Features, GeoJSONFeature{
			Type: "Feature",
			Geometry: GeoJSONGeometry{
				Type:        "LineString",
				Coordinates: line,
			},
			Properties: map[string]interface{}{
				"name": "Course",
			},
		})
	}

	return fc
}

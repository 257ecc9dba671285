// Package server serves the translated course over HTTP.
package server

import (
	"fmt"
	"hash/fnv"
	"net/http"
	"os"
	"strconv"

	"github.com/woozymasta/stagesmap/internal/kml"
)

const etagCap = 64

// Routes registers every handler on a new mux.
func (s *ServerContext) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/map.kml", s.HandleKML)
	mux.HandleFunc("/map.geojson", s.HandleGeoJSON)
	mux.HandleFunc("/api/waypoints", s.HandleWaypoints)
	mux.HandleFunc("/preview.webp", s.HandlePreview)
	return mux
}

// HandleKML serves the map document, preferring the file on disk.
func (s *ServerContext) HandleKML(w http.ResponseWriter, r *http.Request) {
	if s.KMLPath != "" && s.serveFile(w, r, s.KMLPath, kml.ContentType) {
		return
	}
	s.serveBytes(w, r, s.KML, kml.ContentType)
}

// HandleGeoJSON serves the course as a GeoJSON feature collection.
func (s *ServerContext) HandleGeoJSON(w http.ResponseWriter, r *http.Request) {
	s.serveBytes(w, r, s.GeoJSON, "application/geo+json")
}

// HandleWaypoints serves the stage list as JSON.
func (s *ServerContext) HandleWaypoints(w http.ResponseWriter, r *http.Request) {
	s.serveBytes(w, r, s.Waypoints, "application/json")
}

// HandlePreview serves the course overview image.
func (s *ServerContext) HandlePreview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	s.serveBytes(w, r, s.Preview, "image/webp")
}

// serveBytes writes an in-memory body with a content hash ETag.
func (s *ServerContext) serveBytes(w http.ResponseWriter, r *http.Request, body []byte, contentType string) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h := fnv.New64a()
	_, _ = h.Write(body)
	etag := fmt.Sprintf(`"%x-%x"`, len(body), h.Sum64())

	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("ETag", etag)
	if w.Header().Get("Cache-Control") == "" {
		w.Header().Set("Cache-Control", "public, no-cache")
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))

	if r.Method == http.MethodHead {
		return
	}
	// Ignoring error as we cannot handle client disconnects
	_, _ = w.Write(body)
}

// serveFile tries to serve a file from disk with ETag generation.
// It returns true if the file was found and served (or 304).
func (s *ServerContext) serveFile(w http.ResponseWriter, r *http.Request, path string, contentType string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return false
	}

	buf := make([]byte, 0, etagCap)
	buf = append(buf, '"')
	buf = strconv.AppendInt(buf, info.Size(), 16)
	buf = append(buf, '-')
	buf = strconv.AppendInt(buf, info.ModTime().UnixNano(), 16)
	buf = append(buf, '"')
	etag := string(buf)

	// check If-None-Match (client sent ETag)
	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}

	http.ServeFile(w, r, path)
	return true
}

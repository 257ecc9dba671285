// Package kml writes waypoints as a KML document for map viewers.
package kml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/woozymasta/stagesmap/internal/geo"

	"github.com/tdewolff/minify/v2"
	xmlmin "github.com/tdewolff/minify/v2/xml"
)

const (
	// DefaultName is the document name used when none is given.
	DefaultName = "Stages Map"
	// ContentType is the registered media type for KML.
	ContentType = "application/vnd.google-earth.kml+xml"

	header = `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<kml xmlns="http://www.opengis.net/kml/2.2">` + "\n" +
		"  <Document>\n"
	footer = "  </Document>\n" +
		"</kml>\n"
)

// Document is a named, ordered list of waypoints.
type Document struct {
	Name   string
	Points []geo.GeoPoint
}

// Encode writes doc as KML, one "Stage N" placemark per point in order.
// Coordinates are written longitude first, with altitude 0.
func Encode(w io.Writer, doc Document) error {
	name := doc.Name
	if name == "" {
		name = DefaultName
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("    <name>")
	if err := xml.EscapeText(&buf, []byte(name)); err != nil {
		return err
	}
	buf.WriteString("</name>\n\n")

	for i, p := range doc.Points {
		writePlacemark(&buf, geo.StageName(i), p)
	}

	buf.WriteString(footer)

	_, err := w.Write(buf.Bytes())
	return err
}

func writePlacemark(buf *bytes.Buffer, name string, p geo.GeoPoint) {
	fmt.Fprintf(buf, "    <Placemark>\n")
	fmt.Fprintf(buf, "      <name>%s</name>\n", name)
	fmt.Fprintf(buf, "      <Point>\n")
	fmt.Fprintf(buf, "        <coordinates>%s,%s,0</coordinates>\n", geo.FormatDegrees(p.Lon), geo.FormatDegrees(p.Lat))
	fmt.Fprintf(buf, "      </Point>\n")
	fmt.Fprintf(buf, "    </Placemark>\n\n")
}

// EncodeCompact writes doc as KML with insignificant whitespace removed.
func EncodeCompact(w io.Writer, doc Document) error {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return err
	}

	m := minify.New()
	m.AddFunc("text/xml", xmlmin.Minify)
	return m.Minify("text/xml", w, &buf)
}

// Marshal returns the encoded document.
func Marshal(doc Document, compact bool) ([]byte, error) {
	var buf bytes.Buffer
	encode := Encode
	if compact {
		encode = EncodeCompact
	}
	if err := encode(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile creates or replaces the file at path with the encoded document.
// The content is written to a temporary file next to path and renamed into
// place once complete, so readers never observe a partial document.
func WriteFile(path string, doc Document, compact bool) error {
	data, err := Marshal(doc, compact)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// Package course runs the plan-to-map pipeline.
package course

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/woozymasta/stagesmap/internal/config"
	"github.com/woozymasta/stagesmap/internal/geo"
	"github.com/woozymasta/stagesmap/internal/kml"

	"github.com/rs/zerolog/log"
)

// OutputPath is where the map document is written, relative to the working directory.
const OutputPath = "map.kml"

// Options tweak how the pipeline writes its output.
type Options struct {
	Compact bool
	// Dir is the directory OutputPath is resolved against; empty means the
	// working directory.
	Dir string
}

// Run prints the local points, translates them, prints the geographic
// points and writes the map document.
func Run(plan config.Plan, opts Options, stdout io.Writer) error {
	printList(stdout, "(x, y)", plan.Points)

	points, err := geo.Translate(plan.Reference, plan.Points)
	if err != nil {
		return err
	}

	printList(stdout, "lat (N/S), long (E/W)", points)

	path := filepath.Join(opts.Dir, OutputPath)

	doc := kml.Document{Name: plan.Name, Points: points}
	if err := kml.WriteFile(path, doc, opts.Compact); err != nil {
		return err
	}

	log.Info().
		Str("path", path).
		Str("name", plan.Name).
		Int("stages", len(points)).
		Bool("compact", opts.Compact).
		Msg("Map written")

	return nil
}

func printList[T fmt.Stringer](w io.Writer, title string, items []T) {
	fmt.Fprintln(w, title)
	for _, item := range items {
		fmt.Fprintln(w, item.String())
	}
	fmt.Fprintln(w)
}

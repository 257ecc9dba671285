package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/stagesmap/internal/config"
	"github.com/woozymasta/stagesmap/internal/geo"
	"github.com/woozymasta/stagesmap/internal/kml"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Input   string `short:"i" long:"in"      description:"Plan file path (YAML). Reads from stdin if '-', built-in course if empty"`
	Format  string `short:"f" long:"format"  description:"Output format" choice:"json" choice:"yaml" choice:"kml" choice:"plan" default:"json"`
	Compact bool   `short:"c" long:"compact" description:"Compact JSON or KML output"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Read Input
	plan := config.Default()
	switch opts.Input {
	case "":
	case "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
		if plan, err = config.Parse(data); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing plan: %v\n", err)
			os.Exit(1)
		}
	default:
		var err error
		if plan, err = config.Load(opts.Input); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading plan file: %v\n", err)
			os.Exit(1)
		}
	}

	if err := convert(os.Stdout, plan, opts.Format, opts.Compact); err != nil {
		fmt.Fprintf(os.Stderr, "Error converting plan: %v\n", err)
		os.Exit(1)
	}
}

// convert writes the translated plan to w in the requested format.
// "plan" echoes the normalized plan itself as YAML.
func convert(w io.Writer, plan config.Plan, format string, compact bool) error {
	if format == "plan" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(plan); err != nil {
			return err
		}
		return enc.Close()
	}

	points, err := geo.Translate(plan.Reference, plan.Points)
	if err != nil {
		return err
	}

	switch format {
	case "kml":
		doc := kml.Document{Name: plan.Name, Points: points}
		if compact {
			return kml.EncodeCompact(w, doc)
		}
		return kml.Encode(w, doc)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(geo.FeatureCollectionFromPoints(points)); err != nil {
			return err
		}
		return enc.Close()

	case "json", "":
		enc := json.NewEncoder(w)
		if !compact {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(geo.FeatureCollectionFromPoints(points))
	}

	return fmt.Errorf("unknown format %q", format)
}

package main

import (
	"os"

	"github.com/woozymasta/stagesmap/internal/config"
	"github.com/woozymasta/stagesmap/internal/course"
	"github.com/woozymasta/stagesmap/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	PlanFile string `short:"p" long:"plan"    env:"PLAN_FILE" description:"YAML course plan (built-in course if empty)"`
	Compact  bool   `short:"c" long:"compact" description:"Write KML without indentation"`
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

	opts.Logger.Setup()

	plan := config.Default()
	if opts.PlanFile != "" {
		var err error
		plan, err = config.Load(opts.PlanFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", opts.PlanFile).Msg("Failed to load plan")
		}
	}

	log.Debug().
		Str("name", plan.Name).
		Float64("ref_lat", plan.Reference.Lat).
		Float64("ref_lon", plan.Reference.Lon).
		Int("points", len(plan.Points)).
		Msg("Plan loaded")

	if err := course.Run(plan, course.Options{Compact: opts.Compact}, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Failed to build map")
	}
}

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/woozymasta/stagesmap/internal/config"
	"github.com/woozymasta/stagesmap/internal/course"
	"github.com/woozymasta/stagesmap/internal/logger"
	"github.com/woozymasta/stagesmap/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	PlanFile    string `long:"plan"          env:"PLAN_FILE"      description:"YAML course plan (built-in course if empty)"`
	Addr        string `short:"a" long:"addr" env:"LISTEN_ADDRESS" description:"Address to listen on"        default:"127.0.0.1"`
	Port        int    `short:"p" long:"port" env:"LISTEN_PORT"    description:"Port to listen on"           default:"8080"`
	PreviewSize int    `long:"preview-size"  env:"PREVIEW_SIZE"   description:"Preview image size in pixels" default:"512"`
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

	// Setup Logging
	opts.Logger.Setup()

	plan := config.Default()
	if opts.PlanFile != "" {
		var err error
		plan, err = config.Load(opts.PlanFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", opts.PlanFile).Msg("Failed to load plan")
		}
	}

	if opts.PreviewSize <= 0 {
		opts.PreviewSize = 512
	}

	srvCtx, err := server.NewServerContext(plan, course.OutputPath, opts.PreviewSize)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare course")
	}

	handler := server.RequestLogger(srvCtx.Routes())

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	log.Info().
		Str("addr", listenAddr).
		Str("name", plan.Name).
		Int("stages", len(srvCtx.Points)).
		Msg("Web server started")

	if err := http.ListenAndServe(listenAddr, handler); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

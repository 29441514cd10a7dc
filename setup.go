package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/metcalfc/pyeongsam/internal/config"
	"github.com/metcalfc/pyeongsam/internal/plan"
	"github.com/metcalfc/pyeongsam/internal/tracker"
)

// Version info (injected via ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	log.SetFlags(0)
	log.SetPrefix("pyeongsam: ")
}

// loadEnv reads .env from the working directory if there is one.
func loadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: ignoring .env: %v", err)
	}
}

// setup loads configuration and builds the tracker and starting date.
// An empty dateArg means today in the configured zone.
func setup(configPath, dateArg string) (*config.Config, *tracker.Tracker, plan.Date, error) {
	loadEnv()

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, plan.Date{}, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, plan.Date{}, err
	}
	tr := tracker.New(plan.Bible, tracker.WithLocation(loc))

	if dateArg == "" {
		return cfg, tr, tr.Today(), nil
	}
	d, err := plan.ParseDate(dateArg)
	if err != nil {
		return nil, nil, plan.Date{}, err
	}
	return cfg, tr, d, nil
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

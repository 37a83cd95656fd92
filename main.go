package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sheikhrachel/go-gol-window/display"
)

func main() {
	var (
		configPath = flag.String("config", "config.json", "path to the JSON configuration file")
		backend    = flag.String("backend", "", "display backend, overrides the config file ("+strings.Join(display.Backends(), ", ")+")")
		surveyRuns = flag.Int("survey", 0, "run this many headless simulations and print their outcomes")
	)
	flag.Parse()

	config, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if *backend != "" {
		config.Backend = *backend
	}
	if err = config.Validate(); err != nil {
		log.Fatalf("%+v", err)
	}

	closeLog, err := setupLogging(config)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	defer closeLog()

	// SIGINT and SIGTERM stop the loop the same way closing the window does
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *surveyRuns > 0 {
		if err = runSurvey(ctx, config, *surveyRuns, os.Stdout); err != nil {
			log.Fatalf("%+v", err)
		}
		return
	}

	game, err := initializeGame(config)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	displayGameInfo(config, game)

	if err = game.Run(ctx); err != nil {
		log.Fatalf("%+v", err)
	}
}

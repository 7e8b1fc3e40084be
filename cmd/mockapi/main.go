package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/userconsole/internal/buildinfo"
	"github.com/dmitrijs2005/userconsole/internal/logging"
	"github.com/dmitrijs2005/userconsole/internal/mockapi"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := mockapi.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.NewJSON(os.Stdout, cfg.LogLevel)

	app, err := mockapi.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "mock API stopped", "error", err)
		os.Exit(1)
	}
}

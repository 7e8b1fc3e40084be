package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/userconsole/internal/buildinfo"
	"github.com/dmitrijs2005/userconsole/internal/client/cli"
	"github.com/dmitrijs2005/userconsole/internal/client/config"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// a second interrupt kills the process
	go func() {
		<-ctx.Done()
		stop()
	}()

	logger := logging.NewText(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "console stopped", "error", err)
		os.Exit(1)
	}
}

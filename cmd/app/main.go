package main

import (
	"log"
	"os"

	"vetclinic-reception/internal/app"
	"vetclinic-reception/internal/config"
	"vetclinic-reception/internal/platform/logger"
	"vetclinic-reception/internal/ui/console"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	lg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})

	ctx, err := app.New(cfg, lg)
	if err != nil {
		log.Fatalf("startup error: %v", err)
	}

	lg.Info("application started", map[string]any{"env": cfg.App.Env})

	shell := console.New(ctx, os.Stdin, os.Stdout)
	if err := shell.Run(); err != nil {
		log.Fatalf("shell error: %v", err)
	}
}

package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"shopapi/internal/config"
	"shopapi/internal/http/handlers"
	"shopapi/internal/http/routes"
	applog "shopapi/internal/log"
	"shopapi/internal/repos"

	"github.com/shopspring/decimal"
)

func main() {
	// prices travel as JSON numbers (90.5), not quoted strings
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer f.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if cfg.Seed {
		if err := repos.Seed(context.Background(), db); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	app := routes.New(cfg, handlers.NewDeps(db))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		applog.Event("server.shutdown", nil)
		_ = app.Shutdown()
	}()

	applog.Event("server.start", map[string]any{"port": cfg.Port, "driver": cfg.DBDriver})
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

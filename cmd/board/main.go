package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"SpotBoard/internal/api"
	"SpotBoard/internal/board"
	"SpotBoard/internal/config"
	"SpotBoard/internal/pipeline"
	"SpotBoard/internal/recorder"
	"SpotBoard/internal/scraper"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] SpotBoard starting...")

	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init scraper
	strategy, err := scraper.StrategyForName(cfg.Source.Strategy)
	if err != nil {
		log.Fatalf("[FATAL] init scraper: %v", err)
	}
	sc := scraper.New(strategy, cfg.Source.GoldURL, cfg.Source.SilverURL,
		time.Duration(cfg.Source.TimeoutSeconds)*time.Second)
	log.Printf("[INFO] scrape strategy: %s", strategy.Name())

	// Init board client
	bc := board.NewClient(cfg.Board.IP, cfg.Board.APIKey)
	if err := bc.TestConnection(); err != nil {
		log.Printf("[WARN] board not reachable yet: %v", err)
	} else {
		log.Printf("[INFO] board connected at %s", cfg.Board.IP)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init pipeline
	orch := pipeline.NewOrchestrator(ctx, sc, bc, rec)

	// Init scheduler
	sched := pipeline.NewScheduler(orch)
	if err := sched.Register(cfg.Schedule.MetalsCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start control API
	handler := api.NewHandler(orch)
	go func() {
		log.Printf("[INFO] control API listening on :%d", cfg.API.Port)
		if err := handler.StartServer(cfg.API.Port); err != nil {
			log.Printf("[ERROR] control API stopped: %v", err)
		}
	}()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, refreshing metals now")
		go sched.RunMetalsNow()
	}

	log.Println("[INFO] SpotBoard is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] SpotBoard stopped")
}

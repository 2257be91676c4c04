package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"PaperFund/internal/config"
	"PaperFund/internal/engine"
	"PaperFund/internal/feed"
	"PaperFund/internal/logger"
	"PaperFund/internal/model"
	"PaperFund/internal/recorder"
	"PaperFund/internal/scheduler"
	"PaperFund/internal/seed"
	"PaperFund/internal/store"
)

func main() {
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config validation: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	log.Info("PaperFund starting")

	randSeed := cfg.RandomSeed
	if randSeed == 0 {
		randSeed = time.Now().UnixNano()
	}

	st, err := store.New(cfg.Storage.DataDir, log.WithComponent("store"))
	if err != nil {
		log.WithError(err).Error("init store")
		os.Exit(1)
	}

	eng := engine.New(engine.Config{
		MonthlyReturnRate: cfg.Bot.MonthlyReturnRate,
		HistoryCap:        cfg.Bot.HistoryCap,
		TradeCap:          cfg.Bot.TradeLogCap,
		NewestFirst:       cfg.Bot.TradeLogNewest,
		TradeChance:       cfg.Bot.TradeChance,
		WinBias:           cfg.Bot.WinBias,
	}, st, rand.New(rand.NewSource(randSeed)), log.WithComponent("engine"))

	sim := feed.New(model.FeedMode(cfg.Feed.Mode), cfg.Feed.Cap, rand.New(rand.NewSource(randSeed+1)))

	src := seed.NewSource(cfg.Seed.ChartPath, cfg.Seed.UsersPath,
		rand.New(rand.NewSource(randSeed+2)), log.WithComponent("seed"))

	var rec recorder.Recorder
	if cfg.Storage.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Storage.SQLitePath)
		if err != nil {
			log.WithError(err).Warn("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	sched := scheduler.New(eng, sim, rec, src, cfg.Display.USDRate, log.WithComponent("scheduler"))
	if err := sched.RegisterAll(cfg.Schedule.GrowthCron, cfg.Schedule.FeedCron); err != nil {
		log.WithError(err).Error("register cron tasks")
		os.Exit(1)
	}
	sched.Start()
	defer sched.Stop()

	fmt.Printf("Welcome back, %s. Type 'help' for commands.\n", src.Greeting(cfg.Display.UserID))

	// Console loop; EOF just stops reading, the daemon keeps ticking.
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if reply := sched.HandleCommand(scanner.Text()); reply != "" {
				fmt.Println(reply)
			}
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, stopping")
}

package main

import (
	"context"
	"log"
	"time"

	"github.com/archlens/landscape-backend/config"
	"github.com/archlens/landscape-backend/internal/bootstrap"
	cronjob "github.com/archlens/landscape-backend/internal/landscape/cron"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	cache, err := bootstrap.OpenCache(context.Background(), bootstrap.CacheOptions{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})
	if err != nil {
		log.Fatalf("cache: %v", err)
	}

	r, svc := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "landscape-backend",
		Version:     cfg.App.Version,
		UpstreamURL: cfg.Upstream.BaseURL,
		UpstreamRPS: cfg.Upstream.RPS,
		Burst:       cfg.Upstream.Burst,
		Cache:       cache,
		SnapshotTTL: time.Duration(cfg.Cache.TTLSeconds) * time.Second,
	})

	if cfg.Refresh.Enabled {
		scheduler := cronjob.NewScheduler(svc, cfg.Refresh.CronSpec)
		scheduler.Start()
		defer scheduler.Stop()
	}

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

package main

import (
	"context"
	"log"

	"github.com/bau-builds/gallery-api/config"
	adminrepo "github.com/bau-builds/gallery-api/internal/admin/repository"
	"github.com/bau-builds/gallery-api/internal/bootstrap"
	"github.com/bau-builds/gallery-api/internal/gallery/cache"
	galleryrepo "github.com/bau-builds/gallery-api/internal/gallery/repository"
	"github.com/bau-builds/gallery-api/internal/gallery/service"
	"github.com/bau-builds/gallery-api/internal/maintenance"
)

const serviceName = "bau-builds-gallery"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)
	ctx := context.Background()

	deps := bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}

	if cfg.DataConfigured() {
		pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer pool.Close()

		sqlDB, err := bootstrap.OpenSQL(ctx, cfg.Database.DSN)
		if err != nil {
			log.Fatalf("database (admin): %v", err)
		}
		defer sqlDB.Close()

		repo := galleryrepo.NewRepo(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatalf("schema: %v", err)
		}

		objects, err := bootstrap.OpenObjectStore(ctx, cfg.Storage)
		if err != nil {
			log.Fatalf("object store: %v", err)
		}

		var listCache service.ListCache
		if cfg.Redis.Addr != "" {
			rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
			if err != nil {
				log.Printf("redis unavailable, running without gallery cache: %v", err)
			} else {
				defer rdb.Close()
				listCache = cache.New(rdb, cfg.Redis.GalleryTTL)
			}
		}

		deps.DB = pool
		deps.Gallery = service.New(repo, objects, listCache)
		deps.Access = adminrepo.NewAccessRepo(sqlDB)

		sweeper := maintenance.NewSweeper(repo, objects, cfg.App.SweepSchedule)
		if err := sweeper.Start(); err != nil {
			log.Printf("orphan sweeper not running: %v", err)
		} else {
			defer sweeper.Stop()
		}
	} else {
		log.Println("database/storage settings missing; data operations disabled")
		deps.Gallery = service.Disabled{}
	}

	r := bootstrap.BuildRouter(deps)

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-event-form/internal/api"
	"go-event-form/internal/api/handler"
	"go-event-form/internal/config"
	"go-event-form/internal/export"
	"go-event-form/internal/geo"
	"go-event-form/internal/query"
	"go-event-form/internal/store"
	"go-event-form/internal/upstream"
	"go-event-form/pkg/router"
)

// @title Event Form API
// @version 1.0
// @description Server-rendered form for analysing commercial events by Colombian department, city and period.
// @host localhost:8080
// @BasePath /
func main() {
	cfgPath := flag.String("config", "configs/config.yaml", "Path to YAML config file (empty for defaults)")
	flag.Parse()

	config.LoadDotEnv()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lookup, err := geo.Load(cfg.Geo.Path)
	if err != nil {
		log.Fatalf("load geo lookup: %v", err)
	}
	log.Printf("✅ Loaded %d departments from %s", len(lookup), cfg.Geo.Path)

	sessions, err := store.Open(cfg.Session.DBPath)
	if err != nil {
		log.Fatalf("open session store: %v", err)
	}
	defer sessions.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	archive, err := buildArchive(ctx, cfg.Export.Archive)
	if err != nil {
		log.Fatalf("export archive: %v", err)
	}

	client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.UserAgent, cfg.Upstream.Timeout)
	h := &handler.Handler{
		Lookup:    lookup,
		Sessions:  sessions,
		Submitter: &query.Submitter{Analyzer: client},
		Exporter:  &export.Exporter{Backend: client, Archive: archive},
		Downloads: export.NewPending(5 * time.Minute),
		Cookie: handler.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.SecureCookie,
		},
	}

	r := router.New()
	api.RegisterRoutes(r, h)

	// Idle session purge loop
	go func() {
		ticker := time.NewTicker(cfg.Session.PurgeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := sessions.Purge(ctx, cfg.Session.MaxIdle)
				if err != nil {
					log.Printf("❌ Session purge failed: %v", err)
					continue
				}
				if n > 0 {
					log.Printf("🧹 Purged %d idle sessions", n)
				}
			}
		}
	}()

	go func() {
		timeouts := router.Timeouts{
			Read:  cfg.Server.ReadTimeout,
			Write: cfg.Server.WriteTimeout,
			Idle:  cfg.Server.IdleTimeout,
		}
		if err := r.Start(cfg.Server.ListenAddress, timeouts); err != nil {
			log.Fatalf("http server: %v", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("shutting down...")
	cancel()
	shutdownCtx, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()
	if err := r.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Shutdown: %v", err)
	}
}

func buildArchive(ctx context.Context, cfg config.Archive) (export.Archiver, error) {
	switch cfg.Type {
	case "local":
		log.Printf("📦 Archiving exports under %s", cfg.Dir)
		return export.NewLocalArchive(cfg.Dir)
	case "s3":
		log.Printf("📦 Archiving exports to s3://%s/%s", cfg.Bucket, cfg.Prefix)
		return export.NewS3Archive(ctx, cfg.Region, cfg.Bucket, cfg.Prefix)
	default:
		return nil, nil
	}
}

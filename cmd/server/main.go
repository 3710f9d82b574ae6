// Package main is the entry point for the skyfolio admin content API.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/klauspost/compress/gzhttp"

	"skyfolio/internal/config"
	"skyfolio/internal/domain/auth"
	"skyfolio/internal/domain/content"
	"skyfolio/internal/infrastructure/cache"
	v1 "skyfolio/internal/infrastructure/http/v1"
	"skyfolio/internal/infrastructure/storage/postgres"
	"skyfolio/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting skyfolio server")

	// --- Database ---
	poolCfg := postgres.DefaultPoolConfig(cfg.Database.DSN)
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	// --- Auth ---
	jwtConfig := auth.DefaultJWTConfig(cfg.Auth.JWTSecret)
	jwtConfig.AccessTokenTTL = cfg.Auth.AccessTokenTTL
	jwtService := auth.NewJWTService(jwtConfig)
	authService := auth.NewService(postgres.NewUserRepo(pool), jwtService)

	// --- Content assembly ---
	snippetCache := cache.NewSnippetCache(pool.Unwrap(), postgres.NewSnippetRepo(pool))
	if err := snippetCache.Start(ctx); err != nil {
		log.Fatalw("failed to start snippet cache", "error", err)
	}
	defer snippetCache.Stop()

	registry := content.DefaultSectionRegistry()
	slugs := content.DefaultSlugMap()
	resolver := content.NewSnippetResolver(snippetCache)
	populator := content.NewPopulator(
		registry,
		postgres.NewSectionRepo(pool),
		resolver,
		content.NewMarkdownRenderer(),
	)
	assembler := content.NewAssembler(postgres.NewPageRepo(pool), populator, slugs)

	log.Infow("content registry initialized",
		"populatable_sections", registry.IDs(),
	)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:           pool,
		Logger:         log,
		JWTValidator:   jwtService,
		AuthService:    authService,
		Assembler:      assembler,
		RequestTimeout: cfg.HTTP.RequestTimeout,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      gzhttp.GzipHandler(router),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Infow("server starting", "port", cfg.HTTP.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/ffremont/astackbackend/config"
	"github.com/ffremont/astackbackend/database"
	"github.com/ffremont/astackbackend/handlers"
	"github.com/ffremont/astackbackend/logging"
	"github.com/ffremont/astackbackend/media"
	"github.com/ffremont/astackbackend/repository"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		logging.Info().Err(err).Msg("no .env file found or error loading it")
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if dir := filepath.Dir(cfg.DatabasePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logging.Fatal().Err(err).Str("dir", dir).Msg("failed to create database directory")
		}
	}

	gormDB, err := database.InitGormDB(cfg.DatabasePath)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize picture database")
	}
	if err := database.AutoMigrateModels(gormDB); err != nil {
		logging.Fatal().Err(err).Msg("failed to migrate picture database")
	}

	catalogDB, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize catalog database")
	}
	defer catalogDB.Close()

	if cfg.SeedCatalog {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		n, err := database.SeedConstellations(ctx, catalogDB)
		cancel()
		if err != nil {
			logging.Fatal().Err(err).Msg("failed to seed constellation catalog")
		}
		logging.Info().Int64("inserted", n).Msg("constellation catalog seeded")
	}

	mediaStore, err := media.NewLocalStorage(cfg.MediaStoragePath)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize media store")
	}

	pictureRepo := repository.NewPictureRepository(gormDB, mediaStore)
	catalogRepo := repository.NewCatalogRepository(catalogDB)

	pictureHandler := handlers.NewPictureHandler(pictureRepo, catalogRepo)
	pictureHandler.CacheSeconds = cfg.AssetCacheSeconds

	logging.Info().Str("database", cfg.DatabasePath).Str("media", cfg.MediaStoragePath).Msg("storage configured")

	r := chi.NewRouter()

	corsOptions := cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}

	corsHandler := cors.New(corsOptions)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(handlers.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Duration(cfg.RequestTimeoutSeconds) * time.Second))
	r.Use(corsHandler.Handler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/pictures", func(r chi.Router) {
			handlers.RegisterPictureRoutes(r, pictureHandler)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	serverAddr := ":" + cfg.Port
	fmt.Printf("Server starting on http://localhost:%s\n", cfg.Port)
	logging.Info().Str("addr", serverAddr).Msg("server listening")
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 5 * time.Minute, // raw FITS files can be large
		IdleTimeout:  120 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil {
		logging.Fatal().Err(err).Msg("server stopped")
	}
}

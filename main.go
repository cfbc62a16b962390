package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotel-desk/config"
	"hotel-desk/controllers"
	"hotel-desk/logger"
	"hotel-desk/middleware"
	"hotel-desk/routes"
	"hotel-desk/services"
)

func main() {
	// Load .env (optional)
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer appLog.Sync()

	if envErr != nil {
		appLog.Warn(".env not found or couldn't load it; continuing with environment variables")
	}
	if cfg.LogMode == "prod" || cfg.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDatabase(cfg, appLog)
	if err != nil {
		appLog.Fatal("database connect failed", "driver", cfg.StorageDriver, "error", err)
	}
	appLog.Info("storage ready", "driver", cfg.StorageDriver)

	hotelService := services.NewHotelService(db, cfg.HotelName, appLog)
	if err := hotelService.Load(); err != nil {
		appLog.Fatal("failed to load hotel", "error", err)
	}
	if cfg.SeedDemo {
		if err := hotelService.SeedDemo(); err != nil {
			appLog.Fatal("demo seed failed", "error", err)
		}
	}

	apiKeyHash := cfg.APIKeyHash
	if apiKeyHash == "" && cfg.APIKey != "" {
		if apiKeyHash, err = middleware.HashAPIKey(cfg.APIKey); err != nil {
			appLog.Fatal("failed to hash HOTEL_API_KEY", "error", err)
		}
	}
	if apiKeyHash == "" {
		appLog.Warn("no API key configured; write routes are open")
	}

	router := routes.SetupRouter(
		controllers.NewSettingsController(hotelService),
		controllers.NewRoomController(hotelService),
		controllers.NewEmployeeController(hotelService),
		controllers.NewReservationController(hotelService),
		routes.Options{
			CORSOrigins: cfg.CORSOrigins,
			APIKeyHash:  apiKeyHash,
			Log:         appLog,
		},
	)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ErrorLog:          appLog.StdLog(),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		appLog.Info("server starting", "addr", addr, "hotel", cfg.HotelName)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("ListenAndServe failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	appLog.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.Error("server forced to shutdown", "error", err)
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	appLog.Info("server stopped gracefully")
}

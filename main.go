package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/descubrechiapas/chiapas-guide/internal/pkg/config"
	"github.com/descubrechiapas/chiapas-guide/internal/server"
	"github.com/descubrechiapas/chiapas-guide/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	if err := logger.Init(zapcore.InfoLevel, zap.String("service", "chiapas-guide")); err != nil {
		return err
	}
	zlog := logger.Log
	defer zlog.Sync()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize observability
	otelShutdown, err := server.InitObservability("chiapas-guide", ":9092", zlog)
	if err != nil {
		return err
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			zlog.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	// Create server
	srv, err := server.New(cfg, zlog)
	if err != nil {
		return err
	}
	defer srv.Close()

	// Setup router
	router := server.SetupRouter(cfg, srv.GetDBPool(), zlog)
	srv.SetRouter(router)

	// Start pprof server (on separate port, not exposed publicly)
	server.StartPprofServer(":6060")

	// Create HTTP server
	httpServer := srv.HTTPServer()

	// Setup graceful shutdown
	done := make(chan bool, 1)
	go server.GracefulShutdown(httpServer, zlog, done)

	zlog.Info("Server starting", zap.String("port", cfg.ServerPort))
	if err := httpServer.ListenAndServe(); err != nil {
		zlog.Error("Server error", zap.Error(err))
	}

	<-done
	zlog.Info("Graceful shutdown complete")

	return nil
}

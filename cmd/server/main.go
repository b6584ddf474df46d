package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zeroclick-go/internal/config"
	"zeroclick-go/internal/handler"
	"zeroclick-go/internal/metrics"
	"zeroclick-go/internal/server"
	"zeroclick-go/pkg/logger"
	"zeroclick-go/pkg/resolver"
	"zeroclick-go/pkg/storage"
	"zeroclick-go/pkg/trends"
	"zeroclick-go/pkg/volume"
)

func main() {
	var (
		configPath = flag.String("config", "config/dev.yaml", "Configuration file path")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	manager := config.NewManager()
	cfg, err := manager.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logConfig := logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
	}
	if *debug {
		logConfig.Level = "debug"
	}
	lg := logger.New(logConfig)
	logger.SetLogger(lg)
	logger.SetGlobalLogger(lg)

	metrics.Init()

	// The demo persists the sample dataset on every startup and reads it
	// back. A broken file degrades to the in-memory sample with a warning.
	datasetFile := storage.NewDatasetFile(cfg.Dataset.File)
	dataset, err := datasetFile.Bootstrap(volume.SampleDataset())
	if err != nil {
		lg.WithError(err).WithField("file", cfg.Dataset.File).
			Warn("Search volume dataset not persisted, using sample data")
	}
	store := volume.NewStore(dataset, volume.OriginSample)

	var trendsClient *trends.Client
	if cfg.Trends.Endpoint != "" {
		timeout := time.Duration(cfg.Trends.TimeoutSeconds) * time.Second
		trendsClient = trends.NewClient(cfg.Trends.Endpoint, cfg.Trends.APIKey, timeout)
	} else {
		lg.Warn("Trends endpoint not configured, remote lookups will report provider errors")
	}

	uploads := resolver.NewUploadedFileProvider(store)
	resolv := resolver.NewTermVolumeResolver(
		resolver.NewLocalSampleProvider(store),
		uploads,
		trends.NewRemoteTrendsProvider(trendsClient),
	)

	defaultOrder := make([]resolver.SourceTag, 0, len(cfg.Dataset.DefaultOrder))
	for _, tag := range cfg.Dataset.DefaultOrder {
		defaultOrder = append(defaultOrder, resolver.SourceTag(tag))
	}

	controller := handler.NewController(store, uploads, resolv, defaultOrder)
	srv := server.New(cfg.Server, controller)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		lg.WithFields(map[string]interface{}{
			"host": cfg.Server.Host,
			"port": cfg.Server.Port,
		}).Info("Server starting")
		if err := srv.Listen(); err != nil {
			lg.WithError(err).Fatal("Server failed")
		}
	}()

	<-sigChan
	lg.Info("Shutdown signal received")
	if err := srv.Shutdown(); err != nil {
		lg.WithError(err).Error("Graceful shutdown failed")
	}
	lg.Info("Server stopped")
}

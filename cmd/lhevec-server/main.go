// Command lhevec-server runs the LHE parse service: a TCP endpoint that
// answers LHE payloads with Arrow IPC frames, with Prometheus metrics and
// an optional ZeroMQ publisher for converted batches.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/hepstack/lhevec/api"
	"github.com/hepstack/lhevec/config"
	"github.com/hepstack/lhevec/network"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	metrics := api.NewMetrics("lhevec")
	handler := api.NewHandler(metrics)

	var publisher *network.Publisher
	if cfg.Publish.Enabled {
		publisher = network.NewPublisher(cfg.Publish.Addr)
		if err := publisher.Start(); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Publish.Addr).Msg("failed to start publisher")
		}
		handler.SetPublisher(publisher)
		log.Info().Str("addr", cfg.Publish.Addr).Msg("publishing converted batches")
	}

	var metricsServer *api.MetricsServer
	if cfg.Metrics.Enabled {
		metricsServer = api.NewMetricsServer(cfg.Metrics.Listen, metrics)
		metricsServer.StartAsync()
		log.Info().Str("addr", cfg.Metrics.Listen).Msg("metrics endpoint up")
	}

	server := api.NewServer(handler, log)
	if err := server.StartAsync(cfg.Server.Listen); err != nil {
		log.Fatal().Err(err).Msg("failed to start parse service")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	server.Stop()
	if metricsServer != nil {
		_ = metricsServer.Stop()
	}
	if publisher != nil {
		publisher.Stop()
	}
	log.Info().Msg("stopped")
}

package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/signalsfoundry/link-engineering/budget"
	"github.com/signalsfoundry/link-engineering/internal/logging"
	"github.com/signalsfoundry/link-engineering/internal/observability"
	"github.com/signalsfoundry/link-engineering/internal/server"
)

func main() {
	httpAddr := flag.String("http-addr", ":8080", "TCP address the HTTP API listens on")
	metricsAddr := flag.String("metrics-addr", ":9090", "HTTP address for Prometheus /metrics")
	scenarioPath := flag.String("scenario", "", "Path to a JSON scenario file with transceivers, stations and spacecraft")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.Err(err))
		os.Exit(1)
	}

	collector, err := observability.NewCollector(nil)
	if err != nil {
		log.Error(ctx, "failed to initialise metrics collector", logging.Err(err))
		os.Exit(1)
	}

	metricsSrv := serveMetrics(*metricsAddr, collector, log)

	catalog := budget.NewCatalog()
	loadScenario(log, catalog, collector, *scenarioPath)

	srv := &http.Server{
		Addr:    *httpAddr,
		Handler: server.New(catalog, log, collector).Handler(),
	}

	log.Info(ctx, "starting link server", logging.String("addr", *httpAddr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "HTTP server exited", logging.Err(err))
		}
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-stopCtx.Done()

	log.Info(ctx, "shutting down link server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)
}

func serveMetrics(addr string, collector *observability.Collector, log logging.Logger) *http.Server {
	if collector == nil {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn(context.Background(), "metrics server exited", logging.Err(err))
		}
	}()

	log.Info(context.Background(), "serving Prometheus metrics", logging.String("addr", addr))
	return srv
}

func loadScenario(log logging.Logger, catalog *budget.Catalog, collector *observability.Collector, path string) {
	if path == "" {
		log.Info(context.Background(), "no scenario file given; starting with an empty catalog")
		return
	}

	f, err := os.Open(path)
	if err != nil {
		log.Warn(context.Background(), "skipping scenario load", logging.String("path", path), logging.Err(err))
		return
	}
	defer f.Close()

	scn, err := budget.LoadScenario(catalog, f)
	if err != nil {
		log.Error(context.Background(), "failed to load scenario", logging.String("path", path), logging.Err(err))
		os.Exit(1)
	}

	collector.SetCatalogCounts(catalog.Counts())

	log.Info(context.Background(), "loaded scenario",
		logging.String("path", path),
		logging.Int("transceivers", len(scn.TransceiverIDs)),
		logging.Int("stations", len(scn.StationIDs)),
		logging.Int("spacecraft", len(scn.SpacecraftIDs)),
	)
}

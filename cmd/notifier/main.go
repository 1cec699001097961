package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"outage_notifier/internal/config"
	"outage_notifier/internal/dispatch"
	"outage_notifier/internal/intake"
	"outage_notifier/internal/observability"
	"outage_notifier/internal/scheduler"
	"outage_notifier/internal/service"
	"outage_notifier/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Delivery dispatcher and scraper intake share the broker.
	dispatcher, err := dispatch.NewRabbitMQ(dispatch.Config{
		URL:          cfg.RabbitMQ.URL,
		Exchange:     cfg.RabbitMQ.Exchange,
		RoutingKey:   cfg.RabbitMQ.RoutingKey,
		QueueName:    cfg.RabbitMQ.QueueName,
		PublishTries: cfg.RabbitMQ.PublishTries,
	}, logger)
	if err != nil {
		logger.Error("failed to connect dispatcher", "error", err)
		os.Exit(1)
	}
	defer dispatcher.Close()

	rawSource, err := intake.NewRabbitMQ(intake.Config{
		URL:       cfg.RabbitMQ.URL,
		QueueName: cfg.RabbitMQ.IntakeQueue,
	}, logger)
	if err != nil {
		logger.Error("failed to connect intake", "error", err)
		os.Exit(1)
	}
	defer rawSource.Close()

	metrics := observability.New(prometheus.DefaultRegisterer)

	// Initialize stores
	placeStore := postgres.NewPlaceStore(db)
	addressStore := postgres.NewAddressStore(db)
	subscriberStore := postgres.NewSubscriberStore(db)
	announcementStore := postgres.NewAnnouncementStore(db)
	notificationStore := postgres.NewNotificationStore(db)
	txManager := postgres.NewTransactionManager(db)

	resolver := service.NewResolver(placeStore, cfg.Resolver.AcceptThreshold, cfg.Resolver.MaxCandidates, logger)
	matcher := service.NewMatcher(placeStore, addressStore, logger)
	ingestor := service.NewIngestor(announcementStore, resolver, txManager, metrics, logger)

	ingestJob := service.NewIngestRunner(
		[]service.RawSource{rawSource},
		ingestor,
		cfg.Ingest.MaxPerSource,
		logger,
	)

	notifyJob := service.NewNotifyService(
		subscriberStore,
		announcementStore,
		notificationStore,
		matcher,
		service.NewRenderer(),
		dispatcher,
		clockwork.NewRealClock(),
		cfg.Notify,
		metrics,
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	metricsSrv := &http.Server{Addr: cfg.Metrics.Addr, Handler: promhttp.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = metricsSrv.Shutdown(shutdownCtx)
	}()

	logger.Info("starting outage notifier",
		"ingest_interval", cfg.Ingest.Interval,
		"notify_interval", cfg.Notify.Interval,
		"metrics_addr", cfg.Metrics.Addr,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return scheduler.New(ingestJob, cfg.Ingest.Interval, cfg.Ingest.Interval, logger).Start(gctx)
	})
	g.Go(func() error {
		return scheduler.New(notifyJob, cfg.Notify.Interval, 5*time.Minute, logger).Start(gctx)
	})
	g.Go(func() error {
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Error("notifier stopped", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}

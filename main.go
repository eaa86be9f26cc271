package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/DhavalSuthar-24/sportcomplex/config"
	_ "github.com/DhavalSuthar-24/sportcomplex/docs"
	"github.com/DhavalSuthar-24/sportcomplex/internal/metrics"
	"github.com/DhavalSuthar-24/sportcomplex/internal/migrate"
	"github.com/DhavalSuthar-24/sportcomplex/internal/notification"
	"github.com/DhavalSuthar-24/sportcomplex/internal/observability"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
	"github.com/DhavalSuthar-24/sportcomplex/internal/subscriber"
	"github.com/DhavalSuthar-24/sportcomplex/routes"
)

// @title Sport Complex REST API
// @version 1.0
// @description Staff, trainees, vacancies and sport events of sport complexes.
// @host localhost:8088
// @BasePath /api
func main() {
	if err := run(); err != nil {
		slog.Error("sport complex service stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Initialize(); err != nil {
		return err
	}
	cfg := config.GetConfig()

	logger, closer, err := observability.NewLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(logger)

	db := config.DB
	if cfg.DB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.DB.MigrationsPath); err != nil {
			return err
		}
	} else {
		if err := db.AutoMigrate(routes.Models()...); err != nil {
			return err
		}
		logger.Info("AutoMigrate successful")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	recorder := observability.Multi{
		observability.NewSlogRecorder(logger),
		observability.NewDBRecorder(db, logger).WithTimeout(cfg.Log.DBTimeout),
	}

	var publisher notification.Publisher
	if kp := notification.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic); kp != nil {
		publisher = kp
		defer kp.Close()
		logger.Info("publishing sport events to kafka", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	fanOut := notification.NewService(
		subscriber.NewService(store.NewRepository[subscriber.Subscriber](db)),
		notification.NewWebhookDeliverer(cfg.Notification.Timeout),
		notification.Options{
			Concurrency: cfg.Notification.Concurrency,
			Timeout:     cfg.Notification.Timeout,
			Publisher:   publisher,
			Recorder:    recorder,
			Metrics:     m,
			Logger:      logger,
		},
	)
	dispatcher := notification.NewDispatcher(fanOut, logger)

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	router := routes.SetupRoutes(routes.NewServices(db, dispatcher), routes.Options{
		FrontendURL: cfg.App.FrontendURL,
		Logger:      logger,
		Recorder:    recorder,
		Metrics:     m,
		Gatherer:    reg,
		Ping:        sqlDB.Ping,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}

	graceCtx, cancelGrace := context.WithTimeout(context.Background(), cfg.Notification.ShutdownGrace)
	defer cancelGrace()
	if err := dispatcher.Close(graceCtx); err != nil {
		logger.Warn("abandoned in-flight sport event broadcasts", "error", err)
	}
	return nil
}

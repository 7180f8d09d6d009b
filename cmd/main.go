package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getAvailabilityHandler "github.com/m04kA/SMC-TableAvailability/internal/api/handlers/get_availability"
	getAvailableDatesHandler "github.com/m04kA/SMC-TableAvailability/internal/api/handlers/get_available_dates"
	healthHandler "github.com/m04kA/SMC-TableAvailability/internal/api/handlers/health"
	"github.com/m04kA/SMC-TableAvailability/internal/api/middleware"
	"github.com/m04kA/SMC-TableAvailability/internal/config"
	reservationRepo "github.com/m04kA/SMC-TableAvailability/internal/infra/storage/reservation"
	windowRepo "github.com/m04kA/SMC-TableAvailability/internal/infra/storage/servicewindow"
	tableRepo "github.com/m04kA/SMC-TableAvailability/internal/infra/storage/table"
	tenantRepo "github.com/m04kA/SMC-TableAvailability/internal/infra/storage/tenant"
	getAvailabilityUC "github.com/m04kA/SMC-TableAvailability/internal/usecase/get_availability"
	getAvailableDatesUC "github.com/m04kA/SMC-TableAvailability/internal/usecase/get_available_dates"
	"github.com/m04kA/SMC-TableAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableAvailability/pkg/logger"
	"github.com/m04kA/SMC-TableAvailability/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TableAvailability...")
	log.Info("Configuration loaded from config.toml")

	venueLocation, err := cfg.Venue.Location()
	if err != nil {
		log.Fatal("Failed to load venue timezone: %v", err)
	}
	log.Info("Venue timezone: %s", venueLocation)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetimeDuration())

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Все репозитории работают через один executor: с метриками или напрямую
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем репозитории
	tables := tableRepo.NewRepository(executor)
	windows := windowRepo.NewRepository(executor)
	reservations := reservationRepo.NewRepository(executor)
	tenants := tenantRepo.NewRepository(executor)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		tables,
		windows,
		reservations,
		venueLocation,
		log,
	)

	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		tables,
		windows,
		venueLocation,
		cfg.Availability.MaxHorizonWeeks,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(
		getAvailabilityUseCase,
		cfg.Availability.DefaultPartySize,
		log,
	)
	getAvailableDates := getAvailableDatesHandler.NewHandler(
		getAvailableDatesUseCase,
		cfg.Availability.DefaultPartySize,
		cfg.Availability.DefaultHorizonWeeks,
		log,
	)
	health := healthHandler.NewHandler(executor, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix, все маршруты требуют X-Tenant
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerMinute))
		log.Info("Rate limit enabled: %d requests/min per IP", cfg.RateLimit.RequestsPerMinute)
	}
	api.Use(middleware.Tenant(tenants, log))

	// Слоты на конкретную дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Даты для календаря (без учета бронирований)
	api.HandleFunc("/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/CourtEase-BookingService/internal/api/handlers/cancel_booking"
	expireStaleHandler "github.com/m04kA/CourtEase-BookingService/internal/api/handlers/expire_stale_bookings"
	getBookingHandler "github.com/m04kA/CourtEase-BookingService/internal/api/handlers/get_booking"
	getCourtAvailabilityHandler "github.com/m04kA/CourtEase-BookingService/internal/api/handlers/get_court_availability"
	getCourtScheduleHandler "github.com/m04kA/CourtEase-BookingService/internal/api/handlers/get_court_schedule"
	getUserBookingsHandler "github.com/m04kA/CourtEase-BookingService/internal/api/handlers/get_user_bookings"
	startBookingHandler "github.com/m04kA/CourtEase-BookingService/internal/api/handlers/start_booking"
	"github.com/m04kA/CourtEase-BookingService/internal/api/middleware"
	"github.com/m04kA/CourtEase-BookingService/internal/config"
	bookingRepo "github.com/m04kA/CourtEase-BookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/CourtEase-BookingService/internal/infra/storage/court"
	midtransClient "github.com/m04kA/CourtEase-BookingService/internal/integrations/midtrans"
	profileServiceClient "github.com/m04kA/CourtEase-BookingService/internal/integrations/profileservice"
	bookingsService "github.com/m04kA/CourtEase-BookingService/internal/service/bookings"
	getCourtScheduleUC "github.com/m04kA/CourtEase-BookingService/internal/usecase/get_court_schedule"
	startBookingUC "github.com/m04kA/CourtEase-BookingService/internal/usecase/start_booking"
	"github.com/m04kA/CourtEase-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CourtEase-BookingService/pkg/logger"
	"github.com/m04kA/CourtEase-BookingService/pkg/metrics"
	"github.com/m04kA/CourtEase-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/CourtEase-BookingService/pkg/txmanager"
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

	log.Info("Starting CourtEase-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	paymentGateway := midtransClient.NewClient(cfg.Midtrans.ServerKey, cfg.Midtrans.Production, log)
	log.Info("Integration clients initialized (ProfileService=%s timeout=%ds, Midtrans production=%t)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout, cfg.Midtrans.Production)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		courtRepository   *courtRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		courtRepository = courtRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		courtRepository = courtRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		courtRepository,
		log,
	)

	// Инициализируем use cases
	startBookingUseCase := startBookingUC.NewUseCase(
		bookingRepository,
		courtRepository,
		paymentGateway,
		profileClient,
		txMgr,
		cfg.Midtrans.RedirectBaseURL,
		metricsCollector,
		log,
	)

	getCourtScheduleUseCase := getCourtScheduleUC.NewUseCase(
		bookingRepository,
		courtRepository,
		log,
	)

	// Инициализируем handlers
	startBooking := startBookingHandler.NewHandler(startBookingUseCase, log)
	getCourtSchedule := getCourtScheduleHandler.NewHandler(getCourtScheduleUseCase, log)
	getCourtAvailability := getCourtAvailabilityHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	expireStale := expireStaleHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Занятые интервалы корта (снимок для клиентских фетчеров)
	api.HandleFunc("/courts/{courtId}/availability",
		getCourtAvailability.Handle).Methods(http.MethodGet)

	// Расписание корта: календарная сетка, стартовые часы, длительности
	api.HandleFunc("/courts/{courtId}/schedule",
		getCourtSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Бронирования ---
	// Создание бронирования с инициацией оплаты
	protected.HandleFunc("/bookings", startBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// INTERNAL ROUTES (для планировщика)
	// ============================================================

	// Отмена pending бронирований с истёкшей платёжной сессией
	api.HandleFunc("/internal/bookings/expire-stale", expireStale.Handle).Methods(http.MethodPost)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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

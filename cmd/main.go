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

	bookingFlowHandler "github.com/m04kA/OdontoBooking/internal/api/handlers/booking_flow"
	cancelBookingHandler "github.com/m04kA/OdontoBooking/internal/api/handlers/cancel_booking"
	getAvailableSlotsHandler "github.com/m04kA/OdontoBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/OdontoBooking/internal/api/handlers/get_booking"
	getProceduresHandler "github.com/m04kA/OdontoBooking/internal/api/handlers/get_procedures"
	getProfileHandler "github.com/m04kA/OdontoBooking/internal/api/handlers/get_profile"
	getUserBookingsHandler "github.com/m04kA/OdontoBooking/internal/api/handlers/get_user_bookings"
	scheduleProcedureHandler "github.com/m04kA/OdontoBooking/internal/api/handlers/schedule_procedure"
	signInHandler "github.com/m04kA/OdontoBooking/internal/api/handlers/sign_in"
	signUpHandler "github.com/m04kA/OdontoBooking/internal/api/handlers/sign_up"
	updateProfileHandler "github.com/m04kA/OdontoBooking/internal/api/handlers/update_profile"
	"github.com/m04kA/OdontoBooking/internal/api/middleware"
	"github.com/m04kA/OdontoBooking/internal/config"
	"github.com/m04kA/OdontoBooking/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/OdontoBooking/internal/infra/storage/booking"
	"github.com/m04kA/OdontoBooking/internal/integrations/firebaseauth"
	authService "github.com/m04kA/OdontoBooking/internal/service/auth"
	bookingsService "github.com/m04kA/OdontoBooking/internal/service/bookings"
	"github.com/m04kA/OdontoBooking/internal/service/catalog"
	"github.com/m04kA/OdontoBooking/internal/service/clock"
	"github.com/m04kA/OdontoBooking/internal/service/navigation"
	bookingFlowUC "github.com/m04kA/OdontoBooking/internal/usecase/booking_flow"
	getAvailableSlotsUC "github.com/m04kA/OdontoBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/OdontoBooking/pkg/logger"
	"github.com/m04kA/OdontoBooking/pkg/metrics"
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

	log.Info("Starting OdontoBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены).
	// При выключенных метриках передается nil: методы *metrics.Metrics безопасны для nil.
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	clinicClock, err := clock.New(cfg.Clinic.Timezone)
	if err != nil {
		log.Fatal("Failed to load clinic timezone: %v", err)
	}
	today := clinicClock.Today()
	log.Info("Clinic timezone %s, today is %s", cfg.Clinic.Timezone, today)

	// Таблица доступных слотов
	var slotsTable availability.Table
	switch cfg.Availability.Source {
	case config.AvailabilityPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		slotsTable = availability.NewPostgresTable(db)
	default:
		static := availability.NewStaticTable(time.Duration(cfg.Availability.StaticLatencyMs) * time.Millisecond)
		if err := availability.SeedDemo(static, today); err != nil {
			log.Fatal("Failed to seed availability table: %v", err)
		}
		slotsTable = static
		log.Info("Static availability table seeded (latency=%dms)", cfg.Availability.StaticLatencyMs)
	}

	if cfg.Availability.CacheSize > 0 {
		cached, err := availability.NewCachedTable(slotsTable, cfg.Availability.CacheSize, log)
		if err != nil {
			log.Fatal("Failed to create availability cache: %v", err)
		}
		slotsTable = cached
		log.Info("Availability cache enabled (size=%d)", cfg.Availability.CacheSize)
	}

	// Хранилище записей
	bookingRepository := bookingRepo.NewRepository()
	if cfg.Clinic.DemoUserID != "" {
		seeded, err := bookingRepo.SeedDemo(context.Background(), bookingRepository, cfg.Clinic.DemoUserID, today)
		if err != nil {
			log.Fatal("Failed to seed demo bookings: %v", err)
		}
		log.Info("Seeded %d demo bookings for user %s", seeded, cfg.Clinic.DemoUserID)
	}

	// Firebase Authentication
	var admin firebaseauth.AdminAuth
	if cfg.Firebase.CredentialsFile != "" {
		adminClient, err := firebaseauth.NewAdminAuth(context.Background(), cfg.Firebase.CredentialsFile)
		if err != nil {
			log.Fatal("Failed to initialize Firebase Admin SDK: %v", err)
		}
		admin = adminClient
		log.Info("Firebase Admin SDK initialized")
	} else {
		log.Warn("Firebase credentials file is not set: sign-up and token verification are disabled")
	}

	firebaseClient := firebaseauth.NewClient(
		cfg.Firebase.IdentityURL,
		cfg.Firebase.APIKey,
		time.Duration(cfg.Firebase.Timeout)*time.Second,
		admin,
		log,
	)

	// Инициализируем сервисы
	procedureCatalog := catalog.NewService(cfg.Clinic.DefaultProfessional)
	navigator := navigation.NewRouter(cfg.Clinic.MaxSessions)

	bookingSvc := bookingsService.NewService(
		bookingRepository,
		procedureCatalog,
		clinicClock,
		metricsCollector,
		log,
	)
	authSvc := authService.NewService(
		firebaseClient,
		navigator,
		clinicClock,
		log,
	)

	// Инициализируем use cases
	bookingFlowUseCase := bookingFlowUC.NewUseCase(
		slotsTable,
		bookingSvc,
		navigator,
		clinicClock,
		metricsCollector,
		log,
		time.Duration(cfg.Clinic.LookupTimeoutMs)*time.Millisecond,
		cfg.Clinic.DefaultProcedure,
		cfg.Clinic.MaxSessions,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		slotsTable,
		clinicClock,
		log,
	)

	// Инициализируем handlers
	signIn := signInHandler.NewHandler(authSvc, log)
	signUp := signUpHandler.NewHandler(authSvc, log)
	getProfile := getProfileHandler.NewHandler(authSvc, log)
	updateProfile := updateProfileHandler.NewHandler(authSvc, log)
	getProcedures := getProceduresHandler.NewHandler(procedureCatalog, log)
	scheduleProcedure := scheduleProcedureHandler.NewHandler(procedureCatalog, bookingFlowUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	bookingFlow := bookingFlowHandler.NewHandler(bookingFlowUseCase, clinicClock, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, clinicClock, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Аутентификация ---
	authRoutes := api.PathPrefix("/auth").Subrouter()
	if cfg.RateLimit.Enabled {
		rateLimit, err := middleware.RateLimit(middleware.RateLimitOptions{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			TrustProxyHeaders: cfg.RateLimit.TrustProxyHeaders,
			MaxClients:        cfg.RateLimit.MaxClients,
		}, log)
		if err != nil {
			log.Fatal("Failed to create rate limiter: %v", err)
		}
		authRoutes.Use(rateLimit)
		log.Info("Auth rate limit enabled (rps=%.2f, burst=%d, trust_proxy=%t)",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxyHeaders)
	}
	authRoutes.HandleFunc("/sign-in", signIn.Handle).Methods(http.MethodPost)
	authRoutes.HandleFunc("/sign-up", signUp.Handle).Methods(http.MethodPost)

	// Каталог процедур
	api.HandleFunc("/procedures", getProcedures.Handle).Methods(http.MethodGet)

	// Даты с доступными слотами (маркеры календаря)
	api.HandleFunc("/availability", getAvailableSlots.HandleMarkers).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/availability/{date}", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer <ID token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(firebaseClient, log))

	// --- Экран записи ---
	protected.HandleFunc("/procedures/{procedureId}/schedule", scheduleProcedure.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/flow", bookingFlow.Start).Methods(http.MethodPost)
	protected.HandleFunc("/flow", bookingFlow.State).Methods(http.MethodGet)
	protected.HandleFunc("/flow/date", bookingFlow.Pick).Methods(http.MethodPost)
	protected.HandleFunc("/flow/time", bookingFlow.SelectTime).Methods(http.MethodPost)
	protected.HandleFunc("/flow/calendar", bookingFlow.BackToCalendar).Methods(http.MethodPost)
	protected.HandleFunc("/flow/confirmation", bookingFlow.RequestConfirm).Methods(http.MethodPost)
	protected.HandleFunc("/flow/confirmation/accept", bookingFlow.Accept).Methods(http.MethodPost)
	protected.HandleFunc("/flow/confirmation/dismiss", bookingFlow.Dismiss).Methods(http.MethodPost)

	// --- Профиль ---
	protected.HandleFunc("/profile", getProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/profile", updateProfile.Handle).Methods(http.MethodPut)

	// --- Записи пациента ---
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена в два шага: запрос подтверждения, затем accept или отказ
	protected.HandleFunc("/bookings/{bookingId}/cancellation", cancelBooking.RequestCancel).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/cancellation", cancelBooking.Abort).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{bookingId}/cancellation/accept", cancelBooking.Accept).Methods(http.MethodPost)

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

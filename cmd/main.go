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

	cancelBookingHandler "github.com/caninecompadre/booking-service/internal/api/handlers/cancel_booking"
	checkSlotHandler "github.com/caninecompadre/booking-service/internal/api/handlers/check_slot"
	completeBookingHandler "github.com/caninecompadre/booking-service/internal/api/handlers/complete_booking"
	completeRequestHandler "github.com/caninecompadre/booking-service/internal/api/handlers/complete_request"
	createBookingHandler "github.com/caninecompadre/booking-service/internal/api/handlers/create_booking"
	createRequestHandler "github.com/caninecompadre/booking-service/internal/api/handlers/create_request"
	deleteDateOverrideHandler "github.com/caninecompadre/booking-service/internal/api/handlers/delete_date_override"
	getAvailableSlotsHandler "github.com/caninecompadre/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/caninecompadre/booking-service/internal/api/handlers/get_booking"
	getDateHandler "github.com/caninecompadre/booking-service/internal/api/handlers/get_date"
	getRequestHandler "github.com/caninecompadre/booking-service/internal/api/handlers/get_request"
	getSettingsHandler "github.com/caninecompadre/booking-service/internal/api/handlers/get_settings"
	healthHandler "github.com/caninecompadre/booking-service/internal/api/handlers/health"
	listBookingsHandler "github.com/caninecompadre/booking-service/internal/api/handlers/list_bookings"
	listRequestsHandler "github.com/caninecompadre/booking-service/internal/api/handlers/list_requests"
	reviewRequestHandler "github.com/caninecompadre/booking-service/internal/api/handlers/review_request"
	updateSettingsHandler "github.com/caninecompadre/booking-service/internal/api/handlers/update_settings"
	upsertDateOverrideHandler "github.com/caninecompadre/booking-service/internal/api/handlers/upsert_date_override"
	"github.com/caninecompadre/booking-service/internal/api/middleware"
	"github.com/caninecompadre/booking-service/internal/config"
	bookingRepo "github.com/caninecompadre/booking-service/internal/infra/storage/booking"
	dogRepo "github.com/caninecompadre/booking-service/internal/infra/storage/dog"
	overrideRepo "github.com/caninecompadre/booking-service/internal/infra/storage/override"
	requestRepo "github.com/caninecompadre/booking-service/internal/infra/storage/request"
	settingsRepo "github.com/caninecompadre/booking-service/internal/infra/storage/settings"
	calendarClient "github.com/caninecompadre/booking-service/internal/integrations/calendar"
	mailerClient "github.com/caninecompadre/booking-service/internal/integrations/mailer"
	bookingsService "github.com/caninecompadre/booking-service/internal/service/bookings"
	overridesService "github.com/caninecompadre/booking-service/internal/service/overrides"
	requestsService "github.com/caninecompadre/booking-service/internal/service/requests"
	settingsService "github.com/caninecompadre/booking-service/internal/service/settings"
	applyDateOverrideUC "github.com/caninecompadre/booking-service/internal/usecase/apply_date_override"
	createBookingUC "github.com/caninecompadre/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/caninecompadre/booking-service/internal/usecase/get_available_slots"
	"github.com/caninecompadre/booking-service/pkg/database"
	"github.com/caninecompadre/booking-service/pkg/dbmetrics"
	"github.com/caninecompadre/booking-service/pkg/logger"
	"github.com/caninecompadre/booking-service/pkg/metrics"
	"github.com/caninecompadre/booking-service/pkg/simpletxmanager"
	"github.com/caninecompadre/booking-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if err := database.RunMigrations(db, log); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}

	mailer := mailerClient.NewClient(
		cfg.Mailer.Host,
		cfg.Mailer.Port,
		cfg.Mailer.Username,
		cfg.Mailer.Password,
		cfg.Mailer.From,
		cfg.Mailer.AdminAddress,
		cfg.Mailer.RetryAttempts,
		time.Duration(cfg.Mailer.RetryBackoff)*time.Millisecond,
		log,
	)
	calendar := calendarClient.NewClient(
		cfg.Calendar.BaseURL,
		cfg.Calendar.Token,
		time.Duration(cfg.Calendar.Timeout)*time.Second,
		cfg.Calendar.RetryAttempts,
		time.Duration(cfg.Calendar.RetryBackoff)*time.Millisecond,
		log,
	)
	log.Info("Integration clients initialized (mailer=%s:%d, calendar=%s)",
		cfg.Mailer.Host, cfg.Mailer.Port, cfg.Calendar.BaseURL)

	var (
		settingsRepository *settingsRepo.Repository
		overrideRepository *overrideRepo.Repository
		bookingRepository  *bookingRepo.Repository
		requestRepository  *requestRepo.Repository
		dogRepository      *dogRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		overrideRepository = overrideRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		requestRepository = requestRepo.NewRepository(wrappedDB)
		dogRepository = dogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		settingsRepository = settingsRepo.NewRepository(db)
		overrideRepository = overrideRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		requestRepository = requestRepo.NewRepository(db)
		dogRepository = dogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	settingsSvc := settingsService.NewService(settingsRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, dogRepository, calendar, mailer, log)
	requestsSvc := requestsService.NewService(requestRepository, dogRepository, calendar, mailer, txMgr, log)
	overridesSvc := overridesService.NewService(overrideRepository, settingsRepository, bookingRepository, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		settingsRepository,
		overrideRepository,
		bookingRepository,
		dogRepository,
		calendar,
		mailer,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		settingsRepository,
		overrideRepository,
		bookingRepository,
		log,
	)
	applyDateOverrideUseCase := applyDateOverrideUC.NewUseCase(
		overrideRepository,
		bookingRepository,
		dogRepository,
		calendar,
		mailer,
		txMgr,
		log,
	)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkSlot := checkSlotHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingsSvc, log)
	createRequest := createRequestHandler.NewHandler(requestsSvc, log)
	getRequest := getRequestHandler.NewHandler(requestsSvc, log)
	listRequests := listRequestsHandler.NewHandler(requestsSvc, log)
	reviewRequest := reviewRequestHandler.NewHandler(requestsSvc, log)
	completeRequest := completeRequestHandler.NewHandler(requestsSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	getDate := getDateHandler.NewHandler(overridesSvc, log)
	upsertDateOverride := upsertDateOverrideHandler.NewHandler(applyDateOverrideUseCase, log)
	deleteDateOverride := deleteDateOverrideHandler.NewHandler(overridesSvc, log)
	health := healthHandler.NewHandler(db)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: availability and customer submissions
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/check", checkSlot.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/individual-requests", createRequest.Handle).Methods(http.MethodPost)

	// Staff routes: require the X-Staff-Key header
	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.StaffAuth(cfg.Auth.StaffKey))

	staff.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/bookings/{id:[0-9]+}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/bookings/{id:[0-9]+}/complete", completeBooking.Handle).Methods(http.MethodPost)

	staff.HandleFunc("/individual-requests", listRequests.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/individual-requests/{id:[0-9]+}", getRequest.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/individual-requests/{id:[0-9]+}/review", reviewRequest.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/individual-requests/{id:[0-9]+}/complete", completeRequest.Handle).Methods(http.MethodPost)

	staff.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	staff.HandleFunc("/dates/{date}", getDate.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/dates/{date}", upsertDateOverride.Handle).Methods(http.MethodPut)
	staff.HandleFunc("/dates/{date}", deleteDateOverride.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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

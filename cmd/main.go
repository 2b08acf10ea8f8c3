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

	cancelReservationHandler "github.com/m04kA/SMC-TramitesService/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/m04kA/SMC-TramitesService/internal/api/handlers/check_availability"
	createReservationHandler "github.com/m04kA/SMC-TramitesService/internal/api/handlers/create_reservation"
	getCalendarReservationsHandler "github.com/m04kA/SMC-TramitesService/internal/api/handlers/get_calendar_reservations"
	getProcedureTypesHandler "github.com/m04kA/SMC-TramitesService/internal/api/handlers/get_procedure_types"
	getReservationHandler "github.com/m04kA/SMC-TramitesService/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/m04kA/SMC-TramitesService/internal/api/handlers/get_user_reservations"
	updateReservationStatusHandler "github.com/m04kA/SMC-TramitesService/internal/api/handlers/update_reservation_status"
	validateRequirementsHandler "github.com/m04kA/SMC-TramitesService/internal/api/handlers/validate_requirements"
	"github.com/m04kA/SMC-TramitesService/internal/api/middleware"
	"github.com/m04kA/SMC-TramitesService/internal/config"
	"github.com/m04kA/SMC-TramitesService/internal/eligibility"
	reservationRepo "github.com/m04kA/SMC-TramitesService/internal/infra/storage/reservation"
	authServiceClient "github.com/m04kA/SMC-TramitesService/internal/integrations/authservice"
	municipalServiceClient "github.com/m04kA/SMC-TramitesService/internal/integrations/municipalservice"
	"github.com/m04kA/SMC-TramitesService/internal/procedures"
	"github.com/m04kA/SMC-TramitesService/internal/scheduling"
	reservationsService "github.com/m04kA/SMC-TramitesService/internal/service/reservations"
	checkAvailabilityUC "github.com/m04kA/SMC-TramitesService/internal/usecase/check_availability"
	createReservationUC "github.com/m04kA/SMC-TramitesService/internal/usecase/create_reservation"
	validateRequirementsUC "github.com/m04kA/SMC-TramitesService/internal/usecase/validate_requirements"
	"github.com/m04kA/SMC-TramitesService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TramitesService/pkg/logger"
	"github.com/m04kA/SMC-TramitesService/pkg/metrics"
	"github.com/m04kA/SMC-TramitesService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-TramitesService/pkg/txmanager"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TramitesService...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (when enabled)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configure the connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize integration clients
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	municipalClient := municipalServiceClient.NewClient(
		cfg.MunicipalService.URL,
		time.Duration(cfg.MunicipalService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (AuthService=%s timeout=%ds, MunicipalService=%s timeout=%ds)",
		cfg.AuthService.URL, cfg.AuthService.Timeout, cfg.MunicipalService.URL, cfg.MunicipalService.Timeout)

	// Build the procedure catalog, conflict detector and eligibility engine
	catalog, err := procedures.New(cfg.Booking.DefaultDurationMinutes, cfg.Booking.AllowUnknownProcedures)
	if err != nil {
		log.Fatal("Failed to build procedure catalog: %v", err)
	}
	detector := scheduling.NewDetector(catalog)
	engine, err := eligibility.NewEngine(cfg.Booking.AllowUnknownProcedures)
	if err != nil {
		log.Fatal("Failed to build eligibility engine: %v", err)
	}
	log.Info("Procedure catalog loaded (%d types, allow_unknown=%t)",
		len(catalog.List()), cfg.Booking.AllowUnknownProcedures)

	// Initialize the repository and transaction manager (with metrics or without)
	var reservationRepository *reservationRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Initialize services
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		authClient,
		catalog,
		log,
	)

	// Initialize use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		authClient,
		municipalClient,
		engine,
		detector,
		catalog,
		txMgr,
		log,
	)

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		reservationRepository,
		detector,
		log,
	)

	validateRequirementsUseCase := validateRequirementsUC.NewUseCase(
		authClient,
		municipalClient,
		engine,
		catalog,
		log,
	)

	// Initialize handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	validateRequirements := validateRequirementsHandler.NewHandler(validateRequirementsUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	getCalendarReservations := getCalendarReservationsHandler.NewHandler(reservationSvc, log)
	getProcedureTypes := getProcedureTypesHandler.NewHandler(catalog, log)

	// Configure the router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (public, no authentication)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (no authentication)
	// ============================================================

	// Procedure type catalog
	api.HandleFunc("/tramites", getProcedureTypes.Handle).Methods(http.MethodGet)

	// Slot availability check
	api.HandleFunc("/disponibilidad", checkAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (require X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Reservations ---
	// Book an appointment
	protected.HandleFunc("/reservaciones", createReservation.Handle).Methods(http.MethodPost)

	// Appointment calendar over a date range
	protected.HandleFunc("/reservaciones", getCalendarReservations.Handle).Methods(http.MethodGet)

	// Fetch a reservation by ID
	protected.HandleFunc("/reservaciones/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Cancel a reservation (owner) or annul it (staff)
	protected.HandleFunc("/reservaciones/{reservationId}/cancelar", cancelReservation.Handle).Methods(http.MethodPatch)

	// Transition a reservation's status (staff)
	protected.HandleFunc("/reservaciones/{reservationId}/estado", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// A user's reservation history
	protected.HandleFunc("/usuarios/{userId}/reservaciones", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Requirements ---
	// Pre-booking requirements evaluation
	protected.HandleFunc("/tramites/validar-requisitos", validateRequirements.Handle).Methods(http.MethodPost)

	// Create the HTTP server
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Stop connection pool metrics collection
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

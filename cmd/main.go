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
	"github.com/stripe/stripe-go/v79"

	cancelAppointmentHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/cancel_appointment"
	confirmBookingHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/confirm_booking"
	createPaymentIntentHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/create_payment_intent"
	createServiceHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/create_service"
	createStaffHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/create_staff"
	createSubServiceHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/create_sub_service"
	deleteServiceHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/delete_service"
	deleteStaffHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/delete_staff"
	deleteSubServiceHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/delete_sub_service"
	getAdminAppointmentsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_admin_appointments"
	getAdminSubServicesHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_admin_sub_services"
	getAvailableSlotsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_available_slots"
	getBookingOptionsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_booking_options"
	getClientAppointmentsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_client_appointments"
	getServicesHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_services"
	getStaffHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_staff"
	getSubServicesHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_sub_services"
	updateServiceHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/update_service"
	updateStaffHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/update_staff"
	updateSubServiceHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/update_sub_service"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	"github.com/m04kA/Salon-BookingService/internal/config"
	appointmentRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/client"
	staffRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/staffmember"
	subServiceRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/subservice"
	"github.com/m04kA/Salon-BookingService/internal/integrations/mailer"
	"github.com/m04kA/Salon-BookingService/internal/integrations/payments"
	appointmentsService "github.com/m04kA/Salon-BookingService/internal/service/appointments"
	catalogService "github.com/m04kA/Salon-BookingService/internal/service/catalog"
	staffService "github.com/m04kA/Salon-BookingService/internal/service/staff"
	confirmBookingUC "github.com/m04kA/Salon-BookingService/internal/usecase/confirm_booking"
	createPaymentIntentUC "github.com/m04kA/Salon-BookingService/internal/usecase/create_payment_intent"
	getAvailableSlotsUC "github.com/m04kA/Salon-BookingService/internal/usecase/get_available_slots"
	getBookingOptionsUC "github.com/m04kA/Salon-BookingService/internal/usecase/get_booking_options"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/logger"
	"github.com/m04kA/Salon-BookingService/pkg/metrics"
	"github.com/m04kA/Salon-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/Salon-BookingService/pkg/txmanager"
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

	log.Info("Starting Salon-BookingService...")

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

	stripe.Key = cfg.Stripe.SecretKey
	paymentsClient := payments.NewClient(log)
	log.Info("Stripe payments client initialized")

	var bookingMailer confirmBookingUC.Mailer
	if cfg.SMTP.Enabled {
		m, err := mailer.New(mailer.Config{
			Host:        cfg.SMTP.Host,
			Port:        cfg.SMTP.Port,
			Username:    cfg.SMTP.Username,
			Password:    cfg.SMTP.Password,
			From:        cfg.SMTP.From,
			DialTimeout: time.Duration(cfg.SMTP.DialTimeout) * time.Second,
		}, log)
		if err != nil {
			log.Fatal("Failed to initialize mailer: %v", err)
		}
		bookingMailer = m
		log.Info("SMTP mailer initialized (host=%s, from=%s)", cfg.SMTP.Host, cfg.SMTP.From)
	} else {
		log.Info("SMTP mailer disabled, confirmation emails will not be sent")
	}

	var (
		serviceRepository     *serviceRepo.Repository
		subServiceRepository  *subServiceRepo.Repository
		staffRepository       *staffRepo.Repository
		appointmentRepository *appointmentRepo.Repository
		clientRepository      *clientRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		subServiceRepository = subServiceRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		serviceRepository = serviceRepo.NewRepository(db)
		subServiceRepository = subServiceRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	catalogSvc := catalogService.NewService(
		serviceRepository,
		subServiceRepository,
		staffRepository,
		txMgr,
		log,
	)
	staffSvc := staffService.NewService(staffRepository, log)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		&appointmentsService.RealTimeProvider{},
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		subServiceRepository,
		&getAvailableSlotsUC.RealTimeProvider{},
		log,
	)
	getBookingOptionsUseCase := getBookingOptionsUC.NewUseCase(subServiceRepository, log)
	createPaymentIntentUseCase := createPaymentIntentUC.NewUseCase(
		subServiceRepository,
		paymentsClient,
		log,
	)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		subServiceRepository,
		appointmentRepository,
		clientRepository,
		paymentsClient,
		bookingMailer,
		txMgr,
		&confirmBookingUC.RealTimeProvider{},
		log,
	)

	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	getSubServices := getSubServicesHandler.NewHandler(catalogSvc, log)
	getBookingOptions := getBookingOptionsHandler.NewHandler(getBookingOptionsUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createPaymentIntent := createPaymentIntentHandler.NewHandler(createPaymentIntentUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAdminAppointments := getAdminAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAdminSubServices := getAdminSubServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	createSubService := createSubServiceHandler.NewHandler(catalogSvc, log)
	updateSubService := updateSubServiceHandler.NewHandler(catalogSvc, log)
	deleteSubService := deleteSubServiceHandler.NewHandler(catalogSvc, log)
	getStaff := getStaffHandler.NewHandler(staffSvc, log)
	createStaff := createStaffHandler.NewHandler(staffSvc, log)
	updateStaff := updateStaffHandler.NewHandler(staffSvc, log)
	deleteStaff := deleteStaffHandler.NewHandler(staffSvc, log)

	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: the catalog and the slot grid.
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}/sub-services", getSubServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sub-services/{id}/booking-options", getBookingOptions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sub-services/{id}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Protected routes: require the X-User-ID header.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/payment-intents", createPaymentIntent.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", confirmBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/clients/{id}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// Admin routes: the authenticated user must be staff with the admin role.
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth)
	admin.Use(middleware.AdminAuth(staffRepository, log))

	admin.HandleFunc("/appointments", getAdminAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/sub-services", getAdminSubServices.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", updateService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", deleteService.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/sub-services", createSubService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/sub-services/{id}", updateSubService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/sub-services/{id}", deleteSubService.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/staff", getStaff.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/staff", createStaff.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/staff/{id}", updateStaff.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/staff/{id}", deleteStaff.Handle).Methods(http.MethodDelete)

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
		log.Error("Server shutdown failed: %v", err)
	}

	log.Info("Server stopped")
}

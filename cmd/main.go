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
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	deleteBookingHandler "github.com/motcentre/booking-service/internal/api/handlers/delete_booking"
	deleteReportHandler "github.com/motcentre/booking-service/internal/api/handlers/delete_report"
	findBookingsHandler "github.com/motcentre/booking-service/internal/api/handlers/find_bookings"
	getAvailableSlotsHandler "github.com/motcentre/booking-service/internal/api/handlers/get_available_slots"
	getConversationHandler "github.com/motcentre/booking-service/internal/api/handlers/get_conversation"
	getDashboardStatsHandler "github.com/motcentre/booking-service/internal/api/handlers/get_dashboard_stats"
	getWizardHandler "github.com/motcentre/booking-service/internal/api/handlers/get_wizard"
	jumpStepHandler "github.com/motcentre/booking-service/internal/api/handlers/jump_step"
	listBookingsHandler "github.com/motcentre/booking-service/internal/api/handlers/list_bookings"
	listConversationsHandler "github.com/motcentre/booking-service/internal/api/handlers/list_conversations"
	listReportsHandler "github.com/motcentre/booking-service/internal/api/handlers/list_reports"
	lookupVehicleHandler "github.com/motcentre/booking-service/internal/api/handlers/lookup_vehicle"
	selectAppointmentHandler "github.com/motcentre/booking-service/internal/api/handlers/select_appointment"
	selectVehicleHandler "github.com/motcentre/booking-service/internal/api/handlers/select_vehicle"
	sendMessageHandler "github.com/motcentre/booking-service/internal/api/handlers/send_message"
	startWizardHandler "github.com/motcentre/booking-service/internal/api/handlers/start_wizard"
	submitBookingHandler "github.com/motcentre/booking-service/internal/api/handlers/submit_booking"
	updateCustomerHandler "github.com/motcentre/booking-service/internal/api/handlers/update_customer"
	"github.com/motcentre/booking-service/internal/api/middleware"
	"github.com/motcentre/booking-service/internal/config"
	"github.com/motcentre/booking-service/internal/domain"
	"github.com/motcentre/booking-service/internal/infra/storage"
	bookingsRepo "github.com/motcentre/booking-service/internal/infra/storage/bookings"
	messagesRepo "github.com/motcentre/booking-service/internal/infra/storage/messages"
	reportsRepo "github.com/motcentre/booking-service/internal/infra/storage/reports"
	notifierClient "github.com/motcentre/booking-service/internal/integrations/notifier"
	vehicleDirectory "github.com/motcentre/booking-service/internal/integrations/vehicledirectory"
	bookingsService "github.com/motcentre/booking-service/internal/service/bookings"
	conversationsService "github.com/motcentre/booking-service/internal/service/conversations"
	reportsService "github.com/motcentre/booking-service/internal/service/reports"
	wizardService "github.com/motcentre/booking-service/internal/service/wizard"
	getAvailableSlotsUC "github.com/motcentre/booking-service/internal/usecase/get_available_slots"
	submitBookingUC "github.com/motcentre/booking-service/internal/usecase/submit_booking"
	"github.com/motcentre/booking-service/pkg/logger"
	"github.com/motcentre/booking-service/pkg/metrics"
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

	log.Info("Starting MOT booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Открываем in-memory реестр
	// Одно соединение: при shared cache конкурентные writer-ы
	// ловят table is locked
	db, err := sql.Open("sqlite3", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to open registry database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	if err := storage.Migrate(ctx, db); err != nil {
		log.Fatal("Failed to migrate registry schema: %v", err)
	}
	log.Info("Registry schema ready (dsn=%s)", cfg.Database.DSN)

	// Инициализируем репозитории
	bookingsRepository := bookingsRepo.NewRepository(db)
	messagesRepository := messagesRepo.NewRepository(db)
	reportsRepository := reportsRepo.NewRepository(db)

	// Демо-данные
	if cfg.Seed.Demo {
		if err := storage.SeedDemo(ctx, bookingsRepository, messagesRepository, reportsRepository); err != nil {
			log.Fatal("Failed to seed demo data: %v", err)
		}
		log.Info("Demo data seeded")
	}

	// Справочник транспортных средств: внешний HTTP сервис
	// или встроенный статический набор
	var directory wizardService.VehicleDirectory
	if cfg.VehicleDirectory.URL != "" {
		directory = vehicleDirectory.NewClient(
			cfg.VehicleDirectory.URL,
			time.Duration(cfg.VehicleDirectory.Timeout)*time.Second,
			log,
		)
		log.Info("Vehicle directory client initialized (url=%s timeout=%ds)",
			cfg.VehicleDirectory.URL, cfg.VehicleDirectory.Timeout)
	} else {
		directory = vehicleDirectory.NewStaticDirectory()
		log.Info("Vehicle directory: using built-in static records")
	}

	// Приёмник уведомлений
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)

	// Инициализируем сервисы
	schedule := domain.DefaultSlotSchedule()

	wizardSvc := wizardService.NewService(
		directory,
		schedule,
		time.Duration(cfg.Wizard.SessionTTLMinutes)*time.Minute,
		log,
	)
	bookingsSvc := bookingsService.NewService(bookingsRepository, log)
	conversationsSvc := conversationsService.NewService(bookingsRepository, messagesRepository, log)
	reportsSvc := reportsService.NewService(reportsRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(schedule, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(wizardSvc, bookingsRepository, notifier, log)

	// Инициализируем handlers
	lookupVehicle := lookupVehicleHandler.NewHandler(directory, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	startWizard := startWizardHandler.NewHandler(wizardSvc, log)
	getWizard := getWizardHandler.NewHandler(wizardSvc, log)
	selectVehicle := selectVehicleHandler.NewHandler(wizardSvc, log)
	selectAppointment := selectAppointmentHandler.NewHandler(wizardSvc, log)
	updateCustomer := updateCustomerHandler.NewHandler(wizardSvc, log)
	jumpStep := jumpStepHandler.NewHandler(wizardSvc, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingsSvc, log)
	findBookings := findBookingsHandler.NewHandler(bookingsSvc, log)
	getDashboardStats := getDashboardStatsHandler.NewHandler(bookingsSvc, log)
	listConversations := listConversationsHandler.NewHandler(conversationsSvc, log)
	getConversation := getConversationHandler.NewHandler(conversationsSvc, log)
	sendMessage := sendMessageHandler.NewHandler(conversationsSvc, log)
	listReports := listReportsHandler.NewHandler(reportsSvc, log)
	deleteReport := deleteReportHandler.NewHandler(reportsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Справочник и расписание ---
	api.HandleFunc("/vehicles/{registration}", lookupVehicle.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Мастер бронирования ---
	api.HandleFunc("/wizard/sessions", startWizard.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{sessionId}", getWizard.Handle).Methods(http.MethodGet)
	api.HandleFunc("/wizard/sessions/{sessionId}/vehicle", selectVehicle.Handle).Methods(http.MethodPut)
	api.HandleFunc("/wizard/sessions/{sessionId}/appointment", selectAppointment.Handle).Methods(http.MethodPut)
	api.HandleFunc("/wizard/sessions/{sessionId}/customer", updateCustomer.Handle).Methods(http.MethodPut)
	api.HandleFunc("/wizard/sessions/{sessionId}/step", jumpStep.Handle).Methods(http.MethodPut)
	api.HandleFunc("/wizard/sessions/{sessionId}/submit", submitBooking.Handle).Methods(http.MethodPost)

	// --- Реестр бронирований ---
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/find", findBookings.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/dashboard/stats", getDashboardStats.Handle).Methods(http.MethodGet)

	// --- Переписки ---
	api.HandleFunc("/conversations", listConversations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/conversations/{bookingId}", getConversation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/conversations/{bookingId}/messages", sendMessage.Handle).Methods(http.MethodPost)

	// --- Отчеты ---
	api.HandleFunc("/reports", listReports.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reports/{reportId}", deleteReport.Handle).Methods(http.MethodDelete)

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

	log.Info("Server stopped")
}

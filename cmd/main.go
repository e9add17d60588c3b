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
	"github.com/rs/cors"

	cancelReservationHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/cancel_reservation"
	checkoutHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/checkout"
	clientCartHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/client_cart"
	createStaffHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_staff"
	dashboardHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/dashboard"
	exportClientsPDFHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/export_clients_pdf"
	financeHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/finance"
	getClientReservationsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_client_reservations"
	listClientsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_clients"
	listServicesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_services"
	listStaffHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_staff"
	loginHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/login"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_available_slots"
	manageServicesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/manage_services"
	registerHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/register"
	reportsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/reports"
	rescheduleReservationHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/reschedule_reservation"
	scheduleHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/schedule"
	setClientTypeHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/set_client_type"
	setReservationStatusHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/set_reservation_status"
	settleDebtHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/settle_debt"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/auth"
	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/cartstore"
	"github.com/m04kA/SMC-SalonService/internal/infra/pdfexport"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/document"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/filedb"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/memdb"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/pgdoc"
	cartService "github.com/m04kA/SMC-SalonService/internal/service/cart"
	catalogService "github.com/m04kA/SMC-SalonService/internal/service/catalog"
	clientsService "github.com/m04kA/SMC-SalonService/internal/service/clients"
	reportsService "github.com/m04kA/SMC-SalonService/internal/service/reports"
	reservationsService "github.com/m04kA/SMC-SalonService/internal/service/reservations"
	checkoutUC "github.com/m04kA/SMC-SalonService/internal/usecase/checkout"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	rescheduleReservationUC "github.com/m04kA/SMC-SalonService/internal/usecase/reschedule_reservation"
	settleDebtUC "github.com/m04kA/SMC-SalonService/internal/usecase/settle_debt"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/idgen"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

const brandName = "Salao Ela&Ele"

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

	log.Info("Starting SMC-SalonService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены); nil означает выключенные метрики
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ctx := context.Background()

	// Хранилище документа
	var store document.Store
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store = memdb.New()
		log.Warn("Using in-memory document store, data is lost on restart")

	case config.StorageDriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)
		pgStore := pgdoc.New(wrappedDB, txmanager.NewTransactionManager(wrappedDB), cfg.Storage.DocumentID)
		if err := pgStore.Migrate(ctx); err != nil {
			log.Fatal("Failed to migrate database: %v", err)
		}
		store = pgStore

	default:
		fileStore, err := filedb.New(cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("Failed to open document file %s: %v", cfg.Storage.FilePath, err)
		}
		store = fileStore
		log.Info("Using document file %s", cfg.Storage.FilePath)
	}

	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	ids := idgen.New()

	// Заполняем документ данными по умолчанию
	seeded, err := document.Seed(ctx, store, hasher, ids, &document.RealTimeProvider{}, document.SeedOptions{
		AdminEmail:    cfg.Seed.AdminEmail,
		AdminPassword: cfg.Seed.AdminPassword,
		AdminName:     cfg.Seed.AdminName,
		AdminPhone:    cfg.Seed.AdminPhone,
	}, log)
	if err != nil {
		log.Fatal("Failed to seed document: %v", err)
	}
	log.Info("Document ready (seeded=%t)", seeded)

	// Корзины клиентов
	var carts cartstore.Store
	cartTTL := time.Duration(cfg.Cart.TTLMinutes) * time.Minute
	if cfg.Cart.Driver == config.CartDriverRedis {
		redisClient, err := cartstore.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis %s: %v", cfg.Redis.Addr, err)
		}
		defer redisClient.Close()
		carts = cartstore.NewRedisStore(redisClient, cfg.Redis.KeyPrefix, cartTTL)
		log.Info("Cart store: redis (addr=%s)", cfg.Redis.Addr)
	} else {
		memoryCarts := cartstore.NewMemoryStore(cartTTL)
		if cartTTL > 0 {
			go memoryCarts.RunCleanup(time.Minute, stopCh)
		}
		carts = memoryCarts
		log.Info("Cart store: memory")
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(store, log)
	catalogSvc := catalogService.NewService(store, ids, log)
	clientSvc := clientsService.NewService(store, hasher, tokens, pdfexport.NewRenderer(brandName), ids, log)
	cartSvc := cartService.NewService(store, carts, log)
	reportSvc := reportsService.NewService(store, log)

	// Инициализируем use cases
	checkoutUseCase := checkoutUC.NewUseCase(store, carts, ids, metricsCollector, log)
	rescheduleUseCase := rescheduleReservationUC.NewUseCase(store, log)
	settleDebtUseCase := settleDebtUC.NewUseCase(store, ids, metricsCollector, log)
	slotsUseCase := getAvailableSlotsUC.NewUseCase(store, getAvailableSlotsUC.WorkingHours{
		Open:             types.TimeString(cfg.Schedule.OpenTime),
		Close:            types.TimeString(cfg.Schedule.CloseTime),
		StepMinutes:      cfg.Schedule.SlotStepMinutes,
		MinNoticeMinutes: cfg.Schedule.MinNoticeMinutes,
		AdvanceDays:      cfg.Schedule.AdvanceDays,
	}, log)

	// Инициализируем handlers
	register := registerHandler.NewHandler(clientSvc, log)
	login := loginHandler.NewHandler(clientSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	listStaff := listStaffHandler.NewHandler(catalogSvc, log)
	availableSlots := getAvailableSlotsHandler.NewHandler(slotsUseCase, log)
	clientCart := clientCartHandler.NewHandler(cartSvc, log)
	checkout := checkoutHandler.NewHandler(checkoutUseCase, log)
	getClientReservations := getClientReservationsHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	dashboard := dashboardHandler.NewHandler(reportSvc, log)
	finance := financeHandler.NewHandler(reportSvc, log)
	reports := reportsHandler.NewHandler(reportSvc, log)
	manageServices := manageServicesHandler.NewHandler(catalogSvc, log)
	createStaff := createStaffHandler.NewHandler(catalogSvc, log)
	schedule := scheduleHandler.NewHandler(reservationSvc, log)
	setReservationStatus := setReservationStatusHandler.NewHandler(reservationSvc, log)
	rescheduleReservation := rescheduleReservationHandler.NewHandler(rescheduleUseCase, log)
	listClients := listClientsHandler.NewHandler(clientSvc, log)
	exportClientsPDF := exportClientsPDFHandler.NewHandler(clientSvc, log)
	setClientType := setClientTypeHandler.NewHandler(clientSvc, log)
	settleDebt := settleDebtHandler.NewHandler(settleDebtUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	authRoutes := api.PathPrefix("/auth").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, 10*time.Minute)
		go limiter.RunCleanup(time.Minute, stopCh)
		authRoutes.Use(limiter.Limit)
		log.Info("Rate limit on /auth: %.2f rps, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}
	authRoutes.HandleFunc("/register", register.Handle).Methods(http.MethodPost)
	authRoutes.HandleFunc("/login", login.Handle).Methods(http.MethodPost)

	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff", listStaff.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff/{id}/available-slots", availableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// CLIENT ROUTES (role=client)
	// ============================================================

	client := api.PathPrefix("/client").Subrouter()
	client.Use(middleware.Auth(tokens, log), middleware.RequireRole(domain.RoleClient, log))

	// --- Корзина ---
	client.HandleFunc("/cart", clientCart.Get).Methods(http.MethodGet)
	client.HandleFunc("/cart/count", clientCart.Count).Methods(http.MethodGet)
	client.HandleFunc("/cart/items", clientCart.Add).Methods(http.MethodPost)
	client.HandleFunc("/cart/items/{serviceId}", clientCart.Remove).Methods(http.MethodDelete)
	client.HandleFunc("/cart/clear", clientCart.Clear).Methods(http.MethodPost)

	// --- Бронирования ---
	client.HandleFunc("/reservations", checkout.Handle).Methods(http.MethodPost)
	client.HandleFunc("/reservations", getClientReservations.Handle).Methods(http.MethodGet)
	client.HandleFunc("/reservations/{id}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (role=admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(tokens, log), middleware.RequireRole(domain.RoleAdmin, log))

	// --- Сводки ---
	admin.HandleFunc("/dashboard", dashboard.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/finance", finance.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reports", reports.Handle).Methods(http.MethodGet)

	// --- Каталог ---
	admin.HandleFunc("/services", manageServices.Create).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", manageServices.Update).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", manageServices.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/staff", createStaff.Handle).Methods(http.MethodPost)

	// --- Агенда ---
	admin.HandleFunc("/schedule", schedule.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}/status", setReservationStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reservations/{id}/reschedule", rescheduleReservation.Handle).Methods(http.MethodPatch)

	// --- Клиенты и долги ---
	admin.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/clients/export.pdf", exportClientsPDF.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/clients/{id}/type", setClientType.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/debts/{id}/settle", settleDebt.Handle).Methods(http.MethodPost)

	// CORS для фронтенда
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

	// Останавливаем фоновые сборщики
	close(stopCh)

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

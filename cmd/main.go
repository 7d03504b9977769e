package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/cancel_booking"
	createAdminUserHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_admin_user"
	createBlockHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_block"
	createServiceHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_service"
	createStaffHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_staff"
	createWorkingHourHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_working_hour"
	deleteBlockHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/delete_block"
	getBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_booking"
	getMeHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_me"
	getSuggestedSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_suggested_slots"
	ivrGetCallHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/ivr_get_call"
	ivrHandleInputHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/ivr_handle_input"
	ivrHangUpHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/ivr_hang_up"
	ivrResetCallHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/ivr_reset_call"
	ivrStartCallHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/ivr_start_call"
	listAdminUsersHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_admin_users"
	listBlocksHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_blocks"
	listBookingsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_bookings"
	listServicesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_services"
	listStaffHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_staff"
	listWorkingHoursHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_working_hours"
	pingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/ping"
	updateAdminUserHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_admin_user"
	updateServiceHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_service"
	updateStaffHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_staff"
	updateWorkingHourHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_working_hour"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	holdStore "github.com/m04kA/SMC-SalonService/internal/infra/cache/hold"
	adminUserRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/adminuser"
	blockRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/block"
	bookingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/booking"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	staffRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/staff"
	workingHoursRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-SalonService/internal/ivr"
	"github.com/m04kA/SMC-SalonService/internal/ivr/live"
	"github.com/m04kA/SMC-SalonService/internal/ivr/sim"
	adminsService "github.com/m04kA/SMC-SalonService/internal/service/admins"
	bookingsService "github.com/m04kA/SMC-SalonService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-SalonService/internal/service/catalog"
	scheduleService "github.com/m04kA/SMC-SalonService/internal/service/schedule"
	confirmHoldUC "github.com/m04kA/SMC-SalonService/internal/usecase/confirm_hold"
	placeHoldUC "github.com/m04kA/SMC-SalonService/internal/usecase/place_hold"
	suggestSlotsUC "github.com/m04kA/SMC-SalonService/internal/usecase/suggest_slots"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
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

	log.Info("Starting SMC-SalonService (ivr mode=%s)...", cfg.IVR.Mode)

	location := cfg.IVR.Location()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ctx, cancelBackground := context.WithCancel(context.Background())
	defer cancelBackground()

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Коллабораторы движка звонков
	var (
		slots     ivr.SlotSuggester
		holds     ivr.HoldAllocator
		confirmer ivr.BookingConfirmer
		catalog   ivrStartCallHandler.CatalogSource
	)
	pingChecks := make(map[string]pingHandler.Pinger)

	if cfg.IVR.Mode == config.ModeLive {
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

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		// Подключаемся к Redis (брони)
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			cancelPing()
			log.Fatal("Failed to ping redis: %v", err)
		}
		cancelPing()
		log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)

		pingChecks["postgres"] = pingHandler.PingerFunc(db.PingContext)
		pingChecks["redis"] = pingHandler.PingerFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})

		// metricsCollector может быть nil: обёртка тогда только проксирует вызовы
		wrappedDB := dbmetrics.Wrap(db, metricsCollector)
		wrappedDB.StartPoolCollector(time.Duration(cfg.Metrics.PoolCollectInterval)*time.Second, stopMetricsCh)
		txMgr := txmanager.NewTransactionManager(wrappedDB)

		// Инициализируем репозитории
		bookingRepository := bookingRepo.NewRepository(wrappedDB)
		serviceRepository := serviceRepo.NewRepository(wrappedDB)
		staffRepository := staffRepo.NewRepository(wrappedDB)
		hoursRepository := workingHoursRepo.NewRepository(wrappedDB)
		blockRepository := blockRepo.NewRepository(wrappedDB)
		holdsRepository := holdStore.NewStore(rdb)
		adminUserRepository := adminUserRepo.NewRepository(wrappedDB)

		// Инициализируем сервисы
		bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)
		catalogSvc := catalogService.NewService(serviceRepository, staffRepository, log)
		scheduleSvc := scheduleService.NewService(hoursRepository, blockRepository, staffRepository, log)
		adminSvc := adminsService.NewService(adminUserRepository, cfg.Salon.Name, log)

		ownerCtx, cancelOwner := context.WithTimeout(ctx, 5*time.Second)
		if err := adminSvc.EnsureOwner(ownerCtx, cfg.Salon.OwnerEmail); err != nil {
			cancelOwner()
			log.Fatal("Failed to ensure salon owner: %v", err)
		}
		cancelOwner()

		// Инициализируем use cases
		suggestSlotsUseCase := suggestSlotsUC.NewUseCase(
			serviceRepository,
			staffRepository,
			hoursRepository,
			bookingRepository,
			blockRepository,
			holdsRepository,
			suggestSlotsUC.Config{
				HorizonDays:      cfg.IVR.HorizonDays,
				SlotCount:        cfg.IVR.SlotCount,
				StepMinutes:      cfg.IVR.SlotStepMinutes,
				MinNoticeMinutes: cfg.IVR.MinNoticeMinutes,
				Location:         location,
			},
			log,
		)
		placeHoldUseCase := placeHoldUC.NewUseCase(
			serviceRepository,
			staffRepository,
			hoursRepository,
			bookingRepository,
			blockRepository,
			holdsRepository,
			placeHoldUC.Config{
				HoldTTL:          cfg.IVR.HoldTTLDuration(),
				MinNoticeMinutes: cfg.IVR.MinNoticeMinutes,
				Location:         location,
			},
			log,
		)
		confirmHoldUseCase := confirmHoldUC.NewUseCase(
			bookingRepository,
			serviceRepository,
			staffRepository,
			hoursRepository,
			blockRepository,
			holdsRepository,
			txMgr,
			log,
		)

		liveHolds := live.NewHolds(placeHoldUseCase, confirmHoldUseCase)
		slots = live.NewSlots(suggestSlotsUseCase)
		holds = liveHolds
		confirmer = liveHolds
		catalog = live.NewCatalog(serviceRepository)

		// ============================================================
		// ADMIN ROUTES (требуют X-Admin-ID header)
		// ============================================================

		admin := api.PathPrefix("").Subrouter()
		admin.Use(middleware.Auth(adminSvc))

		// --- Администраторы ---
		admin.HandleFunc("/me",
			getMeHandler.NewHandler(adminSvc, log).Handle).Methods(http.MethodGet)
		admin.HandleFunc("/admin-users",
			listAdminUsersHandler.NewHandler(adminSvc, log).Handle).Methods(http.MethodGet)
		admin.HandleFunc("/admin-users",
			createAdminUserHandler.NewHandler(adminSvc, log).Handle).Methods(http.MethodPost)
		admin.HandleFunc("/admin-users/{adminUserId}",
			updateAdminUserHandler.NewHandler(adminSvc, log).Handle).Methods(http.MethodPatch)

		// --- Бронирования ---
		admin.HandleFunc("/bookings",
			listBookingsHandler.NewHandler(bookingSvc, location, log).Handle).Methods(http.MethodGet)
		admin.HandleFunc("/bookings/{bookingId}",
			getBookingHandler.NewHandler(bookingSvc, log).Handle).Methods(http.MethodGet)
		admin.HandleFunc("/bookings/{bookingId}/cancel",
			cancelBookingHandler.NewHandler(bookingSvc, log).Handle).Methods(http.MethodPatch)

		// --- Услуги ---
		admin.HandleFunc("/services",
			listServicesHandler.NewHandler(catalogSvc, log).Handle).Methods(http.MethodGet)
		admin.HandleFunc("/services",
			createServiceHandler.NewHandler(catalogSvc, log).Handle).Methods(http.MethodPost)
		admin.HandleFunc("/services/{serviceId}",
			updateServiceHandler.NewHandler(catalogSvc, log).Handle).Methods(http.MethodPatch)
		admin.HandleFunc("/services/{serviceId}/suggested-slots",
			getSuggestedSlotsHandler.NewHandler(suggestSlotsUseCase, log).Handle).Methods(http.MethodGet)

		// --- Мастера ---
		admin.HandleFunc("/staff",
			listStaffHandler.NewHandler(catalogSvc, log).Handle).Methods(http.MethodGet)
		admin.HandleFunc("/staff",
			createStaffHandler.NewHandler(catalogSvc, log).Handle).Methods(http.MethodPost)
		admin.HandleFunc("/staff/{staffId}",
			updateStaffHandler.NewHandler(catalogSvc, log).Handle).Methods(http.MethodPatch)

		// --- Расписание ---
		admin.HandleFunc("/working-hours",
			listWorkingHoursHandler.NewHandler(scheduleSvc, log).Handle).Methods(http.MethodGet)
		admin.HandleFunc("/working-hours",
			createWorkingHourHandler.NewHandler(scheduleSvc, log).Handle).Methods(http.MethodPost)
		admin.HandleFunc("/working-hours/{id}",
			updateWorkingHourHandler.NewHandler(scheduleSvc, log).Handle).Methods(http.MethodPatch)
		admin.HandleFunc("/blocks",
			listBlocksHandler.NewHandler(scheduleSvc, location, log).Handle).Methods(http.MethodGet)
		admin.HandleFunc("/blocks",
			createBlockHandler.NewHandler(scheduleSvc, log).Handle).Methods(http.MethodPost)
		admin.HandleFunc("/blocks/{id}",
			deleteBlockHandler.NewHandler(scheduleSvc, log).Handle).Methods(http.MethodDelete)
	} else {
		seed := cfg.IVR.SimSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		memoryHolds := sim.NewMemoryHolds()
		slots = sim.NewRandomSlots(rand.New(rand.NewSource(seed)), cfg.IVR.SlotCount)
		holds = memoryHolds
		confirmer = memoryHolds
		catalog = sim.StaticCatalog{}
		log.Info("IVR simulator collaborators initialized (seed=%d)", seed)
	}

	// Инициализируем движок звонков
	engineOpts := []ivr.Option{
		ivr.WithIdleTimeout(cfg.IVR.IdleTimeoutDuration()),
		ivr.WithRetention(cfg.IVR.RetentionDuration()),
	}
	if metricsCollector != nil {
		engineOpts = append(engineOpts, ivr.WithMetrics(metricsCollector))
	}
	engine := ivr.NewEngine(ivr.NewRegistry(), slots, holds, confirmer, log, engineOpts...)
	engine.StartJanitor(ctx, cfg.IVR.JanitorIntervalDuration())

	// Проверка живости (публичная)
	r.HandleFunc("/ping", pingHandler.NewHandler(pingChecks, log).Handle).Methods(http.MethodGet)

	// ============================================================
	// IVR SIMULATOR ROUTES (без аутентификации)
	// ============================================================

	ivrSim := api.PathPrefix("/ivr/sim").Subrouter()
	ivrSim.HandleFunc("/start",
		ivrStartCallHandler.NewHandler(engine, catalog, log).Handle).Methods(http.MethodPost)
	ivrSim.HandleFunc("/input",
		ivrHandleInputHandler.NewHandler(engine, log).Handle).Methods(http.MethodPost)
	ivrSim.HandleFunc("/calls/{callId}/hangup",
		ivrHangUpHandler.NewHandler(engine, log).Handle).Methods(http.MethodPost)
	ivrSim.HandleFunc("/calls/{callId}",
		ivrGetCallHandler.NewHandler(engine, log).Handle).Methods(http.MethodGet)
	ivrSim.HandleFunc("/calls/{callId}",
		ivrResetCallHandler.NewHandler(engine, log).Handle).Methods(http.MethodDelete)

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

	// Останавливаем janitor и сбор метрик connection pool
	cancelBackground()
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

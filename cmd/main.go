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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	adminSummaryHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/admin_summary"
	chooseTimeHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/choose_time"
	commitReservationHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/commit_reservation"
	createSessionHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/create_session"
	enterVehicleHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/enter_vehicle"
	getLotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_lot"
	getNearbyLotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_nearby_lots"
	getUserReservationsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_user_reservations"
	listLotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_lots"
	selectLotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/select_lot"
	selectSpotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/select_spot"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/internal/infra/catalog"
	archiveRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/archive"
	"github.com/m04kA/SMC-ParkingService/internal/infra/storage/snapshot"
	positionServiceClient "github.com/m04kA/SMC-ParkingService/internal/integrations/positionservice"
	ledgerService "github.com/m04kA/SMC-ParkingService/internal/service/ledger"
	nearbyService "github.com/m04kA/SMC-ParkingService/internal/service/nearby"
	"github.com/m04kA/SMC-ParkingService/internal/service/notify"
	sessionService "github.com/m04kA/SMC-ParkingService/internal/service/session"
	statsService "github.com/m04kA/SMC-ParkingService/internal/service/stats"
	commitReservationUC "github.com/m04kA/SMC-ParkingService/internal/usecase/commit_reservation"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
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

	log.Info("Starting SMC-ParkingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к redis: хранилище снапшотов best-effort, недоступный
	// redis не мешает старту сервиса
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis unavailable, snapshots will be lost until it recovers: %v", err)
	} else {
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr(), cfg.Redis.DB)
	}
	cancelPing()

	snapshotStore := snapshot.NewStore(redisClient, cfg.Redis.SessionKey, cfg.Redis.ReservationsKey, log)

	// Подключаемся к Postgres-архиву (опционально). Архив best-effort:
	// недоступная база отключает архив, но не сервис.
	var archive *archiveRepo.Repository
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Warn("Failed to open database, archive disabled: %v", err)
		} else {
			db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
			db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
			db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

			if err := db.Ping(); err != nil {
				log.Warn("Failed to ping database, archive disabled: %v", err)
				db.Close()
			} else {
				defer db.Close()
				archive = archiveRepo.NewRepository(db)
				log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
					cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
			}
		}
	}

	// Сидируем каталог парковок
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	lotCatalog := catalog.New(catalog.SeedLots(rnd))
	log.Info("Catalog seeded with %d lots", len(lotCatalog.Lots()))

	// Инициализируем интеграционного клиента провайдера позиции
	positionClient := positionServiceClient.NewClient(
		cfg.PositionService.URL,
		time.Duration(cfg.PositionService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (PositionService=%s timeout=%ds)",
		cfg.PositionService.URL, cfg.PositionService.Timeout)

	// Инициализируем сервисы
	ledger := ledgerService.NewService(snapshotStore, log)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 5*time.Second)
	if err := ledger.Load(loadCtx); err != nil {
		log.Warn("Failed to restore ledger from snapshot: %v", err)
	}
	cancelLoad()

	sessionManager := sessionService.NewManager(lotCatalog, log)
	nearbySvc := nearbyService.NewService(lotCatalog, log)
	notifier := notify.NewLogNotifier(log)

	// Интерфейсные поля архива заполняем только при живом подключении,
	// иначе внутри интерфейса окажется типизированный nil
	var revenueArchive statsService.RevenueArchive
	var commitArchive commitReservationUC.Archive
	if archive != nil {
		revenueArchive = archive
		commitArchive = archive
	}

	statsSvc := statsService.NewService(lotCatalog, ledger, revenueArchive, log)

	// Инициализируем use cases
	commitReservationUseCase := commitReservationUC.NewUseCase(
		sessionManager,
		lotCatalog,
		ledger,
		commitArchive,
		notifier,
		time.Duration(cfg.Payment.ProcessingDelayMS)*time.Millisecond,
		log,
	)

	// Инициализируем handlers
	listLots := listLotsHandler.NewHandler(lotCatalog, log)
	getLot := getLotHandler.NewHandler(lotCatalog, log)
	getNearbyLots := getNearbyLotsHandler.NewHandler(nearbySvc, positionClient, log)
	createSession := createSessionHandler.NewHandler(sessionManager, snapshotStore, log)
	selectLot := selectLotHandler.NewHandler(sessionManager, log)
	selectSpot := selectSpotHandler.NewHandler(sessionManager, log)
	chooseTime := chooseTimeHandler.NewHandler(sessionManager, log)
	enterVehicle := enterVehicleHandler.NewHandler(sessionManager, log)
	commitReservation := commitReservationHandler.NewHandler(commitReservationUseCase, log)
	getUserReservations := getUserReservationsHandler.NewHandler(ledger, log)
	adminSummary := adminSummaryHandler.NewHandler(statsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Ближайшие парковки: регистрируется до /lots/{lotId}, иначе
	// "nearby" перехватится как lotId
	api.HandleFunc("/lots/nearby", getNearbyLots.Handle).Methods(http.MethodGet)

	// Список всех парковок
	api.HandleFunc("/lots", listLots.Handle).Methods(http.MethodGet)

	// Одна парковка с местами
	api.HandleFunc("/lots/{lotId}", getLot.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Сессия бронирования ---
	// Создание сессии
	protected.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)

	// Выбор парковки
	protected.HandleFunc("/sessions/{sessionId}/lot", selectLot.Handle).Methods(http.MethodPost)

	// Выбор места (повторный выбор снимает выбор)
	protected.HandleFunc("/sessions/{sessionId}/spot", selectSpot.Handle).Methods(http.MethodPost)

	// Время и длительность брони
	protected.HandleFunc("/sessions/{sessionId}/time", chooseTime.Handle).Methods(http.MethodPost)

	// Данные транспорта
	protected.HandleFunc("/sessions/{sessionId}/vehicle", enterVehicle.Handle).Methods(http.MethodPost)

	// Коммит резервации
	protected.HandleFunc("/sessions/{sessionId}/commit", commitReservation.Handle).Methods(http.MethodPost)

	// --- Резервации и админка ---
	// История резерваций пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// Админская сводка
	protected.HandleFunc("/admin/summary", adminSummary.Handle).Methods(http.MethodGet)

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

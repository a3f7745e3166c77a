package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crossbox/gym-api/internal/api"
	"crossbox/gym-api/internal/cache"
	"crossbox/gym-api/internal/config"
	"crossbox/gym-api/internal/logger"
	"crossbox/gym-api/internal/notify"
	"crossbox/gym-api/internal/repository"
	mongorepo "crossbox/gym-api/internal/repository/mongo"
	"crossbox/gym-api/internal/repository/postgres"
	"crossbox/gym-api/internal/service"
	"crossbox/gym-api/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// repositories is the storage-driver-independent set of stores.
type repositories struct {
	chat    repository.ChatDataSource
	fit     repository.FitStore
	users   repository.UserRepository
	admin   repository.AdminRepository
	booking repository.BookingRepository
	close   func()
}

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("FATAL: Could not build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	zlog.Info("Starting CrossBox gym API",
		zap.String("address", cfg.Server.Address),
		zap.String("database", cfg.Database.Driver),
	)

	ctx := context.Background()

	// --- Database Connection ---
	repos, err := openRepositories(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatal("Could not open database", zap.Error(err))
	}
	defer repos.close()

	// --- Chat data cache ---
	chatData := repos.chat
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			// The cache falls back to the store on every Redis error, so keep going.
			zlog.Warn("Redis unreachable at startup", zap.String("address", cfg.Redis.Address), zap.Error(err))
		}
		defer func() { _ = rdb.Close() }()
		chatData = cache.NewChatCache(repos.chat, rdb, cfg.Redis.TTL, zlog)
		zlog.Info("Chat data cache enabled", zap.Duration("ttl", cfg.Redis.TTL))
	}

	// --- Initialize Storage ---
	var fileStorage storage.FileStorage
	if cfg.S3.BucketName != "" {
		fileStorage, err = storage.NewS3Storage(ctx, cfg.S3, zlog)
		if err != nil {
			zlog.Fatal("Failed to initialize S3 storage", zap.Error(err))
		}
	} else {
		zlog.Warn("S3 bucket not configured; trainer photos are disabled")
	}

	// --- Initialize Services ---
	fitOpts := []service.FitOption{}
	if cfg.Notifications.Enabled {
		notifier, err := notify.NewSESNotifier(ctx, cfg.Notifications, zlog)
		if err != nil {
			zlog.Fatal("Failed to initialize SES notifier", zap.Error(err))
		}
		fitOpts = append(fitOpts, service.WithTrainerNotifier(notifier))
	}

	services := api.Services{
		Auth:    service.NewAuthService(repos.users, cfg.JWT.Secret, cfg.JWT.Expiration, zlog),
		Chat:    service.NewChatService(chatData, zlog, service.WithListLimit(cfg.Chat.ListLimit)),
		Fit:     service.NewFitService(repos.fit, zlog, fitOpts...),
		Booking: service.NewBookingService(repos.booking, cfg.Booking.SlotCapacity, zlog),
		Admin:   service.NewAdminService(repos.admin, repos.users, fileStorage, zlog),
	}

	// --- Initialize Gin Engine ---
	gin.SetMode(cfg.Server.Mode)
	router := api.NewRouter(zlog, cfg.JWT.Secret, services)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("ListenAndServe error", zap.Error(err))
		}
	}()
	zlog.Info("Server listening", zap.String("address", cfg.Server.Address))

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		zlog.Error("Server forced to shutdown", zap.Error(err))
	}

	zlog.Info("Server exiting.")
}

func openRepositories(ctx context.Context, cfg config.Config, zlog *zap.Logger) (*repositories, error) {
	switch cfg.Database.Driver {
	case "mongo":
		client, err := mongorepo.ConnectDB(cfg.Database.Mongo.URI)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Database.Mongo.Name)

		indexCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		if err := mongorepo.EnsureIndexes(indexCtx, db); err != nil {
			zlog.Warn("Index creation failed", zap.Error(err))
		}

		return &repositories{
			chat:    mongorepo.NewMongoChatRepository(db),
			fit:     mongorepo.NewMongoFitRepository(db),
			users:   mongorepo.NewMongoUserRepository(db),
			admin:   mongorepo.NewMongoAdminRepository(db),
			booking: mongorepo.NewMongoBookingRepository(db),
			close: func() {
				if err := mongorepo.DisconnectDB(client); err != nil {
					zlog.Error("Failed to disconnect MongoDB", zap.Error(err))
				}
			},
		}, nil

	default:
		db, err := postgres.Connect(ctx, cfg.Database.Postgres)
		if err != nil {
			return nil, err
		}
		if cfg.Database.Postgres.AutoMigrate {
			if err := postgres.Migrate(ctx, db); err != nil {
				_ = db.Close()
				return nil, err
			}
			zlog.Info("Database schema applied")
		}
		return pgRepositories(db, zlog), nil
	}
}

func pgRepositories(db *sql.DB, zlog *zap.Logger) *repositories {
	return &repositories{
		chat:    postgres.NewChatRepository(db),
		fit:     postgres.NewFitRepository(db),
		users:   postgres.NewUserRepository(db),
		admin:   postgres.NewAdminRepository(db),
		booking: postgres.NewBookingRepository(db),
		close: func() {
			if err := db.Close(); err != nil {
				zlog.Error("Failed to close Postgres pool", zap.Error(err))
			}
		},
	}
}

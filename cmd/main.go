package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arzan03/ThreadHive/internal/config"
	"github.com/arzan03/ThreadHive/internal/db"
	"github.com/arzan03/ThreadHive/internal/handlers"
	"github.com/arzan03/ThreadHive/internal/payments"
	"github.com/arzan03/ThreadHive/internal/ratelimit"
	"github.com/arzan03/ThreadHive/internal/repository"
	"github.com/arzan03/ThreadHive/internal/services"
	"github.com/arzan03/ThreadHive/internal/storage"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Sugar().Fatalw("invalid configuration", "error", err)
	}

	zapLogger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to MongoDB
	mongoClient, err := db.ConnectMongoDB(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatalw("failed to connect to MongoDB", "error", err)
	}
	database := mongoClient.Database(cfg.MongoDatabase)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		logger.Warnw("failed to create indexes", "error", err)
	}

	// Initialize MinIO
	mediaStore, err := storage.InitMinio(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Fatalw("failed to initialize MinIO", "error", err)
	}

	users := repository.NewUserRepository(db.Collection(database, db.UsersCollection))
	posts := repository.NewPostRepository(db.Collection(database, db.PostsCollection))
	comments := repository.NewCommentRepository(db.Collection(database, db.CommentsCollection))
	documents := func(name string) *repository.DocumentRepository {
		return repository.NewDocumentRepository(name, db.Collection(database, name))
	}

	userService := services.NewUserService(users)
	svc := handlers.Services{
		Auth:     services.NewAuthService(cfg.JWTSecret, cfg.TokenTTL),
		Users:    userService,
		Posts:    services.NewPostService(posts, users, comments),
		Comments: services.NewCommentService(comments, users),
		Stats:    services.NewStatsService(posts, comments, users),
		Payments: services.NewPaymentService(
			payments.NewStripe(cfg.Payment.StripeSecretKey, nil),
			documents(db.PaymentsCollection),
			users,
			services.PaymentOptions{
				AmountCents: cfg.Payment.AmountCents,
				Currency:    cfg.Payment.Currency,
				BadgeURL:    cfg.MemberBadgeURL,
			},
		),
		Media:         services.NewMediaService(mediaStore),
		Announcements: services.NewDocumentService("announcement", documents(db.AnnouncementsCollection)),
		Tags:          services.NewDocumentService("tag", documents(db.TagsCollection)),
		Warnings:      services.NewDocumentService("warning", documents(db.WarningsCollection)),
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnw("redis unreachable, rate limiting will fail open", "addr", cfg.Redis.Addr, "error", err)
		}
		svc.Limiter = ratelimit.NewRedisLimiter(redisClient)
	}

	app := handlers.NewApp(svc, handlers.AppOptions{
		CORSOrigins:     cfg.CORSOrigins,
		RequestTimeout:  cfg.RequestTimeout,
		WritesPerMinute: cfg.Redis.WritesPerMinute,
		AccessLog:       true,
	}, logger)

	go func() {
		logger.Infow("server listening", "port", cfg.Port, "env", cfg.Env)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Errorw("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Errorw("failed to shut down server", "error", err)
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warnw("failed to close redis", "error", err)
		}
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		logger.Errorw("failed to disconnect MongoDB", "error", err)
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

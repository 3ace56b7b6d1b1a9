// @title        Care Learning Platform API
// @version      1.0
// @description  Role-guarded learning programs, content, assessments, mood logging and enrollments.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carepath/learning-platform/internal/api"
	"github.com/carepath/learning-platform/internal/infrastructure/config"
	mongodb "github.com/carepath/learning-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/carepath/learning-platform/internal/infrastructure/db/redis"
	"github.com/carepath/learning-platform/internal/infrastructure/revalidate"
	"github.com/carepath/learning-platform/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	viewCache := redisdb.NewViewCache(rdb)
	reval := revalidate.NewWorker(0, viewCache, log)
	reval.Start(ctx)

	e := api.NewRouter(db, rdb, reval, cfg.JWTSecret, cfg.TokenTTL, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// ensureIndexes creates the collection indexes each repository relies on.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	type indexer interface {
		EnsureIndexes(ctx context.Context) error
	}
	for _, r := range []indexer{
		mongodb.NewProfileRepository(db),
		mongodb.NewProgramRepository(db),
		mongodb.NewModuleRepository(db),
		mongodb.NewContentRepository(db),
		mongodb.NewAssessmentRepository(db),
		mongodb.NewQuestionRepository(db),
		mongodb.NewMoodRepository(db),
		mongodb.NewEnrollmentRepository(db),
	} {
		if err := r.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}

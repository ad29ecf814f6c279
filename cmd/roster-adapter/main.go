package main

import (
	"context"
	stdhttp "net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	apihttp "github.com/CrewShift/roster-adapter/internal/api/http"
	"github.com/CrewShift/roster-adapter/internal/api/http/handlers"
	"github.com/CrewShift/roster-adapter/internal/application/service"
	"github.com/CrewShift/roster-adapter/internal/config"
	"github.com/CrewShift/roster-adapter/internal/infrastructures/crewport"
	crewportclient "github.com/CrewShift/roster-adapter/internal/infrastructures/crewport/http/client"
	"github.com/CrewShift/roster-adapter/internal/infrastructures/db/postgres"
	cacheredis "github.com/CrewShift/roster-adapter/internal/infrastructures/db/redis"
	rostertracing "github.com/CrewShift/roster-adapter/internal/infrastructures/db/tracing"
	"github.com/CrewShift/roster-adapter/internal/infrastructures/stays"
	"github.com/CrewShift/roster-adapter/pkg/metrics"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Log.Level)
	defer func() {
		_ = log.Sync()
	}()

	if cfg.Env == "local" {
		color.Cyan("roster-adapter | env=%s http=%s", cfg.Env, cfg.HTTP.Address())
	}

	tp, err := rostertracing.Init("roster-adapter", cfg.Jaeger)
	if err != nil {
		log.Fatal("failed to init tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	log.Info("roster-adapter starting", zap.String("http_addr", cfg.HTTP.Address()))

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Warn("failed to close redis client", zap.Error(err))
		}
	}()

	repoCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	repo, err := postgres.New(repoCtx, cfg.DB.DSN())
	cancel()
	if err != nil {
		log.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer repo.Close()

	rosterCache := cacheredis.NewRosterCache(redisClient)
	feedClient := crewportclient.NewClient(cfg.Crewport.ScheduleURL, &stdhttp.Client{
		Timeout: cfg.Crewport.Timeout,
	})
	feedSource := crewport.NewSource(feedClient)

	m := metrics.New("roster_adapter")
	rosterService := service.NewRosterService(log, feedSource, repo, rosterCache, m, cfg.RosterCacheTTL)

	rosterHandler := handlers.NewRosterHandler(log, rosterService, cfg.HTTP.RequestTimeout)
	stayHandler := handlers.NewStayHandler(log, stays.Default())

	router := apihttp.NewRouter(log, rosterHandler, stayHandler, cfg.HTTP.RateLimit)

	server := &stdhttp.Server{
		Addr:         cfg.HTTP.Address(),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("http shutdown error", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil && err != stdhttp.ErrServerClosed {
			log.Error("http server stopped", zap.Error(err))
		}
	}
}

func setupLogger(level string) *zap.Logger {
	zapLevel := parseLogLevel(level)
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

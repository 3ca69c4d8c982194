package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"

	httpapi "kredi/internal/http"
	jwttoken "kredi/internal/jwt_token"
	"kredi/internal/platform/config"
	"kredi/internal/platform/httpserver"
	"kredi/internal/platform/logger"
	platformmetrics "kredi/internal/platform/metrics"
	platformredis "kredi/internal/platform/redis"
	"kredi/internal/scoring"
	scoringhandler "kredi/internal/scoring/handler"
	scoringmetrics "kredi/internal/scoring/metrics"
	"kredi/internal/scoring/ports"
	"kredi/internal/scoring/service"
	"kredi/internal/scoring/store"
	"kredi/internal/trust"
	"kredi/pkg/platform/audit"
	auditkafka "kredi/pkg/platform/audit/kafka"
	auditmemory "kredi/pkg/platform/audit/store/memory"
	auditpostgres "kredi/pkg/platform/audit/store/postgres"
	"kredi/pkg/platform/middleware/auth"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx := context.Background()

	engine, err := scoring.NewEngine(scoring.DefaultConfig(), scoring.WithLogger(log))
	if err != nil {
		log.Error("failed to build scoring engine", "error", err)
		os.Exit(1)
	}

	// Durable store, or in-memory for local development.
	var resultStore ports.ResultStore
	var pool *pgxpool.Pool
	if cfg.PostgresDSN != "" {
		pool, err = pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		resultStore = store.NewPostgres(pool)
	} else {
		log.Warn("KREDI_POSTGRES_DSN not set, score records will not survive restarts")
		resultStore = store.NewMemory()
	}

	svcOpts := []service.Option{
		service.WithLogger(log),
		service.WithMetrics(scoringmetrics.New()),
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		svcOpts = append(svcOpts,
			service.WithCache(store.NewRedisCache(redisClient.Client, cfg.ScoreCacheTTL)),
			service.WithTrustProvider(trust.NewBreakerProvider(trust.NewRedisProvider(redisClient.Client), log)),
		)
	}

	// Audit trail: Kafka when brokers are configured, in-process otherwise.
	var kafkaPublisher *auditkafka.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher, err = auditkafka.New(cfg.Kafka.Brokers, cfg.Kafka.AuditTopic,
			auditkafka.WithLogger(log),
			auditkafka.WithMetrics(auditkafka.NewMetrics()),
		)
		if err != nil {
			log.Error("failed to connect to kafka", "error", err)
			os.Exit(1)
		}
		svcOpts = append(svcOpts, service.WithAuditPublisher(kafkaPublisher))
	} else if cfg.PostgresDSN != "" {
		auditDB, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error("failed to open audit database", "error", err)
			os.Exit(1)
		}
		defer auditDB.Close()
		svcOpts = append(svcOpts, service.WithAuditPublisher(audit.NewStorePublisher(auditpostgres.New(auditDB))))
	} else {
		log.Warn("KREDI_KAFKA_BROKERS not set, audit events stay in process memory")
		svcOpts = append(svcOpts, service.WithAuditPublisher(audit.NewStorePublisher(auditmemory.New())))
	}

	svc, err := service.New(engine, resultStore, svcOpts...)
	if err != nil {
		log.Error("failed to build scoring service", "error", err)
		os.Exit(1)
	}

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)
	apiKeys := make([]auth.APIKey, 0, len(cfg.APIKeyHashes))
	for name, hash := range cfg.APIKeyHashes {
		apiKeys = append(apiKeys, auth.APIKey{Name: name, Hash: []byte(hash)})
	}

	router := httpapi.NewRouter(httpapi.Deps{
		Scoring:     scoringhandler.New(svc, log),
		HTTPMetrics: platformmetrics.NewHTTP(),
		Validator:   jwttoken.NewJWTServiceAdapter(jwtService),
		APIKeys:     apiKeys,
		Logger:      log,
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting kredi scoring service", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Flush(shutdownCtx); err != nil {
			log.Warn("failed to flush pending audit events", "error", err)
		}
		kafkaPublisher.Close()
	}
	log.Info("kredi scoring service stopped")
}

package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"complyd/internal/analysis/metrics"
	"complyd/internal/audit"
	audithandler "complyd/internal/audit/handler"
	auditpostgres "complyd/internal/audit/store/postgres"
	"complyd/internal/credential"
	credentialhandler "complyd/internal/credential/handler"
	"complyd/internal/pii"
	piihandler "complyd/internal/pii/handler"
	"complyd/internal/platform/config"
	"complyd/internal/platform/httpserver"
	platformredis "complyd/internal/platform/redis"
	"complyd/internal/regulation"
	"complyd/internal/risk"
	riskhandler "complyd/internal/risk/handler"
	"complyd/internal/rules"
	ruleshandler "complyd/internal/rules/handler"
	httptransport "complyd/internal/transport/http"
)

// main wires configuration, engines, and transports, then runs the HTTP
// server and the audit worker until a shutdown signal arrives. Business
// logic lives in the engine packages.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if err := run(logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg := config.FromEnv()

	policy, err := config.LoadTrustPolicy(cfg.TrustConfigPath)
	if err != nil {
		return err
	}

	// Engines over immutable reference data.
	detector := pii.NewDetector(pii.NewLibrary(policy.AllowlistExtra...))
	catalog := regulation.NewCatalog()
	engine := rules.NewEngine(catalog)
	scorer := risk.NewScorer()
	trust := credential.NewTrustStore(policy.TrustedIssuerPrefixes...)
	validator := credential.NewValidator(trust)

	// Audit trail: memory store unless Postgres is configured.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store audit.Store = audit.NewMemoryStore()
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		pg := auditpostgres.New(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			return err
		}
		store = pg
		logger.Info("audit trail backed by postgres")
	}

	inbox := make(chan audit.Event, cfg.AuditBuffer)
	publisher := audit.NewPublisher(inbox, logger)
	worker := audit.NewWorker(store, inbox, logger)

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		return err
	}
	var cache *ruleshandler.Cache
	if redisClient != nil {
		defer redisClient.Close()
		cache = ruleshandler.NewCache(redisClient, cfg.Redis.CheckCacheTTL, logger)
		logger.Info("compliance check cache enabled", "ttl", cfg.Redis.CheckCacheTTL)
	}

	analysisMetrics := metrics.New()

	router := httptransport.NewRouter(httptransport.Deps{
		PII:           piihandler.New(detector, logger, analysisMetrics, publisher, cfg.MaxContentBytes),
		Compliance:    ruleshandler.New(engine, catalog, cache, logger, analysisMetrics, publisher, cfg.MaxContentBytes),
		Risk:          riskhandler.New(scorer, logger, analysisMetrics, publisher),
		Credential:    credentialhandler.New(validator, logger, analysisMetrics, publisher),
		Audit:         audithandler.New(store, logger),
		JWTSigningKey: cfg.JWTSigningKey,
	})

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting complyd", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		err := worker.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/time/rate"

	"newswire/internal/common/pagination"
	pgRepo "newswire/internal/infra/adapter/persistence/postgres"
	"newswire/internal/infra/db"
	"newswire/internal/observability/logging"
	"newswire/internal/observability/metrics"
	"newswire/internal/observability/tracing"
	"newswire/internal/repository"
	"newswire/internal/resilience/circuitbreaker"

	artUC "newswire/internal/usecase/article"
	srcUC "newswire/internal/usecase/source"
	topicUC "newswire/internal/usecase/topic"

	hhttp "newswire/internal/handler/http"
	harticle "newswire/internal/handler/http/article"
	hauth "newswire/internal/handler/http/auth"
	"newswire/internal/handler/http/requestid"
	hsrc "newswire/internal/handler/http/source"
	htopic "newswire/internal/handler/http/topic"
)

func main() {
	logger := initLogger()
	validateJWTSecret(logger)
	provider := loadCredentialProvider(logger)

	shutdownTracing, err := tracing.Init("newswire")
	if err != nil {
		logger.Error("failed to initialize tracing", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(logger, database, provider, version)

	runServer(logger, handler, database, version, shutdownTracing)
}

// initLogger builds the process logger and installs it as the slog default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// validateJWTSecret refuses to start with a missing or weak signing secret.
func validateJWTSecret(logger *slog.Logger) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT_SECRET must not be a common weak value")
			os.Exit(1)
		}
	}
}

// loadCredentialProvider reads the admin account from the environment.
func loadCredentialProvider(logger *slog.Logger) hauth.CredentialProvider {
	user := os.Getenv("ADMIN_USER")
	pass := os.Getenv("ADMIN_USER_PASSWORD")
	if user == "" || pass == "" {
		logger.Error("ADMIN_USER and ADMIN_USER_PASSWORD must be set")
		os.Exit(1)
	}
	if len(pass) < 12 {
		logger.Error("ADMIN_USER_PASSWORD must be at least 12 characters")
		os.Exit(1)
	}
	return &hauth.EnvProvider{AdminUser: user, AdminPassword: pass}
}

// initDatabase opens the connection pool and applies pending migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires repositories, services, routes, and the middleware chain.
func setupServer(logger *slog.Logger, database *sql.DB, provider hauth.CredentialProvider, version string) http.Handler {
	// Reads go through the circuit breaker; the article write path needs
	// transactions and keeps the raw handle.
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	articleRepo := pgRepo.NewArticleRepo(database)
	sourceRepo := pgRepo.NewSourceRepo(breaker)
	topicRepo := pgRepo.NewTopicRepo(breaker)

	artSvc := &artUC.Service{
		Articles: articleRepo,
		Sources:  sourceRepo,
		Topics:   topicRepo,
	}
	srcSvc := &srcUC.Service{Repo: sourceRepo}
	topicSvc := &topicUC.Service{Repo: topicRepo}

	paginationCfg := pagination.ConfigFromEnv()

	mux := http.NewServeMux()

	// Token issuance is throttled per IP to slow down credential guessing:
	// 5 requests per minute with a burst of 5.
	authLimiter := hhttp.NewRateLimiter(rate.Every(12*time.Second), 5)
	mux.Handle("POST /auth/token", authLimiter.Limit(hauth.TokenHandler(provider)))

	mux.Handle("/health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	harticle.Register(mux, artSvc, paginationCfg, logger)
	hsrc.Register(mux, srcSvc)
	htopic.Register(mux, topicSvc)

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the mux with the ambient middleware chain, outermost
// first: tracing, request ID, panic recovery, logging, input limits, metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	chain = tracing.Middleware(chain)
	return chain
}

// updateInventoryGauges refreshes the articles/sources/topics gauges every
// minute so dashboards track table growth without per-request counting.
func updateInventoryGauges(ctx context.Context, articles repository.ArticleRepository,
	sources repository.SourceRepository, topics repository.TopicRepository) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	refresh := func() {
		countCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		if n, err := articles.Count(countCtx); err == nil {
			metrics.UpdateArticlesTotal(n)
		}
		if list, err := sources.List(countCtx); err == nil {
			metrics.UpdateSourcesTotal(int64(len(list)))
		}
		if list, err := topics.List(countCtx); err == nil {
			metrics.UpdateTopicsTotal(int64(len(list)))
		}
	}

	refresh()
	for {
		select {
		case <-ticker.C:
			refresh()
		case <-ctx.Done():
			return
		}
	}
}

// runServer starts the HTTP server and blocks until shutdown completes.
func runServer(logger *slog.Logger, handler http.Handler, database *sql.DB,
	version string, shutdownTracing func(context.Context) error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go updateInventoryGauges(ctx,
		pgRepo.NewArticleRepo(database),
		pgRepo.NewSourceRepo(database),
		pgRepo.NewTopicRepo(database))

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracer shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}

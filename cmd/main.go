package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/dmarquezl/gw-storefront-ledger/internal/catalog"
	"github.com/dmarquezl/gw-storefront-ledger/internal/facades"
	"github.com/dmarquezl/gw-storefront-ledger/internal/handlers"
	"github.com/dmarquezl/gw-storefront-ledger/internal/jwt"
	"github.com/dmarquezl/gw-storefront-ledger/internal/logger"
	"github.com/dmarquezl/gw-storefront-ledger/internal/middlewares"
	"github.com/dmarquezl/gw-storefront-ledger/internal/repositories"
	"github.com/dmarquezl/gw-storefront-ledger/internal/services"
	"github.com/dmarquezl/gw-storefront-ledger/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-storefront-ledger API
// @version 1.0.0
// @description Ledger and pricing core for a storefront companion bot
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		fxURL, fxTimeoutSec, fxRetries, rateTTLSec,
		catalogPath,
		jwtSecret, jwtExpSec, adminSecret,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		fxURL, fxTimeoutSec, fxRetries, rateTTLSec,
		catalogPath,
		jwtSecret, jwtExpSec, adminSecret,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, FX, catalog, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers, kafkaTopic string,
	fxURL string, fxTimeoutSec, fxRetries, rateTTLSec int,
	catalogPath string,
	jwtSecret string, jwtExpSec int, adminSecret string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config; empty brokers disable event publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "ledger-events")

	// FX config
	fxURL = getEnv("FX_RATES_URL", "https://open.er-api.com/v6/latest/USD")
	if fxTimeoutSec, err = strconv.Atoi(getEnv("FX_TIMEOUT_SECOND", "5")); err != nil {
		return
	}
	if fxRetries, err = strconv.Atoi(getEnv("FX_RETRIES", "2")); err != nil {
		return
	}
	if rateTTLSec, err = strconv.Atoi(getEnv("FX_RATE_TTL_SECOND", "60")); err != nil {
		return
	}

	// Catalog config; empty path uses the built-in catalog
	catalogPath = getEnv("CATALOG_PATH", "")

	// JWT config
	jwtSecret = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSec, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}
	adminSecret = getEnv("ADMIN_SECRET", "")

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers, kafkaTopic string,
	fxURL string, fxTimeoutSec, fxRetries, rateTTLSec int,
	catalogPath string,
	jwtSecret string, jwtExpSec int, adminSecret string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply migrations
	if err := storage.Migrate(ctx, db); err != nil {
		logger.Log.Fatal("migrations failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for ledger events; nil when unconfigured
	var eventWriter services.EventWriter
	if kafkaBrokers != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		eventWriter = kw
	}

	// Load catalog
	cat := catalog.Default()
	if catalogPath != "" {
		if cat, err = catalog.Load(catalogPath); err != nil {
			logger.Log.Fatal("failed to load catalog:", err)
		}
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecret, time.Duration(jwtExpSec)*time.Second)

	// Initialize storage and repositories
	store := storage.New(db)
	balanceRepo := repositories.NewBalanceRepository(store)
	pointsRepo := repositories.NewPointsRepository(store)
	rateCache := repositories.NewRateCacheRepository(rdb, time.Duration(rateTTLSec)*time.Second)

	// Initialize FX facade
	fxFacade := facades.NewFXHTTPFacade(fxURL, time.Duration(fxTimeoutSec)*time.Second, fxRetries)

	// Initialize services
	balanceService := services.NewBalanceService(balanceRepo, eventWriter)
	pointsService := services.NewPointsService(pointsRepo, cat, eventWriter)
	rankingService := services.NewRankingService(pointsRepo, cat)
	pricingService := services.NewPricingService(fxFacade, rateCache, cat)

	// Initialize handlers
	getBalanceHandler := handlers.NewGetBalanceHandler(balanceService)
	creditHandler := handlers.NewCreditHandler(balanceService)
	debitHandler := handlers.NewDebitHandler(balanceService)
	getPointsHandler := handlers.NewGetPointsHandler(pointsService)
	accrueHandler := handlers.NewAccrueHandler(pointsService)
	rankingHandler := handlers.NewRankingHandler(rankingService)
	priceHandler := handlers.NewPriceHandler(pricingService, cat)
	productsHandler := handlers.NewProductsHandler(cat)
	tokenHandler := handlers.NewTokenHandler(jwtSvc, adminSecret)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/token", tokenHandler)
		r.Get("/balance/{userID}", getBalanceHandler)
		r.Get("/points/{userID}", getPointsHandler)
		r.Get("/ranking", rankingHandler)
		r.Get("/price", priceHandler)
		r.Get("/products", productsHandler)

		// Staff routes. Ledger mutations are single atomic upserts committed
		// before the per-account lock is released, so no request-scoped
		// transaction wraps them.
		r.Group(func(r chi.Router) {
			r.Use(middlewares.StaffMiddleware(jwtSvc))
			r.Post("/balance/credit", creditHandler)
			r.Post("/balance/debit", debitHandler)
			r.Post("/points/accrue", accrueHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

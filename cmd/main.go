package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sbilibin2017/gw-library/docs"
	"github.com/sbilibin2017/gw-library/internal/config"
	"github.com/sbilibin2017/gw-library/internal/database"
	"github.com/sbilibin2017/gw-library/internal/handlers"
	"github.com/sbilibin2017/gw-library/internal/jwt"
	"github.com/sbilibin2017/gw-library/internal/logger"
	"github.com/sbilibin2017/gw-library/internal/metrics"
	"github.com/sbilibin2017/gw-library/internal/middlewares"
	"github.com/sbilibin2017/gw-library/internal/repositories"
	"github.com/sbilibin2017/gw-library/internal/seed"
	"github.com/sbilibin2017/gw-library/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-library API
// @version 1.0.0
// @description Library catalog and borrowing tracker
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// run initializes the logger, database, Redis, Kafka, gRPC health and HTTP servers.
// It seeds default data, sets up routes and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogDevelop); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Migrations
	if err := database.RunMigrations(cfg.PostgresDSN()); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	log.Info("Database migrations applied")

	// Connect to PostgreSQL
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	// Connect to Redis. Login throttling is disabled when Redis is down.
	var attempts services.LoginAttemptLimiter
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warnw("Redis unavailable, login throttling disabled", "addr", cfg.RedisAddr(), "error", err)
	} else {
		attempts = repositories.NewLoginAttemptRepository(rdb, cfg.LoginLockout)
	}

	// Kafka writer for borrow events
	var events services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()
		events = kw
		log.Infof("Publishing borrow events to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	// Initialize JWT service
	tokens := jwt.New(cfg.JWTSecretKey, cfg.JWTExp)

	// Initialize repositories
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)
	bookRepo := repositories.NewBookRepository(db, txGetter)
	borrowRepo := repositories.NewBorrowRepository(db, txGetter)
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)

	// Initialize services
	availability := services.NewAvailabilityResolver(borrowRepo)
	bookService := services.NewBookService(bookRepo, bookRepo, availability)
	borrowService := services.NewBorrowService(bookRepo, userReadRepo, borrowRepo, events, collector).
		WithAfterCommit(middlewares.AfterCommit)
	overdueService := services.NewOverdueService(borrowRepo)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, attempts, cfg.LoginMaxAttempts)

	// Seed default data
	seeder := seed.NewSeeder(userReadRepo, authService, bookRepo, bookService, seed.Options{
		AdminUsername:   cfg.AdminUsername,
		AdminPassword:   cfg.AdminPassword,
		DefaultUsername: cfg.DefaultUsername,
		DefaultPassword: cfg.DefaultPassword,
		SeedBooks:       cfg.SeedBooks,
	})
	if err := seeder.Run(ctx); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	limiter := middlewares.NewRateLimiter(middlewares.RateLimiterConfig{
		Rate:  rate.Limit(cfg.RateLimit),
		Burst: cfg.RateBurst,
	})
	defer limiter.Stop()

	docs.SwaggerInfo.Host = cfg.HTTPAddr()

	// Setup router
	r := handlers.NewRouter(handlers.RouterDeps{
		Auth:        authService,
		Books:       bookService,
		Borrow:      borrowService,
		Overdue:     overdueService,
		Tokener:     tokens,
		DB:          db,
		Metrics:     collector,
		Gatherer:    reg,
		RateLimiter: limiter,
		SwaggerURL:  fmt.Sprintf("http://%s/swagger/doc.json", cfg.HTTPAddr()),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// gRPC health
	healthSrv := health.NewServer()
	grpcSrv := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)
	lis, err := net.Listen("tcp", cfg.GRPCAddr())
	if err != nil {
		return fmt.Errorf("gRPC listen failed: %w", err)
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("gRPC health server listening on %s", cfg.GRPCAddr())
		if err := grpcSrv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	go func() {
		log.Infof("HTTP server listening on %s", cfg.HTTPAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		healthSrv.Shutdown()
		grpcSrv.Stop()
		return serveErr
	}

	healthSrv.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTTL)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcSrv.GracefulStop()

	log.Info("Servers stopped gracefully")
	return nil
}

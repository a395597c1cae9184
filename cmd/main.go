package main

import (
	"context"
	"errors"
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
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/skins-api/docs"
	"github.com/sbilibin2017/skins-api/internal/crypt"
	"github.com/sbilibin2017/skins-api/internal/handlers"
	"github.com/sbilibin2017/skins-api/internal/jwt"
	"github.com/sbilibin2017/skins-api/internal/logger"
	"github.com/sbilibin2017/skins-api/internal/middlewares"
	"github.com/sbilibin2017/skins-api/internal/repositories"
	"github.com/sbilibin2017/skins-api/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds the service configuration read from the environment.
type config struct {
	AppHost   string
	AppPort   string
	LogLevel  string
	LogFormat string

	SkinsPath          string
	MaxUploadBodyBytes int64

	CryptKey  string
	CryptSalt string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	CSRFStrict    bool
	CSRFTTLSecond int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string
}

// @title skins-api
// @version 1.0.0
// @description Account, session and skin upload service
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, storage, security, Redis, and Kafka configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var err error
	atoi := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var n int
		if n, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return n
	}

	cfg := &config{
		// Application config
		AppHost:   getEnv("APP_HOST", "localhost"),
		AppPort:   getEnv("APP_PORT", "8080"),
		LogLevel:  getEnv("APP_LOG_LEVEL", "info"),
		LogFormat: getEnv("APP_LOG_FORMAT", "json"),
		SkinsPath: getEnv("SKINS_PATH", "skins"),

		// Codec config
		CryptKey:  getEnv("CRYPT_KEY", ""),
		CryptSalt: getEnv("CRYPT_SALT", "skins-api"),

		// PostgreSQL config
		PGHost:         getEnv("POSTGRES_HOST", "localhost"),
		PGPort:         atoi("POSTGRES_PORT", "5432"),
		PGUser:         getEnv("POSTGRES_USER", "user"),
		PGPassword:     getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:           getEnv("POSTGRES_DB", "database"),
		PGMaxOpenConns: atoi("POSTGRES_MAX_OPEN_CONNS", "16"),
		PGMaxIdleConns: atoi("POSTGRES_MAX_IDLE_CONNS", "8"),

		// CSRF config
		CSRFTTLSecond: atoi("CSRF_TTL_SECOND", "3600"),

		// Redis config
		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         atoi("REDIS_PORT", "6379"),
		RedisDB:           atoi("REDIS_DB", "0"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisPoolSize:     atoi("REDIS_POOL_SIZE", "10"),
		RedisMinIdleConns: atoi("REDIS_MIN_IDLE_CONNS", "2"),

		// Kafka config
		KafkaTopic: getEnv("KAFKA_TOPIC", "skins-events"),
	}
	if err != nil {
		return nil, err
	}

	if cfg.MaxUploadBodyBytes, err = strconv.ParseInt(
		getEnv("MAX_UPLOAD_BODY_BYTES", strconv.FormatInt(handlers.DefaultMaxUploadBodyBytes, 10)), 10, 64,
	); err != nil {
		return nil, fmt.Errorf("MAX_UPLOAD_BODY_BYTES: %w", err)
	}

	if cfg.CSRFStrict, err = strconv.ParseBool(getEnv("CSRF_STRICT", "false")); err != nil {
		return nil, fmt.Errorf("CSRF_STRICT: %w", err)
	}

	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
		}
	}

	if cfg.CryptKey == "" {
		return nil, errors.New("CRYPT_KEY is required")
	}

	return cfg, nil
}

// run initializes the logger, database, optional Redis and Kafka clients, and
// the HTTP server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	codec, err := crypt.New(cfg.CryptKey, cfg.CryptSalt)
	if err != nil {
		return fmt.Errorf("codec: %w", err)
	}

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.RunMigrations(ctx, db.DB); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	if err := os.MkdirAll(cfg.SkinsPath, 0o755); err != nil {
		return fmt.Errorf("skins path: %w", err)
	}

	// Optional Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kafkaWriter = &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			Async:                  true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					logger.Log.Errorw("failed to deliver events", "count", len(messages), "error", err)
				}
			},
		}
		defer kafkaWriter.Close()
		logger.Log.Infof("Publishing events to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	}
	events := services.NewEventPublisher(kafkaWriter)

	// Initialize repositories
	accountReadRepo := repositories.NewAccountReadRepository(db)
	accountWriteRepo := repositories.NewAccountWriteRepository(db)
	skinReadRepo := repositories.NewSkinReadRepository(db)
	skinWriteRepo := repositories.NewSkinWriteRepository(db)
	skinFileRepo := repositories.NewSkinFileRepository(cfg.SkinsPath)

	// CSRF guard, strict mode requires Redis
	var csrfOpts []services.CSRFOption
	if cfg.CSRFStrict {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()

		csrfTokens := jwt.New(cfg.CryptKey, time.Duration(cfg.CSRFTTLSecond)*time.Second)
		csrfOpts = append(csrfOpts, services.WithStrictTokens(csrfTokens, repositories.NewCSRFNonceRepository(rdb)))
	}

	// Initialize services
	accountService := services.NewAccountService(accountReadRepo, accountWriteRepo, skinReadRepo, codec, events)
	userService := services.NewUserService(accountReadRepo, skinReadRepo)
	sessionService := services.NewSessionService(accountReadRepo)
	csrfService := services.NewCSRFService(codec, csrfOpts...)
	skinService := services.NewSkinService(skinReadRepo, skinWriteRepo, skinFileRepo, codec, events)

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)

	srv := &http.Server{
		Addr: fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(routerDeps{
			db:                 db,
			accounts:           accountService,
			users:              userService,
			sessions:           sessionService,
			csrf:               csrfService,
			skins:              skinService,
			maxUploadBodyBytes: cfg.MaxUploadBodyBytes,
			swaggerURL:         fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// routerDeps are the services the HTTP routes are built on.
type routerDeps struct {
	db                 handlers.Pinger
	accounts           *services.AccountService
	users              *services.UserService
	sessions           middlewares.Authenticator
	csrf               *services.CSRFService
	skins              handlers.SkinUploader
	maxUploadBodyBytes int64
	swaggerURL         string
}

// newRouter mounts the v1 API. CSRF is checked before the session on
// mutating account routes.
func newRouter(deps routerDeps) http.Handler {
	csrfMiddleware := middlewares.CSRFMiddleware(deps.csrf)
	sessionMiddleware := middlewares.SessionMiddleware(deps.sessions)
	accountGetter := middlewares.AccountFromContext

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/health", handlers.NewHealthHandler(deps.db))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(deps.swaggerURL)))

	r.Route("/v1", func(r chi.Router) {
		r.Route("/account", func(r chi.Router) {
			r.Get("/csrf", handlers.NewCSRFTokenHandler(deps.csrf))
			r.With(sessionMiddleware).Get("/@me", handlers.NewMeHandler(deps.accounts, accountGetter))
			r.With(csrfMiddleware).Put("/register", handlers.NewRegisterHandler(deps.accounts))
			r.With(csrfMiddleware).Post("/login", handlers.NewLoginHandler(deps.accounts))
			r.With(csrfMiddleware, sessionMiddleware).Patch("/", handlers.NewUpdateProfileHandler(deps.accounts, accountGetter))
			r.With(csrfMiddleware, sessionMiddleware).Patch("/email", handlers.NewUpdateEmailHandler(deps.accounts, accountGetter))
		})

		r.Route("/user", func(r chi.Router) {
			r.Get("/{username}", handlers.NewGetUserHandler(deps.users))
			r.Get("/{username}/skins", handlers.NewListUserSkinsHandler(deps.users))
		})

		r.Route("/skins", func(r chi.Router) {
			r.With(sessionMiddleware).Put("/upload", handlers.NewUploadSkinHandler(deps.skins, accountGetter, deps.maxUploadBodyBytes))
		})
	})

	return r
}

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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/joho/godotenv"

	"github.com/telehedr/auth-api/internal/handlers"
	"github.com/telehedr/auth-api/internal/jwt"
	"github.com/telehedr/auth-api/internal/logger"
	"github.com/telehedr/auth-api/internal/middlewares"
	"github.com/telehedr/auth-api/internal/repositories"
	"github.com/telehedr/auth-api/internal/services"

	_ "github.com/telehedr/auth-api/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "1.0.0" // Version of the service
	buildDate    = "N/A"   // Build date
	buildCommit  = "N/A"   // Git commit hash
)

// @title TeleHEDR API
// @version 1.0.0
// @description Stateless bearer-token authentication service
// @host localhost:3000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		jwtSecret, jwtExpSecond,
		allowedOrigin, rateLimitRequests, rateLimitWindowSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		jwtSecret, jwtExpSecond,
		allowedOrigin, rateLimitRequests, rateLimitWindowSecond,
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

// parseConfig loads environment variables from a file and returns the
// application, logging, token, CORS, and rate-limit configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	jwtSecret string, jwtExpSecond int,
	allowedOrigin string, rateLimitRequests, rateLimitWindowSecond int,
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
	appPort = getEnv("APP_PORT", "3000")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Token config: the secret is read once here and constant for the
	// process lifetime; the lifetime is never set per request.
	jwtSecret = getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "900")); err != nil {
		return
	}

	// CORS config
	allowedOrigin = getEnv("ALLOWED_ORIGIN", "*")

	// Rate limit config
	if rateLimitRequests, err = strconv.Atoi(getEnv("RATE_LIMIT_REQUESTS", "100")); err != nil {
		return
	}
	if rateLimitWindowSecond, err = strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECOND", "900")); err != nil {
		return
	}

	return
}

// newRouter assembles the middleware pipeline and routes around the given
// token service and auth service.
func newRouter(
	tokenSvc *jwt.JWT,
	authSvc *services.AuthService,
	appHost, appPort, allowedOrigin string,
	rateLimitRequests int, rateLimitWindow time.Duration,
) chi.Router {
	registerHandler := handlers.NewRegisterHandler(authSvc)
	loginHandler := handlers.NewLoginHandler(authSvc)
	profileHandler := handlers.NewProfileHandler(authSvc)
	healthHandler := handlers.NewHealthHandler(buildVersion)

	r := chi.NewRouter()
	r.Use(middlewares.RecoverMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(rateLimitRequests, rateLimitWindow))
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Get("/", healthHandler)
	r.Post("/register", registerHandler)
	r.Post("/login", loginHandler)

	// Protected routes behind the auth middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokenSvc))
		r.Get("/profile", profileHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	r.NotFound(handlers.NewNotFoundHandler())

	return r
}

// run initializes the logger, user directory, token service, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	jwtSecret string, jwtExpSecond int,
	allowedOrigin string, rateLimitRequests, rateLimitWindowSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Initialize token service
	tokenSvc := jwt.New(
		jwt.WithSecretKey(jwtSecret),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize the in-memory user directory. Its lifecycle is tied to the
	// process: registrations do not survive a restart.
	userRepo := repositories.NewUserRepository()

	// Initialize services
	authSvc := services.NewAuthService(userRepo, userRepo, tokenSvc)

	r := newRouter(tokenSvc, authSvc,
		appHost, appPort, allowedOrigin,
		rateLimitRequests, time.Duration(rateLimitWindowSecond)*time.Second,
	)

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

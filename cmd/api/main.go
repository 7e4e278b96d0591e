package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	_ "github.com/mmp/property-portal/docs"
	"github.com/mmp/property-portal/internal/api"
	"github.com/mmp/property-portal/internal/api/handler"
	"github.com/mmp/property-portal/internal/core/service"
	"github.com/mmp/property-portal/internal/infrastructure/db/mongo"
	"github.com/mmp/property-portal/internal/infrastructure/db/redis"
	httpserver "github.com/mmp/property-portal/internal/infrastructure/http"
	"github.com/mmp/property-portal/internal/infrastructure/queue"
	"github.com/mmp/property-portal/internal/pkg/config"
	"github.com/mmp/property-portal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title Property Portal API
// @version 1.0
// @description Multi-tenant property portal: authentication and property-scoped resources.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "property-portal",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Storage ---
	handle := mongo.NewHandle(mongo.Config{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		MaxPoolSize: cfg.Mongo.MaxPoolSize,
		Timeout:     cfg.Mongo.Timeout,
	})
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := handle.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	userRepo := mongo.NewUserRepository(handle)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("could not ensure user indexes, retrying before the first user insert")
	}

	// --- Login throttle (optional) ---
	var (
		rdb      *goredis.Client
		throttle service.LoginThrottle
	)
	if cfg.Redis.Addr != "" {
		redisCfg := redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			log.Warn().Err(err).Msg("redis unreachable at startup, login throttle fails open until it recovers")
			client = redis.NewClient(redisCfg)
		}
		defer client.Close()
		rdb = client
		throttle = redis.NewLoginThrottle(client, cfg.Auth.LoginMaxFailures, cfg.Auth.LoginWindow)
	}

	// --- Audit trail ---
	auditService := service.NewAuditService(mongo.NewAuditRepository(handle))
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditService, logger.Component("audit"))
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	dispatcher.Start(workerCtx)
	defer func() {
		stopWorkers()
		dispatcher.Wait()
	}()

	// --- Core ---
	if cfg.IsProduction() && cfg.Auth.JWTSecret == config.DefaultJWTSecret {
		log.Warn().Msg("JWT_SECRET is the built-in development default; set a real secret")
	}
	hasher := service.NewBcryptHasher(cfg.Auth.BcryptCost)
	credentials := service.NewCredentialStore(userRepo, hasher)
	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, logger.Component("token"))
	gate := service.NewGate(dispatcher, logger.Component("authz"))

	authService := service.NewAuthService(credentials, hasher, tokens, throttle, dispatcher,
		service.BootstrapAccount{Username: cfg.Bootstrap.Username, Password: cfg.Bootstrap.Password},
		logger.Component("auth"))
	if err := authService.EnsureBootstrapAdmin(ctx); err != nil {
		log.Warn().Err(err).Msg("bootstrap admin check failed, retrying on first login")
	}

	fileService := service.NewFileService(mongo.NewFileRepository(handle), gate, cfg.MaxUploadBytes)

	// --- HTTP ---
	e := httpserver.NewServer(httpserver.ServerConfig{
		Log:          log,
		Store:        handle,
		Redis:        rdb,
		ErrorHandler: api.NewHTTPErrorHandler(log),
		Validator:    handler.NewValidator(),
	})

	transport := handler.TransportCookie
	if cfg.Auth.TokenTransport == handler.TransportBody {
		transport = handler.TransportBody
	}
	api.RegisterRoutes(e, api.Handlers{
		Auth: handler.NewAuthHandler(authService, handler.SessionConfig{
			Transport:  transport,
			CookieName: cfg.Auth.CookieName,
			Secure:     cfg.IsProduction(),
			TTL:        tokens.TTL(),
		}),
		Users:      handler.NewUserHandler(service.NewUserService(credentials, gate, dispatcher, logger.Component("users"))),
		Properties: handler.NewPropertyHandler(service.NewPropertyService(mongo.NewPropertyRepository(handle), gate)),
		Budgets:    handler.NewBudgetHandler(service.NewBudgetService(mongo.NewBudgetRepository(handle), gate)),
		Contacts:   handler.NewContactHandler(service.NewContactService(mongo.NewContactRepository(handle), gate)),
		Events:     handler.NewEventHandler(service.NewEventService(mongo.NewEventRepository(handle), gate)),
		Orders:     handler.NewOrderHandler(service.NewOrderService(mongo.NewOrderRepository(handle), gate)),
		Settings: handler.NewSettingsHandler(
			service.NewCampaignService(mongo.NewCampaignRepository(handle), gate),
			service.NewTargetService(mongo.NewTargetRepository(handle), gate),
		),
		Social: handler.NewSocialFeedHandler(service.NewSocialFeedService(mongo.NewSocialPostRepository(handle), gate)),
		Files:  handler.NewFileHandler(fileService),
	}, tokens, cfg.Auth.CookieName)

	// --- Serve ---
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

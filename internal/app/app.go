package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/logger"
	"gorm.io/gorm"

	"github.com/estatehub/estatehub/internal/config"
	"github.com/estatehub/estatehub/internal/domain"
	"github.com/estatehub/estatehub/internal/middleware"
	"github.com/estatehub/estatehub/internal/module/apartment"
	"github.com/estatehub/estatehub/internal/module/auth"
	"github.com/estatehub/estatehub/internal/module/estate"
	"github.com/estatehub/estatehub/internal/module/house"
	"github.com/estatehub/estatehub/internal/module/housesale"
	"github.com/estatehub/estatehub/internal/module/land"
	"github.com/estatehub/estatehub/internal/module/property"
	"github.com/estatehub/estatehub/internal/module/seller"
	"github.com/estatehub/estatehub/internal/module/user"
)

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine *gin.Engine
	db     *gorm.DB
	logger *logger.Logger
	cfg    *config.Config
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

var newHTTPServer = func(addr string, handler http.Handler) httpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

var notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

// New creates and wires a fully configured App from the given Config.
//
// It sets up logging, the database, all domain modules (repository →
// service → handler), middleware, and routes.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	success := false

	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	if cfg.Server.Mode == gin.DebugMode && cfg.Server.Host == "0.0.0.0" {
		log.Warn("insecure server config: debug mode on 0.0.0.0 may expose debug behavior and permissive CORS")
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	db, err := config.SetupDatabase(&cfg.Database, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}
	defer func() {
		if success {
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", slog.Any("error", err))
		}
	}()

	// AutoMigrate in debug mode only.
	if cfg.Server.Mode == gin.DebugMode {
		if err := db.AutoMigrate(
			&domain.User{},
			&domain.Seller{},
			&domain.Estate{},
			&domain.House{},
			&domain.Apartment{},
			&domain.LandProperty{},
			&domain.HouseSale{},
		); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("auto migration completed")
	}

	public, protected, err := buildModules(cfg, db, log.Logger)
	if err != nil {
		return nil, err
	}

	if err := validateGinMode(cfg.Server.Mode); err != nil {
		return nil, err
	}
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	// In release mode, when no allowlist is configured, default to deny
	// cross-origin requests.
	corsConfig := resolveCORSConfig(cfg.Server.Mode, &cfg.Server.CORS)

	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			TrustUpstream: false,
		}),
		middleware.Logger(log.Logger),
		middleware.CORSWithConfig(corsConfig),
	)

	if err := RegisterRoutes(engine, &RouteDeps{
		PublicModules:    public,
		ProtectedModules: protected,
		DB:               db,
		AuthEnabled:      cfg.Auth.Enabled,
		JWTSecret:        cfg.Auth.JWTSecret,
	}); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	success = true
	return &App{
		engine: engine,
		db:     db,
		logger: log,
		cfg:    cfg,
	}, nil
}

// buildModules performs the manual dependency injection for every
// domain module: repository → service → handler → module. The unified
// property engine runs raw SQL and takes the underlying pool directly.
func buildModules(cfg *config.Config, db *gorm.DB, log *slog.Logger) (public, protected []Module, err error) {
	userRepo := user.NewUserRepository(db)
	userSvc := user.NewUserService(userRepo)

	sellerSvc := seller.NewSellerService(seller.NewSellerRepository(db))
	estateSvc := estate.NewEstateService(estate.NewEstateRepository(db))
	houseSvc := house.NewHouseService(house.NewHouseRepository(db))
	apartmentSvc := apartment.NewApartmentService(apartment.NewApartmentRepository(db))
	landSvc := land.NewLandService(land.NewLandRepository(db))
	saleSvc := housesale.NewHouseSaleService(housesale.NewHouseSaleRepository(db))

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("unwrap database pool: %w", err)
	}
	listingSvc := property.NewEngine(sqlDB, log)

	if cfg.Auth.Enabled {
		expiry, err := time.ParseDuration(cfg.Auth.TokenExpiry)
		if err != nil {
			return nil, nil, fmt.Errorf("parse auth.token_expiry: %w", err)
		}
		authSvc := auth.NewService(cfg.Auth.JWTSecret, userRepo, expiry)
		public = append(public, auth.NewModule(auth.NewHandler(authSvc)))
	}

	// Listing discovery stays public; the write-heavy modules move
	// behind authentication when it is enabled.
	public = append(public, property.NewModule(property.NewPropertyHandler(listingSvc)))

	protected = []Module{
		user.NewModule(user.NewUserHandler(userSvc)),
		seller.NewModule(seller.NewSellerHandler(sellerSvc)),
		estate.NewModule(estate.NewEstateHandler(estateSvc)),
		house.NewModule(house.NewHouseHandler(houseSvc)),
		apartment.NewModule(apartment.NewApartmentHandler(apartmentSvc)),
		land.NewModule(land.NewLandHandler(landSvc)),
		housesale.NewModule(housesale.NewHouseSaleHandler(saleSvc)),
	}

	return public, protected, nil
}

func resolveCORSConfig(mode string, cfg *config.CORSConfig) middleware.CORSConfig {
	corsConfig := middleware.DefaultCORSConfig()

	if len(cfg.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowOrigins
	} else if mode == gin.ReleaseMode {
		corsConfig.AllowOrigins = []string{}
	}
	if len(cfg.AllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.AllowMethods
	}
	if len(cfg.AllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.AllowHeaders
	}
	corsConfig.AllowCredentials = cfg.AllowCredentials
	if cfg.MaxAge != "" {
		corsConfig.MaxAge = cfg.MaxAge
	}

	return corsConfig
}

func validateGinMode(mode string) error {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
}

// Run starts the HTTP server and blocks until a shutdown signal is
// received. It performs graceful shutdown with a 5-second timeout and
// closes the database connection.
func (a *App) Run() error {
	if a == nil {
		return errors.New("app is nil")
	}
	if a.cfg == nil {
		return errors.New("app config is nil")
	}
	if a.engine == nil {
		return errors.New("app engine is nil")
	}
	if a.logger == nil {
		return errors.New("app logger is nil")
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := newHTTPServer(addr, a.engine)

	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown error", slog.Any("error", err))
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.logger.Error("database close error", slog.Any("error", err))
			} else {
				a.logger.Info("database connection closed")
			}
		}
	}

	a.logger.Info("server stopped")
	if err := a.logger.Close(); err != nil {
		slog.Error("logger close error", slog.Any("error", err))
	}

	return runErr
}

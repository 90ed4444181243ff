package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	appMigrations "github.com/e3mc/bschool-admin/internal/app/migrations"
	appRepos "github.com/e3mc/bschool-admin/internal/app/repositories"
	appRoutes "github.com/e3mc/bschool-admin/internal/app/routes"
	appServices "github.com/e3mc/bschool-admin/internal/app/services"
	"github.com/e3mc/bschool-admin/internal/config"
	"github.com/e3mc/bschool-admin/internal/db"
	appMiddleware "github.com/e3mc/bschool-admin/internal/middleware"
	pkgAuth "github.com/e3mc/bschool-admin/internal/pkg/auth"
	"github.com/e3mc/bschool-admin/internal/pkg/cache"
	"github.com/e3mc/bschool-admin/internal/pkg/email"
	"github.com/e3mc/bschool-admin/internal/pkg/filestorage"
	"github.com/e3mc/bschool-admin/internal/pkg/logger"
	"github.com/e3mc/bschool-admin/internal/pkg/metrics"
	"github.com/e3mc/bschool-admin/internal/seed"
)

// Dependencies holds the wired application components.
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Redis          *cache.Redis
}

// LoadConfigAndSetupLogger loads configuration and configures the global
// logger from it.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: strings.EqualFold(cfg.Logging.Format, "text"),
	})
	logger.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase connects to postgres and applies pending migrations.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info().Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations applied")

	return dbPool, nil
}

// BuildDependencies wires repositories, shared infrastructure and
// services.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) (*Dependencies, error) {
	repos := appRepos.NewRepositories(dbPool)

	if err := seed.DefaultAdmin(context.Background(), cfg, repos.AdminRepository); err != nil {
		return nil, fmt.Errorf("failed to seed default admin: %w", err)
	}

	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, "/uploads", filestorage.Limits{
		MaxImageSize:    int64(cfg.Uploads.MaxImageSizeMB) << 20,
		MaxDocumentSize: int64(cfg.Uploads.MaxDocumentSizeMB) << 20,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	tokenExp, err := time.ParseDuration(cfg.JWT.TokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid token expiration: %w", err)
	}
	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey: cfg.JWT.Secret,
		TokenExp:  tokenExp,
		Issuer:    cfg.JWT.Issuer,
	})

	sender := email.NewSMTPSender(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
	}, log.Logger)

	var redis *cache.Redis
	snapshotTTL := time.Minute
	if cfg.Redis.Addr != "" {
		redis = cache.NewRedis(cfg.Redis.Addr)
		if ttl, err := time.ParseDuration(cfg.Redis.SnapshotTTL); err == nil {
			snapshotTTL = ttl
		}
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if !redis.Healthy(ctx) {
			logger.Warn().Str("addr", cfg.Redis.Addr).Msg("Redis unreachable, dashboard cache disabled")
			redis = nil
		}
		cancel()
	}

	svcs := appServices.NewServices(repos, storage, sender, jwtService, redis, snapshotTTL, cfg.Uploads.BrochurePath)

	return &Dependencies{
		Repos:          repos,
		Services:       svcs,
		AuthMiddleware: appMiddleware.NewAuthMiddleware(jwtService),
		JWTService:     jwtService,
		FileStorage:    storage,
		Redis:          redis,
	}, nil
}

// SetupRouter builds the gin engine with middleware and routes mounted.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.EqualFold(cfg.Server.Mode, "production") {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.CORS(cfg.Server.AllowedOrigin))
	router.Use(appMiddleware.SecurityHeaders())
	router.Use(metrics.Middleware())

	appRoutes.Register(router, deps.Services, deps.AuthMiddleware, cfg.Server.StoragePath)
	return router
}

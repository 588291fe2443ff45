package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/anjellyyy/smart-hostel-management-system/internal/app/controllers"
	appMigrations "github.com/anjellyyy/smart-hostel-management-system/internal/app/migrations"
	appRepos "github.com/anjellyyy/smart-hostel-management-system/internal/app/repositories"
	appRoutes "github.com/anjellyyy/smart-hostel-management-system/internal/app/routes"
	appServices "github.com/anjellyyy/smart-hostel-management-system/internal/app/services"
	"github.com/anjellyyy/smart-hostel-management-system/internal/config"
	"github.com/anjellyyy/smart-hostel-management-system/internal/db"
	appMiddleware "github.com/anjellyyy/smart-hostel-management-system/internal/middleware"
	pkgAuth "github.com/anjellyyy/smart-hostel-management-system/internal/pkg/auth"
	"github.com/anjellyyy/smart-hostel-management-system/internal/pkg/logger"
	"github.com/anjellyyy/smart-hostel-management-system/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService   appServices.StudentService
	RoomService      appServices.RoomService
	PaymentService   appServices.PaymentService
	ComplaintService appServices.ComplaintService
	DashboardService appServices.DashboardService
	AuthService      appServices.AuthService

	DashboardController *appControllers.DashboardController
	StudentController   *appControllers.StudentController
	RoomController      *appControllers.RoomController
	PaymentController   *appControllers.PaymentController
	ComplaintController *appControllers.ComplaintController
	AuthController      *appControllers.AuthController
	ChatbotController   *appControllers.ChatbotController

	Repos      *appRepos.Repositories
	JWTService *pkgAuth.JWTService
	Logger     zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed after migrations; a seeding failure is logged but does not
	// block startup.
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	accessTokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		// Config validation already checked this; fall back defensively.
		accessTokenExp = time.Hour
	}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessTokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.RoomService = appServices.NewRoomService(deps.Repos.RoomRepository, deps.Repos.StudentRepository)
	deps.PaymentService = appServices.NewPaymentService(deps.Repos.PaymentRepository)
	deps.ComplaintService = appServices.NewComplaintService(deps.Repos.ComplaintRepository)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.StudentRepository,
		deps.Repos.RoomRepository,
		deps.Repos.PaymentRepository,
		deps.Repos.ComplaintRepository,
		deps.RoomService,
	)
	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)

	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.RoomController = appControllers.NewRoomController(deps.RoomService)
	deps.PaymentController = appControllers.NewPaymentController(deps.PaymentService)
	deps.ComplaintController = appControllers.NewComplaintController(deps.ComplaintService)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ChatbotController = appControllers.NewChatbotController()

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	// The admin UI is served from a different origin during development.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	appRoutes.SetupRouter(router,
		deps.DashboardController,
		deps.StudentController,
		deps.RoomController,
		deps.PaymentController,
		deps.ComplaintController,
		deps.AuthController,
		deps.ChatbotController,
	)

	return router
}

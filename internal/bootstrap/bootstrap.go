package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/deepak/eventsphere/docs" // generated swagger docs
	appControllers "github.com/deepak/eventsphere/internal/app/controllers"
	appMigrations "github.com/deepak/eventsphere/internal/app/migrations"
	appRepos "github.com/deepak/eventsphere/internal/app/repositories"
	appRoutes "github.com/deepak/eventsphere/internal/app/routes"
	appServices "github.com/deepak/eventsphere/internal/app/services"
	"github.com/deepak/eventsphere/internal/config"
	"github.com/deepak/eventsphere/internal/db"
	appMiddleware "github.com/deepak/eventsphere/internal/middleware"
	pkgAuth "github.com/deepak/eventsphere/internal/pkg/auth"
	"github.com/deepak/eventsphere/internal/pkg/filestorage"
	"github.com/deepak/eventsphere/internal/pkg/helpers"
	"github.com/deepak/eventsphere/internal/pkg/logger"
	"github.com/deepak/eventsphere/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	EventService           appServices.EventService
	RegistrationService    appServices.RegistrationService
	TeamService            appServices.TeamService
	SummaryService         appServices.SummaryService
	StudentService         appServices.StudentService
	AuthController         *appControllers.AuthController
	EventController        *appControllers.EventController
	RegistrationController *appControllers.RegistrationController
	TeamController         *appControllers.TeamController
	SummaryController      *appControllers.SummaryController
	StudentController      *appControllers.StudentController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	FileStorage            *filestorage.LocalStorage
	Logger                 zerolog.Logger
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	baseURL := "http://localhost:" + cfg.Server.Port
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.JWTService,
		lgr,
	)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository, lgr)
	deps.RegistrationService = appServices.NewRegistrationService(deps.Repos.RegistrationRepository, lgr)
	deps.TeamService = appServices.NewTeamService(deps.Repos.TeamRegistrationRepository, lgr)
	deps.SummaryService = appServices.NewSummaryService(
		deps.Repos.SummaryRepository,
		deps.Repos.EventRepository,
		deps.Repos.RegistrationRepository,
		deps.FileStorage,
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.RegistrationController = appControllers.NewRegistrationController(deps.RegistrationService)
	deps.TeamController = appControllers.NewTeamController(deps.TeamService)
	deps.SummaryController = appControllers.NewSummaryController(deps.SummaryService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)

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
	router.Use(appMiddleware.RequestLogger())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.EventController,
		deps.RegistrationController,
		deps.TeamController,
		deps.SummaryController,
		deps.StudentController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}

package bootstrap

import (
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"portfolio_server/adapter/in/http"
	"portfolio_server/config"
	"portfolio_server/infra/middleware"
	"portfolio_server/pkg/logger"
)

// NewAPI builds the configured Fiber app with every route registered. The
// returned cleanup func releases the database connection.
func NewAPI(cfg *config.Config) (*fiber.App, func(), error) {
	logLevel := "info"
	if cfg.IsDevelopment() {
		logLevel = "debug"
	}
	logger.Init(logger.Config{
		Level:   logLevel,
		Service: "portfolio-api",
		Pretty:  cfg.IsDevelopment(),
	})

	deps, cleanup, err := NewDependencies(cfg)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize dependencies")
		return nil, nil, err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          middleware.ErrorHandler(),
		DisableStartupMessage: cfg.IsProduction(),

		// go-json over encoding/json for request/response bodies
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,

		BodyLimit: 10 * 1024 * 1024,
	})

	// Global middleware stack (order matters)
	app.Use(middleware.Recover())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowedOrigins, ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Request-ID",
	}))

	// Authorization gate, applied before routing; public reads, token
	// issuance and uploaded assets bypass it via the allow-list.
	app.Use(middleware.JWTAuth(middleware.AuthConfig{
		Secret:    cfg.JWTSecret,
		APIPrefix: cfg.APIPrefix,
	}))

	// Health check
	healthHandler := http.NewHealthHandler(deps.MongoDB)
	healthHandler.Register(app)

	// Uploaded assets, served read-only under the public path
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		cleanup()
		return nil, nil, err
	}
	app.Static("/public/uploads", cfg.UploadDir)

	// API routes
	api := app.Group(cfg.APIPrefix)

	educationHandler := http.NewEducationHandler(deps.EducationRepo)
	educationHandler.Register(api)

	experienceHandler := http.NewExperienceHandler(deps.ExperienceRepo)
	experienceHandler.Register(api)

	skillHandler := http.NewSkillHandler(deps.SkillRepo)
	skillHandler.Register(api)

	userHandler := http.NewUserHandler(deps.UserRepo, deps.TokenIssuer, cfg.UploadDir)
	userHandler.Register(api)

	logger.Info("API server initialized successfully")

	return app, cleanup, nil
}

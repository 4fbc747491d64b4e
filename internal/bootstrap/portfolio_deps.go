package bootstrap

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"portfolio_server/adapter/out/mongodb"
	"portfolio_server/config"
	"portfolio_server/core/port/out"
	"portfolio_server/core/service/auth"
	"portfolio_server/pkg/logger"
)

// Dependencies is the wired dependency container, built once at startup and
// handed to the route handlers.
type Dependencies struct {
	Config  *config.Config
	MongoDB *mongo.Client

	// Repositories
	EducationRepo  out.EducationRepository
	ExperienceRepo out.ExperienceRepository
	SkillRepo      out.ProfessionalSkillRepository
	UserRepo       out.UserRepository

	// Services
	TokenIssuer *auth.TokenIssuer
}

// NewDependencies connects the database and builds the adapters. The returned
// cleanup func disconnects the client.
func NewDependencies(cfg *config.Config) (*Dependencies, func(), error) {
	client, err := mongodb.NewClient(cfg.MongoDBURL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Database connection is ready")

	db := client.Database(cfg.MongoDBName)

	userRepo := mongodb.NewUserAdapter(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logger.WithError(err).Warn("Failed to ensure user indexes")
	}

	deps := &Dependencies{
		Config:  cfg,
		MongoDB: client,

		EducationRepo:  mongodb.NewEducationAdapter(db),
		ExperienceRepo: mongodb.NewExperienceAdapter(db),
		SkillRepo:      mongodb.NewSkillAdapter(db),
		UserRepo:       userRepo,

		TokenIssuer: auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenPassword),
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.WithError(err).Warn("Failed to disconnect MongoDB client")
		}
	}

	return deps, cleanup, nil
}

package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolio_server/pkg/response"
)

// HealthHandler reports process and database liveness.
type HealthHandler struct {
	mongo *mongo.Client
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(client *mongo.Client) *HealthHandler {
	return &HealthHandler{mongo: client}
}

// Register registers the health route on the app root, outside the API prefix.
func (h *HealthHandler) Register(app *fiber.App) {
	app.Get("/health", h.Check)
}

// Check pings the database with a short deadline.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	database := "up"
	if err := h.mongo.Ping(ctx, nil); err != nil {
		database = "down"
	}

	return response.OK(c, fiber.Map{
		"status":   "ok",
		"database": database,
	})
}

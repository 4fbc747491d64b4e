package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio_server/core/domain"
	"portfolio_server/core/port/out"
	"portfolio_server/pkg/response"
)

// ExperienceHandler handles HTTP requests for the experience store.
type ExperienceHandler struct {
	repo out.ExperienceRepository
}

// NewExperienceHandler creates a new ExperienceHandler.
func NewExperienceHandler(repo out.ExperienceRepository) *ExperienceHandler {
	return &ExperienceHandler{repo: repo}
}

// Register registers experience routes.
func (h *ExperienceHandler) Register(router fiber.Router) {
	experiences := router.Group("/experiences")

	experiences.Get("/", h.List)
	experiences.Post("/", h.Create)
	experiences.Get("/:id", h.GetByID)
	experiences.Put("/:id", h.Update)
	experiences.Delete("/:id", h.Delete)
}

// List returns all experience entries.
func (h *ExperienceHandler) List(c *fiber.Ctx) error {
	experiences, err := h.repo.List(c.Context())
	if err != nil {
		return response.InternalError(c, err)
	}
	return response.OK(c, experiences)
}

// GetByID returns one experience entry.
func (h *ExperienceHandler) GetByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Experience id is invalid")
	}

	experience, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		return response.InternalError(c, err)
	}
	if experience == nil {
		return response.BadRequest(c, "Experience not found")
	}
	return response.OK(c, experience)
}

// Create stores a new experience entry.
func (h *ExperienceHandler) Create(c *fiber.Ctx) error {
	var input domain.ExperienceInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	experience, err := h.repo.Create(c.Context(), &input, time.Now())
	if err != nil {
		return response.InternalError(c, err)
	}
	if experience == nil {
		return response.BadRequest(c, "Experience cannot be created!")
	}
	return response.OK(c, experience)
}

// Update replaces an experience entry's fields.
func (h *ExperienceHandler) Update(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Experience id is invalid")
	}

	var input domain.ExperienceInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	experience, err := h.repo.Update(c.Context(), id, &input, time.Now())
	if err != nil {
		return response.InternalError(c, err)
	}
	if experience == nil {
		return response.BadRequest(c, "Experience cannot be updated!")
	}
	return response.OK(c, experience)
}

// Delete removes an experience entry.
func (h *ExperienceHandler) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Experience id is invalid")
	}

	deleted, err := h.repo.Delete(c.Context(), id)
	if err != nil {
		return response.InternalError(c, err)
	}
	if !deleted {
		return response.BadRequest(c, "Experience not found!")
	}
	return response.OKMessage(c, "Experience has been deleted")
}

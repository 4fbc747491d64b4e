package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio_server/core/domain"
	"portfolio_server/core/port/out"
	"portfolio_server/pkg/response"
)

// EducationHandler handles HTTP requests for the education store.
type EducationHandler struct {
	repo out.EducationRepository
}

// NewEducationHandler creates a new EducationHandler.
func NewEducationHandler(repo out.EducationRepository) *EducationHandler {
	return &EducationHandler{repo: repo}
}

// Register registers education routes.
func (h *EducationHandler) Register(router fiber.Router) {
	educations := router.Group("/educations")

	educations.Get("/", h.List)
	educations.Post("/", h.Create)
	educations.Get("/:id", h.GetByID)
	educations.Put("/:id", h.Update)
	educations.Delete("/:id", h.Delete)
}

// List returns all education entries.
func (h *EducationHandler) List(c *fiber.Ctx) error {
	educations, err := h.repo.List(c.Context())
	if err != nil {
		return response.InternalError(c, err)
	}
	return response.OK(c, educations)
}

// GetByID returns one education entry.
func (h *EducationHandler) GetByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Education id is invalid")
	}

	education, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		return response.InternalError(c, err)
	}
	if education == nil {
		return response.BadRequest(c, "Education not found")
	}
	return response.OK(c, education)
}

// Create stores a new education entry.
func (h *EducationHandler) Create(c *fiber.Ctx) error {
	var input domain.EducationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	education, err := h.repo.Create(c.Context(), &input, time.Now())
	if err != nil {
		return response.InternalError(c, err)
	}
	if education == nil {
		return response.BadRequest(c, "Education cannot be created!")
	}
	return response.OK(c, education)
}

// Update replaces an education entry's fields.
func (h *EducationHandler) Update(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Education id is invalid")
	}

	var input domain.EducationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	education, err := h.repo.Update(c.Context(), id, &input, time.Now())
	if err != nil {
		return response.InternalError(c, err)
	}
	if education == nil {
		return response.BadRequest(c, "Education cannot be updated!")
	}
	return response.OK(c, education)
}

// Delete removes an education entry.
func (h *EducationHandler) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Education id is invalid")
	}

	deleted, err := h.repo.Delete(c.Context(), id)
	if err != nil {
		return response.InternalError(c, err)
	}
	if !deleted {
		return response.BadRequest(c, "Education not found!")
	}
	return response.OKMessage(c, "Education has been deleted")
}

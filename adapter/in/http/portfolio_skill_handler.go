package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio_server/core/domain"
	"portfolio_server/core/port/out"
	"portfolio_server/pkg/response"
)

// SkillHandler handles HTTP requests for the professional skill store.
type SkillHandler struct {
	repo out.ProfessionalSkillRepository
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(repo out.ProfessionalSkillRepository) *SkillHandler {
	return &SkillHandler{repo: repo}
}

// Register registers professional skill routes.
func (h *SkillHandler) Register(router fiber.Router) {
	skills := router.Group("/professionalSkills")

	skills.Get("/", h.List)
	skills.Post("/", h.Create)
	skills.Get("/:id", h.GetByID)
	skills.Put("/:id", h.Update)
	skills.Delete("/:id", h.Delete)
}

// List returns all professional skills.
func (h *SkillHandler) List(c *fiber.Ctx) error {
	skills, err := h.repo.List(c.Context())
	if err != nil {
		return response.InternalError(c, err)
	}
	return response.OK(c, skills)
}

// GetByID returns one professional skill.
func (h *SkillHandler) GetByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Professional skill id is invalid")
	}

	skill, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		return response.InternalError(c, err)
	}
	if skill == nil {
		return response.BadRequest(c, "Professional skill not found")
	}
	return response.OK(c, skill)
}

// Create stores a new professional skill.
func (h *SkillHandler) Create(c *fiber.Ctx) error {
	var input domain.ProfessionalSkillInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	skill, err := h.repo.Create(c.Context(), &input, time.Now())
	if err != nil {
		return response.InternalError(c, err)
	}
	if skill == nil {
		return response.BadRequest(c, "Professional skill cannot be created!")
	}
	return response.OK(c, skill)
}

// Update replaces a professional skill's fields.
func (h *SkillHandler) Update(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Professional skill id is invalid")
	}

	var input domain.ProfessionalSkillInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	skill, err := h.repo.Update(c.Context(), id, &input, time.Now())
	if err != nil {
		return response.InternalError(c, err)
	}
	if skill == nil {
		return response.BadRequest(c, "Professional skill cannot be updated!")
	}
	return response.OK(c, skill)
}

// Delete removes a professional skill.
func (h *SkillHandler) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Professional skill id is invalid")
	}

	deleted, err := h.repo.Delete(c.Context(), id)
	if err != nil {
		return response.InternalError(c, err)
	}
	if !deleted {
		return response.BadRequest(c, "Professional skill not found!")
	}
	return response.OKMessage(c, "Professional skill has been deleted")
}

package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio_server/core/domain"
	"portfolio_server/core/port/out"
	"portfolio_server/core/service/auth"
	"portfolio_server/pkg/apperr"
	"portfolio_server/pkg/response"
)

// UserHandler handles HTTP requests for the user profile store, token
// issuance, and avatar/CV uploads.
type UserHandler struct {
	repo      out.UserRepository
	issuer    *auth.TokenIssuer
	uploadDir string
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(repo out.UserRepository, issuer *auth.TokenIssuer, uploadDir string) *UserHandler {
	return &UserHandler{
		repo:      repo,
		issuer:    issuer,
		uploadDir: uploadDir,
	}
}

// Register registers user routes. The token and CV upload routes must come
// before the parameterized ones.
func (h *UserHandler) Register(router fiber.Router) {
	users := router.Group("/users")

	users.Get("/", h.List)
	users.Post("/", h.Create)
	users.Post("/token", h.IssueToken)
	users.Put("/upload/cv/:id", h.UploadCV)
	users.Get("/:id", h.GetByID)
	users.Put("/:id", h.Update)
	users.Delete("/:id", h.Delete)
}

// List returns all users with plain reference lists.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.repo.List(c.Context())
	if err != nil {
		return response.InternalError(c, err)
	}
	return response.OK(c, users)
}

// GetByID returns one user with its reference lists expanded.
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "User id is invalid")
	}

	user, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		return response.InternalError(c, err)
	}
	if user == nil {
		return response.BadRequest(c, "User not found")
	}
	return response.OK(c, user)
}

// Create stores a new user. An optional multipart avatar file becomes the
// stored avatar URL, overriding any avatar value in the payload.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var input domain.UserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	avatarURL, err := h.avatarUpload(c)
	if err != nil {
		return h.uploadError(c, err)
	}

	user, err := h.repo.Create(c.Context(), &input, avatarURL, time.Now())
	if err != nil {
		return response.InternalError(c, err)
	}
	if user == nil {
		return response.BadRequest(c, "User cannot be created")
	}
	return response.OK(c, user)
}

// Update replaces a user's whitelisted fields. The stored avatar survives
// unless a new multipart avatar file is supplied.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "User id is invalid")
	}

	var input domain.UserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	avatarURL, err := h.avatarUpload(c)
	if err != nil {
		return h.uploadError(c, err)
	}

	user, err := h.repo.Update(c.Context(), id, &input, avatarURL, time.Now())
	if err != nil {
		return response.InternalError(c, err)
	}
	if user == nil {
		return response.BadRequest(c, "User cannot be updated!")
	}
	return response.OK(c, user)
}

// UploadCV stores a CV file for a user and rewrites the stored reference.
func (h *UserHandler) UploadCV(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "User id is invalid")
	}

	fh, err := c.FormFile("cv")
	if err != nil {
		return response.BadRequest(c, "cv file is required")
	}

	cvURL, err := storeUpload(c, fh, h.uploadDir)
	if err != nil {
		return h.uploadError(c, err)
	}

	user, err := h.repo.SetCV(c.Context(), id, cvURL, time.Now())
	if err != nil {
		return response.InternalError(c, err)
	}
	if user == nil {
		return response.BadRequest(c, "User cannot be updated!")
	}
	return response.OK(c, user)
}

// Delete removes a user.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "User id is invalid")
	}

	deleted, err := h.repo.Delete(c.Context(), id)
	if err != nil {
		return response.InternalError(c, err)
	}
	if !deleted {
		return response.BadRequest(c, "User not found!")
	}
	return response.OKMessage(c, "User has been deleted")
}

// IssueToken exchanges the shared token password for a signed bearer token.
func (h *UserHandler) IssueToken(c *fiber.Ctx) error {
	var body struct {
		Password string `json:"password" form:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	token, err := h.issuer.Issue(body.Password)
	if err != nil {
		if errors.Is(err, auth.ErrAccessDenied) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalError(c, err)
	}

	return response.OK(c, fiber.Map{"token": token})
}

// avatarUpload stores the optional multipart avatar file. Returns "" when the
// request carries no avatar file.
func (h *UserHandler) avatarUpload(c *fiber.Ctx) (string, error) {
	fh, err := c.FormFile("avatar")
	if err != nil {
		return "", nil
	}
	return storeUpload(c, fh, h.uploadDir)
}

func (h *UserHandler) uploadError(c *fiber.Ctx, err error) error {
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		return response.Fail(c, appErr.Status, appErr.Message)
	}
	return response.InternalError(c, err)
}

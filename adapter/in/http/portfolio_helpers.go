// Package http exposes the portfolio entity stores over Fiber routes.
package http

import (
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"portfolio_server/pkg/apperr"
	"portfolio_server/pkg/upload"
)

// storeUpload plans and persists one multipart file, returning the public URL
// callers persist onto the owning entity. An unsupported declared content type
// comes back as a 400-status AppError before any I/O happens.
func storeUpload(c *fiber.Ctx, fh *multipart.FileHeader, uploadDir string) (string, error) {
	plan, err := upload.NewPlan(fh.Header.Get(fiber.HeaderContentType), fh.Filename)
	if err != nil {
		return "", apperr.BadRequest(err.Error())
	}

	if err := c.SaveFile(fh, filepath.Join(uploadDir, plan.Filename)); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	return plan.PublicURL(c.Protocol(), c.Hostname()), nil
}

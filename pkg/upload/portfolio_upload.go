// Package upload plans where multipart file uploads land on disk. Planning is
// pure; the side-effecting write stays with the caller.
package upload

import (
	"fmt"
	"strings"
	"time"
)

// fileTypeMap maps accepted declared content types to stored extensions.
var fileTypeMap = map[string]string{
	"image/png":       "png",
	"image/jpeg":      "jpeg",
	"image/jpg":       "jpg",
	"application/pdf": "pdf",
}

// Plan describes where an accepted upload will be stored.
type Plan struct {
	Filename  string
	Extension string
}

// ErrInvalidFileType is returned when the declared content type is not in the
// accept list.
type ErrInvalidFileType struct {
	ContentType string
}

func (e *ErrInvalidFileType) Error() string {
	return fmt.Sprintf("invalid file type: %s", e.ContentType)
}

// NewPlan validates the declared content type and derives the stored filename:
// the original name with spaces replaced by hyphens and the extension suffix
// stripped, then a millisecond timestamp and the mapped extension.
func NewPlan(contentType, originalName string) (*Plan, error) {
	return newPlanAt(contentType, originalName, time.Now())
}

func newPlanAt(contentType, originalName string, now time.Time) (*Plan, error) {
	ext, ok := fileTypeMap[contentType]
	if !ok {
		return nil, &ErrInvalidFileType{ContentType: contentType}
	}

	base := strings.ReplaceAll(originalName, " ", "-")
	base = strings.TrimSuffix(base, "."+ext)

	return &Plan{
		Filename:  fmt.Sprintf("%s-%d.%s", base, now.UnixMilli(), ext),
		Extension: ext,
	}, nil
}

// PublicURL builds the stored reference value for a planned upload.
func (p *Plan) PublicURL(scheme, host string) string {
	return fmt.Sprintf("%s://%s/public/uploads/%s", scheme, host, p.Filename)
}

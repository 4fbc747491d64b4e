package upload

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestNewPlan_TypeValidation(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		wantErr     bool
		wantExt     string
	}{
		{"png accepted", "image/png", false, "png"},
		{"jpeg accepted", "image/jpeg", false, "jpeg"},
		{"jpg accepted", "image/jpg", false, "jpg"},
		{"pdf accepted", "application/pdf", false, "pdf"},
		{"plain text rejected", "text/plain", true, ""},
		{"gif rejected", "image/gif", true, ""},
		{"empty rejected", "", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := NewPlan(tt.contentType, "file.bin")
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewPlan(%q) error = %v, wantErr %v", tt.contentType, err, tt.wantErr)
			}
			if tt.wantErr {
				var invalidType *ErrInvalidFileType
				if !errors.As(err, &invalidType) {
					t.Fatalf("NewPlan(%q) error = %T, want *ErrInvalidFileType", tt.contentType, err)
				}
				return
			}
			if plan.Extension != tt.wantExt {
				t.Errorf("plan.Extension = %q, want %q", plan.Extension, tt.wantExt)
			}
			if !strings.HasSuffix(plan.Filename, "."+tt.wantExt) {
				t.Errorf("plan.Filename = %q, want suffix .%s", plan.Filename, tt.wantExt)
			}
		})
	}
}

func TestNewPlan_Filename(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	stamp := now.UnixMilli()

	tests := []struct {
		name         string
		contentType  string
		originalName string
		want         string
	}{
		{
			"spaces become hyphens",
			"image/png",
			"my profile photo.png",
			fmt.Sprintf("my-profile-photo-%d.png", stamp),
		},
		{
			"extension stripped before the timestamp",
			"application/pdf",
			"resume.pdf",
			fmt.Sprintf("resume-%d.pdf", stamp),
		},
		{
			"name without extension kept whole",
			"image/jpg",
			"avatar",
			fmt.Sprintf("avatar-%d.jpg", stamp),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := newPlanAt(tt.contentType, tt.originalName, now)
			if err != nil {
				t.Fatal(err)
			}
			if plan.Filename != tt.want {
				t.Errorf("plan.Filename = %q, want %q", plan.Filename, tt.want)
			}
		})
	}
}

func TestPlan_PublicURL(t *testing.T) {
	plan := &Plan{Filename: "avatar-123.png", Extension: "png"}

	got := plan.PublicURL("https", "example.com")
	want := "https://example.com/public/uploads/avatar-123.png"
	if got != want {
		t.Errorf("PublicURL() = %q, want %q", got, want)
	}
}

package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Experience is a single work experience entry.
type Experience struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	JobTitle     string             `bson:"jobTitle" json:"jobTitle"`
	Company      string             `bson:"company" json:"company"`
	Summary      string             `bson:"summary" json:"summary"`
	Image        string             `bson:"image" json:"image"`
	StartDate    *time.Time         `bson:"startDate" json:"startDate"`
	EndDate      *time.Time         `bson:"endDate" json:"endDate"`
	IsCurrent    bool               `bson:"isCurrent" json:"isCurrent"`
	DateCreated  *time.Time         `bson:"dateCreated" json:"dateCreated"`
	DateModified *time.Time         `bson:"dateModified" json:"dateModified"`
}

// ExperienceInput is the whitelisted payload for experience create and update.
type ExperienceInput struct {
	JobTitle  string     `json:"jobTitle"`
	Company   string     `json:"company"`
	Summary   string     `json:"summary"`
	Image     string     `json:"image"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	IsCurrent bool       `json:"isCurrent"`
}

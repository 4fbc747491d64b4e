// Package domain holds the portfolio record types and their whitelisted
// operation payloads.
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Education is a single education entry.
type Education struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	School         string             `bson:"school" json:"school"`
	Course         string             `bson:"course" json:"course"`
	Specialization string             `bson:"specialization,omitempty" json:"specialization,omitempty"`
	StartDate      *time.Time         `bson:"startDate" json:"startDate"`
	EndDate        *time.Time         `bson:"endDate" json:"endDate"`
	DateCreated    *time.Time         `bson:"dateCreated" json:"dateCreated"`
	DateModified   *time.Time         `bson:"dateModified" json:"dateModified"`
}

// EducationInput is the whitelisted payload for education create and update.
// Unlisted request fields are dropped at decode time.
type EducationInput struct {
	School         string     `json:"school"`
	Course         string     `json:"course"`
	Specialization string     `json:"specialization"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
}

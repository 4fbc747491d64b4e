package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfessionalSkill is a rated professional skill.
type ProfessionalSkill struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Rating       float64            `bson:"rating" json:"rating"`
	DateCreated  *time.Time         `bson:"dateCreated" json:"dateCreated"`
	DateModified *time.Time         `bson:"dateModified" json:"dateModified"`
}

// ProfessionalSkillInput is the whitelisted payload for skill create and update.
type ProfessionalSkillInput struct {
	Title  string  `json:"title"`
	Rating float64 `json:"rating"`
}

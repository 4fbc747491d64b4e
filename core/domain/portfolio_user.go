package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the single profile document. Related entries are held by reference;
// reference lists may contain dangling identifiers.
type User struct {
	ID                 primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	FirstName          string               `bson:"firstName" json:"firstName"`
	LastName           string               `bson:"lastName" json:"lastName"`
	Phone              string               `bson:"phone" json:"phone"`
	Email              string               `bson:"email" json:"email"`
	Location           string               `bson:"location" json:"location"`
	Summary            string               `bson:"summary" json:"summary"`
	Avatar             string               `bson:"avatar" json:"avatar"`
	CV                 string               `bson:"cv" json:"cv"`
	LinkedIn           string               `bson:"linkedIn,omitempty" json:"linkedIn,omitempty"`
	Github             string               `bson:"github,omitempty" json:"github,omitempty"`
	Instagram          string               `bson:"instagram,omitempty" json:"instagram,omitempty"`
	GetInTouchText     string               `bson:"getInTouchText,omitempty" json:"getInTouchText,omitempty"`
	ProfessionalSkills []primitive.ObjectID `bson:"professionalSkills" json:"professionalSkills"`
	Educations         []primitive.ObjectID `bson:"educations" json:"educations"`
	Experiences        []primitive.ObjectID `bson:"experiences" json:"experiences"`
	DateCreated        *time.Time           `bson:"dateCreated" json:"dateCreated"`
	DateModified       *time.Time           `bson:"dateModified" json:"dateModified"`
}

// UserDetail is a user with its reference lists expanded into the referenced
// documents. Dangling references are omitted.
type UserDetail struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	FirstName          string              `bson:"firstName" json:"firstName"`
	LastName           string              `bson:"lastName" json:"lastName"`
	Phone              string              `bson:"phone" json:"phone"`
	Email              string              `bson:"email" json:"email"`
	Location           string              `bson:"location" json:"location"`
	Summary            string              `bson:"summary" json:"summary"`
	Avatar             string              `bson:"avatar" json:"avatar"`
	CV                 string              `bson:"cv" json:"cv"`
	LinkedIn           string              `bson:"linkedIn,omitempty" json:"linkedIn,omitempty"`
	Github             string              `bson:"github,omitempty" json:"github,omitempty"`
	Instagram          string              `bson:"instagram,omitempty" json:"instagram,omitempty"`
	GetInTouchText     string              `bson:"getInTouchText,omitempty" json:"getInTouchText,omitempty"`
	ProfessionalSkills []ProfessionalSkill `bson:"professionalSkills" json:"professionalSkills"`
	Educations         []Education         `bson:"educations" json:"educations"`
	Experiences        []Experience        `bson:"experiences" json:"experiences"`
	DateCreated        *time.Time          `bson:"dateCreated" json:"dateCreated"`
	DateModified       *time.Time          `bson:"dateModified" json:"dateModified"`
}

// UserInput is the whitelisted payload for user create and update. Avatar and
// CV are set through file upload, never directly from the payload body on
// update; avatar may still arrive in the create payload when no file is sent.
type UserInput struct {
	FirstName          string   `json:"firstName" form:"firstName"`
	LastName           string   `json:"lastName" form:"lastName"`
	Phone              string   `json:"phone" form:"phone"`
	Email              string   `json:"email" form:"email"`
	Location           string   `json:"location" form:"location"`
	Summary            string   `json:"summary" form:"summary"`
	Avatar             string   `json:"avatar" form:"avatar"`
	LinkedIn           string   `json:"linkedIn" form:"linkedIn"`
	Github             string   `json:"github" form:"github"`
	Instagram          string   `json:"instagram" form:"instagram"`
	GetInTouchText     string   `json:"getInTouchText" form:"getInTouchText"`
	ProfessionalSkills []string `json:"professionalSkills" form:"professionalSkills"`
	Educations         []string `json:"educations" form:"educations"`
	Experiences        []string `json:"experiences" form:"experiences"`
}

// RefObjectIDs converts a list of reference id strings, dropping malformed
// entries the same way the store would reject them.
func RefObjectIDs(refs []string) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(refs))
	for _, ref := range refs {
		id, err := primitive.ObjectIDFromHex(ref)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

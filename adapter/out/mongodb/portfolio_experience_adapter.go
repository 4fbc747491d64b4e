package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio_server/core/domain"
	"portfolio_server/core/port/out"
)

const collectionExperiences = "experiences"

// ExperienceAdapter implements out.ExperienceRepository using MongoDB.
type ExperienceAdapter struct {
	collection *mongo.Collection
}

// NewExperienceAdapter creates a new MongoDB experience adapter.
func NewExperienceAdapter(db *mongo.Database) *ExperienceAdapter {
	return &ExperienceAdapter{collection: db.Collection(collectionExperiences)}
}

// List returns all experience documents in store-native order.
func (a *ExperienceAdapter) List(ctx context.Context) ([]domain.Experience, error) {
	cursor, err := a.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer cursor.Close(ctx)

	experiences := []domain.Experience{}
	if err := cursor.All(ctx, &experiences); err != nil {
		return nil, fmt.Errorf("failed to decode experiences: %w", err)
	}
	return experiences, nil
}

// GetByID retrieves an experience entry by id. Returns (nil, nil) when no
// document matches.
func (a *ExperienceAdapter) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Experience, error) {
	var experience domain.Experience
	err := a.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&experience)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}
	return &experience, nil
}

// Create persists a new experience entry stamped with dateCreated.
func (a *ExperienceAdapter) Create(ctx context.Context, input *domain.ExperienceInput, now time.Time) (*domain.Experience, error) {
	if err := validateExperience(input); err != nil {
		return nil, err
	}

	doc := experienceSetFields(input)
	doc["dateCreated"] = now

	result, err := a.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, nil
	}
	return a.GetByID(ctx, id)
}

// Update replaces every whitelisted field and stamps dateModified. Returns
// (nil, nil) when no document matched the id.
func (a *ExperienceAdapter) Update(ctx context.Context, id primitive.ObjectID, input *domain.ExperienceInput, now time.Time) (*domain.Experience, error) {
	if err := validateExperience(input); err != nil {
		return nil, err
	}

	set := experienceSetFields(input)
	set["dateModified"] = now

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var experience domain.Experience
	err := a.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&experience)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update experience: %w", err)
	}
	return &experience, nil
}

// Delete removes an experience entry, reporting whether one matched.
func (a *ExperienceAdapter) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := a.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete experience: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func experienceSetFields(input *domain.ExperienceInput) bson.M {
	return bson.M{
		"jobTitle":  input.JobTitle,
		"company":   input.Company,
		"summary":   input.Summary,
		"image":     input.Image,
		"startDate": input.StartDate,
		"endDate":   input.EndDate,
		"isCurrent": input.IsCurrent,
	}
}

func validateExperience(input *domain.ExperienceInput) error {
	if input.JobTitle == "" {
		return fmt.Errorf("experience validation failed: jobTitle is required")
	}
	if input.Company == "" {
		return fmt.Errorf("experience validation failed: company is required")
	}
	return nil
}

var _ out.ExperienceRepository = (*ExperienceAdapter)(nil)

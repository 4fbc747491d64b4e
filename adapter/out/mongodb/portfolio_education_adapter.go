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

const collectionEducations = "educations"

// EducationAdapter implements out.EducationRepository using MongoDB.
type EducationAdapter struct {
	collection *mongo.Collection
}

// NewEducationAdapter creates a new MongoDB education adapter.
func NewEducationAdapter(db *mongo.Database) *EducationAdapter {
	return &EducationAdapter{collection: db.Collection(collectionEducations)}
}

// List returns all education documents in store-native order.
func (a *EducationAdapter) List(ctx context.Context) ([]domain.Education, error) {
	cursor, err := a.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list educations: %w", err)
	}
	defer cursor.Close(ctx)

	educations := []domain.Education{}
	if err := cursor.All(ctx, &educations); err != nil {
		return nil, fmt.Errorf("failed to decode educations: %w", err)
	}
	return educations, nil
}

// GetByID retrieves an education entry by id. Returns (nil, nil) when no
// document matches.
func (a *EducationAdapter) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Education, error) {
	var education domain.Education
	err := a.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&education)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get education: %w", err)
	}
	return &education, nil
}

// Create persists a new education entry stamped with dateCreated.
func (a *EducationAdapter) Create(ctx context.Context, input *domain.EducationInput, now time.Time) (*domain.Education, error) {
	if err := validateEducation(input); err != nil {
		return nil, err
	}

	doc := educationSetFields(input)
	doc["dateCreated"] = now

	result, err := a.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create education: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, nil
	}
	return a.GetByID(ctx, id)
}

// Update replaces every whitelisted field and stamps dateModified. Returns
// (nil, nil) when no document matched the id.
func (a *EducationAdapter) Update(ctx context.Context, id primitive.ObjectID, input *domain.EducationInput, now time.Time) (*domain.Education, error) {
	if err := validateEducation(input); err != nil {
		return nil, err
	}

	set := educationSetFields(input)
	set["dateModified"] = now

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var education domain.Education
	err := a.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&education)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update education: %w", err)
	}
	return &education, nil
}

// Delete removes an education entry, reporting whether one matched.
func (a *EducationAdapter) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := a.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete education: %w", err)
	}
	return result.DeletedCount > 0, nil
}

// educationSetFields builds the full-replace field set from the whitelisted
// input. Omitted payload fields land as their zero value.
func educationSetFields(input *domain.EducationInput) bson.M {
	return bson.M{
		"school":         input.School,
		"course":         input.Course,
		"specialization": input.Specialization,
		"startDate":      input.StartDate,
		"endDate":        input.EndDate,
	}
}

// validateEducation enforces the store-level required fields.
func validateEducation(input *domain.EducationInput) error {
	if input.School == "" {
		return fmt.Errorf("education validation failed: school is required")
	}
	if input.Course == "" {
		return fmt.Errorf("education validation failed: course is required")
	}
	return nil
}

var _ out.EducationRepository = (*EducationAdapter)(nil)

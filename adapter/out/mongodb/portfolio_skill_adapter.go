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

const collectionProfessionalSkills = "professionalskills"

// SkillAdapter implements out.ProfessionalSkillRepository using MongoDB.
type SkillAdapter struct {
	collection *mongo.Collection
}

// NewSkillAdapter creates a new MongoDB professional skill adapter.
func NewSkillAdapter(db *mongo.Database) *SkillAdapter {
	return &SkillAdapter{collection: db.Collection(collectionProfessionalSkills)}
}

// List returns all professional skill documents in store-native order.
func (a *SkillAdapter) List(ctx context.Context) ([]domain.ProfessionalSkill, error) {
	cursor, err := a.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list professional skills: %w", err)
	}
	defer cursor.Close(ctx)

	skills := []domain.ProfessionalSkill{}
	if err := cursor.All(ctx, &skills); err != nil {
		return nil, fmt.Errorf("failed to decode professional skills: %w", err)
	}
	return skills, nil
}

// GetByID retrieves a professional skill by id. Returns (nil, nil) when no
// document matches.
func (a *SkillAdapter) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ProfessionalSkill, error) {
	var skill domain.ProfessionalSkill
	err := a.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&skill)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get professional skill: %w", err)
	}
	return &skill, nil
}

// Create persists a new professional skill stamped with dateCreated.
func (a *SkillAdapter) Create(ctx context.Context, input *domain.ProfessionalSkillInput, now time.Time) (*domain.ProfessionalSkill, error) {
	if err := validateSkill(input); err != nil {
		return nil, err
	}

	doc := skillSetFields(input)
	doc["dateCreated"] = now

	result, err := a.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create professional skill: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, nil
	}
	return a.GetByID(ctx, id)
}

// Update replaces every whitelisted field and stamps dateModified. Returns
// (nil, nil) when no document matched the id.
func (a *SkillAdapter) Update(ctx context.Context, id primitive.ObjectID, input *domain.ProfessionalSkillInput, now time.Time) (*domain.ProfessionalSkill, error) {
	if err := validateSkill(input); err != nil {
		return nil, err
	}

	set := skillSetFields(input)
	set["dateModified"] = now

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var skill domain.ProfessionalSkill
	err := a.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&skill)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update professional skill: %w", err)
	}
	return &skill, nil
}

// Delete removes a professional skill, reporting whether one matched.
func (a *SkillAdapter) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := a.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete professional skill: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func skillSetFields(input *domain.ProfessionalSkillInput) bson.M {
	return bson.M{
		"title":  input.Title,
		"rating": input.Rating,
	}
}

func validateSkill(input *domain.ProfessionalSkillInput) error {
	if input.Title == "" {
		return fmt.Errorf("professional skill validation failed: title is required")
	}
	return nil
}

var _ out.ProfessionalSkillRepository = (*SkillAdapter)(nil)

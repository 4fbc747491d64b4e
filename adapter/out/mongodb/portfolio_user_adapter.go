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

const collectionUsers = "users"

// UserAdapter implements out.UserRepository using MongoDB.
type UserAdapter struct {
	collection *mongo.Collection
}

// NewUserAdapter creates a new MongoDB user adapter.
func NewUserAdapter(db *mongo.Database) *UserAdapter {
	return &UserAdapter{collection: db.Collection(collectionUsers)}
}

// EnsureIndexes creates the indexes for the users collection.
func (a *UserAdapter) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}
	_, err := a.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// List returns all user documents with plain reference lists.
func (a *UserAdapter) List(ctx context.Context) ([]domain.User, error) {
	cursor, err := a.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// GetByID retrieves a user with its professionalSkills, educations and
// experiences references expanded into the referenced documents. References
// that no longer resolve are omitted. Returns (nil, nil) when no user matches.
func (a *UserAdapter) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.UserDetail, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"_id": id}},
		{"$lookup": bson.M{
			"from":         collectionProfessionalSkills,
			"localField":   "professionalSkills",
			"foreignField": "_id",
			"as":           "professionalSkills",
		}},
		{"$lookup": bson.M{
			"from":         collectionEducations,
			"localField":   "educations",
			"foreignField": "_id",
			"as":           "educations",
		}},
		{"$lookup": bson.M{
			"from":         collectionExperiences,
			"localField":   "experiences",
			"foreignField": "_id",
			"as":           "experiences",
		}},
	}

	cursor, err := a.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		return nil, nil
	}

	var user domain.UserDetail
	if err := cursor.Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}

// Create persists a new user stamped with dateCreated. A non-empty avatarURL
// overrides any avatar value carried in the payload.
func (a *UserAdapter) Create(ctx context.Context, input *domain.UserInput, avatarURL string, now time.Time) (*domain.User, error) {
	if err := validateUser(input); err != nil {
		return nil, err
	}

	doc := userSetFields(input)
	if avatarURL != "" {
		doc["avatar"] = avatarURL
	}
	doc["cv"] = ""
	doc["dateCreated"] = now

	result, err := a.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, nil
	}
	return a.getPlainByID(ctx, id)
}

// Update replaces every whitelisted field and stamps dateModified. The stored
// avatar is replaced only when avatarURL is non-empty; it is the single field
// with merge semantics. Returns (nil, nil) when no document matched the id.
func (a *UserAdapter) Update(ctx context.Context, id primitive.ObjectID, input *domain.UserInput, avatarURL string, now time.Time) (*domain.User, error) {
	if err := validateUser(input); err != nil {
		return nil, err
	}

	set := userSetFields(input)
	delete(set, "avatar")
	if avatarURL != "" {
		set["avatar"] = avatarURL
	}
	set["dateModified"] = now

	return a.findAndSet(ctx, id, set, "update")
}

// SetCV stores the uploaded CV reference and stamps dateModified. Returns
// (nil, nil) when no document matched the id.
func (a *UserAdapter) SetCV(ctx context.Context, id primitive.ObjectID, cvURL string, now time.Time) (*domain.User, error) {
	set := bson.M{
		"cv":           cvURL,
		"dateModified": now,
	}
	return a.findAndSet(ctx, id, set, "set cv for")
}

// Delete removes a user, reporting whether one matched.
func (a *UserAdapter) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := a.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func (a *UserAdapter) findAndSet(ctx context.Context, id primitive.ObjectID, set bson.M, op string) (*domain.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user domain.User
	err := a.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to %s user: %w", op, err)
	}
	return &user, nil
}

func (a *UserAdapter) getPlainByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var user domain.User
	err := a.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// userSetFields builds the full-replace field set from the whitelisted input.
func userSetFields(input *domain.UserInput) bson.M {
	return bson.M{
		"firstName":          input.FirstName,
		"lastName":           input.LastName,
		"phone":              input.Phone,
		"email":              input.Email,
		"location":           input.Location,
		"summary":            input.Summary,
		"avatar":             input.Avatar,
		"linkedIn":           input.LinkedIn,
		"github":             input.Github,
		"instagram":          input.Instagram,
		"getInTouchText":     input.GetInTouchText,
		"professionalSkills": domain.RefObjectIDs(input.ProfessionalSkills),
		"educations":         domain.RefObjectIDs(input.Educations),
		"experiences":        domain.RefObjectIDs(input.Experiences),
	}
}

func validateUser(input *domain.UserInput) error {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", input.FirstName},
		{"lastName", input.LastName},
		{"phone", input.Phone},
		{"email", input.Email},
		{"location", input.Location},
	}
	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("user validation failed: %s is required", field.name)
		}
	}
	return nil
}

var _ out.UserRepository = (*UserAdapter)(nil)

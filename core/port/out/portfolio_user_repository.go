package out

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio_server/core/domain"
)

// UserRepository is the user profile entity store. GetByID expands reference
// lists into the referenced documents. An empty avatarURL on Update leaves the
// stored avatar untouched; every other whitelisted field is replaced.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.UserDetail, error)
	Create(ctx context.Context, input *domain.UserInput, avatarURL string, now time.Time) (*domain.User, error)
	Update(ctx context.Context, id primitive.ObjectID, input *domain.UserInput, avatarURL string, now time.Time) (*domain.User, error)
	SetCV(ctx context.Context, id primitive.ObjectID, cvURL string, now time.Time) (*domain.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

package out

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio_server/core/domain"
)

// ExperienceRepository is the work experience entity store.
type ExperienceRepository interface {
	List(ctx context.Context) ([]domain.Experience, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Experience, error)
	Create(ctx context.Context, input *domain.ExperienceInput, now time.Time) (*domain.Experience, error)
	Update(ctx context.Context, id primitive.ObjectID, input *domain.ExperienceInput, now time.Time) (*domain.Experience, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

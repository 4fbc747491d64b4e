// Package out defines the persistence ports for the entity stores.
package out

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio_server/core/domain"
)

// EducationRepository is the education entity store. GetByID and Update return
// (nil, nil) when no document matches; Delete reports whether one matched.
type EducationRepository interface {
	List(ctx context.Context) ([]domain.Education, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Education, error)
	Create(ctx context.Context, input *domain.EducationInput, now time.Time) (*domain.Education, error)
	Update(ctx context.Context, id primitive.ObjectID, input *domain.EducationInput, now time.Time) (*domain.Education, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

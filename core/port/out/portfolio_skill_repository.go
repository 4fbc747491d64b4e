package out

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio_server/core/domain"
)

// ProfessionalSkillRepository is the professional skill entity store.
type ProfessionalSkillRepository interface {
	List(ctx context.Context) ([]domain.ProfessionalSkill, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ProfessionalSkill, error)
	Create(ctx context.Context, input *domain.ProfessionalSkillInput, now time.Time) (*domain.ProfessionalSkill, error)
	Update(ctx context.Context, id primitive.ObjectID, input *domain.ProfessionalSkillInput, now time.Time) (*domain.ProfessionalSkill, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

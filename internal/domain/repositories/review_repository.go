package repositories

import (
	"context"

	"github.com/google/uuid"
	"sparkier.backend/internal/domain/entities"
)

// ReviewRepository defines consultant review data operations. Every write
// is scoped by both the row id and the consultant id so a reconciliation
// can never touch rows belonging to another consultant.
type ReviewRepository interface {
	ListByConsultant(ctx context.Context, consultantID uuid.UUID) ([]*entities.Review, error)
	Insert(ctx context.Context, review *entities.Review) error
	Update(ctx context.Context, review *entities.Review) error
	Delete(ctx context.Context, id, consultantID uuid.UUID) error
}

package repositories

import (
	"context"

	"github.com/google/uuid"
	"sparkier.backend/internal/domain/entities"
)

// MissionRepository defines consultant mission data operations. Missions
// are addressed by title within one consultant; see MissionReconciler for
// the consequences of that identity choice.
type MissionRepository interface {
	ListByConsultant(ctx context.Context, consultantID uuid.UUID) ([]*entities.Mission, error)
	Insert(ctx context.Context, mission *entities.Mission) error
	UpdateByTitle(ctx context.Context, mission *entities.Mission) error
	DeleteByTitle(ctx context.Context, consultantID uuid.UUID, title string) error
}

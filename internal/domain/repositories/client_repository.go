package repositories

import (
	"context"

	"github.com/google/uuid"
	"sparkier.backend/internal/domain/entities"
)

// ClientRepository defines client company data operations
type ClientRepository interface {
	Create(ctx context.Context, client *entities.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Client, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Client, error)
	Update(ctx context.Context, client *entities.Client) error
	List(ctx context.Context, search string, limit, offset int) ([]*entities.Client, int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"sparkier.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	MarkEmailVerified(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, limit, offset int) ([]*entities.User, int64, error)
	ListUnverifiedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*entities.User, error)
	Purge(ctx context.Context, ids []uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

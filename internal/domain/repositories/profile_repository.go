package repositories

import (
	"context"

	"github.com/google/uuid"
	"sparkier.backend/internal/domain/entities"
)

// ProfileRepository defines consultant/client profile data operations
type ProfileRepository interface {
	Create(ctx context.Context, profile *entities.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Profile, error)
	Update(ctx context.Context, profile *entities.Profile) error
	UpdateRoles(ctx context.Context, id uuid.UUID, roles []string) error
	// SlugTaken reports whether a slug is already used by a profile other
	// than the one currently holding excludeSlug. Pass "" to exclude none.
	SlugTaken(ctx context.Context, slug, excludeSlug string) (bool, error)
	ListByRole(ctx context.Context, role, search string, limit, offset int) ([]*entities.Profile, int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	SoftDeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

package repositories

import (
	"context"

	"github.com/google/uuid"
	"sparkier.backend/internal/domain/entities"
)

// SparkRepository defines spark catalog data operations
type SparkRepository interface {
	Create(ctx context.Context, spark *entities.Spark) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Spark, error)
	GetByURL(ctx context.Context, url string) (*entities.Spark, error)
	Update(ctx context.Context, spark *entities.Spark) error
	// URLTaken reports whether a URL slug is already used by a spark other
	// than the one currently holding excludeURL. Pass "" to exclude none.
	URLTaken(ctx context.Context, url, excludeURL string) (bool, error)
	ListByConsultant(ctx context.Context, consultantID uuid.UUID) ([]*entities.Spark, error)
	List(ctx context.Context, search string, limit, offset int) ([]*entities.Spark, int64, error)
	SoftDelete(ctx context.Context, id, consultantID uuid.UUID) error
}

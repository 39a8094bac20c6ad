package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sparkier.backend/internal/domain/entities"
	domainerrors "sparkier.backend/internal/domain/errors"
	"sparkier.backend/internal/infrastructure/models"
	"sparkier.backend/pkg/utils"
)

// SparkRepository implements spark catalog data operations
type SparkRepository struct {
	db *gorm.DB
}

// NewSparkRepository creates a new spark repository
func NewSparkRepository(db *gorm.DB) *SparkRepository {
	return &SparkRepository{db: db}
}

// Create creates a new spark
func (r *SparkRepository) Create(ctx context.Context, spark *entities.Spark) error {
	if spark.ID == uuid.Nil {
		spark.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	spark.CreatedAt = now
	spark.UpdatedAt = now

	return translateError(r.db.WithContext(ctx).Create(r.toModel(spark)).Error)
}

// GetByID gets a spark by ID
func (r *SparkRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Spark, error) {
	var m models.Spark
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// GetByURL gets a spark by its URL slug
func (r *SparkRepository) GetByURL(ctx context.Context, url string) (*entities.Spark, error) {
	var m models.Spark
	if err := r.db.WithContext(ctx).Where("url = ?", url).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// Update updates a spark's editable fields, URL slug included
func (r *SparkRepository) Update(ctx context.Context, spark *entities.Spark) error {
	m := r.toModel(spark)
	m.UpdatedAt = time.Now()
	// Struct-based update so the JSON serializer applies to benefits.
	result := r.db.WithContext(ctx).Model(&models.Spark{}).
		Where("id = ? AND consultant_id = ?", spark.ID, spark.ConsultantID).
		Select("title", "url", "highlight", "description", "duration", "price",
			"benefits", "updated_at").
		Updates(m)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// URLTaken reports whether a URL slug is in use within the spark scope.
// Soft-deleted sparks keep their URL, so the check runs unscoped.
func (r *SparkRepository) URLTaken(ctx context.Context, url, excludeURL string) (bool, error) {
	query := r.db.WithContext(ctx).Unscoped().Model(&models.Spark{}).Where("url = ?", url)
	if excludeURL != "" {
		query = query.Where("url <> ?", excludeURL)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByConsultant lists one consultant's sparks, newest first
func (r *SparkRepository) ListByConsultant(ctx context.Context, consultantID uuid.UUID) ([]*entities.Spark, error) {
	var sparkModels []models.Spark
	err := r.db.WithContext(ctx).
		Where("consultant_id = ?", consultantID).
		Order("created_at DESC").
		Find(&sparkModels).Error
	if err != nil {
		return nil, err
	}

	sparks := make([]*entities.Spark, 0, len(sparkModels))
	for i := range sparkModels {
		sparks = append(sparks, r.toEntity(&sparkModels[i]))
	}
	return sparks, nil
}

// List lists the catalog with an optional title search, newest first
func (r *SparkRepository) List(ctx context.Context, search string, limit, offset int) ([]*entities.Spark, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Spark{})
	if search != "" {
		query = query.Where("LOWER(title) LIKE ?", likePattern(search))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sparkModels []models.Spark
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&sparkModels).Error; err != nil {
		return nil, 0, err
	}

	sparks := make([]*entities.Spark, 0, len(sparkModels))
	for i := range sparkModels {
		sparks = append(sparks, r.toEntity(&sparkModels[i]))
	}
	return sparks, total, nil
}

// SoftDelete soft deletes a spark, scoped by owner
func (r *SparkRepository) SoftDelete(ctx context.Context, id, consultantID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND consultant_id = ?", id, consultantID).
		Delete(&models.Spark{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *SparkRepository) toModel(s *entities.Spark) *models.Spark {
	return &models.Spark{
		ID:           s.ID,
		ConsultantID: s.ConsultantID,
		Title:        s.Title,
		URL:          s.URL,
		Highlight:    s.Highlight,
		Description:  s.Description,
		Duration:     s.Duration,
		Price:        s.Price,
		Benefits:     s.Benefits,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (r *SparkRepository) toEntity(m *models.Spark) *entities.Spark {
	spark := &entities.Spark{
		ID:           m.ID,
		ConsultantID: m.ConsultantID,
		Title:        m.Title,
		URL:          m.URL,
		Highlight:    m.Highlight,
		Description:  m.Description,
		Duration:     m.Duration,
		Price:        m.Price,
		Benefits:     m.Benefits,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		spark.DeletedAt = &t
	}
	return spark
}

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

// ReviewRepository implements consultant review data operations
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// ListByConsultant lists a consultant's reviews, oldest first
func (r *ReviewRepository) ListByConsultant(ctx context.Context, consultantID uuid.UUID) ([]*entities.Review, error) {
	var reviewModels []models.ConsultantReview
	err := r.db.WithContext(ctx).
		Where("consultant_id = ?", consultantID).
		Order("created_at ASC").
		Find(&reviewModels).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]*entities.Review, 0, len(reviewModels))
	for i := range reviewModels {
		reviews = append(reviews, r.toEntity(&reviewModels[i]))
	}
	return reviews, nil
}

// Insert inserts a new review for a consultant. The client-chosen
// creation timestamp is preserved when set.
func (r *ReviewRepository) Insert(ctx context.Context, review *entities.Review) error {
	if review.ID == uuid.Nil {
		review.ID = utils.GenerateUUIDv7()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	m := &models.ConsultantReview{
		ID:             review.ID,
		ConsultantID:   review.ConsultantID,
		ClientName:     review.ClientName,
		ClientRole:     review.ClientRole,
		ClientCompany:  review.ClientCompany,
		ReviewText:     review.ReviewText,
		Rating:         review.Rating,
		ClientImageURL: review.ClientImageURL,
		CreatedAt:      review.CreatedAt,
	}
	return translateError(r.db.WithContext(ctx).Create(m).Error)
}

// Update rewrites one review, scoped by both the row id and the
// consultant id so rows of other consultants are unreachable.
func (r *ReviewRepository) Update(ctx context.Context, review *entities.Review) error {
	result := r.db.WithContext(ctx).Model(&models.ConsultantReview{}).
		Where("id = ? AND consultant_id = ?", review.ID, review.ConsultantID).
		Updates(map[string]interface{}{
			"client_name":      review.ClientName,
			"client_role":      review.ClientRole,
			"client_company":   review.ClientCompany,
			"review_text":      review.ReviewText,
			"rating":           review.Rating,
			"client_image_url": review.ClientImageURL,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes one review, scoped by row id and consultant id
func (r *ReviewRepository) Delete(ctx context.Context, id, consultantID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND consultant_id = ?", id, consultantID).
		Delete(&models.ConsultantReview{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ReviewRepository) toEntity(m *models.ConsultantReview) *entities.Review {
	return &entities.Review{
		ID:             m.ID,
		ConsultantID:   m.ConsultantID,
		ClientName:     m.ClientName,
		ClientRole:     m.ClientRole,
		ClientCompany:  m.ClientCompany,
		ReviewText:     m.ReviewText,
		Rating:         m.Rating,
		ClientImageURL: m.ClientImageURL,
		CreatedAt:      m.CreatedAt,
	}
}

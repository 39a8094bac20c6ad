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

// ProfileRepository implements profile data operations
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	if profile.ID == uuid.Nil {
		profile.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	return translateError(r.db.WithContext(ctx).Create(r.toModel(profile)).Error)
}

// GetByID gets a profile by ID
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	var m models.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// GetByUserID gets a profile by its owning user
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	var m models.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// GetBySlug gets a profile by slug
func (r *ProfileRepository) GetBySlug(ctx context.Context, slug string) (*entities.Profile, error) {
	var m models.Profile
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// Update updates the editable profile fields, slug included
func (r *ProfileRepository) Update(ctx context.Context, profile *entities.Profile) error {
	m := r.toModel(profile)
	m.UpdatedAt = time.Now()
	// Struct-based update so the JSON serializer applies to the slice columns.
	result := r.db.WithContext(ctx).Model(&models.Profile{}).
		Where("id = ?", profile.ID).
		Select("first_name", "last_name", "slug", "title", "bio", "company",
			"competencies", "languages", "linked_in_url", "booking_url",
			"profile_image_url", "updated_at").
		Updates(m)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateRoles replaces the role set of a profile
func (r *ProfileRepository) UpdateRoles(ctx context.Context, id uuid.UUID, roles []string) error {
	result := r.db.WithContext(ctx).Model(&models.Profile{}).
		Where("id = ?", id).
		Select("roles", "updated_at").
		Updates(&models.Profile{Roles: roles, UpdatedAt: time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SlugTaken reports whether a slug is in use within the profile scope.
// Soft-deleted rows still hold their slug (slugs are never reclaimed),
// so the check runs unscoped.
func (r *ProfileRepository) SlugTaken(ctx context.Context, slug, excludeSlug string) (bool, error) {
	query := r.db.WithContext(ctx).Unscoped().Model(&models.Profile{}).Where("slug = ?", slug)
	if excludeSlug != "" {
		query = query.Where("slug <> ?", excludeSlug)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByRole lists profiles carrying a role, with an optional name/slug
// search, newest first
func (r *ProfileRepository) ListByRole(ctx context.Context, role, search string, limit, offset int) ([]*entities.Profile, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Profile{})
	if role != "" {
		// Roles are stored as a JSON array; containment via the quoted element.
		query = query.Where("roles LIKE ?", `%"`+role+`"%`)
	}
	if search != "" {
		pattern := likePattern(search)
		query = query.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR slug LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profileModels []models.Profile
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&profileModels).Error; err != nil {
		return nil, 0, err
	}

	profiles := make([]*entities.Profile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, r.toEntity(&profileModels[i]))
	}
	return profiles, total, nil
}

// SoftDelete soft deletes a profile
func (r *ProfileRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Profile{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDeleteByUserID soft deletes the profile owned by a user
func (r *ProfileRepository) SoftDeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Profile{}, "user_id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) toModel(p *entities.Profile) *models.Profile {
	return &models.Profile{
		ID:              p.ID,
		UserID:          p.UserID,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		Slug:            p.Slug,
		Title:           p.Title,
		Bio:             p.Bio,
		Company:         p.Company,
		Competencies:    p.Competencies,
		Languages:       p.Languages,
		Roles:           p.Roles,
		LinkedInURL:     p.LinkedInURL,
		BookingURL:      p.BookingURL,
		ProfileImageURL: p.ProfileImageURL,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (r *ProfileRepository) toEntity(m *models.Profile) *entities.Profile {
	profile := &entities.Profile{
		ID:              m.ID,
		UserID:          m.UserID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Slug:            m.Slug,
		Title:           m.Title,
		Bio:             m.Bio,
		Company:         m.Company,
		Competencies:    m.Competencies,
		Languages:       m.Languages,
		Roles:           m.Roles,
		LinkedInURL:     m.LinkedInURL,
		BookingURL:      m.BookingURL,
		ProfileImageURL: m.ProfileImageURL,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		profile.DeletedAt = &t
	}
	return profile
}

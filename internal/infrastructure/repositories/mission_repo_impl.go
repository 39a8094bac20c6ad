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

// MissionRepository implements consultant mission data operations
type MissionRepository struct {
	db *gorm.DB
}

// NewMissionRepository creates a new mission repository
func NewMissionRepository(db *gorm.DB) *MissionRepository {
	return &MissionRepository{db: db}
}

// ListByConsultant lists a consultant's missions, newest engagement first
func (r *MissionRepository) ListByConsultant(ctx context.Context, consultantID uuid.UUID) ([]*entities.Mission, error) {
	var missionModels []models.ConsultantMission
	err := r.db.WithContext(ctx).
		Where("consultant_id = ?", consultantID).
		Order("date DESC").
		Find(&missionModels).Error
	if err != nil {
		return nil, err
	}

	missions := make([]*entities.Mission, 0, len(missionModels))
	for i := range missionModels {
		missions = append(missions, r.toEntity(&missionModels[i]))
	}
	return missions, nil
}

// Insert inserts a new mission for a consultant
func (r *MissionRepository) Insert(ctx context.Context, mission *entities.Mission) error {
	if mission.ID == uuid.Nil {
		mission.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	mission.CreatedAt = now
	mission.UpdatedAt = now

	m := &models.ConsultantMission{
		ID:           mission.ID,
		ConsultantID: mission.ConsultantID,
		Title:        mission.Title,
		Company:      mission.Company,
		Description:  mission.Description,
		Duration:     mission.Duration,
		Date:         mission.Date,
		CreatedAt:    mission.CreatedAt,
		UpdatedAt:    mission.UpdatedAt,
	}
	return translateError(r.db.WithContext(ctx).Create(m).Error)
}

// UpdateByTitle rewrites the mission matching the title within one
// consultant. Title is the identity key: the title itself is never
// updated here, a renamed mission arrives as delete+insert.
func (r *MissionRepository) UpdateByTitle(ctx context.Context, mission *entities.Mission) error {
	result := r.db.WithContext(ctx).Model(&models.ConsultantMission{}).
		Where("consultant_id = ? AND title = ?", mission.ConsultantID, mission.Title).
		Updates(map[string]interface{}{
			"company":     mission.Company,
			"description": mission.Description,
			"duration":    mission.Duration,
			"date":        mission.Date,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteByTitle removes the mission matching the title within one consultant
func (r *MissionRepository) DeleteByTitle(ctx context.Context, consultantID uuid.UUID, title string) error {
	result := r.db.WithContext(ctx).
		Where("consultant_id = ? AND title = ?", consultantID, title).
		Delete(&models.ConsultantMission{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *MissionRepository) toEntity(m *models.ConsultantMission) *entities.Mission {
	return &entities.Mission{
		ID:           m.ID,
		ConsultantID: m.ConsultantID,
		Title:        m.Title,
		Company:      m.Company,
		Description:  m.Description,
		Duration:     m.Duration,
		Date:         m.Date,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

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

// ClientRepository implements client company data operations
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create creates a new client company record
func (r *ClientRepository) Create(ctx context.Context, client *entities.Client) error {
	if client.ID == uuid.Nil {
		client.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	m := &models.Client{
		ID:          client.ID,
		UserID:      client.UserID,
		CompanyName: client.CompanyName,
		Industry:    client.Industry,
		CreatedAt:   client.CreatedAt,
		UpdatedAt:   client.UpdatedAt,
	}
	return translateError(r.db.WithContext(ctx).Create(m).Error)
}

// GetByID gets a client by ID
func (r *ClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Client, error) {
	var m models.Client
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// GetByUserID gets the client record owned by a user
func (r *ClientRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Client, error) {
	var m models.Client
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// Update updates the editable client fields
func (r *ClientRepository) Update(ctx context.Context, client *entities.Client) error {
	result := r.db.WithContext(ctx).Model(&models.Client{}).
		Where("id = ?", client.ID).
		Updates(map[string]interface{}{
			"company_name": client.CompanyName,
			"industry":     client.Industry,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists client companies with an optional name search, newest first
func (r *ClientRepository) List(ctx context.Context, search string, limit, offset int) ([]*entities.Client, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Client{})
	if search != "" {
		query = query.Where("LOWER(company_name) LIKE ?", likePattern(search))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var clientModels []models.Client
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&clientModels).Error; err != nil {
		return nil, 0, err
	}

	clients := make([]*entities.Client, 0, len(clientModels))
	for i := range clientModels {
		clients = append(clients, r.toEntity(&clientModels[i]))
	}
	return clients, total, nil
}

// SoftDelete soft deletes a client record
func (r *ClientRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Client{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) toEntity(m *models.Client) *entities.Client {
	client := &entities.Client{
		ID:          m.ID,
		UserID:      m.UserID,
		CompanyName: m.CompanyName,
		Industry:    m.Industry,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		client.DeletedAt = &t
	}
	return client
}

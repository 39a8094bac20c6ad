package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type ConsultantReview struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey"`
	ConsultantID   uuid.UUID   `gorm:"type:uuid;index;not null"`
	ClientName     string      `gorm:"type:varchar(200);not null"`
	ClientRole     string      `gorm:"type:varchar(200);not null"`
	ClientCompany  string      `gorm:"type:varchar(200);not null"`
	ReviewText     string      `gorm:"type:text;not null"`
	Rating         int         `gorm:"not null"`
	ClientImageURL null.String `gorm:"type:varchar(500)"`
	CreatedAt      time.Time
}

func (ConsultantReview) TableName() string { return "consultant_reviews" }
